package usecases

import (
	"context"

	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

type DeleteContactCommand struct {
	ContactID string
}

type DeleteContactResult struct {
	Deleted bool
}

type DeleteContactUseCase struct {
	contacts ContactStore
	logger   logger.Interface
}

func NewDeleteContactUseCase(contacts ContactStore, logger logger.Interface) *DeleteContactUseCase {
	return &DeleteContactUseCase{contacts: contacts, logger: logger}
}

// Execute removes the contact. Tickets whose embedded customer shares the
// contact's identity are untouched.
func (uc *DeleteContactUseCase) Execute(ctx context.Context, cmd DeleteContactCommand) (*DeleteContactResult, error) {
	if cmd.ContactID == "" {
		return nil, errors.NewValidationError("contact ID is required")
	}

	deleted := uc.contacts.Delete(ctx, cmd.ContactID)
	if deleted {
		uc.logger.Infow("contact deleted", "contact_id", cmd.ContactID)
	}

	return &DeleteContactResult{Deleted: deleted}, nil
}
