package usecases

import (
	"context"

	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/contact"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

// UpdateContactCommand carries a shallow partial update; nil fields are left
// unchanged.
type UpdateContactCommand struct {
	ContactID       string
	Name            *string
	Email           *string
	Phone           *string
	Document        *string
	PrimaryChannel  *string
	LastInteraction *string
	Tags            []string
	Rating          *float64
	Company         *string
}

type UpdateContactResult struct {
	Contact contact.Contact
}

type UpdateContactUseCase struct {
	contacts ContactStore
	logger   logger.Interface
}

func NewUpdateContactUseCase(contacts ContactStore, logger logger.Interface) *UpdateContactUseCase {
	return &UpdateContactUseCase{contacts: contacts, logger: logger}
}

func (uc *UpdateContactUseCase) Execute(ctx context.Context, cmd UpdateContactCommand) (*UpdateContactResult, error) {
	uc.logger.Infow("executing update contact use case", "contact_id", cmd.ContactID)

	if cmd.ContactID == "" {
		return nil, errors.NewValidationError("contact ID is required")
	}

	u := contact.Update{
		Name:            cmd.Name,
		Email:           cmd.Email,
		Phone:           cmd.Phone,
		Document:        cmd.Document,
		LastInteraction: cmd.LastInteraction,
		Tags:            cmd.Tags,
		Company:         cmd.Company,
	}

	if cmd.PrimaryChannel != nil {
		channel := common.ChannelType(*cmd.PrimaryChannel)
		if !channel.IsValid() {
			return nil, errors.NewValidationError("invalid primary channel")
		}
		u.PrimaryChannel = &channel
	}

	if cmd.Rating != nil {
		if *cmd.Rating < 0 || *cmd.Rating > 5 {
			return nil, errors.NewValidationError("rating must be between 0.0 and 5.0")
		}
		u.Rating = cmd.Rating
	}

	updated, ok := uc.contacts.Update(ctx, cmd.ContactID, u)
	if !ok {
		return nil, errors.NewNotFoundError("contact not found")
	}

	uc.logger.Infow("contact updated successfully", "contact_id", updated.ID)

	return &UpdateContactResult{Contact: updated}, nil
}
