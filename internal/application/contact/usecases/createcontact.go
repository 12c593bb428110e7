package usecases

import (
	"context"

	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/contact"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/id"
	"ghitdesk/internal/shared/logger"
)

type CreateContactCommand struct {
	Name           string
	Email          string
	Phone          string
	Document       string
	PrimaryChannel string
	Tags           []string
	Rating         float64
	Company        string
}

type CreateContactResult struct {
	Contact contact.Contact
}

type CreateContactUseCase struct {
	contacts ContactStore
	logger   logger.Interface
}

func NewCreateContactUseCase(contacts ContactStore, logger logger.Interface) *CreateContactUseCase {
	return &CreateContactUseCase{contacts: contacts, logger: logger}
}

func (uc *CreateContactUseCase) Execute(ctx context.Context, cmd CreateContactCommand) (*CreateContactResult, error) {
	uc.logger.Infow("executing create contact use case", "name", cmd.Name)

	c := contact.Contact{
		ID:              id.NewContactID(),
		Name:            cmd.Name,
		Email:           cmd.Email,
		Phone:           cmd.Phone,
		Document:        cmd.Document,
		PrimaryChannel:  common.ChannelType(cmd.PrimaryChannel),
		LastInteraction: "agora",
		Tags:            cmd.Tags,
		Rating:          cmd.Rating,
		Company:         cmd.Company,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if err := c.Validate(); err != nil {
		uc.logger.Errorw("invalid create contact command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	uc.contacts.Add(ctx, c)

	uc.logger.Infow("contact created successfully", "contact_id", c.ID)

	return &CreateContactResult{Contact: c}, nil
}
