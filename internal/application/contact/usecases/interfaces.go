package usecases

import (
	"context"

	"ghitdesk/internal/domain/contact"
)

// ContactStore is the collection surface the contact use cases depend on.
type ContactStore interface {
	Add(ctx context.Context, c contact.Contact)
	Update(ctx context.Context, id string, u contact.Update) (contact.Contact, bool)
	Delete(ctx context.Context, id string) bool
	Get(ctx context.Context, id string) (contact.Contact, bool)
	List(ctx context.Context) []contact.Contact
}

type CreateContactExecutor interface {
	Execute(ctx context.Context, cmd CreateContactCommand) (*CreateContactResult, error)
}

type UpdateContactExecutor interface {
	Execute(ctx context.Context, cmd UpdateContactCommand) (*UpdateContactResult, error)
}

type DeleteContactExecutor interface {
	Execute(ctx context.Context, cmd DeleteContactCommand) (*DeleteContactResult, error)
}

type ListContactsExecutor interface {
	Execute(ctx context.Context, query ListContactsQuery) (*ListContactsResult, error)
}
