package usecases

import (
	"context"
	"strings"

	"ghitdesk/internal/domain/contact"
	"ghitdesk/internal/shared/logger"
)

// ListContactsQuery filters the address book. Search matches name, email, and
// company case-insensitively; Tag matches exactly.
type ListContactsQuery struct {
	Search string
	Tag    string
}

type ListContactsResult struct {
	Contacts []contact.Contact
	Total    int
}

type ListContactsUseCase struct {
	contacts ContactStore
	logger   logger.Interface
}

func NewListContactsUseCase(contacts ContactStore, logger logger.Interface) *ListContactsUseCase {
	return &ListContactsUseCase{contacts: contacts, logger: logger}
}

func (uc *ListContactsUseCase) Execute(ctx context.Context, query ListContactsQuery) (*ListContactsResult, error) {
	all := uc.contacts.List(ctx)
	search := strings.ToLower(query.Search)

	filtered := make([]contact.Contact, 0, len(all))
	for _, c := range all {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) &&
			!strings.Contains(strings.ToLower(c.Company), search) {
			continue
		}
		if query.Tag != "" && !hasTag(c.Tags, query.Tag) {
			continue
		}
		filtered = append(filtered, c)
	}

	return &ListContactsResult{Contacts: filtered, Total: len(filtered)}, nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
