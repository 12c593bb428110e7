package usecases

import (
	"context"

	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/domain/user"
)

type mockTicketStore struct {
	AddFunc    func(ctx context.Context, t ticket.Ticket)
	UpdateFunc func(ctx context.Context, id string, u ticket.Update) (ticket.Ticket, bool)
	DeleteFunc func(ctx context.Context, id string) bool
	GetFunc    func(ctx context.Context, id string) (ticket.Ticket, bool)
	ListFunc   func(ctx context.Context) []ticket.Ticket
}

func (m *mockTicketStore) Add(ctx context.Context, t ticket.Ticket) {
	if m.AddFunc != nil {
		m.AddFunc(ctx, t)
	}
}

func (m *mockTicketStore) Update(ctx context.Context, id string, u ticket.Update) (ticket.Ticket, bool) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, u)
	}
	return ticket.Ticket{}, false
}

func (m *mockTicketStore) Delete(ctx context.Context, id string) bool {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false
}

func (m *mockTicketStore) Get(ctx context.Context, id string) (ticket.Ticket, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return ticket.Ticket{}, false
}

func (m *mockTicketStore) List(ctx context.Context) []ticket.Ticket {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil
}

type mockUserDirectory struct {
	GetFunc     func(ctx context.Context, id string) (user.User, bool)
	CurrentFunc func(ctx context.Context) (user.User, bool)
}

func (m *mockUserDirectory) Get(ctx context.Context, id string) (user.User, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return user.User{}, false
}

func (m *mockUserDirectory) Current(ctx context.Context) (user.User, bool) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx)
	}
	return user.User{}, false
}

type mockRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
	PlainTextFunc       func(input string) string
}

func (m *mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return markdown, nil
}

func (m *mockRenderer) PlainText(input string) string {
	if m.PlainTextFunc != nil {
		return m.PlainTextFunc(input)
	}
	return input
}
