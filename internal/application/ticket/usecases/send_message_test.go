package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghitdesk/internal/domain/common"
	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/domain/user"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

func openTicket() ticket.Ticket {
	return ticket.Ticket{
		ID:      "T-1",
		Subject: "Pedido não chegou",
		Customer: user.User{
			ID: "c1", Name: "Carlos Oliveira", Role: user.RoleCustomer,
		},
		Channel:       common.ChannelWhatsApp,
		Status:        ticket.StatusOpen,
		Priority:      common.PriorityHigh,
		LastMessageAt: time.Now().Add(-time.Hour),
		Messages: []ticket.Message{
			{ID: "m1", SenderID: "c1", Content: "Meu pedido não chegou", Timestamp: time.Now().Add(-time.Hour)},
		},
	}
}

func TestSendMessageUseCase_AppendsAndBumpsLastMessageAt(t *testing.T) {
	existing := openTicket()
	var appliedUpdate ticket.Update

	store := &mockTicketStore{
		GetFunc: func(ctx context.Context, id string) (ticket.Ticket, bool) {
			return existing, id == "T-1"
		},
		UpdateFunc: func(ctx context.Context, id string, u ticket.Update) (ticket.Ticket, bool) {
			appliedUpdate = u
			updated := existing
			updated.Apply(u)
			return updated, true
		},
	}
	users := &mockUserDirectory{
		CurrentFunc: func(ctx context.Context) (user.User, bool) {
			return user.User{ID: "u1", Name: "Ana Silva", Role: user.RoleAgent}, true
		},
	}

	uc := NewSendMessageUseCase(store, users, &mockRenderer{}, logger.NewNop())
	result, err := uc.Execute(context.Background(), SendMessageCommand{
		TicketID: "T-1",
		Content:  "Verificando com a transportadora",
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	// compound update: new message appended, LastMessageAt bumped together
	require.Len(t, appliedUpdate.Messages, 2)
	require.NotNil(t, appliedUpdate.LastMessageAt)
	assert.Equal(t, appliedUpdate.Messages[1].Timestamp, *appliedUpdate.LastMessageAt)

	assert.Equal(t, "u1", result.Message.SenderID)
	assert.Equal(t, "Verificando com a transportadora", result.Message.Content)
	assert.NotEmpty(t, result.Message.ID)
	assert.Len(t, result.Ticket.Messages, 2)
	assert.Equal(t, result.Message.Timestamp, result.Ticket.LastMessageAt)
}

func TestSendMessageUseCase_CustomerContentIsStripped(t *testing.T) {
	existing := openTicket()
	store := &mockTicketStore{
		GetFunc: func(ctx context.Context, id string) (ticket.Ticket, bool) {
			return existing, true
		},
		UpdateFunc: func(ctx context.Context, id string, u ticket.Update) (ticket.Ticket, bool) {
			updated := existing
			updated.Apply(u)
			return updated, true
		},
	}
	renderer := &mockRenderer{
		PlainTextFunc: func(input string) string {
			return "stripped"
		},
	}

	uc := NewSendMessageUseCase(store, &mockUserDirectory{}, renderer, logger.NewNop())
	result, err := uc.Execute(context.Background(), SendMessageCommand{
		TicketID: "T-1",
		SenderID: "c1",
		Content:  "<script>alert(1)</script>Oi",
	})

	require.NoError(t, err)
	assert.Equal(t, "stripped", result.Message.Content)
	assert.Empty(t, result.RenderedHTML, "customer messages are not markdown-rendered")
}

func TestSendMessageUseCase_AgentMessageIsRendered(t *testing.T) {
	existing := openTicket()
	store := &mockTicketStore{
		GetFunc: func(ctx context.Context, id string) (ticket.Ticket, bool) {
			return existing, true
		},
		UpdateFunc: func(ctx context.Context, id string, u ticket.Update) (ticket.Ticket, bool) {
			updated := existing
			updated.Apply(u)
			return updated, true
		},
	}
	renderer := &mockRenderer{
		ToHTMLSanitizedFunc: func(markdown string) (string, error) {
			return "<p><strong>ok</strong></p>", nil
		},
	}

	uc := NewSendMessageUseCase(store, &mockUserDirectory{}, renderer, logger.NewNop())
	result, err := uc.Execute(context.Background(), SendMessageCommand{
		TicketID:   "T-1",
		SenderID:   "u1",
		Content:    "**ok**",
		IsInternal: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "**ok**", result.Message.Content, "source markdown is stored untouched")
	assert.Equal(t, "<p><strong>ok</strong></p>", result.RenderedHTML)
	assert.True(t, result.Message.IsInternal)
}

func TestSendMessageUseCase_Errors(t *testing.T) {
	tests := []struct {
		name       string
		cmd        SendMessageCommand
		store      *mockTicketStore
		users      *mockUserDirectory
		wantErr    func(error) bool
	}{
		{
			name:    "missing ticket id",
			cmd:     SendMessageCommand{Content: "oi"},
			store:   &mockTicketStore{},
			users:   &mockUserDirectory{},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "missing content",
			cmd:     SendMessageCommand{TicketID: "T-1"},
			store:   &mockTicketStore{},
			users:   &mockUserDirectory{},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "unknown ticket",
			cmd:     SendMessageCommand{TicketID: "T-404", Content: "oi"},
			store:   &mockTicketStore{},
			users:   &mockUserDirectory{},
			wantErr: errors.IsNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSendMessageUseCase(tt.store, tt.users, &mockRenderer{}, logger.NewNop())
			result, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, tt.wantErr(err))
			assert.Nil(t, result)
		})
	}
}
