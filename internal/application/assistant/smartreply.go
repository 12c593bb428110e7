package assistant

import (
	"context"
	"fmt"
	"strings"

	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/infrastructure/ai"
	"ghitdesk/internal/shared/config"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

type SmartReplyCommand struct {
	TicketID string
	Draft    string
}

type SmartReplyResult struct {
	Suggestion string
}

type SmartReplyUseCase struct {
	genai   GenAI
	tickets TicketReader
	model   string
	logger  logger.Interface
}

func NewSmartReplyUseCase(
	genai GenAI,
	tickets TicketReader,
	cfg config.GeminiConfig,
	logger logger.Interface,
) *SmartReplyUseCase {
	return &SmartReplyUseCase{
		genai:   genai,
		tickets: tickets,
		model:   cfg.Model,
		logger:  logger,
	}
}

// Execute generates a suggested agent response from the conversation history.
// AI failures surface as external errors; the store is never touched.
func (uc *SmartReplyUseCase) Execute(ctx context.Context, cmd SmartReplyCommand) (*SmartReplyResult, error) {
	uc.logger.Infow("executing smart reply use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, ok := uc.tickets.Get(ctx, cmd.TicketID)
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	prompt := smartReplyPrompt(t, cmd.Draft)
	resp, err := uc.genai.GenerateContent(ctx, uc.model, ai.GenerateRequest{
		Contents: []ai.Content{{Role: "user", Parts: []ai.Part{{Text: prompt}}}},
	})
	if err != nil {
		uc.logger.Errorw("smart reply generation failed", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	suggestion := resp.Text()
	if suggestion == "" {
		return nil, errors.NewExternalError("no suggestion generated")
	}

	return &SmartReplyResult{Suggestion: suggestion}, nil
}

func smartReplyPrompt(t ticket.Ticket, draft string) string {
	var b strings.Builder
	b.WriteString("Você é um assistente de suporte ao cliente experiente e empático da plataforma GhitDesk.\n\n")
	b.WriteString("Histórico da conversa:\n")
	b.WriteString(conversationHistory(t))
	b.WriteString("\n")
	if draft != "" {
		fmt.Fprintf(&b, "\nO agente começou a digitar: %q\n", draft)
	}
	b.WriteString("\nTarefa: Gere uma resposta sugerida para o agente enviar ao cliente.\n")
	b.WriteString("A resposta deve ser profissional, amigável, em Português do Brasil e resolver o problema ou solicitar mais informações se necessário.\n")
	b.WriteString("Mantenha a resposta concisa (máximo 3 parágrafos).\n")
	b.WriteString("Se houver um rascunho, complete-o ou melhore-o.")
	return b.String()
}

// conversationHistory renders the message history with Cliente/Agente labels
// keyed off the embedded customer's identity.
func conversationHistory(t ticket.Ticket) string {
	var b strings.Builder
	for _, m := range t.Messages {
		speaker := "Agente"
		if m.SenderID == t.Customer.ID {
			speaker = "Cliente"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, m.Content)
	}
	return b.String()
}
