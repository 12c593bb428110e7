package assistant

import (
	"context"
	"fmt"

	"ghitdesk/internal/infrastructure/ai"
	"ghitdesk/internal/shared/config"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

type SummarizeCommand struct {
	TicketID string
}

type SummarizeResult struct {
	Summary string
}

type SummarizeUseCase struct {
	genai   GenAI
	tickets TicketReader
	model   string
	logger  logger.Interface
}

func NewSummarizeUseCase(
	genai GenAI,
	tickets TicketReader,
	cfg config.GeminiConfig,
	logger logger.Interface,
) *SummarizeUseCase {
	return &SummarizeUseCase{
		genai:   genai,
		tickets: tickets,
		model:   cfg.Model,
		logger:  logger,
	}
}

// Execute produces a one-paragraph summary of the ticket's problem and state.
func (uc *SummarizeUseCase) Execute(ctx context.Context, cmd SummarizeCommand) (*SummarizeResult, error) {
	uc.logger.Infow("executing summarize use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, ok := uc.tickets.Get(ctx, cmd.TicketID)
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	prompt := fmt.Sprintf(
		"Resuma o problema e o estado atual deste ticket de suporte em um parágrafo curto (pt-BR).\n\nHistórico:\n%s",
		conversationHistory(t))

	resp, err := uc.genai.GenerateContent(ctx, uc.model, ai.GenerateRequest{
		Contents: []ai.Content{{Role: "user", Parts: []ai.Part{{Text: prompt}}}},
	})
	if err != nil {
		uc.logger.Errorw("summary generation failed", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	summary := resp.Text()
	if summary == "" {
		return nil, errors.NewExternalError("no summary generated")
	}

	return &SummarizeResult{Summary: summary}, nil
}
