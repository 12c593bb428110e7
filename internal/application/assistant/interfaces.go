// Package assistant implements the Gemini-backed features: smart replies,
// ticket summaries, sentiment analysis, and a chat session that manipulates
// the flow builder through function calling. Tool side effects go through the
// same flow use cases as manual edits.
package assistant

import (
	"context"

	flowusecases "ghitdesk/internal/application/flow/usecases"
	"ghitdesk/internal/domain/ticket"
	"ghitdesk/internal/infrastructure/ai"
)

// GenAI is the generative-language surface the assistant depends on.
type GenAI interface {
	GenerateContent(ctx context.Context, model string, req ai.GenerateRequest) (*ai.GenerateResponse, error)
}

// TicketReader resolves tickets for reply and summary prompts.
type TicketReader interface {
	Get(ctx context.Context, id string) (ticket.Ticket, bool)
}

// FlowTools groups the three flow use cases the chat tools execute through.
type FlowTools struct {
	CreateNode   flowusecases.CreateNodeExecutor
	DeleteNode   flowusecases.DeleteNodeExecutor
	ConnectNodes flowusecases.ConnectNodesExecutor
}
