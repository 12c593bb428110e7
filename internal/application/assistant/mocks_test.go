package assistant

import (
	"context"

	"ghitdesk/internal/infrastructure/ai"
)

type mockGenAI struct {
	GenerateContentFunc func(ctx context.Context, model string, req ai.GenerateRequest) (*ai.GenerateResponse, error)
}

func (m *mockGenAI) GenerateContent(ctx context.Context, model string, req ai.GenerateRequest) (*ai.GenerateResponse, error) {
	return m.GenerateContentFunc(ctx, model, req)
}

func textResponse(text string) *ai.GenerateResponse {
	return &ai.GenerateResponse{Candidates: []ai.Candidate{{
		Content: ai.Content{Role: "model", Parts: []ai.Part{{Text: text}}},
	}}}
}

func functionCallResponse(name string, args map[string]any) *ai.GenerateResponse {
	return &ai.GenerateResponse{Candidates: []ai.Candidate{{
		Content: ai.Content{Role: "model", Parts: []ai.Part{{
			FunctionCall: &ai.FunctionCall{Name: name, Args: args},
		}}},
	}}}
}
