package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghitdesk/internal/infrastructure/ai"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

func TestAnalyzeSentimentUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		response *ai.GenerateResponse
		err      error
		expected AnalyzeSentimentResult
	}{
		{
			name:     "parses model json",
			response: textResponse(`{"sentiment":"negative","score":2}`),
			expected: AnalyzeSentimentResult{Sentiment: SentimentNegative, Score: 2},
		},
		{
			name:     "api failure falls back to neutral",
			err:      errors.NewExternalError("gemini returned 500"),
			expected: AnalyzeSentimentResult{Sentiment: SentimentNeutral, Score: 5},
		},
		{
			name:     "unparseable response falls back to neutral",
			response: textResponse("desculpe, não sei"),
			expected: AnalyzeSentimentResult{Sentiment: SentimentNeutral, Score: 5},
		},
		{
			name:     "unknown sentiment label falls back to neutral",
			response: textResponse(`{"sentiment":"furious","score":0}`),
			expected: AnalyzeSentimentResult{Sentiment: SentimentNeutral, Score: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genai := &mockGenAI{
				GenerateContentFunc: func(ctx context.Context, model string, req ai.GenerateRequest) (*ai.GenerateResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					require.NotNil(t, req.GenerationConfig)
					assert.Equal(t, "application/json", req.GenerationConfig.ResponseMIMEType)
					return tt.response, nil
				},
			}

			uc := NewAnalyzeSentimentUseCase(genai, chatConfig(), logger.NewNop())
			result, err := uc.Execute(context.Background(), AnalyzeSentimentCommand{Text: "meu pedido sumiu!"})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func TestAnalyzeSentimentUseCase_EmptyText(t *testing.T) {
	uc := NewAnalyzeSentimentUseCase(&mockGenAI{}, chatConfig(), logger.NewNop())

	_, err := uc.Execute(context.Background(), AnalyzeSentimentCommand{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
