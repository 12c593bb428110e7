package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"ghitdesk/internal/infrastructure/ai"
	"ghitdesk/internal/shared/config"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type AnalyzeSentimentCommand struct {
	Text string
}

// AnalyzeSentimentResult carries the classification and a 0-10 score where 0
// is very negative and 10 very positive. Any failure degrades to neutral/5
// rather than an error; sentiment is decorative, never load-bearing.
type AnalyzeSentimentResult struct {
	Sentiment Sentiment `json:"sentiment"`
	Score     float64   `json:"score"`
}

type AnalyzeSentimentUseCase struct {
	genai  GenAI
	model  string
	logger logger.Interface
}

func NewAnalyzeSentimentUseCase(genai GenAI, cfg config.GeminiConfig, logger logger.Interface) *AnalyzeSentimentUseCase {
	return &AnalyzeSentimentUseCase{
		genai:  genai,
		model:  cfg.Model,
		logger: logger,
	}
}

func neutralResult() *AnalyzeSentimentResult {
	return &AnalyzeSentimentResult{Sentiment: SentimentNeutral, Score: 5}
}

func (uc *AnalyzeSentimentUseCase) Execute(ctx context.Context, cmd AnalyzeSentimentCommand) (*AnalyzeSentimentResult, error) {
	if cmd.Text == "" {
		return nil, errors.NewValidationError("text is required")
	}

	prompt := fmt.Sprintf(`Analise o sentimento da seguinte mensagem de um cliente e retorne APENAS um JSON.
Mensagem: %q

Schema JSON esperado:
{
    "sentiment": "positive" | "neutral" | "negative",
    "score": number (0 a 10, onde 0 é muito negativo e 10 muito positivo)
}`, cmd.Text)

	resp, err := uc.genai.GenerateContent(ctx, uc.model, ai.GenerateRequest{
		Contents:         []ai.Content{{Role: "user", Parts: []ai.Part{{Text: prompt}}}},
		GenerationConfig: &ai.GenerationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		uc.logger.Warnw("sentiment analysis failed, defaulting to neutral", "error", err)
		return neutralResult(), nil
	}

	var result AnalyzeSentimentResult
	if err := json.Unmarshal([]byte(resp.Text()), &result); err != nil {
		uc.logger.Warnw("unparseable sentiment response, defaulting to neutral", "error", err)
		return neutralResult(), nil
	}
	switch result.Sentiment {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
	default:
		return neutralResult(), nil
	}

	return &result, nil
}
