package assistant

import (
	"context"

	"ghitdesk/internal/infrastructure/ai"
	"ghitdesk/internal/shared/config"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

const systemInstruction = "Você é o assistente virtual inteligente do GhitDesk. " +
	"Ajude os usuários (agentes de suporte) a navegar na plataforma, entender métricas, " +
	"ou dê dicas de como lidar com clientes difíceis. Você também tem a capacidade de " +
	"manipular o Construtor de Fluxo (Flow Builder). Se o usuário pedir para criar, " +
	"deletar ou conectar nós no fluxo, use as ferramentas disponíveis. " +
	"Responda sempre em Português do Brasil."

// maxToolRounds bounds the tool-call loop within one Send so a model that
// keeps requesting tools cannot spin forever.
const maxToolRounds = 5

// ChatSession is one stateful conversation with the assistant. It holds the
// accumulated history and executes requested flow tools between model turns.
// Not safe for concurrent Sends; a session has one user.
type ChatSession struct {
	genai   GenAI
	tools   FlowTools
	model   string
	history []ai.Content
	logger  logger.Interface
}

func NewChatSession(genai GenAI, tools FlowTools, cfg config.GeminiConfig, logger logger.Interface) *ChatSession {
	return &ChatSession{
		genai:  genai,
		tools:  tools,
		model:  cfg.ChatModel,
		logger: logger.Named("chat"),
	}
}

// Send appends the user message, resolves any tool calls the model makes, and
// returns the model's final text. On error the message is not kept in the
// history, so a failed exchange can be retried cleanly.
func (s *ChatSession) Send(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", errors.NewValidationError("message is required")
	}

	history := append(s.history, ai.Content{
		Role:  "user",
		Parts: []ai.Part{{Text: message}},
	})

	for round := 0; round < maxToolRounds; round++ {
		resp, err := s.genai.GenerateContent(ctx, s.model, ai.GenerateRequest{
			Contents:          history,
			Tools:             flowToolDeclarations(),
			SystemInstruction: &ai.Content{Parts: []ai.Part{{Text: systemInstruction}}},
		})
		if err != nil {
			return "", err
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			history = append(history, resp.Candidates[0].Content)
			s.history = history
			return resp.Text(), nil
		}

		history = append(history, resp.Candidates[0].Content)
		responses := make([]ai.Part, 0, len(calls))
		for _, call := range calls {
			s.logger.Infow("executing assistant tool", "tool", call.Name)
			payload := s.tools.ExecuteTool(ctx, call)
			responses = append(responses, ai.Part{FunctionResponse: &ai.FunctionResponse{
				Name:     call.Name,
				Response: payload,
			}})
		}
		history = append(history, ai.Content{Role: "user", Parts: responses})
	}

	return "", errors.NewExternalError("assistant exceeded tool call limit")
}

// History returns a copy of the accumulated conversation.
func (s *ChatSession) History() []ai.Content {
	out := make([]ai.Content, len(s.history))
	copy(out, s.history)
	return out
}
