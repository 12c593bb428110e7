package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghitdesk/internal/infrastructure/ai"
	"ghitdesk/internal/shared/config"
	"ghitdesk/internal/shared/errors"
	"ghitdesk/internal/shared/logger"
)

func chatConfig() config.GeminiConfig {
	return config.GeminiConfig{Model: "gemini-2.5-flash", ChatModel: "gemini-3-pro-preview", TimeoutSeconds: 30}
}

func TestChatSession_PlainExchange(t *testing.T) {
	genai := &mockGenAI{
		GenerateContentFunc: func(ctx context.Context, model string, req ai.GenerateRequest) (*ai.GenerateResponse, error) {
			assert.Equal(t, "gemini-3-pro-preview", model)
			require.NotNil(t, req.SystemInstruction)
			require.NotEmpty(t, req.Tools)
			require.Len(t, req.Contents, 1)
			assert.Equal(t, "user", req.Contents[0].Role)
			return textResponse("Olá! Posso ajudar com tickets e fluxos."), nil
		},
	}

	session := NewChatSession(genai, FlowTools{}, chatConfig(), logger.NewNop())
	reply, err := session.Send(context.Background(), "oi")

	require.NoError(t, err)
	assert.Equal(t, "Olá! Posso ajudar com tickets e fluxos.", reply)
	assert.Len(t, session.History(), 2)
}

func TestChatSession_ToolCallRoundTrip(t *testing.T) {
	tools, st := newFlowTools(t)
	calls := 0
	genai := &mockGenAI{
		GenerateContentFunc: func(ctx context.Context, model string, req ai.GenerateRequest) (*ai.GenerateResponse, error) {
			calls++
			if calls == 1 {
				return functionCallResponse("delete_flow_node", map[string]any{"identifier": "Send"}), nil
			}

			// second turn carries the tool response back to the model
			last := req.Contents[len(req.Contents)-1]
			require.Len(t, last.Parts, 1)
			require.NotNil(t, last.Parts[0].FunctionResponse)
			assert.Equal(t, "delete_flow_node", last.Parts[0].FunctionResponse.Name)
			assert.Equal(t, "Node 'Send Message' (msg-1) deleted.", last.Parts[0].FunctionResponse.Response["result"])
			return textResponse("Pronto, o nó 'Send Message' foi removido."), nil
		},
	}

	session := NewChatSession(genai, tools, chatConfig(), logger.NewNop())
	reply, err := session.Send(context.Background(), "delete o nó Send")

	require.NoError(t, err)
	assert.Equal(t, "Pronto, o nó 'Send Message' foi removido.", reply)
	assert.Equal(t, 2, calls)

	_, found := st.Flow.GetNode(context.Background(), "msg-1")
	assert.False(t, found, "tool execution mutated the store")
}

func TestChatSession_FailedSendIsRetryable(t *testing.T) {
	failing := true
	genai := &mockGenAI{
		GenerateContentFunc: func(ctx context.Context, model string, req ai.GenerateRequest) (*ai.GenerateResponse, error) {
			if failing {
				return nil, errors.NewExternalError("gemini returned 503")
			}
			// the failed attempt must not leave the message in the history
			require.Len(t, req.Contents, 1)
			return textResponse("agora sim"), nil
		},
	}

	session := NewChatSession(genai, FlowTools{}, chatConfig(), logger.NewNop())

	_, err := session.Send(context.Background(), "oi")
	require.Error(t, err)
	assert.True(t, errors.IsExternalError(err))
	assert.Empty(t, session.History())

	failing = false
	reply, err := session.Send(context.Background(), "oi")
	require.NoError(t, err)
	assert.Equal(t, "agora sim", reply)
}

func TestChatSession_ToolLoopIsBounded(t *testing.T) {
	tools, _ := newFlowTools(t)
	genai := &mockGenAI{
		GenerateContentFunc: func(ctx context.Context, model string, req ai.GenerateRequest) (*ai.GenerateResponse, error) {
			return functionCallResponse("connect_flow_nodes", map[string]any{"from": "msg-1", "to": "start-1"}), nil
		},
	}

	session := NewChatSession(genai, tools, chatConfig(), logger.NewNop())
	_, err := session.Send(context.Background(), "conecta tudo")

	require.Error(t, err)
	assert.True(t, errors.IsExternalError(err))
}

func TestChatSession_EmptyMessage(t *testing.T) {
	session := NewChatSession(&mockGenAI{}, FlowTools{}, chatConfig(), logger.NewNop())

	_, err := session.Send(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
