package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sheet-ai/backend/internal/llm"
	"sheet-ai/backend/internal/llm/mocks"
	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/service"
	"sheet-ai/backend/internal/tool"
)

// stubTool emits one running event and completes with a fixed result.
type stubTool struct {
	name   string
	result string
}

func (s *stubTool) Name() string { return s.name }

func (s *stubTool) Run(ctx context.Context, toolCallID, rawArgs string, out chan<- model.ProtocolEvent) {
	defer close(out)
	out <- model.ProtocolEvent{
		Type: model.EventTypeToolCall, ToolCallID: toolCallID, ToolName: s.name,
		Args: map[string]any{}, Status: model.StatusRunning,
	}
	out <- model.ProtocolEvent{
		Type: model.EventTypeToolCall, ToolCallID: toolCallID, ToolName: s.name,
		Args: map[string]any{}, Status: model.StatusComplete, Result: s.result,
	}
}

// streamFn installs a canned stream on the mock: deltas are sent in order and
// the channel is closed, as the real provider does.
func streamFn(deltas ...llm.StreamDelta) func(mock.Arguments) {
	return func(args mock.Arguments) {
		ch := args.Get(2).(chan<- llm.StreamDelta)
		defer close(ch)
		for _, d := range deltas {
			ch <- d
		}
	}
}

func collectEvents(t *testing.T, run func(out chan<- model.ProtocolEvent) error) ([]model.ProtocolEvent, error) {
	t.Helper()
	out := make(chan model.ProtocolEvent, 64)
	err := run(out)
	close(out)
	var events []model.ProtocolEvent
	for ev := range out {
		events = append(events, ev)
	}
	return events, err
}

func TestTurnEngine_Run(t *testing.T) {
	cfg := service.TurnEngineConfig{Model: "test-model", MaxTurns: 4}

	t.Run("Text-only session forwards content deltas in order", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		mockProvider.On("ChatStream", mock.Anything, mock.Anything, mock.Anything).
			Run(streamFn(
				llm.StreamDelta{Content: "Hello"},
				llm.StreamDelta{Content: ", world"},
				llm.StreamDelta{FinishReason: "stop"},
			)).Return(nil).Once()

		engine := service.NewTurnEngine(mockProvider, tool.NewRegistry(), cfg)
		events, err := collectEvents(t, func(out chan<- model.ProtocolEvent) error {
			return engine.Run(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, out)
		})

		require.NoError(t, err)
		assert.Equal(t, []model.ProtocolEvent{
			model.TextEvent("Hello"),
			model.TextEvent(", world"),
		}, events)
	})

	t.Run("Tool turn feeds the result into the next call", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		registry := tool.NewRegistry()
		registry.Register("dice", func() tool.Tool { return &stubTool{name: "dice", result: "42"} })

		mockProvider.On("ChatStream", mock.Anything, mock.MatchedBy(func(req *llm.ChatRequest) bool {
			return len(req.Messages) == 1
		}), mock.Anything).
			Run(streamFn(
				llm.StreamDelta{ToolCalls: []llm.ToolCallDelta{{Index: 0, ID: "call_1", Name: "dice", Arguments: "{"}}},
				llm.StreamDelta{ToolCalls: []llm.ToolCallDelta{{Index: 0, Arguments: "}"}}},
				llm.StreamDelta{FinishReason: llm.FinishReasonToolCalls},
			)).Return(nil).Once()

		mockProvider.On("ChatStream", mock.Anything, mock.MatchedBy(func(req *llm.ChatRequest) bool {
			if len(req.Messages) != 3 {
				return false
			}
			assistant, toolMsg := req.Messages[1], req.Messages[2]
			return assistant.Role == "assistant" &&
				len(assistant.ToolCalls) == 1 &&
				assistant.ToolCalls[0].ID == "call_1" &&
				assistant.ToolCalls[0].Arguments == "{}" &&
				toolMsg.Role == "tool" &&
				toolMsg.ToolCallID == "call_1" &&
				toolMsg.Content == "42"
		}), mock.Anything).
			Run(streamFn(
				llm.StreamDelta{Content: "You rolled 42."},
				llm.StreamDelta{FinishReason: "stop"},
			)).Return(nil).Once()

		engine := service.NewTurnEngine(mockProvider, registry, cfg)
		events, err := collectEvents(t, func(out chan<- model.ProtocolEvent) error {
			return engine.Run(context.Background(), []llm.Message{{Role: "user", Content: "roll"}}, out)
		})

		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, model.StatusRunning, events[0].Status)
		assert.Equal(t, model.StatusComplete, events[1].Status)
		assert.Equal(t, "42", events[1].Result)
		assert.Equal(t, model.TextEvent("You rolled 42."), events[2])
	})

	t.Run("Fragment split does not change the outcome", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		registry := tool.NewRegistry()
		registry.Register("dice", func() tool.Tool { return &stubTool{name: "dice", result: "7"} })

		// The same arguments as one fragment instead of several.
		mockProvider.On("ChatStream", mock.Anything, mock.MatchedBy(func(req *llm.ChatRequest) bool {
			return len(req.Messages) == 1
		}), mock.Anything).
			Run(streamFn(
				llm.StreamDelta{ToolCalls: []llm.ToolCallDelta{{Index: 0, ID: "call_1", Name: "dice", Arguments: "{}"}}},
				llm.StreamDelta{FinishReason: llm.FinishReasonToolCalls},
			)).Return(nil).Once()
		mockProvider.On("ChatStream", mock.Anything, mock.MatchedBy(func(req *llm.ChatRequest) bool {
			return len(req.Messages) == 3 && req.Messages[1].ToolCalls[0].Arguments == "{}"
		}), mock.Anything).
			Run(streamFn(llm.StreamDelta{FinishReason: "stop"})).Return(nil).Once()

		engine := service.NewTurnEngine(mockProvider, registry, cfg)
		_, err := collectEvents(t, func(out chan<- model.ProtocolEvent) error {
			return engine.Run(context.Background(), []llm.Message{{Role: "user", Content: "roll"}}, out)
		})
		require.NoError(t, err)
	})

	t.Run("Unknown tool ends the session without events", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		mockProvider.On("ChatStream", mock.Anything, mock.Anything, mock.Anything).
			Run(streamFn(
				llm.StreamDelta{ToolCalls: []llm.ToolCallDelta{{Index: 0, ID: "call_1", Name: "nonexistent", Arguments: "{}"}}},
				llm.StreamDelta{FinishReason: llm.FinishReasonToolCalls},
			)).Return(nil).Once()

		engine := service.NewTurnEngine(mockProvider, tool.NewRegistry(), cfg)
		events, err := collectEvents(t, func(out chan<- model.ProtocolEvent) error {
			return engine.Run(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, out)
		})

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("Only the first of parallel tool calls runs", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		registry := tool.NewRegistry()
		registry.Register("dice", func() tool.Tool { return &stubTool{name: "dice", result: "3"} })
		registry.Register("coin", func() tool.Tool { return &stubTool{name: "coin", result: "heads"} })

		mockProvider.On("ChatStream", mock.Anything, mock.MatchedBy(func(req *llm.ChatRequest) bool {
			return len(req.Messages) == 1
		}), mock.Anything).
			Run(streamFn(
				llm.StreamDelta{ToolCalls: []llm.ToolCallDelta{
					{Index: 0, ID: "call_1", Name: "dice", Arguments: "{}"},
					{Index: 1, ID: "call_2", Name: "coin", Arguments: "{}"},
				}},
				llm.StreamDelta{FinishReason: llm.FinishReasonToolCalls},
			)).Return(nil).Once()
		mockProvider.On("ChatStream", mock.Anything, mock.MatchedBy(func(req *llm.ChatRequest) bool {
			return len(req.Messages) == 3 && req.Messages[2].ToolCallID == "call_1"
		}), mock.Anything).
			Run(streamFn(llm.StreamDelta{FinishReason: "stop"})).Return(nil).Once()

		engine := service.NewTurnEngine(mockProvider, registry, cfg)
		events, err := collectEvents(t, func(out chan<- model.ProtocolEvent) error {
			return engine.Run(context.Background(), []llm.Message{{Role: "user", Content: "roll"}}, out)
		})

		require.NoError(t, err)
		for _, ev := range events {
			assert.NotEqual(t, "coin", ev.ToolName)
		}
	})

	t.Run("In-band stream error is returned", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		streamErr := errors.New("upstream exploded")
		mockProvider.On("ChatStream", mock.Anything, mock.Anything, mock.Anything).
			Run(streamFn(
				llm.StreamDelta{Content: "partial"},
				llm.StreamDelta{Err: streamErr},
			)).Return(streamErr).Once()

		engine := service.NewTurnEngine(mockProvider, tool.NewRegistry(), cfg)
		events, err := collectEvents(t, func(out chan<- model.ProtocolEvent) error {
			return engine.Run(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, out)
		})

		assert.ErrorIs(t, err, streamErr)
		// Events sent before the failure stay sent.
		assert.Equal(t, []model.ProtocolEvent{model.TextEvent("partial")}, events)
	})

	t.Run("Turn limit stops a tool loop", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		registry := tool.NewRegistry()
		registry.Register("dice", func() tool.Tool { return &stubTool{name: "dice", result: "1"} })

		mockProvider.On("ChatStream", mock.Anything, mock.Anything, mock.Anything).
			Run(streamFn(
				llm.StreamDelta{ToolCalls: []llm.ToolCallDelta{{Index: 0, ID: "call_1", Name: "dice", Arguments: "{}"}}},
				llm.StreamDelta{FinishReason: llm.FinishReasonToolCalls},
			)).Return(nil).Times(2)

		engine := service.NewTurnEngine(mockProvider, registry, service.TurnEngineConfig{Model: "test-model", MaxTurns: 2})
		_, err := collectEvents(t, func(out chan<- model.ProtocolEvent) error {
			return engine.Run(context.Background(), []llm.Message{{Role: "user", Content: "roll"}}, out)
		})

		require.NoError(t, err)
		mockProvider.AssertNumberOfCalls(t, "ChatStream", 2)
	})
}
