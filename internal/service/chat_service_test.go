package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "sheet-ai/backend/internal/errors"
	"sheet-ai/backend/internal/llm"
	"sheet-ai/backend/internal/llm/mocks"
	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/service"
	"sheet-ai/backend/internal/tool"
)

func TestChatService_StreamChat(t *testing.T) {
	cfg := service.TurnEngineConfig{Model: "test-model"}

	t.Run("Success streams events and closes the channel", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		mockProvider.On("ChatStream", mock.Anything, mock.Anything, mock.Anything).
			Run(streamFn(
				llm.StreamDelta{Content: "Hello"},
				llm.StreamDelta{FinishReason: "stop"},
			)).Return(nil).Once()

		svc := service.NewChatService(mockProvider, tool.NewRegistry(), cfg)
		events, err := svc.StreamChat(context.Background(), &model.ChatRequest{
			Messages: []model.ChatMessage{
				{Role: "user", Content: []model.ChatContentPart{{Type: model.ContentTypeText, Text: "hi"}}},
			},
		})
		require.NoError(t, err)

		var received []model.ProtocolEvent
		for ev := range events {
			received = append(received, ev)
		}
		assert.Equal(t, []model.ProtocolEvent{model.TextEvent("Hello")}, received)
	})

	t.Run("Translation failure is synchronous", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)

		svc := service.NewChatService(mockProvider, tool.NewRegistry(), cfg)
		events, err := svc.StreamChat(context.Background(), &model.ChatRequest{
			Messages: []model.ChatMessage{
				{Role: "user", Content: []model.ChatContentPart{{Type: "bogus"}}},
			},
		})

		assert.ErrorIs(t, err, app_errors.ErrValidation)
		assert.Nil(t, events)
		mockProvider.AssertNotCalled(t, "ChatStream")
	})

	t.Run("Provider failure closes the stream without panicking", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		mockProvider.On("ChatStream", mock.Anything, mock.Anything, mock.Anything).
			Run(streamFn(
				llm.StreamDelta{Content: "partial"},
				llm.StreamDelta{Err: assert.AnError},
			)).Return(assert.AnError).Once()

		svc := service.NewChatService(mockProvider, tool.NewRegistry(), cfg)
		events, err := svc.StreamChat(context.Background(), &model.ChatRequest{
			Messages: []model.ChatMessage{
				{Role: "user", Content: []model.ChatContentPart{{Type: model.ContentTypeText, Text: "hi"}}},
			},
		})
		require.NoError(t, err)

		var received []model.ProtocolEvent
		deadline := time.After(2 * time.Second)
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					assert.Equal(t, []model.ProtocolEvent{model.TextEvent("partial")}, received)
					return
				}
				received = append(received, ev)
			case <-deadline:
				t.Fatal("stream never closed")
			}
		}
	})
}
