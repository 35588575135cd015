package service

import (
	"context"
	"log/slog"

	"sheet-ai/backend/internal/llm"
	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/tool"
)

// ChatService is the entry point for one streaming chat request: it
// translates the client history once, then drives the turn engine to
// exhaustion, forwarding every event in order.
type ChatService struct {
	engine *TurnEngine
}

func NewChatService(provider llm.Provider, registry *tool.Registry, cfg TurnEngineConfig) *ChatService {
	return &ChatService{engine: NewTurnEngine(provider, registry, cfg)}
}

// StreamChat translates the request and starts the engine. Translation
// failures are returned synchronously, before any streaming begins, so the
// boundary can still answer with a proper error response. The returned
// channel is closed when the session ends; a mid-stream provider failure
// ends the stream abruptly and is logged, matching the protocol's
// no-retraction contract.
func (s *ChatService) StreamChat(ctx context.Context, req *model.ChatRequest) (<-chan model.ProtocolEvent, error) {
	messages, err := TranslateMessages(req.Messages)
	if err != nil {
		return nil, err
	}

	events := make(chan model.ProtocolEvent)
	go func() {
		defer close(events)
		if err := s.engine.Run(ctx, messages, events); err != nil {
			slog.Error("Chat stream terminated by provider failure", "error", err)
		}
	}()
	return events, nil
}
