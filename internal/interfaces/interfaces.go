package interfaces

import (
	"context"

	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/service"
)

// This file defines the interfaces for our core services. Depending on these
// instead of concrete implementations decouples the API layer from the
// service layer and keeps handlers testable via mocks.

// ChatService defines the contract for the streaming chat session.
type ChatService interface {
	StreamChat(ctx context.Context, req *model.ChatRequest) (<-chan model.ProtocolEvent, error)
}

// CalcService defines the contract for single-cell calculations.
type CalcService interface {
	Calculate(ctx context.Context, req *model.CalculationRequest) (any, error)
}

// ThreadService defines the contract for thread and message persistence.
type ThreadService interface {
	CreateThread(ctx context.Context, req *service.CreateThreadRequest) (*model.Thread, error)
	UpdateThread(ctx context.Context, req *service.UpdateThreadRequest) (*model.Thread, error)
	GetThread(ctx context.Context, uiThreadID string) (*model.Thread, error)
	ListThreads(ctx context.Context) ([]*model.Thread, error)
	DeleteThread(ctx context.Context, uiThreadID string) error
	CreateMessage(ctx context.Context, req *service.CreateMessageRequest) (*model.StoredMessage, error)
	ListMessages(ctx context.Context, uiThreadID string) ([]model.StoredMessage, error)
}
