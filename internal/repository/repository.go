package repository

import (
	"context"

	"sheet-ai/backend/internal/model"
)

// Repository defines the interface for thread and message storage.
// This interface makes it easy to switch database implementations.
type Repository interface {
	CreateThread(ctx context.Context, thread *model.Thread) error
	GetThreadByUIID(ctx context.Context, uiThreadID string) (*model.Thread, error)
	ListThreads(ctx context.Context) ([]*model.Thread, error)
	UpdateThread(ctx context.Context, thread *model.Thread) error
	DeleteThread(ctx context.Context, uiThreadID string) error

	CreateMessage(ctx context.Context, message *model.StoredMessage) error
	ListMessagesByThread(ctx context.Context, uiThreadID string) ([]model.StoredMessage, error)
}
