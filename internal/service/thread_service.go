package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "sheet-ai/backend/internal/errors"
	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/repository"
)

// CreateThreadRequest is the body for registering a UI thread.
type CreateThreadRequest struct {
	UIThreadID string  `json:"ui_thread_id" validate:"required"`
	UserID     *string `json:"user_id"`
	Title      string  `json:"title"`
}

// UpdateThreadRequest carries a partial thread update; nil fields are left
// untouched.
type UpdateThreadRequest struct {
	UIThreadID string  `json:"ui_thread_id" validate:"required"`
	Title      *string `json:"title"`
	Archived   *bool   `json:"archived"`
}

// CreateMessageRequest persists one UI message with its structured content.
type CreateMessageRequest struct {
	UIMessageID string            `json:"ui_message_id" validate:"required"`
	ThreadID    string            `json:"thread_id" validate:"required"`
	Role        string            `json:"role" validate:"required"`
	Content     []json.RawMessage `json:"content" validate:"required"`
}

// ThreadService handles thread and message persistence for replayed chat
// history.
type ThreadService struct {
	repo repository.Repository
}

func NewThreadService(repo repository.Repository) *ThreadService {
	return &ThreadService{repo: repo}
}

func (s *ThreadService) CreateThread(ctx context.Context, req *CreateThreadRequest) (*model.Thread, error) {
	now := time.Now().UTC()
	thread := &model.Thread{
		ID:         uuid.NewString(),
		UIThreadID: req.UIThreadID,
		UserID:     req.UserID,
		Title:      req.Title,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateThread(ctx, thread); err != nil {
		return nil, fmt.Errorf("could not create thread: %w", err)
	}
	return thread, nil
}

func (s *ThreadService) UpdateThread(ctx context.Context, req *UpdateThreadRequest) (*model.Thread, error) {
	thread, err := s.repo.GetThreadByUIID(ctx, req.UIThreadID)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	if req.Title != nil && *req.Title != thread.Title {
		thread.Title = *req.Title
	}
	if req.Archived != nil {
		thread.Archived = *req.Archived
	}
	if err := s.repo.UpdateThread(ctx, thread); err != nil {
		return nil, translateRepoErr(err)
	}
	return thread, nil
}

func (s *ThreadService) GetThread(ctx context.Context, uiThreadID string) (*model.Thread, error) {
	thread, err := s.repo.GetThreadByUIID(ctx, uiThreadID)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return thread, nil
}

func (s *ThreadService) ListThreads(ctx context.Context) ([]*model.Thread, error) {
	return s.repo.ListThreads(ctx)
}

func (s *ThreadService) DeleteThread(ctx context.Context, uiThreadID string) error {
	if err := s.repo.DeleteThread(ctx, uiThreadID); err != nil {
		return translateRepoErr(err)
	}
	return nil
}

func (s *ThreadService) CreateMessage(ctx context.Context, req *CreateMessageRequest) (*model.StoredMessage, error) {
	content, err := json.Marshal(req.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: could not encode message content", apperrors.ErrValidation)
	}
	message := &model.StoredMessage{
		ID:          uuid.NewString(),
		UIMessageID: req.UIMessageID,
		UIThreadID:  req.ThreadID,
		Role:        req.Role,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("could not create message: %w", err)
	}
	return message, nil
}

func (s *ThreadService) ListMessages(ctx context.Context, uiThreadID string) ([]model.StoredMessage, error) {
	return s.repo.ListMessagesByThread(ctx, uiThreadID)
}

func translateRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: thread", apperrors.ErrNotFound)
	}
	return err
}
