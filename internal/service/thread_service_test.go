package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "sheet-ai/backend/internal/errors"
	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/repository"
	"sheet-ai/backend/internal/repository/mocks"
	"sheet-ai/backend/internal/service"
)

func setupThreadService(t *testing.T) (*service.ThreadService, *mocks.MockRepository) {
	mockRepo := mocks.NewMockRepository(t)
	return service.NewThreadService(mockRepo), mockRepo
}

func TestThreadService_CreateThread(t *testing.T) {
	svc, mockRepo := setupThreadService(t)
	ctx := context.Background()

	mockRepo.On("CreateThread", ctx, mock.MatchedBy(func(th *model.Thread) bool {
		return th.ID != "" && th.UIThreadID == "ui-1" && th.Title == "Budget" && !th.Archived
	})).Return(nil).Once()

	thread, err := svc.CreateThread(ctx, &service.CreateThreadRequest{UIThreadID: "ui-1", Title: "Budget"})

	require.NoError(t, err)
	assert.Equal(t, "ui-1", thread.UIThreadID)
	assert.NotEmpty(t, thread.ID)
	assert.Equal(t, thread.CreatedAt, thread.UpdatedAt)
	mockRepo.AssertExpectations(t)
}

func TestThreadService_UpdateThread(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial update leaves nil fields untouched", func(t *testing.T) {
		svc, mockRepo := setupThreadService(t)
		existing := &model.Thread{ID: "t1", UIThreadID: "ui-1", Title: "Old", Archived: false}
		mockRepo.On("GetThreadByUIID", ctx, "ui-1").Return(existing, nil).Once()
		mockRepo.On("UpdateThread", ctx, mock.MatchedBy(func(th *model.Thread) bool {
			return th.Title == "Old" && th.Archived
		})).Return(nil).Once()

		archived := true
		thread, err := svc.UpdateThread(ctx, &service.UpdateThreadRequest{UIThreadID: "ui-1", Archived: &archived})

		require.NoError(t, err)
		assert.Equal(t, "Old", thread.Title)
		assert.True(t, thread.Archived)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing thread maps to not found", func(t *testing.T) {
		svc, mockRepo := setupThreadService(t)
		mockRepo.On("GetThreadByUIID", ctx, "ui-missing").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.UpdateThread(ctx, &service.UpdateThreadRequest{UIThreadID: "ui-missing"})

		assert.ErrorIs(t, err, app_errors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestThreadService_GetThread(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo := setupThreadService(t)
		expected := &model.Thread{ID: "t1", UIThreadID: "ui-1"}
		mockRepo.On("GetThreadByUIID", ctx, "ui-1").Return(expected, nil).Once()

		thread, err := svc.GetThread(ctx, "ui-1")

		require.NoError(t, err)
		assert.Equal(t, expected, thread)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, mockRepo := setupThreadService(t)
		mockRepo.On("GetThreadByUIID", ctx, "ui-missing").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.GetThread(ctx, "ui-missing")

		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})
}

func TestThreadService_DeleteThread(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo := setupThreadService(t)
		mockRepo.On("DeleteThread", ctx, "ui-1").Return(nil).Once()

		assert.NoError(t, svc.DeleteThread(ctx, "ui-1"))
	})

	t.Run("Not found", func(t *testing.T) {
		svc, mockRepo := setupThreadService(t)
		mockRepo.On("DeleteThread", ctx, "ui-missing").Return(repository.ErrNotFound).Once()

		assert.ErrorIs(t, svc.DeleteThread(ctx, "ui-missing"), app_errors.ErrNotFound)
	})
}

func TestThreadService_CreateMessage(t *testing.T) {
	svc, mockRepo := setupThreadService(t)
	ctx := context.Background()

	mockRepo.On("CreateMessage", ctx, mock.MatchedBy(func(msg *model.StoredMessage) bool {
		var content []map[string]any
		if err := json.Unmarshal(msg.Content, &content); err != nil {
			return false
		}
		return msg.ID != "" && msg.UIMessageID == "msg-1" && msg.UIThreadID == "ui-1" &&
			msg.Role == "user" && len(content) == 1
	})).Return(nil).Once()

	message, err := svc.CreateMessage(ctx, &service.CreateMessageRequest{
		UIMessageID: "msg-1",
		ThreadID:    "ui-1",
		Role:        "user",
		Content:     []json.RawMessage{json.RawMessage(`{"type":"text","text":"hi"}`)},
	})

	require.NoError(t, err)
	assert.Equal(t, "msg-1", message.UIMessageID)
	mockRepo.AssertExpectations(t)
}

func TestThreadService_ListMessages(t *testing.T) {
	svc, mockRepo := setupThreadService(t)
	ctx := context.Background()

	expected := []model.StoredMessage{{ID: "m1", UIThreadID: "ui-1", Role: "user"}}
	mockRepo.On("ListMessagesByThread", ctx, "ui-1").Return(expected, nil).Once()

	messages, err := svc.ListMessages(ctx, "ui-1")

	require.NoError(t, err)
	assert.Equal(t, expected, messages)
}
