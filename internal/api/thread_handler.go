package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sheet-ai/backend/internal/interfaces"
	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/service"
)

// ThreadHandler serves thread and message persistence endpoints.
type ThreadHandler struct {
	threads interfaces.ThreadService
}

func NewThreadHandler(threads interfaces.ThreadService) *ThreadHandler {
	return &ThreadHandler{threads: threads}
}

// ThreadRef is the create/update response: the stored ID pair.
type ThreadRef struct {
	ID         string `json:"id"`
	UIThreadID string `json:"ui_thread_id"`
}

// ThreadListResponse wraps the thread collection.
type ThreadListResponse struct {
	Threads []*model.Thread `json:"threads"`
}

// MessageRef is the message create response.
type MessageRef struct {
	ID          string `json:"id"`
	UIMessageID string `json:"ui_message_id"`
}

// MessageListResponse wraps a thread's messages.
type MessageListResponse struct {
	Messages []model.StoredMessage `json:"messages"`
}

// HandleCreateThread godoc
//
//	@Summary	Register a new chat thread
//	@Tags		threads
//	@Accept		json
//	@Produce	json
//	@Param		request	body		service.CreateThreadRequest	true	"Thread"
//	@Success	200		{object}	ThreadRef
//	@Failure	400		{object}	ErrorResponse
//	@Router		/threads [post]
func (h *ThreadHandler) HandleCreateThread(w http.ResponseWriter, r *http.Request) {
	var req service.CreateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	thread, err := h.threads.CreateThread(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ThreadRef{ID: thread.ID, UIThreadID: thread.UIThreadID})
}

// HandleUpdateThread godoc
//
//	@Summary	Update a thread's title or archived flag
//	@Tags		threads
//	@Accept		json
//	@Produce	json
//	@Param		request	body		service.UpdateThreadRequest	true	"Partial update"
//	@Success	200		{object}	ThreadRef
//	@Failure	404		{object}	ErrorResponse
//	@Router		/threads [put]
func (h *ThreadHandler) HandleUpdateThread(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	thread, err := h.threads.UpdateThread(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ThreadRef{ID: thread.ID, UIThreadID: thread.UIThreadID})
}

// HandleGetThread godoc
//
//	@Summary	Fetch one thread by its UI thread ID
//	@Tags		threads
//	@Produce	json
//	@Param		uiThreadID	path		string	true	"UI thread ID"
//	@Success	200			{object}	model.Thread
//	@Failure	404			{object}	ErrorResponse
//	@Router		/threads/{uiThreadID} [get]
func (h *ThreadHandler) HandleGetThread(w http.ResponseWriter, r *http.Request) {
	uiThreadID := chi.URLParam(r, "uiThreadID")
	thread, err := h.threads.GetThread(r.Context(), uiThreadID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, thread)
}

// HandleListThreads godoc
//
//	@Summary	List all threads
//	@Tags		threads
//	@Produce	json
//	@Success	200	{object}	ThreadListResponse
//	@Router		/threads [get]
func (h *ThreadHandler) HandleListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.threads.ListThreads(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	if threads == nil {
		threads = []*model.Thread{}
	}
	respondWithJSON(w, http.StatusOK, ThreadListResponse{Threads: threads})
}

// HandleDeleteThread godoc
//
//	@Summary	Delete a thread and its messages
//	@Tags		threads
//	@Produce	json
//	@Param		uiThreadID	path		string	true	"UI thread ID"
//	@Success	200			{object}	StatusResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/threads/{uiThreadID} [delete]
func (h *ThreadHandler) HandleDeleteThread(w http.ResponseWriter, r *http.Request) {
	uiThreadID := chi.URLParam(r, "uiThreadID")
	if err := h.threads.DeleteThread(r.Context(), uiThreadID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleCreateMessage godoc
//
//	@Summary	Persist one chat message
//	@Tags		messages
//	@Accept		json
//	@Produce	json
//	@Param		request	body		service.CreateMessageRequest	true	"Message"
//	@Success	200		{object}	MessageRef
//	@Failure	400		{object}	ErrorResponse
//	@Router		/messages [post]
func (h *ThreadHandler) HandleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var req service.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	message, err := h.threads.CreateMessage(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageRef{ID: message.ID, UIMessageID: message.UIMessageID})
}

// HandleListMessages godoc
//
//	@Summary	List a thread's messages
//	@Tags		messages
//	@Produce	json
//	@Param		uiThreadID	path		string	true	"UI thread ID"
//	@Success	200			{object}	MessageListResponse
//	@Router		/threads/{uiThreadID}/messages [get]
func (h *ThreadHandler) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	uiThreadID := chi.URLParam(r, "uiThreadID")
	messages, err := h.threads.ListMessages(r.Context(), uiThreadID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if messages == nil {
		messages = []model.StoredMessage{}
	}
	respondWithJSON(w, http.StatusOK, MessageListResponse{Messages: messages})
}
