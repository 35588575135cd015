package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"sheet-ai/backend/internal/interfaces"
	"sheet-ai/backend/internal/model"
)

// ChatHandler serves the streaming chat endpoint.
type ChatHandler struct {
	chat interfaces.ChatService
}

func NewChatHandler(chat interfaces.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// HandleChat godoc
//
//	@Summary		Stream a tool-augmented chat session
//	@Description	Streams protocol events (text deltas and tool status updates) as blank-line-delimited JSON objects.
//	@Tags			chat
//	@Accept			json
//	@Produce		plain
//	@Param			request	body	model.ChatRequest	true	"Chat history"
//	@Success		200	{string}	string	"event stream"
//	@Failure		400	{object}	ErrorResponse
//	@Router			/chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	// Translation runs before any byte is written so a malformed history
	// still gets a proper error response.
	events, err := h.chat.StreamChat(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	for ev := range events {
		if r.Context().Err() != nil {
			slog.Info("Client disconnected mid-stream")
			break
		}
		data, err := json.Marshal(ev)
		if err != nil {
			slog.Error("Failed to encode protocol event", "error", err)
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", data); err != nil {
			slog.Warn("Failed to write stream event, client might have disconnected", "error", err)
			break
		}
		if flusher != nil {
			flusher.Flush()
		}
	}

	slog.Debug("Finished streaming chat response")
}
