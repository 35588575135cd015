package tool

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"sheet-ai/backend/internal/llm"
	"sheet-ai/backend/internal/model"
)

// WebSearchTool answers a search query through a nested streamed model call,
// relaying the accumulated text as intermediate results while it arrives.
type WebSearchTool struct {
	provider llm.Provider
}

func NewWebSearchTool(provider llm.Provider) *WebSearchTool {
	return &WebSearchTool{provider: provider}
}

func (t *WebSearchTool) Name() string { return WebSearchToolName }

func (t *WebSearchTool) Run(ctx context.Context, toolCallID, rawArgs string, out chan<- model.ProtocolEvent) {
	defer close(out)
	slog.Debug("Running tool", "tool", t.Name(), "tool_call_id", toolCallID, "args", rawArgs)

	args := map[string]any{}
	if rawArgs != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			send(ctx, out, t.errorEvent(toolCallID, map[string]any{}, "Invalid tool arguments"))
			return
		}
	}

	base := model.ProtocolEvent{
		Type:       model.EventTypeToolCall,
		ToolCallID: toolCallID,
		ToolName:   t.Name(),
		Args:       args,
	}

	query, _ := args["search_query"].(string)
	if query == "" {
		send(ctx, out, t.errorEvent(toolCallID, args, "No search query provided"))
		return
	}

	ev := base
	ev.Status = model.StatusRunning
	if !send(ctx, out, ev) {
		return
	}

	fragments := make(chan string)
	errCh := make(chan error, 1)
	go func() {
		errCh <- t.provider.SearchStream(ctx, query, fragments)
	}()

	var full strings.Builder
	for fragment := range fragments {
		if fragment == "" {
			continue
		}
		full.WriteString(fragment)
		ev = base
		ev.Status = model.StatusRunning
		ev.IntermediateResult = full.String()
		if !send(ctx, out, ev) {
			return
		}
	}

	if err := <-errCh; err != nil {
		slog.Warn("Web search stream failed", "tool_call_id", toolCallID, "error", err)
		send(ctx, out, t.errorEvent(toolCallID, args, "Web search failed"))
		return
	}

	ev = base
	ev.Status = model.StatusComplete
	ev.Result = full.String()
	send(ctx, out, ev)
	slog.Debug("Tool completed", "tool", t.Name(), "tool_call_id", toolCallID)
}

func (t *WebSearchTool) errorEvent(toolCallID string, args map[string]any, reason string) model.ProtocolEvent {
	return model.ProtocolEvent{
		Type:       model.EventTypeToolCall,
		ToolCallID: toolCallID,
		ToolName:   t.Name(),
		Args:       args,
		Status:     model.StatusError,
		Result:     reason,
	}
}
