package tool

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"sheet-ai/backend/internal/model"
)

// randomProgressCount is how many progress updates RandomTool emits between
// the initial running event and completion.
const randomProgressCount = 5

var randomStatuses = []string{"rotating cogs", "plumbing", "wiring", "connecting", "thinking"}

// RandomTool generates a random integer in [1,100], emitting a few
// human-readable progress updates along the way to simulate long-running work.
// It ignores its arguments.
type RandomTool struct {
	// Delay between progress events. Tests shorten it.
	Delay time.Duration
}

func NewRandomTool() *RandomTool {
	return &RandomTool{Delay: 500 * time.Millisecond}
}

func (t *RandomTool) Name() string { return RandomToolName }

func (t *RandomTool) Run(ctx context.Context, toolCallID, rawArgs string, out chan<- model.ProtocolEvent) {
	defer close(out)
	slog.Debug("Running tool", "tool", t.Name(), "tool_call_id", toolCallID)

	base := model.ProtocolEvent{
		Type:       model.EventTypeToolCall,
		ToolCallID: toolCallID,
		ToolName:   t.Name(),
		Args:       map[string]any{},
	}

	ev := base
	ev.Status = model.StatusRunning
	if !send(ctx, out, ev) {
		return
	}

	for i := 0; i < randomProgressCount; i++ {
		ev = base
		ev.Status = model.StatusRunning
		ev.IntermediateResult = randomStatuses[rand.IntN(len(randomStatuses))]
		if !send(ctx, out, ev) {
			return
		}
		select {
		case <-time.After(t.Delay):
		case <-ctx.Done():
			return
		}
	}

	result := strconv.Itoa(rand.IntN(100) + 1)
	ev = base
	ev.Status = model.StatusComplete
	ev.Result = result
	send(ctx, out, ev)
	slog.Debug("Tool completed", "tool", t.Name(), "result", result)
}
