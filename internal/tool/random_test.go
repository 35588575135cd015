package tool_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/tool"
)

func runTool(t *testing.T, tl tool.Tool, toolCallID, rawArgs string) []model.ProtocolEvent {
	t.Helper()
	out := make(chan model.ProtocolEvent)
	go tl.Run(context.Background(), toolCallID, rawArgs, out)

	var events []model.ProtocolEvent
	for ev := range out {
		events = append(events, ev)
	}
	return events
}

func TestRandomTool_Run(t *testing.T) {
	rt := tool.NewRandomTool()
	rt.Delay = time.Millisecond

	events := runTool(t, rt, "call_1", "{}")

	// One initial running event, five progress updates, one completion.
	require.Len(t, events, 7)

	for i, ev := range events[:6] {
		assert.Equal(t, model.StatusRunning, ev.Status, "event %d", i)
		assert.Equal(t, "call_1", ev.ToolCallID)
		assert.Equal(t, tool.RandomToolName, ev.ToolName)
	}
	assert.Empty(t, events[0].IntermediateResult)
	for _, ev := range events[1:6] {
		assert.NotEmpty(t, ev.IntermediateResult)
	}

	final := events[6]
	assert.Equal(t, model.StatusComplete, final.Status)
	n, err := strconv.Atoi(final.Result)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, 100)
}

func TestRandomTool_Run_Cancelled(t *testing.T) {
	rt := tool.NewRandomTool()
	rt.Delay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan model.ProtocolEvent)
	go rt.Run(ctx, "call_1", "{}", out)

	// Read the first two events, then abandon the stream.
	<-out
	<-out
	cancel()

	// The channel must still close promptly.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-out:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("tool did not stop after cancellation")
		}
	}
}
