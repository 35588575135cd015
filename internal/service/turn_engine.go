package service

import (
	"context"
	"log/slog"
	"strings"

	"sheet-ai/backend/internal/llm"
	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/tool"
)

// accumulatingToolCall is the per-turn working state of one streamed tool
// call: id and name are captured once, argument fragments concatenate in
// arrival order.
type accumulatingToolCall struct {
	id   string
	name string
	args strings.Builder
}

// toolCallAccumulator reassembles fragmented tool-call deltas, addressed by
// the zero-based index the model stream assigns. The list grows lazily as new
// indices appear; a fragment at index n materializes empty placeholders for
// every lower index not yet seen.
type toolCallAccumulator struct {
	calls []*accumulatingToolCall
}

func (a *toolCallAccumulator) add(f llm.ToolCallDelta) {
	if f.Index < 0 {
		return
	}
	for len(a.calls) <= f.Index {
		a.calls = append(a.calls, &accumulatingToolCall{})
	}
	call := a.calls[f.Index]
	if f.ID != "" && call.id == "" {
		call.id = f.ID
	}
	if f.Name != "" && call.name == "" {
		call.name = f.Name
	}
	call.args.WriteString(f.Arguments)
}

// TurnEngineConfig carries the model parameters for chat turns.
type TurnEngineConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
	// MaxTurns bounds the tool-call/continue loop so a model that keeps
	// requesting tools cannot run forever.
	MaxTurns int
}

// TurnEngine drives a chat session turn by turn: it streams one model call,
// forwards content deltas eagerly, reassembles tool-call fragments, executes
// at most one tool per turn and feeds its result back into the conversation
// until the model finishes without requesting a tool.
type TurnEngine struct {
	provider llm.Provider
	registry *tool.Registry
	cfg      TurnEngineConfig
}

func NewTurnEngine(provider llm.Provider, registry *tool.Registry, cfg TurnEngineConfig) *TurnEngine {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = 8
	}
	return &TurnEngine{provider: provider, registry: registry, cfg: cfg}
}

// Run executes turns until the model produces a final answer, emitting
// protocol events on out in emission order. The caller owns out. Model-call
// failures are returned as-is; the events already sent are not retracted.
func (e *TurnEngine) Run(ctx context.Context, messages []llm.Message, out chan<- model.ProtocolEvent) error {
	for turn := 0; turn < e.cfg.MaxTurns; turn++ {
		acc := &toolCallAccumulator{}
		toolTurn := false

		req := &llm.ChatRequest{
			Model:       e.cfg.Model,
			Messages:    messages,
			Tools:       tool.Catalog(),
			Temperature: e.cfg.Temperature,
			MaxTokens:   e.cfg.MaxTokens,
		}
		deltas := make(chan llm.StreamDelta)
		go e.provider.ChatStream(ctx, req, deltas) //nolint:errcheck // failures arrive in-band

		for delta := range deltas {
			if delta.Err != nil {
				return delta.Err
			}
			if delta.Content != "" {
				select {
				case out <- model.TextEvent(delta.Content):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			for _, fragment := range delta.ToolCalls {
				acc.add(fragment)
			}
			if delta.FinishReason == llm.FinishReasonToolCalls && len(acc.calls) > 0 {
				toolTurn = true
			}
		}

		if !toolTurn {
			return nil
		}

		// Only the first accumulated call is executed; additional parallel
		// tool calls in the same turn are dropped.
		call := acc.calls[0]
		if len(acc.calls) > 1 {
			slog.Warn("Model requested parallel tool calls, executing only the first",
				"requested", len(acc.calls), "tool", call.name)
		}

		result, executed := e.executeTool(ctx, call, out)
		if !executed {
			// Unknown tool: the turn ends with nothing executed and no
			// messages appended.
			return nil
		}

		messages = append(messages,
			llm.Message{
				Role: "assistant",
				ToolCalls: []llm.ToolCall{{
					ID:        call.id,
					Name:      call.name,
					Arguments: call.args.String(),
				}},
			},
			llm.Message{
				Role:       "tool",
				ToolCallID: call.id,
				Content:    result,
			},
		)
	}

	slog.Warn("Turn limit reached, ending chat stream", "limit", e.cfg.MaxTurns)
	return nil
}

// executeTool resolves and runs one tool, passing its events through verbatim.
// It returns the tool's final result and whether a tool actually ran.
func (e *TurnEngine) executeTool(ctx context.Context, call *accumulatingToolCall, out chan<- model.ProtocolEvent) (string, bool) {
	t := e.registry.Resolve(call.name)
	if t == nil {
		slog.Warn("No tool registered for requested call", "tool", call.name, "tool_call_id", call.id)
		return "", false
	}

	events := make(chan model.ProtocolEvent)
	go t.Run(ctx, call.id, call.args.String(), events)

	var result string
	for ev := range events {
		select {
		case out <- ev:
		case <-ctx.Done():
			return result, true
		}
		if ev.Status == model.StatusComplete || ev.Status == model.StatusError {
			result = ev.Result
		}
	}
	return result, true
}
