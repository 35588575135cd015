package llm

import "context"

// Message is the flattened form of a chat message as the model API expects it:
// a plain role/content pair, an assistant entry carrying tool calls, or a tool
// result entry tied back to its call by ToolCallID.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall is a fully assembled model-initiated tool invocation.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolCallDelta is one streamed fragment of a tool call. Index is the
// stream-assigned slot; ID and Name arrive at most once, Arguments arrives in
// ordered fragments to be concatenated.
type ToolCallDelta struct {
	Index     int
	ID        string
	Name      string
	Arguments string
}

// StreamDelta is one incremental chunk of a streamed completion. A non-nil
// Err terminates the stream; the channel is closed right after it.
type StreamDelta struct {
	Content      string
	ToolCalls    []ToolCallDelta
	FinishReason string
	Err          error
}

// FinishReasonToolCalls is the finish reason signalling a tool-call turn.
const FinishReasonToolCalls = "tool_calls"

// ToolSpec declares one tool to the model: name, description, JSON-schema
// parameters and the strict-mode flag.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
	Strict      bool
}

// ChatRequest is a provider-agnostic chat completion request.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Tools       []ToolSpec
	Temperature float64
	MaxTokens   int
}

// Provider defines the interface for the chat-completion backend. It must be
// safe for concurrent use across unrelated requests.
type Provider interface {
	// Complete performs a single non-streamed completion and returns the
	// assistant's text.
	Complete(ctx context.Context, req *ChatRequest) (string, error)

	// ChatStream performs a streamed completion, sending deltas on ch until
	// the stream ends. The channel is closed before returning; failures are
	// also delivered in-band as a final StreamDelta with Err set.
	ChatStream(ctx context.Context, req *ChatRequest, ch chan<- StreamDelta) error

	// SearchStream performs a streamed web-search-backed completion for the
	// given query, sending raw text fragments on ch. The channel is closed
	// before returning.
	SearchStream(ctx context.Context, query string, ch chan<- string) error
}
