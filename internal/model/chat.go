package model

import "encoding/json"

// Content part discriminators as the UI sends them.
const (
	ContentTypeText     = "text"
	ContentTypeToolCall = "tool-call"
)

// ArgsString holds tool-call arguments as a JSON-encoded string. The UI sends
// arguments either as an object or as an already-encoded string; both decode
// into the string form so downstream code has a single representation.
type ArgsString string

func (a *ArgsString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ArgsString(s)
		return nil
	}
	*a = ArgsString(data)
	return nil
}

func (a ArgsString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// ChatContentPart is one item of a chat message body: plain text or a tool
// invocation, discriminated by Type. A ToolCall part with a nil Result is a
// pending call from a prior turn; a present Result means it was resolved
// upstream (replayed history).
type ChatContentPart struct {
	Type       string     `json:"type"`
	Text       string     `json:"text,omitempty"`
	ToolName   string     `json:"toolName,omitempty"`
	ToolCallID string     `json:"toolCallId,omitempty"`
	Args       ArgsString `json:"args,omitempty"`
	Result     any        `json:"result,omitempty"`
}

// ChatMessage is one message of the client-supplied conversation history.
// Immutable once received; the chat session derives its own working copy.
type ChatMessage struct {
	ID        string            `json:"id"`
	CreatedAt string            `json:"createdAt"`
	Role      string            `json:"role"`
	Content   []ChatContentPart `json:"content"`
}

// ChatRequest is the body of a streaming chat call.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1"`
}

// Protocol event kinds and tool statuses on the wire.
const (
	EventTypeText     = "text"
	EventTypeToolCall = "tool-call"

	StatusRunning  = "running"
	StatusComplete = "complete"
	StatusError    = "error"
)

// ProtocolEvent is one unit of the chat output stream: either a text delta or
// a tool status update. Events are encoded in emission order, one JSON object
// per event, each followed by a blank-line terminator.
type ProtocolEvent struct {
	Type string
	Text string

	ToolCallID string
	ToolName   string
	Args       map[string]any
	Status     string
	// IntermediateResult, when set, is folded into the encoded args object
	// under a "result" key so the UI can render partial tool output.
	IntermediateResult string
	// Result is the tool's final result, present only on complete and error
	// events.
	Result string
}

// TextEvent builds a text delta event.
func TextEvent(text string) ProtocolEvent {
	return ProtocolEvent{Type: EventTypeText, Text: text}
}

type wireStatus struct {
	Type   string `json:"type"`
	Reason string `json:"reason,omitempty"`
}

type wireToolEvent struct {
	Type       string     `json:"type"`
	ToolCallID string     `json:"toolCallId"`
	ToolName   string     `json:"toolName"`
	Args       string     `json:"args"`
	Status     wireStatus `json:"status"`
	Result     string     `json:"result,omitempty"`
}

type wireTextEvent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// MarshalJSON produces the exact wire shape consumed by the spreadsheet UI:
// text events as {"type":"text","text":...}; tool events with the args object
// re-encoded as a JSON string, augmented with the latest intermediate result,
// and a status object whose reason is "stop" only on completion.
func (e ProtocolEvent) MarshalJSON() ([]byte, error) {
	if e.Type == EventTypeText {
		return json.Marshal(wireTextEvent{Type: EventTypeText, Text: e.Text})
	}

	args := make(map[string]any, len(e.Args)+1)
	for k, v := range e.Args {
		args[k] = v
	}
	if e.IntermediateResult != "" {
		args["result"] = e.IntermediateResult
	}
	encodedArgs, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}

	status := wireStatus{Type: e.Status}
	if e.Status == StatusComplete {
		status.Reason = "stop"
	}

	return json.Marshal(wireToolEvent{
		Type:       EventTypeToolCall,
		ToolCallID: e.ToolCallID,
		ToolName:   e.ToolName,
		Args:       string(encodedArgs),
		Status:     status,
		Result:     e.Result,
	})
}
