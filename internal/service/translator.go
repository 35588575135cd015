package service

import (
	"encoding/json"
	"fmt"

	apperrors "sheet-ai/backend/internal/errors"
	"sheet-ai/backend/internal/llm"
	"sheet-ai/backend/internal/model"
)

// TranslateMessages flattens the client's structured chat history into the
// linear role-tagged sequence the model call expects. Content items map in
// order, one entry each; nothing is merged or reordered: a pending tool call
// becomes an assistant entry carrying the call, a resolved one becomes a tool
// result entry. Translation of the same input is byte-for-byte deterministic.
func TranslateMessages(messages []model.ChatMessage) ([]llm.Message, error) {
	var result []llm.Message
	for _, msg := range messages {
		for _, part := range msg.Content {
			switch part.Type {
			case model.ContentTypeText:
				result = append(result, llm.Message{
					Role:    msg.Role,
					Content: part.Text,
				})
			case model.ContentTypeToolCall:
				if part.Result != nil {
					result = append(result, llm.Message{
						Role:       "tool",
						ToolCallID: part.ToolCallID,
						Content:    stringifyResult(part.Result),
					})
					continue
				}
				result = append(result, llm.Message{
					Role: "assistant",
					ToolCalls: []llm.ToolCall{{
						ID:        part.ToolCallID,
						Name:      part.ToolName,
						Arguments: string(part.Args),
					}},
				})
			default:
				return nil, fmt.Errorf("%w: unsupported content part type %q", apperrors.ErrValidation, part.Type)
			}
		}
	}
	return result, nil
}

// stringifyResult coerces an upstream tool result into the string content the
// model API requires.
func stringifyResult(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(encoded)
}
