package model

import (
	"encoding/json"
	"time"
)

// Thread stores metadata about a conversation. The UI owns its own thread IDs,
// so we keep both our primary key and the UI-assigned one.
type Thread struct {
	ID         string    `json:"id"`
	UIThreadID string    `json:"ui_thread_id"`
	UserID     *string   `json:"user_id,omitempty"`
	Title      string    `json:"title"`
	Archived   bool      `json:"archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StoredMessage is a persisted chat message. Content keeps the UI's structured
// content parts verbatim as raw JSON; the server never interprets it on the
// persistence path.
type StoredMessage struct {
	ID          string          `json:"id"`
	UIMessageID string          `json:"ui_message_id"`
	UIThreadID  string          `json:"thread_id"`
	Role        string          `json:"role"`
	Content     json.RawMessage `json:"content"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TargetCell identifies the cell a calculation request targets.
type TargetCell struct {
	RowID    string `json:"row_id" validate:"required"`
	ColumnID string `json:"col_id" validate:"required"`
}

// Column describes one spreadsheet column as the UI sends it.
type Column struct {
	ID     string `json:"id"`
	Header string `json:"label"`
	Width  *int   `json:"width,omitempty"`
}

// CalculationRequest carries the instruction and full spreadsheet context for
// a single-cell calculation.
type CalculationRequest struct {
	Formula    string           `json:"formula" validate:"required"`
	TargetCell TargetCell       `json:"target_cell" validate:"required"`
	Columns    []Column         `json:"columns"`
	Data       []map[string]any `json:"data"`
}

// CalculationResponse wraps the parsed scalar result.
type CalculationResponse struct {
	Result any `json:"result"`
}
