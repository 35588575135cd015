package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	apperrors "sheet-ai/backend/internal/errors"
	"sheet-ai/backend/internal/llm"
	"sheet-ai/backend/internal/model"
)

const calcSystemPrompt = "You are an AI assistant in a spreadsheet. Your task is to calculate a single value " +
	"for a target cell. You will be given the entire spreadsheet as JSON data, the user's " +
	"instruction (formula), and the ID of the target cell. Use the provided data as context " +
	"for your calculation. Your response must be ONLY the final calculated value, without " +
	"any explanation, labels, or formatting."

// CalcConfig carries the model parameters for cell calculations.
type CalcConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// CalcService computes a single cell value from a natural-language
// instruction plus spreadsheet context through one non-streamed model call.
type CalcService struct {
	provider llm.Provider
	cfg      CalcConfig
}

func NewCalcService(provider llm.Provider, cfg CalcConfig) *CalcService {
	return &CalcService{provider: provider, cfg: cfg}
}

// Calculate asks the model for the target cell's value and parses the reply
// as int, float or string.
func (s *CalcService) Calculate(ctx context.Context, req *model.CalculationRequest) (any, error) {
	userPrompt, err := buildCalcPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("%w: could not encode spreadsheet context", apperrors.ErrValidation)
	}

	slog.Info("Processing calculation request",
		"row_id", req.TargetCell.RowID, "column_id", req.TargetCell.ColumnID)

	raw, err := s.provider.Complete(ctx, &llm.ChatRequest{
		Model: s.cfg.Model,
		Messages: []llm.Message{
			{Role: "system", Content: calcSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}

	result := ParseResultValue(raw)
	slog.Info("Calculation successful", "result", result)
	return result, nil
}

func buildCalcPrompt(req *model.CalculationRequest) (string, error) {
	data, err := json.MarshalIndent(req.Data, "", "  ")
	if err != nil {
		return "", err
	}
	columns, err := json.MarshalIndent(req.Columns, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Here is the entire spreadsheet data:
%s

Here are the columns:
%s

The user wants to calculate a value for the cell with row ID '%s' and column ID '%s'.

Please execute the following instruction to calculate the value for that specific cell:
INSTRUCTION: "%s"
`, data, columns, req.TargetCell.RowID, req.TargetCell.ColumnID, req.Formula), nil
}

// ParseResultValue turns the model's textual reply into an int, float or
// trimmed string, in that order of preference.
func ParseResultValue(raw string) any {
	value := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}
