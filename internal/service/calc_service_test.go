package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "sheet-ai/backend/internal/errors"
	"sheet-ai/backend/internal/llm"
	"sheet-ai/backend/internal/llm/mocks"
	"sheet-ai/backend/internal/model"
	"sheet-ai/backend/internal/service"
)

func calcRequest() *model.CalculationRequest {
	return &model.CalculationRequest{
		Formula:    "sum of the amount column",
		TargetCell: model.TargetCell{RowID: "row-3", ColumnID: "total"},
		Columns: []model.Column{
			{ID: "amount", Header: "Amount"},
			{ID: "total", Header: "Total"},
		},
		Data: []map[string]any{
			{"id": "row-1", "amount": 10},
			{"id": "row-2", "amount": 32},
		},
	}
}

func TestCalcService_Calculate(t *testing.T) {
	cfg := service.CalcConfig{Model: "test-model", Temperature: 0.1, MaxTokens: 1000}

	t.Run("Success", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		mockProvider.On("Complete", mock.Anything, mock.MatchedBy(func(req *llm.ChatRequest) bool {
			if req.Model != "test-model" || len(req.Messages) != 2 {
				return false
			}
			return req.Messages[0].Role == "system" &&
				strings.Contains(req.Messages[1].Content, "row ID 'row-3'") &&
				strings.Contains(req.Messages[1].Content, `INSTRUCTION: "sum of the amount column"`)
		})).Return("42\n", nil).Once()

		svc := service.NewCalcService(mockProvider, cfg)
		result, err := svc.Calculate(context.Background(), calcRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(42), result)
	})

	t.Run("Provider failure maps to upstream error", func(t *testing.T) {
		mockProvider := mocks.NewMockProvider(t)
		mockProvider.On("Complete", mock.Anything, mock.Anything).Return("", assert.AnError).Once()

		svc := service.NewCalcService(mockProvider, cfg)
		_, err := svc.Calculate(context.Background(), calcRequest())

		assert.ErrorIs(t, err, app_errors.ErrUpstream)
	})
}

func TestParseResultValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{"Integer", "42", int64(42)},
		{"Negative integer", "-7", int64(-7)},
		{"Float", "3.14", 3.14},
		{"Scientific notation", "1e3", float64(1000)},
		{"Plain string", "not a number", "not a number"},
		{"Whitespace trimmed", "  42  \n", int64(42)},
		{"Empty", "", ""},
		{"Currency stays a string", "$42", "$42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ParseResultValue(tt.raw))
		})
	}
}
