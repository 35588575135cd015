package api

import (
	"encoding/json"
	"net/http"

	"sheet-ai/backend/internal/interfaces"
	"sheet-ai/backend/internal/model"
)

// CalcHandler serves the single-cell calculation endpoint.
type CalcHandler struct {
	calc interfaces.CalcService
}

func NewCalcHandler(calc interfaces.CalcService) *CalcHandler {
	return &CalcHandler{calc: calc}
}

// HandleCalculate godoc
//
//	@Summary		Calculate a single cell value
//	@Description	Computes a value for the target cell from a natural-language instruction and the full spreadsheet context.
//	@Tags			calculate
//	@Accept			json
//	@Produce		json
//	@Param			request	body		model.CalculationRequest	true	"Calculation request"
//	@Success		200		{object}	model.CalculationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/calculate [post]
func (h *CalcHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req model.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.calc.Calculate(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, model.CalculationResponse{Result: result})
}
