package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brickmate/leadbook/internal/usecase"
)

// CalculatorHandler exposes the two financing calculators as pure query
// endpoints. Nothing here touches stored leads.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

func (h *CalculatorHandler) HandleLoan(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}

	// The formula divides by the payment count; guard the term here, the
	// calculator itself does no validation.
	if input.AmortizationYears <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_term", "amortization_years must be greater than zero")
		return
	}

	respondJSON(w, http.StatusOK, usecase.CalculateLoan(input))
}

func (h *CalculatorHandler) HandleReturns(w http.ResponseWriter, r *http.Request) {
	var input usecase.ReturnsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}

	respondJSON(w, http.StatusOK, usecase.CalculateReturns(input))
}
