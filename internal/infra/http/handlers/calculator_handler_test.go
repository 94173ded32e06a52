package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brickmate/leadbook/internal/infra/http/handlers"
	"github.com/brickmate/leadbook/internal/usecase"
)

func postCalculator(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	assert.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleLoanComputesPayment(t *testing.T) {
	h := handlers.NewCalculatorHandler()

	rec := postCalculator(t, h.HandleLoan, usecase.LoanInput{
		PurchasePrice:     300000,
		DownPayment:       60000,
		InterestRate:      6,
		AmortizationYears: 30,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.LoanOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 240000.0, out.LoanAmount)
	assert.InDelta(t, 1438.92, out.MonthlyPayment, 0.01)
}

func TestHandleLoanRejectsZeroTerm(t *testing.T) {
	h := handlers.NewCalculatorHandler()

	rec := postCalculator(t, h.HandleLoan, usecase.LoanInput{
		PurchasePrice:     300000,
		AmortizationYears: 0,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Code string `json:"code"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_term", body.Code)
}

func TestHandleLoanRejectsBadJSON(t *testing.T) {
	h := handlers.NewCalculatorHandler()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.HandleLoan(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleReturnsComputesCashFlow(t *testing.T) {
	h := handlers.NewCalculatorHandler()

	rec := postCalculator(t, h.HandleReturns, usecase.ReturnsInput{
		MonthlyRent:        2000,
		MonthlyPayment:     1200,
		DownPayment:        15000,
		MonthlyInsurance:   100,
		MonthlyPropertyTax: 200,
		CapExPercentage:    5,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.ReturnsOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 400.0, out.MonthlyCashFlow)
	assert.InDelta(t, 29.63, out.CashOnCashReturn, 0.01)
}
