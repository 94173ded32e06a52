package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brickmate/leadbook/internal/usecase"
)

func TestCalculateLoanStandardMortgage(t *testing.T) {
	// $300k purchase, 20% down, 6% over 30 years.
	out := usecase.CalculateLoan(usecase.LoanInput{
		PurchasePrice:     300000,
		DownPayment:       60000,
		InterestRate:      6,
		AmortizationYears: 30,
	})

	assert.Equal(t, 240000.0, out.LoanAmount)
	assert.InDelta(t, 1438.92, out.MonthlyPayment, 0.01)
	assert.InDelta(t, out.MonthlyPayment*12, out.AnnualPayment, 0.05)
}

func TestCalculateLoanZeroInterestIsStraightLine(t *testing.T) {
	out := usecase.CalculateLoan(usecase.LoanInput{
		PurchasePrice:     120000,
		DownPayment:       0,
		InterestRate:      0,
		AmortizationYears: 10,
	})

	assert.Equal(t, 120000.0, out.LoanAmount)
	assert.Equal(t, 1000.0, out.MonthlyPayment) // 120000 / 120 payments
	assert.Equal(t, 12000.0, out.AnnualPayment)
}

func TestCalculateLoanDownPaymentAbovePrice(t *testing.T) {
	// Overpaying the down payment is not rejected; the negative amount flows
	// through the formula.
	out := usecase.CalculateLoan(usecase.LoanInput{
		PurchasePrice:     100000,
		DownPayment:       150000,
		InterestRate:      5,
		AmortizationYears: 30,
	})

	assert.Equal(t, -50000.0, out.LoanAmount)
	assert.Less(t, out.MonthlyPayment, 0.0)
}

func TestCalculateLoanShortTerm(t *testing.T) {
	// 15-year term at 4.5% on a $160k loan.
	out := usecase.CalculateLoan(usecase.LoanInput{
		PurchasePrice:     200000,
		DownPayment:       40000,
		InterestRate:      4.5,
		AmortizationYears: 15,
	})

	assert.Equal(t, 160000.0, out.LoanAmount)
	assert.InDelta(t, 1223.99, out.MonthlyPayment, 0.05)
}
