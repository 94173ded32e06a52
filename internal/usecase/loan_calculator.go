package usecase

import "math"

type LoanInput struct {
	PurchasePrice     float64 `json:"purchase_price"`
	DownPayment       float64 `json:"down_payment"`
	InterestRate      float64 `json:"interest_rate"`
	AmortizationYears int     `json:"amortization_years"`
}

type LoanOutput struct {
	LoanAmount     float64 `json:"loan_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	AnnualPayment  float64 `json:"annual_payment"`
}

// CalculateLoan computes the financed amount and the amortized payment.
// No input validation happens here: a negative loan amount flows through the
// formula and yields a negative payment. AmortizationYears must be > 0; the
// form/HTTP layer guards that before calling.
func CalculateLoan(in LoanInput) LoanOutput {
	loanAmount := in.PurchasePrice - in.DownPayment
	payments := float64(in.AmortizationYears * 12)

	var monthly float64
	if in.InterestRate > 0 {
		r := in.InterestRate / 100 / 12
		factor := math.Pow(1+r, payments)
		monthly = loanAmount * (r * factor) / (factor - 1)
	} else {
		monthly = loanAmount / payments
	}

	return LoanOutput{
		LoanAmount:     loanAmount,
		MonthlyPayment: round2(monthly),
		AnnualPayment:  round2(monthly * 12),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
