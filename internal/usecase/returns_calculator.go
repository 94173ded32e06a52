package usecase

import "math"

type ReturnsInput struct {
	MonthlyRent          float64 `json:"monthly_rent"`
	MonthlyPayment       float64 `json:"monthly_payment"`
	DownPayment          float64 `json:"down_payment"`
	MonthlyInsurance     float64 `json:"monthly_insurance"`
	MonthlyPropertyTax   float64 `json:"monthly_property_tax"`
	MonthlyHOA           float64 `json:"monthly_hoa"`
	MonthlyOther         float64 `json:"monthly_other"`
	CapExPercentage      float64 `json:"cap_ex_percentage"`
	ManagementPercentage float64 `json:"management_percentage"`
	VacancyPercentage    float64 `json:"vacancy_percentage"`
}

type ReturnsOutput struct {
	MonthlyCashFlow  float64 `json:"monthly_cash_flow"`
	CashOnCashReturn float64 `json:"cash_on_cash_return"`
}

// CalculateReturns rolls rent-proportional allowances into the monthly
// operating expenses and derives cash flow and cash-on-cash return.
// The annual cash flow feeding the return is always taken from the unrounded
// monthly figure; the rounded MonthlyCashFlow is display-only.
func CalculateReturns(in ReturnsInput) ReturnsOutput {
	capEx := in.MonthlyRent * in.CapExPercentage / 100
	management := in.MonthlyRent * in.ManagementPercentage / 100
	vacancy := in.MonthlyRent * in.VacancyPercentage / 100

	expenses := in.MonthlyPayment +
		in.MonthlyInsurance +
		in.MonthlyPropertyTax +
		in.MonthlyHOA +
		in.MonthlyOther +
		capEx + management + vacancy

	cashFlow := in.MonthlyRent - expenses
	annualCashFlow := cashFlow * 12

	totalInvestment := in.DownPayment + in.MonthlyInsurance*12
	cashOnCash := 0.0
	if totalInvestment > 0 {
		cashOnCash = annualCashFlow / totalInvestment * 100
	}

	return ReturnsOutput{
		MonthlyCashFlow:  math.Round(cashFlow),
		CashOnCashReturn: round2(cashOnCash),
	}
}
