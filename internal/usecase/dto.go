package usecase

import (
	"time"

	"github.com/brickmate/leadbook/internal/entity"
)

// PropertyFormInput carries the raw string form fields exactly as the UI
// submits them. Numeric fields stay strings until ParsePropertyForm produces
// either a validated patch or a field-level error list.
type PropertyFormInput struct {
	Address       string `json:"address"`
	RealtorName   string `json:"realtor_name"`
	RealtorNumber string `json:"realtor_number"`
	ImageURL      string `json:"image_url"`
	Notes         string `json:"notes"`

	AskingPrice   string `json:"asking_price"`
	PurchasePrice string `json:"purchase_price"`
	Interest      string `json:"interest"`
	Amortization  string `json:"amortization"`
	DownPayment   string `json:"down_payment"`
	Rent          string `json:"rent"`

	MonthlyInsurance     string `json:"monthly_insurance"`
	MonthlyPropertyTax   string `json:"monthly_property_tax"`
	MonthlyHOA           string `json:"monthly_hoa"`
	MonthlyOther         string `json:"monthly_other"`
	CapExPercentage      string `json:"cap_ex_percentage"`
	ManagementPercentage string `json:"management_percentage"`
	VacancyPercentage    string `json:"vacancy_percentage"`

	MonthlyPayment   string `json:"monthly_payment"`
	CashFlow         string `json:"cash_flow"`
	CashOnCashReturn string `json:"cash_on_cash_return"`

	Contacted string `json:"contacted"`
	CreatedAt string `json:"created_at"`
}

// PropertyPatch is the validated, typed result of a form submission.
type PropertyPatch struct {
	Address       string
	RealtorName   string
	RealtorNumber string
	ImageURL      string
	Notes         string

	AskingPrice   float64
	PurchasePrice float64
	Interest      float64
	Amortization  int
	DownPayment   float64
	Rent          float64

	MonthlyInsurance     float64
	MonthlyPropertyTax   float64
	MonthlyHOA           float64
	MonthlyOther         float64
	CapExPercentage      float64
	ManagementPercentage float64
	VacancyPercentage    float64

	MonthlyPayment   float64
	CashFlow         float64
	CashOnCashReturn float64

	Contacted bool
	CreatedAt time.Time
}

// Apply copies the patch onto a lead, leaving identity, ownership and offer
// status alone.
func (p PropertyPatch) Apply(dst *entity.Property) {
	dst.Address = p.Address
	dst.RealtorName = p.RealtorName
	dst.RealtorNumber = p.RealtorNumber
	dst.ImageURL = p.ImageURL
	dst.Notes = NormalizeNotes(p.Notes)

	dst.AskingPrice = p.AskingPrice
	dst.PurchasePrice = p.PurchasePrice
	dst.Interest = p.Interest
	dst.Amortization = p.Amortization
	dst.DownPayment = p.DownPayment
	dst.Rent = p.Rent

	dst.MonthlyInsurance = p.MonthlyInsurance
	dst.MonthlyPropertyTax = p.MonthlyPropertyTax
	dst.MonthlyHOA = p.MonthlyHOA
	dst.MonthlyOther = p.MonthlyOther
	dst.CapExPercentage = p.CapExPercentage
	dst.ManagementPercentage = p.ManagementPercentage
	dst.VacancyPercentage = p.VacancyPercentage

	dst.MonthlyPayment = p.MonthlyPayment
	dst.CashFlow = p.CashFlow
	dst.CashOnCashReturn = p.CashOnCashReturn

	dst.Contacted = p.Contacted
	if !p.CreatedAt.IsZero() {
		dst.CreatedAt = p.CreatedAt
	}
}

// ImportResult summarizes one CSV batch. Skipped rows are counted, never
// reported per-row: coercion failures and duplicates are dropped silently.
type ImportResult struct {
	Imported          int `json:"imported"`
	SkippedNoAddress  int `json:"skipped_no_address"`
	SkippedDuplicates int `json:"skipped_duplicates"`
}
