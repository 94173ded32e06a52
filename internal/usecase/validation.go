package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brickmate/leadbook/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParsePropertyForm turns the raw string form into a typed patch. Unlike the
// import path, the form is strict: a value that is present but unparseable is
// a field error, not a silent zero. Empty numeric fields default to 0, the
// amortization term to 30 years.
func ParsePropertyForm(input PropertyFormInput) (PropertyPatch, []ValidationError) {
	var errs []ValidationError

	patch := PropertyPatch{
		Address:       strings.TrimSpace(input.Address),
		RealtorName:   strings.TrimSpace(input.RealtorName),
		RealtorNumber: strings.TrimSpace(input.RealtorNumber),
		ImageURL:      strings.TrimSpace(input.ImageURL),
		Notes:         input.Notes,
	}

	if patch.Address == "" {
		errs = append(errs, ValidationError{"address", "is required"})
	}

	number := func(field, raw string) float64 {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, ValidationError{field, "must be a number"})
			return 0
		}
		return v
	}

	patch.AskingPrice = number("asking_price", input.AskingPrice)
	patch.PurchasePrice = number("purchase_price", input.PurchasePrice)
	patch.Interest = number("interest", input.Interest)
	patch.DownPayment = number("down_payment", input.DownPayment)
	patch.Rent = number("rent", input.Rent)
	patch.MonthlyInsurance = number("monthly_insurance", input.MonthlyInsurance)
	patch.MonthlyPropertyTax = number("monthly_property_tax", input.MonthlyPropertyTax)
	patch.MonthlyHOA = number("monthly_hoa", input.MonthlyHOA)
	patch.MonthlyOther = number("monthly_other", input.MonthlyOther)
	patch.CapExPercentage = number("cap_ex_percentage", input.CapExPercentage)
	patch.ManagementPercentage = number("management_percentage", input.ManagementPercentage)
	patch.VacancyPercentage = number("vacancy_percentage", input.VacancyPercentage)
	patch.MonthlyPayment = number("monthly_payment", input.MonthlyPayment)
	patch.CashFlow = number("cash_flow", input.CashFlow)
	patch.CashOnCashReturn = number("cash_on_cash_return", input.CashOnCashReturn)

	switch raw := strings.TrimSpace(input.Amortization); raw {
	case "":
		patch.Amortization = entity.DefaultAmortizationYears
	default:
		years, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, ValidationError{"amortization", "must be a whole number of years"})
		} else if years <= 0 {
			// The loan formula divides by the payment count; a zero term is a
			// configuration error the calculator does not guard against.
			errs = append(errs, ValidationError{"amortization", "must be greater than zero"})
		} else {
			patch.Amortization = years
		}
	}

	if raw := strings.TrimSpace(input.Contacted); raw != "" {
		patch.Contacted = strings.EqualFold(raw, "true")
	}

	if raw := strings.TrimSpace(input.CreatedAt); raw != "" {
		t, err := parseInstant(raw)
		if err != nil {
			errs = append(errs, ValidationError{"created_at", "must be an ISO-8601 date or datetime"})
		} else {
			patch.CreatedAt = t
		}
	}

	return patch, errs
}

func parseInstant(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", raw)
}
