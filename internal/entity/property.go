package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrPropertyNotFound = errors.New("property not found")

// OfferStatus tracks where an offer on a lead currently stands.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferDenied   OfferStatus = "denied"
	OfferNone     OfferStatus = "none"
)

// DefaultImageURL is shown when a lead has no photo of its own.
const DefaultImageURL = "https://images.unsplash.com/photo-1568605114967-8130f3a36994?auto=format&fit=crop&q=80"

const DefaultAmortizationYears = 30

// Property is a tracked real-estate lead. The stored financing outputs
// (MonthlyPayment, CashFlow, CashOnCashReturn) are snapshots: they are only
// rewritten when a refresh is requested, and the user may override them.
type Property struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Address       string `json:"address"`
	RealtorName   string `json:"realtor_name"`
	RealtorNumber string `json:"realtor_number"`
	ImageURL      string `json:"image_url,omitempty"`

	AskingPrice   float64 `json:"asking_price"`
	PurchasePrice float64 `json:"purchase_price"`
	Interest      float64 `json:"interest"`
	Amortization  int     `json:"amortization"`
	DownPayment   float64 `json:"down_payment"`
	Rent          float64 `json:"rent"`

	MonthlyInsurance     float64 `json:"monthly_insurance"`
	MonthlyPropertyTax   float64 `json:"monthly_property_tax"`
	MonthlyHOA           float64 `json:"monthly_hoa"`
	MonthlyOther         float64 `json:"monthly_other"`
	CapExPercentage      float64 `json:"cap_ex_percentage"`
	ManagementPercentage float64 `json:"management_percentage"`
	VacancyPercentage    float64 `json:"vacancy_percentage"`

	MonthlyPayment   float64 `json:"monthly_payment"`
	CashFlow         float64 `json:"cash_flow"`
	CashOnCashReturn float64 `json:"cash_on_cash_return"`

	Contacted   bool        `json:"contacted"`
	OfferStatus OfferStatus `json:"offer_status"`
	Notes       string      `json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Factory
func NewProperty(userID, address string) (*Property, error) {
	p := &Property{
		ID:           uuid.New().String(),
		UserID:       userID,
		Address:      strings.TrimSpace(address),
		Amortization: DefaultAmortizationYears,
		OfferStatus:  OfferNone,
		CreatedAt:    time.Now().UTC(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Property) Validate() error {
	if strings.TrimSpace(p.Address) == "" {
		return errors.New("address is required")
	}
	if p.UserID == "" {
		return errors.New("user id is required")
	}
	return nil
}

// DisplayImageURL falls back to the placeholder photo.
func (p *Property) DisplayImageURL() string {
	if p.ImageURL == "" {
		return DefaultImageURL
	}
	return p.ImageURL
}

func ValidOfferStatus(s OfferStatus) bool {
	switch s {
	case OfferPending, OfferAccepted, OfferDenied, OfferNone:
		return true
	}
	return false
}
