package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/usecase"
)

func TestParsePropertyFormRequiresAddress(t *testing.T) {
	_, errs := usecase.ParsePropertyForm(usecase.PropertyFormInput{})

	assert.Len(t, errs, 1)
	assert.Equal(t, "address", errs[0].Field)
}

func TestParsePropertyFormParsesNumbers(t *testing.T) {
	patch, errs := usecase.ParsePropertyForm(usecase.PropertyFormInput{
		Address:       "1 Oak St",
		PurchasePrice: "250000",
		Interest:      "6.25",
		DownPayment:   "50000",
		Rent:          "2100",
	})

	assert.Empty(t, errs)
	assert.Equal(t, 250000.0, patch.PurchasePrice)
	assert.Equal(t, 6.25, patch.Interest)
	assert.Equal(t, 50000.0, patch.DownPayment)
	assert.Equal(t, 2100.0, patch.Rent)
}

func TestParsePropertyFormRejectsGarbageNumbers(t *testing.T) {
	// Unlike the import path, the form is strict: present but unparseable is a
	// field error, not a silent zero.
	_, errs := usecase.ParsePropertyForm(usecase.PropertyFormInput{
		Address: "1 Oak St",
		Rent:    "$2,100",
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "rent", errs[0].Field)
}

func TestParsePropertyFormAmortizationDefaultsTo30(t *testing.T) {
	patch, errs := usecase.ParsePropertyForm(usecase.PropertyFormInput{Address: "1 Oak St"})

	assert.Empty(t, errs)
	assert.Equal(t, entity.DefaultAmortizationYears, patch.Amortization)
}

func TestParsePropertyFormAmortizationMustBePositiveWholeYears(t *testing.T) {
	_, errs := usecase.ParsePropertyForm(usecase.PropertyFormInput{
		Address:      "1 Oak St",
		Amortization: "0",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "amortization", errs[0].Field)

	_, errs = usecase.ParsePropertyForm(usecase.PropertyFormInput{
		Address:      "1 Oak St",
		Amortization: "25.5",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "amortization", errs[0].Field)
}

func TestParsePropertyFormContacted(t *testing.T) {
	patch, _ := usecase.ParsePropertyForm(usecase.PropertyFormInput{
		Address:   "1 Oak St",
		Contacted: "True",
	})
	assert.True(t, patch.Contacted)

	patch, _ = usecase.ParsePropertyForm(usecase.PropertyFormInput{
		Address:   "1 Oak St",
		Contacted: "yes",
	})
	assert.False(t, patch.Contacted)
}

func TestParsePropertyFormCreatedAtAcceptsDateAndDatetime(t *testing.T) {
	patch, errs := usecase.ParsePropertyForm(usecase.PropertyFormInput{
		Address:   "1 Oak St",
		CreatedAt: "2024-06-15",
	})
	assert.Empty(t, errs)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), patch.CreatedAt)

	patch, errs = usecase.ParsePropertyForm(usecase.PropertyFormInput{
		Address:   "1 Oak St",
		CreatedAt: "2024-06-15T10:30:00Z",
	})
	assert.Empty(t, errs)
	assert.Equal(t, 10, patch.CreatedAt.Hour())

	_, errs = usecase.ParsePropertyForm(usecase.PropertyFormInput{
		Address:   "1 Oak St",
		CreatedAt: "June 15th",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "created_at", errs[0].Field)
}

func TestParsePropertyFormCollectsAllErrors(t *testing.T) {
	_, errs := usecase.ParsePropertyForm(usecase.PropertyFormInput{
		Rent:         "abc",
		Amortization: "-5",
		CreatedAt:    "bad",
	})

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"address", "rent", "amortization", "created_at"}, fields)
}

func TestPatchApplyNormalizesNotesAndKeepsIdentity(t *testing.T) {
	p, err := entity.NewProperty("user-1", "1 Oak St")
	assert.NoError(t, err)
	p.OfferStatus = entity.OfferPending
	originalID := p.ID

	patch := usecase.PropertyPatch{
		Address: "1 Oak Street",
		Notes:   "roof needs work",
	}
	patch.Apply(p)

	assert.Equal(t, originalID, p.ID)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "• roof needs work", p.Notes)
	assert.Equal(t, entity.OfferPending, p.OfferStatus)
	assert.False(t, p.CreatedAt.IsZero()) // zero patch date leaves the original
}
