package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brickmate/leadbook/internal/entity"
)

func TestNewPropertyDefaults(t *testing.T) {
	p, err := entity.NewProperty("user-1", "  123 Main St  ")

	assert.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "123 Main St", p.Address)
	assert.Equal(t, entity.DefaultAmortizationYears, p.Amortization)
	assert.Equal(t, entity.OfferNone, p.OfferStatus)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNewPropertyRequiresAddress(t *testing.T) {
	p, err := entity.NewProperty("user-1", "   ")
	assert.Nil(t, p)
	assert.Error(t, err)
}

func TestNewPropertyRequiresUser(t *testing.T) {
	p, err := entity.NewProperty("", "123 Main St")
	assert.Nil(t, p)
	assert.Error(t, err)
}

func TestDisplayImageURLFallsBack(t *testing.T) {
	p := &entity.Property{}
	assert.Equal(t, entity.DefaultImageURL, p.DisplayImageURL())

	p.ImageURL = "https://example.com/house.jpg"
	assert.Equal(t, "https://example.com/house.jpg", p.DisplayImageURL())
}

func TestValidOfferStatus(t *testing.T) {
	assert.True(t, entity.ValidOfferStatus(entity.OfferPending))
	assert.True(t, entity.ValidOfferStatus(entity.OfferAccepted))
	assert.True(t, entity.ValidOfferStatus(entity.OfferDenied))
	assert.True(t, entity.ValidOfferStatus(entity.OfferNone))
	assert.False(t, entity.ValidOfferStatus(entity.OfferStatus("maybe")))
	assert.False(t, entity.ValidOfferStatus(entity.OfferStatus("")))
}
