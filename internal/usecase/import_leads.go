package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/logger"
)

// ImportLeadsUseCase turns already-parsed CSV rows into leads. Every value is
// coerced, never rejected: unparseable numbers become 0, a missing date
// becomes now. Rows without an address are dropped, as are rows whose address
// matches an active lead at the moment the batch started (duplicates inside
// the same file are not cross-checked against each other). Survivors go
// through the same create transition as a manual add.
type ImportLeadsUseCase struct {
	Leads *ManageLeadsUseCase
	Users UserRepositoryInterface
	Email EmailService
}

func NewImportLeadsUseCase(leads *ManageLeadsUseCase, users UserRepositoryInterface, email EmailService) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{Leads: leads, Users: users, Email: email}
}

func (uc *ImportLeadsUseCase) Execute(ctx context.Context, userID string, rows []map[string]string) (*ImportResult, error) {
	b, err := uc.Leads.book(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Snapshot of the active addresses before any row is committed.
	existing := make(map[string]struct{})
	for _, p := range b.Active() {
		existing[foldAddress(p.Address)] = struct{}{}
	}

	result := &ImportResult{}
	for _, row := range rows {
		p := decodeImportRow(userID, row)

		if p.Address == "" {
			result.SkippedNoAddress++
			continue
		}
		if _, dup := existing[foldAddress(p.Address)]; dup {
			result.SkippedDuplicates++
			continue
		}

		if err := uc.Leads.createLead(ctx, userID, p); err != nil {
			return result, err
		}
		result.Imported++
	}

	uc.sendSummary(ctx, userID, result)
	return result, nil
}

func (uc *ImportLeadsUseCase) sendSummary(ctx context.Context, userID string, result *ImportResult) {
	if uc.Email == nil || uc.Users == nil || result.Imported == 0 {
		return
	}
	user, err := uc.Users.FindByID(ctx, userID)
	if err != nil {
		logger.Log.Warnf("import summary: could not resolve user %s: %s", userID, err)
		return
	}
	skipped := result.SkippedNoAddress + result.SkippedDuplicates
	if err := uc.Email.SendImportSummary(user.Email, result.Imported, skipped); err != nil {
		logger.Log.Warnf("import summary: send failed: %s", err)
	}
}

// decodeImportRow maps one named-field row onto a fresh lead. Offer status is
// always reset to none; import never restores it from the file.
func decodeImportRow(userID string, row map[string]string) *entity.Property {
	return &entity.Property{
		ID:            uuid.New().String(),
		UserID:        userID,
		Address:       strings.TrimSpace(row["address"]),
		RealtorName:   strings.TrimSpace(row["realtorName"]),
		RealtorNumber: strings.TrimSpace(row["realtorNumber"]),
		ImageURL:      strings.TrimSpace(row["imageUrl"]),
		Notes:         strings.TrimSpace(row["notes"]),

		AskingPrice:   parseNumericValue(row["askingPrice"]),
		PurchasePrice: parseNumericValue(row["purchasePrice"]),
		Interest:      parseNumericValue(row["interest"]),
		Amortization:  entity.DefaultAmortizationYears,
		DownPayment:   parseNumericValue(row["downPayment"]),
		Rent:          parseNumericValue(row["rent"]),

		MonthlyInsurance:     parseNumericValue(row["monthlyInsurance"]),
		MonthlyPropertyTax:   parseNumericValue(row["monthlyPropertyTax"]),
		MonthlyHOA:           parseNumericValue(row["monthlyHOA"]),
		MonthlyOther:         parseNumericValue(row["monthlyOther"]),
		CapExPercentage:      parseNumericValue(row["capExPercentage"]),
		ManagementPercentage: parseNumericValue(row["managementPercentage"]),
		VacancyPercentage:    parseNumericValue(row["vacancyPercentage"]),

		MonthlyPayment:   parseNumericValue(row["monthlyPayment"]),
		CashFlow:         parseNumericValue(row["cashFlow"]),
		CashOnCashReturn: parseNumericValue(row["cashOnCashReturn"]),

		Contacted:   strings.EqualFold(strings.TrimSpace(row["contacted"]), "true"),
		OfferStatus: entity.OfferNone,
		CreatedAt:   importTimestamp(row["createdAt"]),
	}
}

var numericStripper = strings.NewReplacer("$", "", ",", "", "%", "")

// parseNumericValue strips currency/percent decoration and parses; anything
// unparseable coerces to 0.
func parseNumericValue(raw string) float64 {
	cleaned := strings.TrimSpace(numericStripper.Replace(raw))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// importTimestamp pins an imported date to noon UTC of its calendar day so a
// timezone shift cannot move it onto a neighboring day. Missing or
// unparseable values fall back to the current instant.
func importTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().UTC()
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02", "01/02/2006", "1/2/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
		}
	}
	return time.Now().UTC()
}
