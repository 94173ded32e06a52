package database

import (
	"context"
	"database/sql"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/logger"
)

// PropertyRepository persists leads in the flattened snake_case projection
// the original store used; those column names must not change. The archived
// flag and the amortization term are the only additions.
type PropertyRepository struct {
	DB *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

const propertyColumns = `
	id, user_id, address, realtor_name, realtor_number,
	asking_price, purchase_price, interest, amortization, down_payment, rent,
	monthly_insurance, monthly_property_tax, monthly_hoa, monthly_other,
	cap_ex_percentage, management_percentage, vacancy_percentage,
	monthly_payment, cash_flow, cash_on_cash_return,
	contacted, offer_status, notes, image_url, created_at`

func (r *PropertyRepository) Upsert(ctx context.Context, p *entity.Property, archived bool) error {
	query := `
		INSERT INTO properties (` + propertyColumns + `, archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		ON CONFLICT (id) DO UPDATE SET
			address = EXCLUDED.address,
			realtor_name = EXCLUDED.realtor_name,
			realtor_number = EXCLUDED.realtor_number,
			asking_price = EXCLUDED.asking_price,
			purchase_price = EXCLUDED.purchase_price,
			interest = EXCLUDED.interest,
			amortization = EXCLUDED.amortization,
			down_payment = EXCLUDED.down_payment,
			rent = EXCLUDED.rent,
			monthly_insurance = EXCLUDED.monthly_insurance,
			monthly_property_tax = EXCLUDED.monthly_property_tax,
			monthly_hoa = EXCLUDED.monthly_hoa,
			monthly_other = EXCLUDED.monthly_other,
			cap_ex_percentage = EXCLUDED.cap_ex_percentage,
			management_percentage = EXCLUDED.management_percentage,
			vacancy_percentage = EXCLUDED.vacancy_percentage,
			monthly_payment = EXCLUDED.monthly_payment,
			cash_flow = EXCLUDED.cash_flow,
			cash_on_cash_return = EXCLUDED.cash_on_cash_return,
			contacted = EXCLUDED.contacted,
			offer_status = EXCLUDED.offer_status,
			notes = EXCLUDED.notes,
			image_url = EXCLUDED.image_url,
			created_at = EXCLUDED.created_at,
			archived = EXCLUDED.archived
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.UserID, p.Address, p.RealtorName, p.RealtorNumber,
		p.AskingPrice, p.PurchasePrice, p.Interest, p.Amortization, p.DownPayment, p.Rent,
		p.MonthlyInsurance, p.MonthlyPropertyTax, p.MonthlyHOA, p.MonthlyOther,
		p.CapExPercentage, p.ManagementPercentage, p.VacancyPercentage,
		p.MonthlyPayment, p.CashFlow, p.CashOnCashReturn,
		p.Contacted, string(p.OfferStatus), p.Notes, nullString(p.ImageURL), p.CreatedAt,
		archived,
	)
	if err != nil {
		logger.Log.Errorf("property upsert failed: %v", err)
		return err
	}
	return nil
}

func (r *PropertyRepository) FindAllByUser(ctx context.Context, userID string) (active, archived []entity.Property, err error) {
	query := `
		SELECT ` + propertyColumns + `, archived
		FROM properties
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p entity.Property
		var offerStatus string
		var imageURL sql.NullString
		var isArchived bool

		err = rows.Scan(
			&p.ID, &p.UserID, &p.Address, &p.RealtorName, &p.RealtorNumber,
			&p.AskingPrice, &p.PurchasePrice, &p.Interest, &p.Amortization, &p.DownPayment, &p.Rent,
			&p.MonthlyInsurance, &p.MonthlyPropertyTax, &p.MonthlyHOA, &p.MonthlyOther,
			&p.CapExPercentage, &p.ManagementPercentage, &p.VacancyPercentage,
			&p.MonthlyPayment, &p.CashFlow, &p.CashOnCashReturn,
			&p.Contacted, &offerStatus, &p.Notes, &imageURL, &p.CreatedAt,
			&isArchived,
		)
		if err != nil {
			return nil, nil, err
		}

		p.OfferStatus = entity.OfferStatus(offerStatus)
		if !entity.ValidOfferStatus(p.OfferStatus) {
			p.OfferStatus = entity.OfferNone
		}
		if imageURL.Valid {
			p.ImageURL = imageURL.String
		}

		if isArchived {
			archived = append(archived, p)
		} else {
			active = append(active, p)
		}
	}

	return active, archived, rows.Err()
}

// FindDigestLeads returns every active lead whose owner has not reached out
// yet, grouped by the owner's email address.
func (r *PropertyRepository) FindDigestLeads(ctx context.Context) (map[string][]entity.Property, error) {
	query := `
		SELECT u.email, p.id, p.user_id, p.address, p.realtor_name, p.realtor_number, p.created_at
		FROM properties p
		JOIN users u ON u.id = p.user_id
		WHERE p.archived = FALSE AND p.contacted = FALSE
		ORDER BY u.email, p.created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byEmail := make(map[string][]entity.Property)
	for rows.Next() {
		var email string
		var p entity.Property
		if err := rows.Scan(&email, &p.ID, &p.UserID, &p.Address, &p.RealtorName, &p.RealtorNumber, &p.CreatedAt); err != nil {
			return nil, err
		}
		byEmail[email] = append(byEmail[email], p)
	}

	return byEmail, rows.Err()
}

func (r *PropertyRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM properties WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
