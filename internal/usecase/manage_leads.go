package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/infra/queue"
	"github.com/brickmate/leadbook/internal/logger"
)

// ManageLeadsUseCase exposes the lead command set to the HTTP layer. The
// in-memory LeadBook per user is authoritative; every mutation is written
// through to the store afterwards (last write wins, no rollback) and most
// emit an event on the leads exchange. Event publishing is best-effort.
type ManageLeadsUseCase struct {
	Store    PropertyStoreInterface
	Producer QueueProducerInterface

	mu    sync.Mutex
	books map[string]*LeadBook
}

func NewManageLeadsUseCase(store PropertyStoreInterface, producer QueueProducerInterface) *ManageLeadsUseCase {
	return &ManageLeadsUseCase{
		Store:    store,
		Producer: producer,
		books:    make(map[string]*LeadBook),
	}
}

// book returns the user's LeadBook, loading it from the store on first use.
func (uc *ManageLeadsUseCase) book(ctx context.Context, userID string) (*LeadBook, error) {
	uc.mu.Lock()
	if b, ok := uc.books[userID]; ok {
		uc.mu.Unlock()
		return b, nil
	}
	uc.mu.Unlock()

	active, archived, err := uc.Store.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if b, ok := uc.books[userID]; ok {
		return b, nil
	}
	b := NewLeadBook()
	b.Seed(active, archived)
	uc.books[userID] = b
	return b, nil
}

func (uc *ManageLeadsUseCase) ListLeads(ctx context.Context, userID string) (active, archived []entity.Property, err error) {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return b.Active(), b.Archived(), nil
}

func (uc *ManageLeadsUseCase) FindLead(ctx context.Context, userID, id string) (*entity.Property, error) {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, err
	}
	p, ok := b.Find(id)
	if !ok {
		return nil, entity.ErrPropertyNotFound
	}
	return p, nil
}

func (uc *ManageLeadsUseCase) AddProperty(ctx context.Context, userID string, patch PropertyPatch) (*entity.Property, error) {
	p, err := entity.NewProperty(userID, patch.Address)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_PROPERTY", Message: err.Error()}
	}
	patch.Apply(p)

	if err := uc.createLead(ctx, userID, p); err != nil {
		return nil, err
	}

	uc.publish(ctx, queue.LeadEventPayload{
		Event:         queue.EventLeadCreated,
		UserID:        userID,
		PropertyID:    p.ID,
		Address:       p.Address,
		PurchasePrice: p.PurchasePrice,
		OccurredAt:    time.Now().UTC(),
	})
	return p, nil
}

// createLead runs the create transition and persists, without emitting
// events. Manual adds and CSV import both funnel through here.
func (uc *ManageLeadsUseCase) createLead(ctx context.Context, userID string, p *entity.Property) error {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return err
	}
	if !b.Create(p) {
		return &DomainError{Code: "DUPLICATE_ID", Message: "a lead with this id already exists"}
	}
	return uc.Store.Upsert(ctx, p, false)
}

func (uc *ManageLeadsUseCase) EditProperty(ctx context.Context, userID, id string, patch PropertyPatch) (*entity.Property, error) {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, ok := b.Find(id)
	if !ok {
		return nil, nil
	}

	updated := *existing
	patch.Apply(&updated)
	p, _ := b.Edit(id, updated)
	return p, uc.persist(ctx, b, p)
}

func (uc *ManageLeadsUseCase) DeleteProperty(ctx context.Context, userID, id string) (*entity.Property, error) {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, ok := b.Delete(id)
	if !ok {
		return nil, nil
	}
	if err := uc.Store.Upsert(ctx, p, true); err != nil {
		return nil, err
	}

	uc.publish(ctx, queue.LeadEventPayload{
		Event:      queue.EventLeadArchived,
		UserID:     userID,
		PropertyID: p.ID,
		Address:    p.Address,
		OccurredAt: time.Now().UTC(),
	})
	return p, nil
}

func (uc *ManageLeadsUseCase) RestoreProperty(ctx context.Context, userID, id string) (*entity.Property, error) {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, ok := b.Restore(id)
	if !ok {
		return nil, nil
	}
	if err := uc.Store.Upsert(ctx, p, false); err != nil {
		return nil, err
	}

	uc.publish(ctx, queue.LeadEventPayload{
		Event:      queue.EventLeadRestored,
		UserID:     userID,
		PropertyID: p.ID,
		Address:    p.Address,
		OccurredAt: time.Now().UTC(),
	})
	return p, nil
}

func (uc *ManageLeadsUseCase) PurgeProperty(ctx context.Context, userID, id string) (*entity.Property, error) {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, ok := b.Purge(id)
	if !ok {
		return nil, nil
	}
	if err := uc.Store.Delete(ctx, userID, id); err != nil {
		return nil, err
	}

	uc.publish(ctx, queue.LeadEventPayload{
		Event:      queue.EventLeadPurged,
		UserID:     userID,
		PropertyID: p.ID,
		Address:    p.Address,
		OccurredAt: time.Now().UTC(),
	})
	return p, nil
}

func (uc *ManageLeadsUseCase) SetOfferStatus(ctx context.Context, userID, id string, status entity.OfferStatus) (*entity.Property, error) {
	if !entity.ValidOfferStatus(status) {
		return nil, &DomainError{Code: "INVALID_OFFER_STATUS", Message: "offer status must be pending, accepted, denied or none"}
	}

	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, ok := b.SetOfferStatus(id, status)
	if !ok {
		return nil, nil
	}
	if err := uc.persist(ctx, b, p); err != nil {
		return nil, err
	}

	uc.publish(ctx, queue.LeadEventPayload{
		Event:         queue.EventOfferStatusChanged,
		UserID:        userID,
		PropertyID:    p.ID,
		Address:       p.Address,
		OfferStatus:   string(status),
		PurchasePrice: p.PurchasePrice,
		OccurredAt:    time.Now().UTC(),
	})
	return p, nil
}

func (uc *ManageLeadsUseCase) SetContacted(ctx context.Context, userID, id string, contacted bool) (*entity.Property, error) {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, ok := b.SetContacted(id, contacted)
	if !ok {
		return nil, nil
	}
	return p, uc.persist(ctx, b, p)
}

func (uc *ManageLeadsUseCase) SetCreatedAt(ctx context.Context, userID, id string, createdAt time.Time) (*entity.Property, error) {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, ok := b.SetCreatedAt(id, createdAt)
	if !ok {
		return nil, nil
	}
	return p, uc.persist(ctx, b, p)
}

func (uc *ManageLeadsUseCase) UpdateNotes(ctx context.Context, userID, id, notes string) (*entity.Property, error) {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, ok := b.SetNotes(id, notes)
	if !ok {
		return nil, nil
	}
	return p, uc.persist(ctx, b, p)
}

// RefreshFinancing recomputes the stored derived fields from the current
// financing inputs. This is the only place the snapshots get rewritten; a
// value the user typed over stays put until the next refresh.
func (uc *ManageLeadsUseCase) RefreshFinancing(ctx context.Context, userID, id string) (*entity.Property, error) {
	b, err := uc.book(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, ok := b.Find(id)
	if !ok {
		return nil, nil
	}
	if existing.Amortization <= 0 {
		return nil, &DomainError{Code: "INVALID_TERM", Message: "amortization term must be greater than zero"}
	}

	loan := CalculateLoan(LoanInput{
		PurchasePrice:     existing.PurchasePrice,
		DownPayment:       existing.DownPayment,
		InterestRate:      existing.Interest,
		AmortizationYears: existing.Amortization,
	})
	returns := CalculateReturns(ReturnsInput{
		MonthlyRent:          existing.Rent,
		MonthlyPayment:       loan.MonthlyPayment,
		DownPayment:          existing.DownPayment,
		MonthlyInsurance:     existing.MonthlyInsurance,
		MonthlyPropertyTax:   existing.MonthlyPropertyTax,
		MonthlyHOA:           existing.MonthlyHOA,
		MonthlyOther:         existing.MonthlyOther,
		CapExPercentage:      existing.CapExPercentage,
		ManagementPercentage: existing.ManagementPercentage,
		VacancyPercentage:    existing.VacancyPercentage,
	})

	updated := *existing
	updated.MonthlyPayment = loan.MonthlyPayment
	updated.CashFlow = returns.MonthlyCashFlow
	updated.CashOnCashReturn = returns.CashOnCashReturn

	p, _ := b.Edit(id, updated)
	return p, uc.persist(ctx, b, p)
}

func (uc *ManageLeadsUseCase) persist(ctx context.Context, b *LeadBook, p *entity.Property) error {
	archived, _ := b.IsArchived(p.ID)
	return uc.Store.Upsert(ctx, p, archived)
}

func (uc *ManageLeadsUseCase) publish(ctx context.Context, payload queue.LeadEventPayload) {
	if uc.Producer == nil {
		return
	}
	if err := uc.Producer.PublishLeadEvent(ctx, payload); err != nil {
		logger.Log.Warnf("failed to publish %s for property %s: %s", payload.Event, payload.PropertyID, err)
	}
}
