package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/infra/queue"
)

// MockPropertyStore
type MockPropertyStore struct {
	mock.Mock
}

func (m *MockPropertyStore) Upsert(ctx context.Context, p *entity.Property, archived bool) error {
	args := m.Called(ctx, p, archived)
	return args.Error(0)
}

func (m *MockPropertyStore) FindAllByUser(ctx context.Context, userID string) ([]entity.Property, []entity.Property, error) {
	args := m.Called(ctx, userID)
	var active, archived []entity.Property
	if args.Get(0) != nil {
		active = args.Get(0).([]entity.Property)
	}
	if args.Get(1) != nil {
		archived = args.Get(1).([]entity.Property)
	}
	return active, archived, args.Error(2)
}

func (m *MockPropertyStore) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOfferAccepted(to, address string, purchasePrice float64) error {
	args := m.Called(to, address, purchasePrice)
	return args.Error(0)
}

func (m *MockEmailService) SendImportSummary(to string, imported, skipped int) error {
	args := m.Called(to, imported, skipped)
	return args.Error(0)
}

func (m *MockEmailService) SendDigest(to string, leads []entity.Property) error {
	args := m.Called(to, leads)
	return args.Error(0)
}
