package usecase

import (
	"context"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/infra/queue"
)

// PropertyStoreInterface is the flattened snake_case projection of a lead,
// CRUD by id scoped to the owning user. The archived flag carries the
// soft-delete state across restarts.
type PropertyStoreInterface interface {
	Upsert(ctx context.Context, p *entity.Property, archived bool) error
	FindAllByUser(ctx context.Context, userID string) (active, archived []entity.Property, err error)
	Delete(ctx context.Context, userID, id string) error
}

type UserRepositoryInterface interface {
	Upsert(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthSession is what the auth provider hands back on a successful sign-in.
type AuthSession struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         entity.User `json:"user"`
}

type AuthServiceInterface interface {
	SignIn(ctx context.Context, email, password string) (*AuthSession, error)
	SignUp(ctx context.Context, email, password, fullName string) (*AuthSession, error)
	ProviderSignInURL(provider, redirectTo string) string
	SignOut(ctx context.Context, accessToken string) error
	CurrentUser(ctx context.Context, accessToken string) (*entity.User, error)
}

type QueueProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}

type EmailService interface {
	SendOfferAccepted(to, address string, purchasePrice float64) error
	SendImportSummary(to string, imported, skipped int) error
	SendDigest(to string, leads []entity.Property) error
}
