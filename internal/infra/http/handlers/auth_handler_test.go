package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/infra/http/handlers"
	"github.com/brickmate/leadbook/internal/infra/integration/supabase"
	"github.com/brickmate/leadbook/internal/usecase"
)

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

func postAuth(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	assert.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignInSuccess(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("SignIn", mock.Anything, "joe@example.com", "hunter22").Return(&usecase.AuthSession{
		AccessToken: "tok",
		User:        entity.User{ID: "user-1", Email: "joe@example.com"},
	}, nil)

	h := handlers.NewAuthHandler(auth, new(MockUserRepository))

	rec := postAuth(t, h.HandleSignIn, map[string]string{
		"email":    "joe@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var session usecase.AuthSession
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "tok", session.AccessToken)
}

func TestSignInBadCredentialsIs401(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("SignIn", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, supabase.ErrInvalidCredentials)

	h := handlers.NewAuthHandler(auth, new(MockUserRepository))

	rec := postAuth(t, h.HandleSignIn, map[string]string{
		"email":    "joe@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignInMissingFieldsIs400(t *testing.T) {
	auth := new(MockAuthService)
	h := handlers.NewAuthHandler(auth, new(MockUserRepository))

	rec := postAuth(t, h.HandleSignIn, map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	auth.AssertNotCalled(t, "SignIn")
}

func TestSignUpCreatesProfile(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("SignUp", mock.Anything, "ann@example.com", "str0ngpass", "Ann Lee").Return(&usecase.AuthSession{
		AccessToken: "tok",
		User:        entity.User{ID: "user-2", Email: "ann@example.com", FullName: "Ann Lee"},
	}, nil)

	users := new(MockUserRepository)
	users.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	h := handlers.NewAuthHandler(auth, users)

	rec := postAuth(t, h.HandleSignUp, map[string]string{
		"email":     "ann@example.com",
		"password":  "str0ngpass",
		"full_name": "Ann Lee",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	users.AssertCalled(t, "Upsert", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == "user-2" && u.Email == "ann@example.com"
	}))
}

func TestSignUpDuplicateEmailIs409(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, supabase.ErrEmailInUse)

	h := handlers.NewAuthHandler(auth, new(MockUserRepository))

	rec := postAuth(t, h.HandleSignUp, map[string]string{
		"email":     "dup@example.com",
		"password":  "str0ngpass",
		"full_name": "Dup User",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignUpWeakPasswordIs422(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, supabase.ErrWeakPassword)

	h := handlers.NewAuthHandler(auth, new(MockUserRepository))

	rec := postAuth(t, h.HandleSignUp, map[string]string{
		"email":     "ann@example.com",
		"password":  "12345678",
		"full_name": "Ann Lee",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGoogleSignInReturnsRedirectURL(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("ProviderSignInURL", "google", "https://app.example.com/back").
		Return("https://auth.example.com/authorize?provider=google")

	h := handlers.NewAuthHandler(auth, new(MockUserRepository))

	req := httptest.NewRequest(http.MethodGet, "/?redirect_to=https%3A%2F%2Fapp.example.com%2Fback", nil)
	rec := httptest.NewRecorder()
	h.HandleGoogleSignIn(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		URL string `json:"url"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.URL, "provider=google")
}
