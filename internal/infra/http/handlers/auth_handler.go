package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/brickmate/leadbook/internal/infra/integration/supabase"
	"github.com/brickmate/leadbook/internal/usecase"
)

var validate = validator.New()

type AuthHandler struct {
	Auth  usecase.AuthServiceInterface
	Users usecase.UserRepositoryInterface
}

func NewAuthHandler(auth usecase.AuthServiceInterface, users usecase.UserRepositoryInterface) *AuthHandler {
	return &AuthHandler{Auth: auth, Users: users}
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
}

func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "email and password are required")
		return
	}

	session, err := h.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondAuthError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "email, password (8+ chars) and full_name are required")
		return
	}

	session, err := h.Auth.SignUp(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		respondAuthError(w, err)
		return
	}

	// Keep a profile row next to the auth account, mirroring what the
	// provider knows.
	profile := session.User
	if err := h.Users.Upsert(r.Context(), &profile); err == nil {
		session.User = profile
	}

	respondJSON(w, http.StatusCreated, session)
}

type providerURLResponse struct {
	URL string `json:"url"`
}

func (h *AuthHandler) HandleGoogleSignIn(w http.ResponseWriter, r *http.Request) {
	redirectTo := r.URL.Query().Get("redirect_to")
	respondJSON(w, http.StatusOK, providerURLResponse{
		URL: h.Auth.ProviderSignInURL("google", redirectTo),
	})
}

func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if len(token) > 7 {
		token = token[7:] // strip "Bearer "
	}

	if err := h.Auth.SignOut(r.Context(), token); err != nil {
		respondAuthError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondAuthError maps provider failures onto the only user-visible error
// class in the system.
func respondAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, supabase.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, supabase.ErrEmailInUse):
		respondError(w, http.StatusConflict, "email_in_use", err.Error())
	case errors.Is(err, supabase.ErrWeakPassword):
		respondError(w, http.StatusUnprocessableEntity, "weak_password", err.Error())
	case errors.Is(err, supabase.ErrAuthCancelled):
		respondError(w, http.StatusBadRequest, "auth_cancelled", err.Error())
	default:
		respondError(w, http.StatusBadGateway, "auth_unavailable", "the auth provider did not respond")
	}
}
