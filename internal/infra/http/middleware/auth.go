package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/usecase"
)

type contextKey string

const userContextKey contextKey = "current_user"

// RequireUser resolves the bearer token against the auth provider and puts
// the account on the request context. Requests without a valid token never
// reach the handler.
func RequireUser(auth usecase.AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, `{"code":"unauthorized","message":"missing bearer token"}`, http.StatusUnauthorized)
				return
			}

			user, err := auth.CurrentUser(r.Context(), token)
			if err != nil {
				http.Error(w, `{"code":"unauthorized","message":"invalid or expired token"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entity.User)
	return user, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
