package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/usecase"
)

// Descriptive auth failures. These are the only errors in the system meant
// for user-visible display.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password does not meet the minimum requirements")
	ErrAuthCancelled      = errors.New("sign-in was cancelled")
)

// Client talks to the Supabase GoTrue REST API.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*usecase.AuthSession, error) {
	endpoint := fmt.Sprintf("%s/auth/v1/token?grant_type=password", c.baseURL)
	payload := credentialsRequest{Email: email, Password: password}

	var session sessionResponse
	if err := c.post(ctx, endpoint, "", payload, &session); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.status == http.StatusBadRequest {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return toSession(session), nil
}

func (c *Client) SignUp(ctx context.Context, email, password, fullName string) (*usecase.AuthSession, error) {
	endpoint := fmt.Sprintf("%s/auth/v1/signup", c.baseURL)
	payload := credentialsRequest{
		Email:    email,
		Password: password,
		Data:     map[string]string{"full_name": fullName},
	}

	var session sessionResponse
	if err := c.post(ctx, endpoint, "", payload, &session); err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			switch apiErr.code {
			case "user_already_exists", "email_exists":
				return nil, ErrEmailInUse
			case "weak_password":
				return nil, ErrWeakPassword
			}
			if apiErr.status == http.StatusUnprocessableEntity {
				return nil, ErrWeakPassword
			}
		}
		return nil, err
	}

	session.User.UserMetadata = map[string]string{"full_name": fullName}
	return toSession(session), nil
}

// ProviderSignInURL builds the OAuth redirect for provider sign-in (Google).
// The browser drives the rest of the flow; a cancelled consent screen comes
// back without a token and surfaces as ErrAuthCancelled downstream.
func (c *Client) ProviderSignInURL(provider, redirectTo string) string {
	q := url.Values{}
	q.Set("provider", provider)
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	return fmt.Sprintf("%s/auth/v1/authorize?%s", c.baseURL, q.Encode())
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	endpoint := fmt.Sprintf("%s/auth/v1/logout", c.baseURL)
	return c.post(ctx, endpoint, accessToken, struct{}{}, nil)
}

func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*entity.User, error) {
	endpoint := fmt.Sprintf("%s/auth/v1/user", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	return toUser(user), nil
}

func (c *Client) post(ctx context.Context, endpoint, accessToken string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	c.setHeaders(req, accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if accessToken == "" {
		accessToken = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
}

type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("auth provider error (status %d): %s", e.status, e.message)
}

func decodeError(resp *http.Response) error {
	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &apiError{status: resp.StatusCode, code: body.Code, message: body.message()}
}

func toSession(s sessionResponse) *usecase.AuthSession {
	return &usecase.AuthSession{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		User:         *toUser(s.User),
	}
}

func toUser(u userResponse) *entity.User {
	user := &entity.User{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.UserMetadata["full_name"],
	}
	if t, err := time.Parse(time.RFC3339, u.CreatedAt); err == nil {
		user.CreatedAt = t
	}
	return user
}
