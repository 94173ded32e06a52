package entity

import (
	"errors"
	"time"
)

var ErrEmailAlreadyExists = errors.New("email already registered")

// User is the profile row kept alongside the auth provider account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
