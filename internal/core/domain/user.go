package domain

import (
	"errors"
	"strings"
	"time"
)

// RoleAdmin grants every operation regardless of what a route requires.
const RoleAdmin = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
)

// User is a stored account record. PasswordHash never leaves the process:
// the json tag drops it from every response body.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Access       []string  `json:"access"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the identity carried inside a token. Immutable once issued;
// it reflects the user record as of login, not its current state.
type Principal struct {
	ID     string   `json:"id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Access []string `json:"access"`
}

// EmailEqual compares two addresses the way the store indexes them:
// case-insensitively.
func EmailEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
