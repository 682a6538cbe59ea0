package ports

import (
	"context"

	"github.com/admindesk/user-service/internal/core/domain"
)

// AuthService implements the login flow and principal self-lookup.
type AuthService interface {
	// Login verifies email+password and returns a signed bearer token.
	// Unknown email and wrong password both come back as
	// domain.ErrInvalidCredentials so callers cannot enumerate accounts.
	Login(ctx context.Context, email, password string) (string, error)

	// Profile fetches the user record behind an authenticated principal.
	// Returns domain.ErrUserNotFound when the token outlived the record.
	Profile(ctx context.Context, id string) (*domain.User, error)
}

// TokenService issues and validates signed bearer tokens.
type TokenService interface {
	Issue(principal domain.Principal) (string, error)
	// Validate returns domain.ErrInvalidToken for malformed, tampered,
	// wrongly signed, and expired tokens alike.
	Validate(token string) (*domain.Principal, error)
}

// PasswordHasher is a one-way credential digest.
type PasswordHasher interface {
	// Hash salts per call: hashing the same input twice yields two
	// different digests.
	Hash(plain string) (string, error)
	// Verify reports a mismatch as false, never as an error.
	Verify(plain, hash string) bool
}
