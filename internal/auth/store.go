package auth

import (
	"fmt"

	"github.com/CareVault/CV-Backend/internal/apperr"
)

// MinPasswordLength is the floor enforced at signup.
const MinPasswordLength = 8

// UserStore is the credential store. It owns user identity and password
// verification; the raw password is hashed on the way in and never stored
// or returned.
type UserStore interface {
	// Create validates the fields, hashes rawPassword and persists the user.
	// Returns apperr.ErrValidation / apperr.ErrWeakPassword on bad input and
	// apperr.ErrEmailTaken when the email is already registered.
	Create(email, name, rawPassword string) (*User, error)

	// Verify looks the user up by email and compares rawPassword against the
	// stored hash. Returns apperr.ErrNotFound for an unknown email. On a hash
	// mismatch it returns apperr.ErrInvalidPassword together with the matched
	// user, so callers can record which account was targeted; the public
	// response must not distinguish the two failures.
	Verify(email, rawPassword string) (*User, error)

	// FindByID returns the user or apperr.ErrNotFound.
	FindByID(id uint) (*User, error)
}

func validateNewUser(email, name, rawPassword string) error {
	if email == "" {
		return fmt.Errorf("missing email: %w", apperr.ErrValidation)
	}
	if name == "" {
		return fmt.Errorf("missing name: %w", apperr.ErrValidation)
	}
	if rawPassword == "" {
		return fmt.Errorf("missing password: %w", apperr.ErrValidation)
	}
	if len(rawPassword) < MinPasswordLength {
		return apperr.ErrWeakPassword
	}
	return nil
}
