// Package common defines sentinel errors shared by the Lumina client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUserExists is returned by signup when the email is already registered.
	ErrUserExists = errors.New("user already exists with this email")

	// ErrInvalidCredentials is returned by login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Validation errors raised by the interactive shell before calling services.
	ErrMissingFields    = errors.New("please fill in all fields")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)
