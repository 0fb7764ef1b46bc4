package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrBackendUnavailable is returned when the user lookup itself fails.
	ErrBackendUnavailable = errors.New("credential backend unavailable")

	// ErrMissingCredential is returned when a request carries no bearer token.
	ErrMissingCredential = errors.New("no credential supplied")

	// ErrInvalidOrExpiredCredential is returned when a bearer token fails
	// signature verification or has expired.
	ErrInvalidOrExpiredCredential = errors.New("invalid or expired credential")
)
