// Package common defines shared constants and sentinel errors used across
// the bbank layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration / account-save integrity errors.
	ErrorUsernameTaken      = errors.New("username already taken")
	ErrorAccountNumberTaken = errors.New("account number already in use")
	ErrorInvalidPIN         = errors.New("PIN must be 4 digits")
	ErrorBlankField         = errors.New("required field is blank")

	// Account lifecycle errors.
	ErrorBalanceNotZero = errors.New("account balance must be zero before deletion")

	// Session token errors (invalid, malformed or expired).
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session expired")
)
