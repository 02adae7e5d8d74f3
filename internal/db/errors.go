package db

import (
	"errors"
	"fmt"
)

// Error taxonomy for the data layer. Callers branch with errors.Is;
// anything not wrapping one of these is an opaque storage failure.
var (
	// ErrValidation covers malformed input rejected before any storage
	// mutation is attempted.
	ErrValidation = errors.New("invalid input")

	// ErrConflict covers uniqueness violations (UHID, mobile, username),
	// reported distinctly from validation failures.
	ErrConflict = errors.New("already exists")

	// ErrNotFound covers lookups of records that do not exist.
	ErrNotFound = errors.New("not found")

	// ErrBadCredentials is returned for any failed login without revealing
	// which half of the credential pair was wrong.
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrSessionActive is returned when a parent tries to start a second
	// concurrent session.
	ErrSessionActive = fmt.Errorf("%w: active session", ErrConflict)
)
