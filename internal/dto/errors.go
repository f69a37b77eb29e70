package dto

import "errors"

var (
	// ErrNotAuthenticated covers missing or invalid credentials.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotAuthorized covers policy denials for an authenticated actor.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrValidation covers malformed or constraint-violating payloads.
	ErrValidation = errors.New("validation failed")
	// ErrConflict covers uniqueness violations.
	ErrConflict = errors.New("conflict")
	// ErrNotFound covers resource lookup misses.
	ErrNotFound = errors.New("not found")
	// ErrInternalFailure covers everything the caller cannot act on.
	ErrInternalFailure = errors.New("internal failure")
)
