// Package apperrors defines the error taxonomy shared by services and handlers.
// Handlers translate these sentinels to HTTP status codes with errors.Is;
// anything else is treated as a storage error and answered with a generic 500.
package apperrors

import "errors"

var (
	// ErrValidation marks missing or malformed request fields
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a lookup that matched no row
	ErrNotFound = errors.New("not found")
	// ErrConflict marks an insert that collided with an existing row
	ErrConflict = errors.New("already exists")
	// ErrInsufficientData marks a quiz request the level's word pool cannot satisfy
	ErrInsufficientData = errors.New("insufficient data")
)
