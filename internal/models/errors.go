package models

import "errors"

// Domain-specific validation errors
var (
	// ErrInvalidRole indicates a role outside the known role set
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidStatus indicates a status outside the edit vocabulary
	ErrInvalidStatus = errors.New("invalid project status")

	// ErrInvalidField indicates a user field that cannot be edited
	ErrInvalidField = errors.New("invalid user field")

	// ErrInvalidRating indicates a rating outside 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
