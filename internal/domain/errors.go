package domain

import "errors"

// Store errors.
var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("not found")
	ErrNoRowsAffected = errors.New("no rows affected")
)

// Record rule violations.
var (
	ErrInvalidStay   = errors.New("check-out date must be after check-in date")
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")
)
