package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup by id yields no record.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is returned when a write breaks a uniqueness or
	// foreign key constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrConstraintViolation)
)
