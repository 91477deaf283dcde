package utils

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrValidation       = errors.New("validation failed")
	ErrNotPersisted     = errors.New("entity has not been saved yet")
	ErrInvalidID        = errors.New("invalid id parameter")
	ErrDatabaseError    = errors.New("database error")
)
