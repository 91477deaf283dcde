package services

import (
	"errors"
	"fmt"

	"beveragebuddy/pkg/utils"
)

// wrapRepoError keeps domain errors intact and marks everything else as a
// database failure.
func wrapRepoError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrCategoryNotFound),
		errors.Is(err, utils.ErrReviewNotFound),
		errors.Is(err, utils.ErrValidation):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, utils.ErrDatabaseError, err)
	}
}

func searchHeader(search, fallback string) string {
	if search == "" {
		return fallback
	}
	return "Search for “" + search + "”"
}
