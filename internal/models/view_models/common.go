package view_models

import (
	"time"

	"beveragebuddy/internal/models/request_models"
)

// Toast is a transient notification confirming the outcome of an action.
type Toast struct {
	Message  string
	Duration time.Duration
	Position string
}

func (t Toast) DurationMillis() int64 {
	return t.Duration.Milliseconds()
}

// Column maps a typed row to one rendered table cell. Link marks the
// column whose cell selects the row.
type Column[T any] struct {
	Header string
	Value  func(T) string
	Link   bool
}

// Dialog is the state of an edit dialog rendered on top of a list.
type Dialog[F any] struct {
	Title     string
	Form      F
	Errors    request_models.FieldErrors
	CanDelete bool
}

// Page carries the parts every list page shares.
type Page struct {
	Title    string
	Path     string
	Search   string
	Header   string
	NewLabel string
	Toast    *Toast
}
