package request_models

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"beveragebuddy/pkg/utils"
)

// EventKind tells the list view what an edit dialog was submitted for.
type EventKind string

const (
	EventSaved   EventKind = "saved"
	EventDeleted EventKind = "deleted"
)

const (
	ActionSave   = "save"
	ActionDelete = "delete"
)

// DialogEvent is emitted by a submitted edit dialog and consumed by the list
// that opened it.
type DialogEvent[T any] struct {
	Kind   EventKind
	Entity T
}

// FieldErrors maps form field names to user facing messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f+": "+e[f])
	}
	return strings.Join(msgs, "; ")
}

func (e FieldErrors) Unwrap() error {
	return utils.ErrValidation
}

// AsFieldErrors extracts field errors from err, if any.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var messages = map[string]string{
	"required": "This field is required",
	"notblank": "This field is required",
	"min":      "Value is too small or too short",
	"max":      "Value is too large or too long",
	"datetime": "Use the format YYYY-MM-DD",
}

func init() {
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// validateForm runs struct validation and converts failures into
// FieldErrors keyed by the form field name.
func validateForm(form interface{}, custom map[string]string) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if msg, ok := custom[field+"."+fe.Tag()]; ok {
			out[field] = msg
			continue
		}
		if msg, ok := messages[fe.Tag()]; ok {
			out[field] = msg
			continue
		}
		out[field] = "Invalid value"
	}
	return out
}
