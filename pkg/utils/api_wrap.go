package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorPage is the view model of the HTML error template.
type ErrorPage struct {
	Title   string
	Code    int
	Message string
	TraceID string
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// StatusForError maps a service error to an HTTP status and a message that
// is safe to show to the user.
func StatusForError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound, "Category not found"
	case errors.Is(err, ErrReviewNotFound):
		return http.StatusNotFound, "Review not found"
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest, "Invalid id"
	case errors.Is(err, ErrNotPersisted):
		return http.StatusBadRequest, "Only saved entries can be deleted"
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func HandleServiceError(c *gin.Context, err error) {
	code, message := StatusForError(err)
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("request failed")
	}
	RespondError(c, code, message)
}

// HandlePageError renders the HTML error page for err.
func HandlePageError(c *gin.Context, err error) {
	code, message := StatusForError(err)
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Str("trace_id", c.GetString("trace_id")).Msg("page failed")
	}
	c.HTML(code, "error.tmpl", ErrorPage{
		Title:   http.StatusText(code),
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}
