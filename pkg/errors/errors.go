package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors shared by repositories, services and handlers.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnsupportedPage = errors.New("unsupported page identifier")
)

// AppError is an error carrying a stable code and the HTTP status it maps to.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// UnsupportedPage creates a 400 error for a page title outside the known
// set of page kinds. The offending title is kept in the message.
func UnsupportedPage(title string) *AppError {
	return &AppError{
		Code:    "UNSUPPORTED_PAGE",
		Message: fmt.Sprintf("invalid page title provided: %s", title),
		Status:  http.StatusBadRequest,
		Err:     ErrUnsupportedPage,
	}
}

// Internal creates a 500 error.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnsupportedPage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
