package apperror

import "net/http"

// AppError is the unit of error handling across the HTTP layer. Handlers
// attach one to the gin context and the error middleware turns it into a
// JSON response. Err carries the underlying cause for server-side logging
// and is never serialized.
type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation builds the 400 response for a failed form submission. Fields
// maps field name to a human-readable reason so the form UI can highlight
// exact problems.
func Validation(fields map[string]string) *AppError {
	appErr := New(http.StatusBadRequest, "Please correct the highlighted fields.", nil)
	appErr.Fields = fields
	return appErr
}

func Unavailable(message string, err error) *AppError {
	return New(http.StatusServiceUnavailable, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", err)
}
