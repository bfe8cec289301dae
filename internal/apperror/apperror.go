package apperror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Error codes returned inside the JSON error envelope.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeForbidden          = "FORBIDDEN"
)

// Error is the typed failure every service returns to its handler. Handlers
// never leak raw storage errors to HTTP responses; anything unrecognized is
// reported as STORAGE_UNAVAILABLE.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg, Status: http.StatusNotFound}
}

func Validation(msg string) *Error {
	return &Error{Code: CodeValidationFailed, Message: msg, Status: http.StatusBadRequest}
}

func DuplicateEmail() *Error {
	return &Error{Code: CodeDuplicateEmail, Message: "email is already registered", Status: http.StatusConflict}
}

func InvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "invalid email or password", Status: http.StatusUnauthorized}
}

func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg, Status: http.StatusForbidden}
}

func Storage(err error) *Error {
	return &Error{Code: CodeStorageUnavailable, Message: "storage unavailable: " + err.Error(), Status: http.StatusServiceUnavailable}
}

// Wrap maps arbitrary errors onto the taxonomy. gorm's record-not-found
// becomes NotFound with the supplied message; anything else is treated as a
// storage failure.
func Wrap(err error, notFoundMsg string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFoundMsg)
	}
	return Storage(err)
}

// JSON writes the error envelope to the response.
func JSON(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Storage(err)
	}
	c.JSON(appErr.Status, gin.H{"error": appErr})
}
