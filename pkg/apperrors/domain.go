package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a missing-record error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate-record error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrUpstreamRejected surfaces an identity-federation failure verbatim as a
// rejected login attempt. The upstream message is not retried or rewritten.
func ErrUpstreamRejected(message string) *AppError {
	return New(CodeExternalServiceError, "federation", message, http.StatusUnauthorized)
}

// --- Uploads & documents ---

// ErrFileTooLarge: the file exceeds the configured upload limit.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrUnsupportedFileType: the MIME type is outside the allow-list.
var ErrUnsupportedFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// ErrInvalidReviewDecision: decision is neither verify nor reject.
var ErrInvalidReviewDecision = New(
	CodeValidationFailed,
	"validation",
	"Review decision must be 'verify' or 'reject'",
	http.StatusBadRequest,
)

// --- Auth & account status ---

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserInactive = New(
	CodeForbidden,
	"auth",
	"Your account has been deactivated",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Profile ---

// ErrMarksOutOfRange: marks must lie in [0,100] when present.
var ErrMarksOutOfRange = New(
	CodeValidationFailed,
	"validation",
	"Marks must be between 0 and 100",
	http.StatusBadRequest,
)
