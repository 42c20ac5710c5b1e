package apperrors

import (
	"fmt"
	"net/http"
)

// Factories for the consultation domain.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

// ErrInvalidTransition rejects a status change not listed in the
// transition table. The consultation is left untouched.
func ErrInvalidTransition(from, to string) *AppError {
	return New(
		CodeInvalidTransition,
		"consultation",
		fmt.Sprintf("Cannot transition consultation from %s to %s", from, to),
		http.StatusBadRequest,
	)
}

// ErrConflict surfaces a lost concurrent race as a retryable 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

var ErrOutsideCooldown = New(
	CodeOutsideCooldown,
	"reschedule",
	"New date must be at least 3 days from today",
	http.StatusBadRequest,
)

var ErrOutsideOfficeHours = New(
	CodeOutsideOfficeHours,
	"reschedule",
	"New time is outside the lawyer's office hours",
	http.StatusBadRequest,
)

var ErrReceiptRequired = New(
	CodeReceiptRequired,
	"payment",
	"No payment receipt has been submitted for this consultation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"You are not allowed to perform this operation",
	http.StatusForbidden,
)
