// Package errors provides custom error types for the Nestegg API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryInUse       = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is used by existing budgets or payments", StatusCode: http.StatusConflict}
	ErrCategoryHasChildren = &AppError{Code: "CATEGORY_HAS_CHILDREN", Message: "Category has child categories", StatusCode: http.StatusConflict}
	ErrSelfParentCategory  = &AppError{Code: "SELF_PARENT_CATEGORY", Message: "A category cannot be its own parent", StatusCode: http.StatusBadRequest}
)

// Payment errors.
var (
	ErrPaymentNotFound         = &AppError{Code: "PAYMENT_NOT_FOUND", Message: "Payment not found", StatusCode: http.StatusNotFound}
	ErrPaymentReferenced       = &AppError{Code: "PAYMENT_REFERENCED", Message: "Payment is referenced by a budget; delete with force to remove its snapshots", StatusCode: http.StatusConflict}
	ErrInvalidStatusTransition = &AppError{Code: "INVALID_STATUS_TRANSITION", Message: "Payment status transition is not allowed", StatusCode: http.StatusBadRequest}
	ErrInvalidAmount           = &AppError{Code: "INVALID_AMOUNT", Message: "Invalid amount", StatusCode: http.StatusBadRequest}
	ErrPaymentSnapshotNotFound = &AppError{Code: "PAYMENT_SNAPSHOT_NOT_FOUND", Message: "Payment is not part of this budget category", StatusCode: http.StatusNotFound}
	ErrHouseholdNotFound       = &AppError{Code: "HOUSEHOLD_NOT_FOUND", Message: "Household not found", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrWeeklyBudgetNotFound  = &AppError{Code: "WEEKLY_BUDGET_NOT_FOUND", Message: "Weekly budget not found", StatusCode: http.StatusNotFound}
	ErrDuplicateWeeklyBudget = &AppError{Code: "DUPLICATE_WEEKLY_BUDGET", Message: "A weekly budget already exists for this week", StatusCode: http.StatusBadRequest}
	ErrLedgerEntryNotFound   = &AppError{Code: "LEDGER_ENTRY_NOT_FOUND", Message: "Category is not part of this budget", StatusCode: http.StatusNotFound}
	ErrDuplicateLedgerEntry  = &AppError{Code: "DUPLICATE_LEDGER_ENTRY", Message: "Category is already part of this budget", StatusCode: http.StatusBadRequest}
	ErrMainBudgetNotFound    = &AppError{Code: "MAIN_BUDGET_NOT_FOUND", Message: "Main budget not found", StatusCode: http.StatusNotFound}
	ErrInvalidWeekNumber     = &AppError{Code: "INVALID_WEEK_NUMBER", Message: "Week number is outside the budget period", StatusCode: http.StatusBadRequest}
	ErrInvalidPeriod         = &AppError{Code: "INVALID_PERIOD", Message: "Budget period is invalid", StatusCode: http.StatusBadRequest}
)
