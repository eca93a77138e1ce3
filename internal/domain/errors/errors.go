package errors

import (
	"net/http"

	"mutualaid/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
//
// The four error families the boundary layer distinguishes map onto HTTP
// codes: validation (400), not found (404), authorization (403),
// conflict (409).
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrPastDeadline = NewBaseError(
		http.StatusBadRequest,
		"PAST_DEADLINE",
		"deadline date must be in the future",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"rating must be between 1 and 5",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"unknown request status",
		"",
	)

	// Not-found errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"help request not found",
		"",
	)

	ErrHelpHistoryNotFound = NewBaseError(
		http.StatusNotFound,
		"HELP_HISTORY_NOT_FOUND",
		"help history entry not found",
		"",
	)

	ErrNoPendingConfirmation = NewBaseError(
		http.StatusNotFound,
		"NO_PENDING_CONFIRMATION",
		"no pending help confirmation found",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"notification not found",
		"",
	)

	// Authorization errors
	ErrNotRequestOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_REQUEST_OWNER",
		"only the request owner may perform this operation",
		"",
	)

	ErrNotNotificationRecipient = NewBaseError(
		http.StatusForbidden,
		"NOT_NOTIFICATION_RECIPIENT",
		"only the notification recipient may perform this operation",
		"",
	)

	// Conflict errors
	ErrOwnRequestResponse = NewBaseError(
		http.StatusConflict,
		"OWN_REQUEST_RESPONSE",
		"you cannot respond to your own request",
		"",
	)

	ErrAlreadyResponded = NewBaseError(
		http.StatusConflict,
		"ALREADY_RESPONDED",
		"you already have an unresolved response to this request",
		"",
	)

	ErrDuplicateReview = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_REVIEW",
		"you already left a review for this request",
		"",
	)

	// General errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
