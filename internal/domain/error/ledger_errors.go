// Package error defines domain-specific errors for the Team Dashboard application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidAmount is returned when a monetary amount is zero, negative or malformed.
	ErrInvalidAmount = errors.New("amount must be a positive integer")

	// ErrEmptyLabel is returned when a required label is empty.
	ErrEmptyLabel = errors.New("label must not be empty")

	// ErrPrerequisiteMissing is returned when income distribution is attempted
	// before any expense has been recorded in the active accounting period.
	ErrPrerequisiteMissing = errors.New("no expense recorded for the active period")

	// ErrInsufficientRemainder is returned when income does not exceed the
	// period's expense total, leaving nothing to distribute.
	ErrInsufficientRemainder = errors.New("income does not exceed period expense total")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTargetNotFound is returned when the withdrawal or query target does not exist.
	ErrTargetNotFound = errors.New("balance target not found")

	// ErrContention is returned when transaction retries are exhausted.
	ErrContention = errors.New("ledger operation failed due to contention")

	// ErrStorageUnavailable is returned when the backing store is unreachable.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnknownPolicy is returned when the configured distribution policy name
	// does not match any registered scheme.
	ErrUnknownPolicy = errors.New("unknown distribution policy")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount  LedgerErrorCode = "LDG-010001"
	ErrCodeEmptyLabel     LedgerErrorCode = "LDG-010002"
	ErrCodeTargetNotFound LedgerErrorCode = "LDG-010003"
	ErrCodeUnknownPolicy  LedgerErrorCode = "LDG-010004"

	// Business-rule errors (02XXXX)
	ErrCodePrerequisiteMissing   LedgerErrorCode = "LDG-020001"
	ErrCodeInsufficientRemainder LedgerErrorCode = "LDG-020002"
	ErrCodeInsufficientFunds     LedgerErrorCode = "LDG-020003"

	// Infrastructure errors (03XXXX)
	ErrCodeContention         LedgerErrorCode = "LDG-030001"
	ErrCodeStorageUnavailable LedgerErrorCode = "LDG-030002"
)

// LedgerError represents a ledger error with code and message. For
// insufficient-funds failures CurrentBalance carries the balance at the
// time of the check so callers can show an actionable message.
type LedgerError struct {
	Code           LedgerErrorCode
	Message        string
	CurrentBalance int64
	Err            error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInsufficientFundsError creates the insufficient-funds error carrying
// the current balance for display.
func NewInsufficientFundsError(message string, currentBalance int64) *LedgerError {
	return &LedgerError{
		Code:           ErrCodeInsufficientFunds,
		Message:        message,
		CurrentBalance: currentBalance,
		Err:            ErrInsufficientFunds,
	}
}
