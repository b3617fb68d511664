// Package error defines domain-specific errors for the Household Ledger application.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrSavingsGoalNotFound is returned when a savings goal is not found or soft-deleted.
	ErrSavingsGoalNotFound = errors.New("savings goal not found")

	// ErrNotAuthorizedToModifyGoal is returned when user is not authorized to modify a savings goal.
	ErrNotAuthorizedToModifyGoal = errors.New("not authorized to modify savings goal")

	// ErrInvalidTargetAmount is returned when the target amount is negative or fractional.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidDepositAmount is returned when the deposit amount is not a positive integral value.
	ErrInvalidDepositAmount = errors.New("invalid deposit amount")

	// ErrInvalidTargetMonth is returned when the target year/month pair is out of range.
	ErrInvalidTargetMonth = errors.New("invalid target month")
)

// SavingsErrorCode defines error codes for savings goal errors.
// Format: SGL-XXYYYY where XX is category and YYYY is specific error.
type SavingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSavingsGoalNotFound  SavingsErrorCode = "SGL-010001"
	ErrCodeNotAuthorizedGoal    SavingsErrorCode = "SGL-010002"
	ErrCodeInvalidTargetAmount  SavingsErrorCode = "SGL-010003"
	ErrCodeInvalidDepositAmount SavingsErrorCode = "SGL-010004"
	ErrCodeInvalidTargetMonth   SavingsErrorCode = "SGL-010005"
	ErrCodeMissingGoalFields    SavingsErrorCode = "SGL-010006"
)

// SavingsError represents a savings goal error with code and message.
type SavingsError struct {
	Code    SavingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsError) Unwrap() error {
	return e.Err
}

// NewSavingsError creates a new SavingsError with the given code and message.
func NewSavingsError(code SavingsErrorCode, message string, err error) *SavingsError {
	return &SavingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
