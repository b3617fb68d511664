// Package error defines domain-specific errors for the Household Ledger application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget row is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetConflict is returned when a write violates the (user, category, month) uniqueness invariant.
	ErrBudgetConflict = errors.New("budget already exists for this category and month")

	// ErrInvalidBudgetAmount is returned when the amount is negative or fractional.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetMonth is returned when the year/month pair is out of range.
	ErrInvalidBudgetMonth = errors.New("invalid budget month")

	// ErrBudgetCategoryNotExpense is returned when a per-category budget targets an income category.
	ErrBudgetCategoryNotExpense = errors.New("budget category must be an expense category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound           BudgetErrorCode = "BGT-010001"
	ErrCodeBudgetConflict           BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetAmount      BudgetErrorCode = "BGT-010003"
	ErrCodeInvalidBudgetMonth       BudgetErrorCode = "BGT-010004"
	ErrCodeBudgetCategoryNotFound   BudgetErrorCode = "BGT-010005"
	ErrCodeBudgetCategoryNotExpense BudgetErrorCode = "BGT-010006"
	ErrCodeMissingBudgetFields      BudgetErrorCode = "BGT-010007"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
