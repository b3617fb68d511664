// Package error defines domain-specific errors for the Household Ledger application.
package error

import "errors"

// Summary and balance domain errors.
var (
	// ErrInvalidPeriod is returned when a year/month pair is out of range.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidDayCount is returned when a recent-balance request asks for a non-positive day count.
	ErrInvalidDayCount = errors.New("day count must be greater than zero")

	// ErrInvalidResyncDate is returned when a re-sync start date is zero or in the future.
	ErrInvalidResyncDate = errors.New("invalid re-sync start date")
)

// SummaryErrorCode defines error codes for summary and balance errors.
// Format: SUM-XXYYYY / BAL-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod     SummaryErrorCode = "SUM-010001"
	ErrCodeInvalidDayCount   SummaryErrorCode = "BAL-010001"
	ErrCodeInvalidResyncDate SummaryErrorCode = "BAL-010002"
)

// SummaryError represents a summary or balance error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
