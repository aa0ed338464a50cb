// Package errors provides standardized error handling for the decision engine.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Input validation: caller-correctable, never retried.
	ErrCodeInvalidIntent    ErrorCode = "INVALID_INTENT"
	ErrCodeValidationFailed ErrorCode = "REQUEST_VALIDATION_FAILED"
	ErrCodeValueOutOfRange  ErrorCode = "VALUE_OUT_OF_RANGE"

	// Upstream data absent: the vendor has not supplied baseline data yet.
	ErrCodeSnapshotNotFound ErrorCode = "SNAPSHOT_NOT_FOUND"
	ErrCodeProfileNotFound  ErrorCode = "PROFILE_NOT_FOUND"

	// Invariant violation: the field catalog and an evaluator disagree.
	ErrCodeFieldSpecMismatch ErrorCode = "FIELDSPEC_MISMATCH"

	// Persistence: retryable, the computed result is discarded.
	ErrCodeSnapshotFetchFailed ErrorCode = "SNAPSHOT_FETCH_FAILED"
	ErrCodeSnapshotSaveFailed  ErrorCode = "SNAPSHOT_SAVE_FAILED"
	ErrCodeDecisionSaveFailed  ErrorCode = "DECISION_SAVE_FAILED"
	ErrCodeFeedbackSaveFailed  ErrorCode = "FEEDBACK_SAVE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// AsStandard extracts a StandardError from err, wrapping unknown errors as a
// non-retryable internal failure so upstream internals never reach the caller.
func AsStandard(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the response status the transport returns.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeInvalidIntent, ErrCodeValidationFailed, ErrCodeValueOutOfRange:
		return http.StatusBadRequest
	case ErrCodeSnapshotNotFound, ErrCodeProfileNotFound:
		return http.StatusUnprocessableEntity
	case ErrCodeSnapshotFetchFailed, ErrCodeSnapshotSaveFailed, ErrCodeDecisionSaveFailed, ErrCodeFeedbackSaveFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is what the end user sees. Invariant violations and unknown
// errors are reported generically; their detail stays in the logs.
func (e *StandardError) PublicMessage() string {
	switch e.Code {
	case ErrCodeFieldSpecMismatch:
		return "The decision could not be evaluated. Please try again later."
	case ErrorCode("INTERNAL_ERROR"):
		return "Something went wrong. Please try again later."
	default:
		return e.Message
	}
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidIntentError creates a non-retryable validation error.
func NewInvalidIntentError(intent string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidIntent,
		Message:   "Unknown decision intent",
		Details:   fmt.Sprintf("intent: %s", intent),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable request validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValueOutOfRangeError creates a non-retryable out-of-range error.
func NewValueOutOfRangeError(field, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValueOutOfRange,
		Message:   fmt.Sprintf("Value for %s is out of range", field),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSnapshotNotFoundError tells the vendor to report baseline financials first.
func NewSnapshotNotFoundError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSnapshotNotFound,
		Message:   "No financial snapshot on file. Report your monthly revenue, expenses and savings before requesting a decision.",
		Details:   fmt.Sprintf("userId: %s", userID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileNotFoundError tells the vendor to complete their business profile first.
func NewProfileNotFoundError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileNotFound,
		Message:   "No business profile on file. Complete your business profile before requesting a decision.",
		Details:   fmt.Sprintf("userId: %s", userID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFieldSpecMismatchError reports a catalog/evaluator disagreement. This is
// an internal defect: the resolver said every field was answered but the
// evaluator still found one missing or invalid.
func NewFieldSpecMismatchError(intent string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFieldSpecMismatch,
		Message:   "Field catalog and evaluator disagree",
		Details:   fmt.Sprintf("intent: %s, error: %s", intent, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSnapshotFetchFailedError creates a retryable store read error.
func NewSnapshotFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSnapshotFetchFailed,
		Message:   "Could not load the financial snapshot",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSnapshotSaveFailedError creates a retryable store write error.
func NewSnapshotSaveFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSnapshotSaveFailed,
		Message:   "Could not save the financial snapshot; please resubmit",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDecisionSaveFailedError creates a retryable store write error. The
// computed decision is discarded; the caller must resubmit the turn.
func NewDecisionSaveFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDecisionSaveFailed,
		Message:   "Could not save the decision; please resubmit",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewFeedbackSaveFailedError creates a retryable store write error.
func NewFeedbackSaveFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFeedbackSaveFailed,
		Message:   "Could not save the feedback; please resubmit",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
