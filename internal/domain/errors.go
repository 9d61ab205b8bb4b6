package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Entity-level existence failures. Each wraps ErrNotFound.
var (
	ErrBoardNotFound = fmt.Errorf("board %w", ErrNotFound)
	ErrTaskNotFound  = fmt.Errorf("task %w", ErrNotFound)
	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
)

// Rejected-request failures. Each wraps ErrValidation.
var (
	ErrBoardValidation   = fmt.Errorf("board rule: %w", ErrValidation)
	ErrTaskValidation    = fmt.Errorf("task rule: %w", ErrValidation)
	ErrInvalidStatus     = fmt.Errorf("invalid status: %w", ErrValidation)
	ErrInvalidDateFormat = fmt.Errorf("invalid date format: %w", ErrValidation)
)

// Field-level validation messages shared by entity validators.
const (
	MsgRequired = "is required"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// RuleViolation is a workflow rule rejection. Kind is ErrBoardValidation or
// ErrTaskValidation; Reason is the message surfaced to the caller verbatim.
type RuleViolation struct {
	Kind   error
	Reason string
}

// NewBoardRuleViolation returns a board rule rejection with the given reason.
func NewBoardRuleViolation(reason string) *RuleViolation {
	return &RuleViolation{Kind: ErrBoardValidation, Reason: reason}
}

// NewTaskRuleViolation returns a task rule rejection with the given reason.
func NewTaskRuleViolation(reason string) *RuleViolation {
	return &RuleViolation{Kind: ErrTaskValidation, Reason: reason}
}

func (e *RuleViolation) Error() string {
	return e.Reason
}

func (e *RuleViolation) Unwrap() error {
	return e.Kind
}
