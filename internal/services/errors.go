package services

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-readable category of a ledger failure.
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation_error"
	KindNotFound           ErrorKind = "not_found"
	KindMismatch           ErrorKind = "mismatch"
	KindState              ErrorKind = "state_error"
	KindWithdrawNotAllowed ErrorKind = "withdraw_not_allowed"
	KindExternalService    ErrorKind = "external_service_error"
	KindUnauthorized       ErrorKind = "unauthorized"
)

// LedgerError is returned by every workflow operation that is rejected.
// Reason is meant for humans and may be empty.
type LedgerError struct {
	Kind   ErrorKind
	Reason string
}

func (e *LedgerError) Error() string {
	if e.Reason == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Reason
}

// Is matches any LedgerError of the same kind, so callers can use the
// sentinels below with errors.Is.
func (e *LedgerError) Is(target error) bool {
	t, ok := target.(*LedgerError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrValidation         = &LedgerError{Kind: KindValidation}
	ErrNotFound           = &LedgerError{Kind: KindNotFound}
	ErrMismatch           = &LedgerError{Kind: KindMismatch}
	ErrState              = &LedgerError{Kind: KindState}
	ErrWithdrawNotAllowed = &LedgerError{Kind: KindWithdrawNotAllowed}
	ErrExternalService    = &LedgerError{Kind: KindExternalService}
	ErrUnauthorized       = &LedgerError{Kind: KindUnauthorized}
)

func newLedgerError(kind ErrorKind, format string, args ...any) *LedgerError {
	return &LedgerError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// NewValidationError reports a missing or malformed field.
func NewValidationError(format string, args ...any) error {
	return newLedgerError(KindValidation, format, args...)
}

// NewNotFoundError reports an unknown entity id.
func NewNotFoundError(format string, args ...any) error {
	return newLedgerError(KindNotFound, format, args...)
}

// NewMismatchError reports a cross-entity ownership violation.
func NewMismatchError(format string, args ...any) error {
	return newLedgerError(KindMismatch, format, args...)
}

// NewStateError reports an entity in the wrong lifecycle state.
func NewStateError(format string, args ...any) error {
	return newLedgerError(KindState, format, args...)
}

// NewWithdrawNotAllowedError reports a failed eligibility rule.
func NewWithdrawNotAllowedError(reason string) error {
	return &LedgerError{Kind: KindWithdrawNotAllowed, Reason: reason}
}

// NewExternalServiceError wraps a failure of the price oracle or a notifier.
func NewExternalServiceError(service string, err error) error {
	return newLedgerError(KindExternalService, "%s: %v", service, err)
}

// KindOf extracts the error kind, or "" for errors outside the taxonomy.
func KindOf(err error) ErrorKind {
	var le *LedgerError
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}

// ReasonOf extracts the human-readable reason of a ledger error.
func ReasonOf(err error) string {
	var le *LedgerError
	if errors.As(err, &le) {
		return le.Reason
	}
	return ""
}
