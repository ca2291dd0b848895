package error

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error codes for standardized reporting to the presentation layer
const (
	// 4xxx - caller errors
	CodeInvalidAmount       = 4001
	CodeBlankName           = 4002
	CodeSameParty           = 4003
	CodeInvalidPartyKind    = 4004
	CodeInvalidDate         = 4005
	CodeInsufficientBalance = 4006
	CodePartyNotFound       = 4040
	CodeTransactionNotFound = 4041

	// 5xxx - engine errors
	CodeIntegrityFailure = 5001
	CodeInternal         = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is not a valid positive decimal
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNonPositiveAmount is returned when an amount is zero or negative
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrBlankName is returned when a required name is empty after trimming
	ErrBlankName = errors.New("name must not be blank")

	// ErrSameParty is returned when a movement names the same party on both sides
	ErrSameParty = errors.New("from and to must be different parties")

	// ErrInvalidPartyKind is returned when a party reference uses an unknown kind
	ErrInvalidPartyKind = errors.New("invalid party kind")

	// ErrInvalidDate is returned when a boundary requiring a valid date receives none
	ErrInvalidDate = errors.New("invalid transaction date")

	// ErrCompanyNotFound is returned when the addressed company doesn't exist
	ErrCompanyNotFound = errors.New("company not found")

	// ErrUserNotFound is returned when the addressed user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the addressed transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the current balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrIntegrityFailure is returned when an atomic multi-write could not complete
	// and has been fully rolled back
	ErrIntegrityFailure = errors.New("ledger integrity failure")

	// ErrDatabase is returned for unclassified persistence errors
	ErrDatabase = errors.New("database error")

	// ErrDatabaseBusy is returned when the store is locked by another
	// connection and the write could not proceed
	ErrDatabaseBusy = errors.New("database busy")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNonPositiveAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrBlankName):
		return CodeBlankName
	case errors.Is(err, ErrSameParty):
		return CodeSameParty
	case errors.Is(err, ErrInvalidPartyKind):
		return CodeInvalidPartyKind
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrCompanyNotFound), errors.Is(err, ErrUserNotFound):
		return CodePartyNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrIntegrityFailure):
		return CodeIntegrityFailure
	default:
		return CodeInternal
	}
}

// InsufficientBalanceError carries both sides of a rejected withdrawal so the
// caller can render them
type InsufficientBalanceError struct {
	PartyKind string
	PartyID   uint64
	Current   decimal.Decimal
	Requested decimal.Decimal
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for %s %d: requested %s, available %s",
		e.PartyKind, e.PartyID, e.Requested.StringFixed(2), e.Current.StringFixed(2))
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"party_kind":      e.PartyKind,
		"party_id":        e.PartyID,
		"current_balance": e.Current.StringFixed(2),
		"requested":       e.Requested.StringFixed(2),
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(partyKind string, partyID uint64, current, requested decimal.Decimal) error {
	return &InsufficientBalanceError{
		PartyKind: partyKind,
		PartyID:   partyID,
		Current:   current,
		Requested: requested,
	}
}

// IntegrityError wraps a failure of an atomic multi-write. By the time it is
// returned every partial effect has been rolled back.
type IntegrityError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity failure during %s (state rolled back): %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrIntegrityFailure
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrityFailure
}

// LogFields returns a map of fields for structured logging
func (e *IntegrityError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "integrity_failure",
		"operation":  e.Op,
		"error":      e.Err.Error(),
		"error_code": CodeIntegrityFailure,
	}
}

// NewIntegrityError creates a new integrity failure error for the given operation
func NewIntegrityError(op string, err error) error {
	return &IntegrityError{Op: op, Err: err}
}

// IsValidationError checks if the error belongs to the validation taxonomy
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNonPositiveAmount) ||
		errors.Is(err, ErrBlankName) ||
		errors.Is(err, ErrSameParty) ||
		errors.Is(err, ErrInvalidPartyKind) ||
		errors.Is(err, ErrInvalidDate)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCompanyNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsIntegrityError checks if the error is a rolled-back atomic write failure
func IsIntegrityError(err error) bool {
	return errors.Is(err, ErrIntegrityFailure)
}
