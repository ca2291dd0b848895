package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"Non-positive amount", ErrNonPositiveAmount, CodeInvalidAmount},
		{"Blank name", ErrBlankName, CodeBlankName},
		{"Same party", ErrSameParty, CodeSameParty},
		{"Invalid party kind", ErrInvalidPartyKind, CodeInvalidPartyKind},
		{"Invalid date", ErrInvalidDate, CodeInvalidDate},
		{"Insufficient balance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"Company not found", ErrCompanyNotFound, CodePartyNotFound},
		{"User not found", ErrUserNotFound, CodePartyNotFound},
		{"Transaction not found", ErrTransactionNotFound, CodeTransactionNotFound},
		{"Integrity failure", ErrIntegrityFailure, CodeIntegrityFailure},
		{"Unknown error", errors.New("boom"), CodeInternal},
		{"Wrapped error keeps its code", fmt.Errorf("context: %w", ErrBlankName), CodeBlankName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("user", 7, decimal.NewFromInt(30), decimal.NewFromInt(100))

	t.Run("Matches the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.True(t, IsInsufficientBalanceError(err))
		assert.Equal(t, CodeInsufficientBalance, ErrorCode(err))
	})

	t.Run("Carries both sides of the rejection", func(t *testing.T) {
		var ibe *InsufficientBalanceError
		require.ErrorAs(t, err, &ibe)
		assert.Equal(t, "user", ibe.PartyKind)
		assert.Equal(t, uint64(7), ibe.PartyID)
		assert.Equal(t, "30.00", ibe.Current.StringFixed(2))
		assert.Equal(t, "100.00", ibe.Requested.StringFixed(2))
	})

	t.Run("Message renders the amounts", func(t *testing.T) {
		assert.Contains(t, err.Error(), "requested 100.00")
		assert.Contains(t, err.Error(), "available 30.00")
	})

	t.Run("Log fields", func(t *testing.T) {
		var ibe *InsufficientBalanceError
		require.ErrorAs(t, err, &ibe)
		fields := ibe.LogFields()
		assert.Equal(t, "insufficient_balance", fields["error_type"])
		assert.Equal(t, CodeInsufficientBalance, fields["error_code"])
	})
}

func TestIntegrityError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIntegrityError("record_transaction", cause)

	t.Run("Matches the sentinel and unwraps", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrIntegrityFailure)
		assert.ErrorIs(t, err, cause)
		assert.True(t, IsIntegrityError(err))
	})

	t.Run("Message names the operation", func(t *testing.T) {
		assert.Contains(t, err.Error(), "record_transaction")
		assert.Contains(t, err.Error(), "rolled back")
	})
}

func TestPredicates(t *testing.T) {
	t.Run("Validation taxonomy", func(t *testing.T) {
		for _, err := range []error{
			ErrInvalidAmount, ErrNonPositiveAmount, ErrBlankName,
			ErrSameParty, ErrInvalidPartyKind, ErrInvalidDate,
		} {
			assert.True(t, IsValidationError(err), "%v", err)
		}
		assert.False(t, IsValidationError(ErrCompanyNotFound))
		assert.False(t, IsValidationError(ErrDatabase))
	})

	t.Run("Not found taxonomy", func(t *testing.T) {
		for _, err := range []error{
			ErrNotFound, ErrCompanyNotFound, ErrUserNotFound, ErrTransactionNotFound,
		} {
			assert.True(t, IsNotFoundError(err), "%v", err)
		}
		assert.False(t, IsNotFoundError(ErrBlankName))
	})
}
