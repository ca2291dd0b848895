package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/mehak6/accounting/internal/domain/error"
	coreport "github.com/mehak6/accounting/internal/domain/port/core"
)

// Well-known reference tags written by the cash entry points
const (
	ReferenceDeposit  = "DEPOSIT"
	ReferenceWithdraw = "WITHDRAW"
)

// Transaction is an immutable-once-created record of one money movement.
// There is no in-place amend: amendment reverses and re-records under a new
// id inside one atomic scope.
type Transaction struct {
	ID          uint64
	Date        time.Time
	Amount      decimal.Decimal
	From        PartyRef
	To          PartyRef
	Description string
	Reference   string
	CreatedAt   time.Time

	// Resolved display names, hydrated by queries. Empty when the referenced
	// party has since been deleted or is the cash sentinel.
	FromName string
	ToName   string
}

// NewTransaction creates a transaction with full validation. The amount must
// be strictly positive, both references well-formed and distinct, and the
// date a real calendar date.
func NewTransaction(
	date time.Time,
	amount decimal.Decimal,
	from, to PartyRef,
	description, reference string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, errs.ErrNonPositiveAmount
	}
	if !from.Valid() || !to.Valid() {
		return nil, errs.ErrInvalidPartyKind
	}
	if from == to {
		return nil, errs.ErrSameParty
	}
	if date.IsZero() {
		return nil, errs.ErrInvalidDate
	}

	return &Transaction{
		Date:        DateOnly(date),
		Amount:      amount,
		From:        from,
		To:          to,
		Description: description,
		Reference:   reference,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsCreditFor reports whether the referenced party receives this movement.
// Checked before IsDebitFor everywhere direction matters, so a degenerate row
// naming the same party on both sides counts as a credit.
func (t *Transaction) IsCreditFor(ref PartyRef) bool {
	return t.To == ref
}

// IsDebitFor reports whether the referenced party sends this movement
func (t *Transaction) IsDebitFor(ref PartyRef) bool {
	return t.From == ref
}

// Involves reports whether the referenced party appears on either side
func (t *Transaction) Involves(ref PartyRef) bool {
	return t.From == ref || t.To == ref
}
