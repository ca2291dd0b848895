package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction marks a statement entry as money in or money out from the
// statement owner's perspective
type Direction string

// Statement directions
const (
	Credit Direction = "Credit"
	Debit  Direction = "Debit"
)

// Counterparty labels used when no party row backs the reference
const (
	LabelCashDeposit    = "Cash Deposit"
	LabelCashWithdrawal = "Cash Withdrawal"
	LabelDeletedParty   = "(deleted)"
)

// LedgerEntry is one line of a per-account statement: a transaction viewed
// from one party's side, with the running balance after it applied.
type LedgerEntry struct {
	TransactionID   uint64
	Date            time.Time
	Direction       Direction
	Counterparty    string
	CounterpartyRef PartyRef
	Amount          decimal.Decimal
	RunningBalance  decimal.Decimal
	Description     string
	Reference       string
	CreatedAt       time.Time
}

// Summary aggregates current ledger state for the overview screen. Balance
// totals read the stored balances the ledger store maintains; they are never
// recomputed from transaction history here.
type Summary struct {
	CompanyBalanceTotal decimal.Decimal
	UserBalanceTotal    decimal.Decimal
	GrandTotal          decimal.Decimal
	TransactionCount    int64
	TotalAmount         decimal.Decimal
	AverageAmount       decimal.Decimal
}
