package report

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mehak6/accounting/internal/domain/entity"
	errs "github.com/mehak6/accounting/internal/domain/error"
)

// Statement builds the per-account statement for a party: every transaction
// it appears in, walked oldest-first accumulating a running balance from
// zero, then reversed so the newest entry is first for display. A party with
// no history (or one that never existed) yields an empty statement.
//
// Chronological order is (date, created timestamp, id); date ties fall back
// to creation order and identical timestamps to insertion order. The
// recipient check runs before the sender check, so a degenerate row naming
// the party on both sides counts as a credit.
func (s *Service) Statement(ctx context.Context, ref entity.PartyRef) ([]entity.LedgerEntry, error) {
	if ref.IsCash() || !ref.Valid() {
		return nil, errs.ErrInvalidPartyKind
	}

	transactions, err := s.transactions.ListByParty(ctx, ref)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		ki, kj := entity.DateKey(transactions[i].Date), entity.DateKey(transactions[j].Date)
		if ki != kj {
			return ki < kj
		}
		if !transactions[i].CreatedAt.Equal(transactions[j].CreatedAt) {
			return transactions[i].CreatedAt.Before(transactions[j].CreatedAt)
		}
		return transactions[i].ID < transactions[j].ID
	})

	running := decimal.Zero
	entries := make([]entity.LedgerEntry, 0, len(transactions))
	for _, t := range transactions {
		entry := entity.LedgerEntry{
			TransactionID: t.ID,
			Date:          t.Date,
			Amount:        t.Amount,
			Description:   t.Description,
			Reference:     t.Reference,
			CreatedAt:     t.CreatedAt,
		}

		if t.IsCreditFor(ref) {
			running = running.Add(t.Amount)
			entry.Direction = entity.Credit
			entry.CounterpartyRef = t.From
			entry.Counterparty = counterpartyLabel(t.From, t.FromName, entity.LabelCashDeposit)
		} else {
			running = running.Sub(t.Amount)
			entry.Direction = entity.Debit
			entry.CounterpartyRef = t.To
			entry.Counterparty = counterpartyLabel(t.To, t.ToName, entity.LabelCashWithdrawal)
		}

		entry.RunningBalance = running
		entries = append(entries, entry)
	}

	// Newest first for display
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return entries, nil
}

// counterpartyLabel resolves the display label for the other side of an
// entry: the cash sentinel gets its fixed label, a dangling reference
// degrades to a placeholder.
func counterpartyLabel(ref entity.PartyRef, name, cashLabel string) string {
	if ref.IsCash() {
		return cashLabel
	}
	if name == "" {
		return entity.LabelDeletedParty
	}
	return name
}
