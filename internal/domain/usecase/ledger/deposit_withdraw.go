package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mehak6/accounting/internal/domain/entity"
	errs "github.com/mehak6/accounting/internal/domain/error"
)

// Default descriptions for the cash entry points
const (
	defaultDepositDescription  = "Cash Deposit"
	defaultWithdrawDescription = "Cash Withdrawal"
)

// Deposit records a cash-to-party movement dated today, tagged DEPOSIT, and
// credits the party's balance atomically with the row insert.
func (s *Service) Deposit(ctx context.Context, ref entity.PartyRef, amount decimal.Decimal, description string) (uint64, error) {
	if ref.IsCash() || !ref.Valid() {
		return 0, errs.ErrInvalidPartyKind
	}
	if description == "" {
		description = defaultDepositDescription
	}

	transaction, err := entity.NewTransaction(
		s.timeProvider.Now(), amount, entity.CashRef(), ref,
		description, entity.ReferenceDeposit, s.timeProvider,
	)
	if err != nil {
		return 0, err
	}

	err = s.run(ctx, "deposit", func(txCtx context.Context) error {
		return s.apply(txCtx, transaction)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Deposit recorded", map[string]any{
		"transaction_id": transaction.ID,
		"party_kind":     string(ref.Kind),
		"party_id":       ref.ID,
		"amount":         entity.FormatAmount(amount),
	})
	return transaction.ID, nil
}

// Withdraw records a party-to-cash movement dated today, tagged WITHDRAW.
// The party's current balance is checked first; a shortfall fails with an
// InsufficientBalanceError carrying both amounts, before any write happens.
func (s *Service) Withdraw(ctx context.Context, ref entity.PartyRef, amount decimal.Decimal, description string) (uint64, error) {
	if ref.IsCash() || !ref.Valid() {
		return 0, errs.ErrInvalidPartyKind
	}
	if !amount.IsPositive() {
		return 0, errs.ErrNonPositiveAmount
	}
	if description == "" {
		description = defaultWithdrawDescription
	}

	balance, _, err := s.partyBalance(ctx, ref)
	if err != nil {
		return 0, err
	}
	if balance.LessThan(amount) {
		s.logger.Warn("Withdrawal rejected for insufficient balance", map[string]any{
			"party_kind":      string(ref.Kind),
			"party_id":        ref.ID,
			"current_balance": entity.FormatAmount(balance),
			"requested":       entity.FormatAmount(amount),
		})
		return 0, errs.NewInsufficientBalanceError(string(ref.Kind), ref.ID, balance, amount)
	}

	transaction, err := entity.NewTransaction(
		s.timeProvider.Now(), amount, ref, entity.CashRef(),
		description, entity.ReferenceWithdraw, s.timeProvider,
	)
	if err != nil {
		return 0, err
	}

	err = s.run(ctx, "withdraw", func(txCtx context.Context) error {
		return s.apply(txCtx, transaction)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Withdrawal recorded", map[string]any{
		"transaction_id": transaction.ID,
		"party_kind":     string(ref.Kind),
		"party_id":       ref.ID,
		"amount":         entity.FormatAmount(amount),
	})
	return transaction.ID, nil
}
