package ledger

import (
	"context"

	"github.com/mehak6/accounting/internal/domain/entity"
	errs "github.com/mehak6/accounting/internal/domain/error"
	"github.com/mehak6/accounting/internal/domain/port/usecase"
)

// RecordTransaction records one money movement between two persisted parties
// and applies both balance effects atomically: the row insert, the debit and
// the credit all commit together or not at all. The cash sentinel is not
// accepted here; deposits and withdrawals have their own entry points.
func (s *Service) RecordTransaction(ctx context.Context, in usecase.RecordTransactionInput) (uint64, error) {
	if in.From.IsCash() || in.To.IsCash() {
		return 0, errs.ErrInvalidPartyKind
	}

	transaction, err := entity.NewTransaction(
		in.Date, in.Amount, in.From, in.To, in.Description, in.Reference, s.timeProvider,
	)
	if err != nil {
		return 0, err
	}

	err = s.run(ctx, "record transaction", func(txCtx context.Context) error {
		return s.apply(txCtx, transaction)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Transaction recorded", map[string]any{
		"transaction_id": transaction.ID,
		"amount":         entity.FormatAmount(transaction.Amount),
		"from_kind":      string(transaction.From.Kind),
		"from_id":        transaction.From.ID,
		"to_kind":        string(transaction.To.Kind),
		"to_id":          transaction.To.ID,
	})
	return transaction.ID, nil
}

// apply inserts the transaction row and adjusts both balances. Must run
// inside a unit-of-work scope.
func (s *Service) apply(txCtx context.Context, transaction *entity.Transaction) error {
	if err := s.uow.Transactions(txCtx).Create(txCtx, transaction); err != nil {
		return err
	}
	if err := s.adjustBalance(txCtx, transaction.From, transaction.Amount.Neg()); err != nil {
		return err
	}
	return s.adjustBalance(txCtx, transaction.To, transaction.Amount)
}

// reverse undoes a previously applied transaction's balance effects and
// deletes its row: the exact inverse of apply. Parties deleted since the
// transaction was recorded no longer carry a balance, so a dangling side is
// skipped rather than failing the deletion. Must run inside a unit-of-work
// scope.
func (s *Service) reverse(txCtx context.Context, transaction *entity.Transaction) error {
	if err := s.adjustBalanceIfPresent(txCtx, transaction.From, transaction.Amount); err != nil {
		return err
	}
	if err := s.adjustBalanceIfPresent(txCtx, transaction.To, transaction.Amount.Neg()); err != nil {
		return err
	}

	affected, err := s.uow.Transactions(txCtx).Delete(txCtx, transaction.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}
