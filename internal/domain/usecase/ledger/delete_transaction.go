package ledger

import (
	"context"
	"errors"

	"github.com/mehak6/accounting/internal/domain/entity"
	errs "github.com/mehak6/accounting/internal/domain/error"
	"github.com/mehak6/accounting/internal/domain/port/usecase"
)

// DeleteTransaction reverses the transaction's balance effects and removes
// its row in one atomic scope. A missing id is a no-op reporting zero
// affected rows, not an error.
func (s *Service) DeleteTransaction(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.run(ctx, "delete transaction", func(txCtx context.Context) error {
		transaction, err := s.uow.Transactions(txCtx).GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, errs.ErrTransactionNotFound) {
				return nil
			}
			return err
		}

		if err := s.reverse(txCtx, transaction); err != nil {
			return err
		}
		affected = 1
		return nil
	})
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		s.logger.Info("Transaction deleted", map[string]any{
			"transaction_id": id,
		})
	}
	return affected, nil
}

// DeleteTransactionsBulk reverses and removes each resolvable id in one
// atomic unit. Ids without a row are skipped. Returns the count actually
// deleted.
func (s *Service) DeleteTransactionsBulk(ctx context.Context, ids []uint64) (int, error) {
	var deleted int
	err := s.run(ctx, "bulk delete transactions", func(txCtx context.Context) error {
		for _, id := range ids {
			transaction, err := s.uow.Transactions(txCtx).GetByID(txCtx, id)
			if err != nil {
				if errors.Is(err, errs.ErrTransactionNotFound) {
					continue
				}
				return err
			}

			if err := s.reverse(txCtx, transaction); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Transactions deleted in bulk", map[string]any{
		"requested": len(ids),
		"deleted":   deleted,
	})
	return deleted, nil
}

// AmendTransaction replaces a recorded movement inside one atomic scope:
// the original is reversed and deleted, the replacement validated, inserted
// and applied. The amended movement gets a fresh id and created timestamp,
// which is returned. A missing id fails with a not-found error.
func (s *Service) AmendTransaction(ctx context.Context, id uint64, in usecase.RecordTransactionInput) (uint64, error) {
	if in.From.IsCash() || in.To.IsCash() {
		return 0, errs.ErrInvalidPartyKind
	}

	replacement, err := entity.NewTransaction(
		in.Date, in.Amount, in.From, in.To, in.Description, in.Reference, s.timeProvider,
	)
	if err != nil {
		return 0, err
	}

	err = s.run(ctx, "amend transaction", func(txCtx context.Context) error {
		original, err := s.uow.Transactions(txCtx).GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.reverse(txCtx, original); err != nil {
			return err
		}
		return s.apply(txCtx, replacement)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Transaction amended", map[string]any{
		"original_id": id,
		"new_id":      replacement.ID,
	})
	return replacement.ID, nil
}
