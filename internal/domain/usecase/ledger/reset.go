package ledger

import (
	"context"
)

// ResetAll clears the entire ledger: every transaction is deleted and every
// party balance zeroed, atomically. There is no reversal.
func (s *Service) ResetAll(ctx context.Context) error {
	err := s.run(ctx, "reset all", func(txCtx context.Context) error {
		if err := s.uow.Transactions(txCtx).DeleteAll(txCtx); err != nil {
			return err
		}
		if err := s.uow.Companies(txCtx).ZeroBalances(txCtx); err != nil {
			return err
		}
		return s.uow.Users(txCtx).ZeroBalances(txCtx)
	})
	if err != nil {
		return err
	}

	s.logger.Warn("Ledger reset: all transactions removed and balances zeroed", nil)
	return nil
}
