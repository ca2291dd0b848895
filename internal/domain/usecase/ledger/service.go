package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mehak6/accounting/internal/domain/entity"
	errs "github.com/mehak6/accounting/internal/domain/error"
	coreport "github.com/mehak6/accounting/internal/domain/port/core"
	"github.com/mehak6/accounting/internal/domain/port/persistence"
	"github.com/mehak6/accounting/internal/domain/port/usecase"
)

// Service implements the LedgerStore port. Every mutating operation runs
// inside one unit-of-work scope; the service assumes callers are serialized
// (single-user, synchronous).
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Compile-time interface check
var _ usecase.LedgerStore = (*Service)(nil)

// NewService creates a new ledger store service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// run executes fn inside one unit-of-work scope. Any error from fn rolls the
// whole scope back; a failed commit is surfaced as an integrity failure.
func (s *Service) run(ctx context.Context, op string, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Failed to begin unit of work", map[string]any{
			"operation": op,
			"error":     err.Error(),
		})
		return errs.NewIntegrityError(op, err)
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back unit of work", map[string]any{
				"operation": op,
				"error":     rbErr.Error(),
			})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit unit of work", map[string]any{
			"operation": op,
			"error":     err.Error(),
		})
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back after commit failure", map[string]any{
				"operation": op,
				"error":     rbErr.Error(),
			})
		}
		return errs.NewIntegrityError(op, err)
	}

	return nil
}

// adjustBalance applies balance += delta to the referenced party. The cash
// sentinel has no row and is skipped. A zero-row update means the party does
// not exist and fails the enclosing unit of work.
func (s *Service) adjustBalance(ctx context.Context, ref entity.PartyRef, delta decimal.Decimal) error {
	if ref.IsCash() {
		return nil
	}

	var (
		affected int64
		err      error
	)
	switch ref.Kind {
	case entity.KindCompany:
		affected, err = s.uow.Companies(ctx).AdjustBalance(ctx, ref.ID, delta)
		if err == nil && affected == 0 {
			err = errs.ErrCompanyNotFound
		}
	case entity.KindUser:
		affected, err = s.uow.Users(ctx).AdjustBalance(ctx, ref.ID, delta)
		if err == nil && affected == 0 {
			err = errs.ErrUserNotFound
		}
	default:
		err = errs.ErrInvalidPartyKind
	}

	if err != nil {
		s.logger.Warn("Balance adjustment failed", map[string]any{
			"party_kind": string(ref.Kind),
			"party_id":   ref.ID,
			"delta":      delta.StringFixed(2),
			"error":      err.Error(),
		})
	}
	return err
}

// adjustBalanceIfPresent applies balance += delta but treats a missing party
// row as a no-op. Used when reversing history that may reference parties
// deleted after the fact.
func (s *Service) adjustBalanceIfPresent(ctx context.Context, ref entity.PartyRef, delta decimal.Decimal) error {
	err := s.adjustBalance(ctx, ref, delta)
	if errs.IsNotFoundError(err) {
		return nil
	}
	return err
}

// partyBalance looks up the current balance and display name of a party
func (s *Service) partyBalance(ctx context.Context, ref entity.PartyRef) (decimal.Decimal, string, error) {
	switch ref.Kind {
	case entity.KindCompany:
		company, err := s.uow.Companies(ctx).GetByID(ctx, ref.ID)
		if err != nil {
			return decimal.Zero, "", err
		}
		return company.Balance, company.Name, nil
	case entity.KindUser:
		user, err := s.uow.Users(ctx).GetByID(ctx, ref.ID)
		if err != nil {
			return decimal.Zero, "", err
		}
		return user.Balance, user.Name, nil
	default:
		return decimal.Zero, "", errs.ErrInvalidPartyKind
	}
}
