package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mehak6/accounting/internal/domain/entity"
	errs "github.com/mehak6/accounting/internal/domain/error"
	"github.com/mehak6/accounting/internal/domain/port/usecase"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/logger"
	coremocks "github.com/mehak6/accounting/mocks/port/core"
	persistencemocks "github.com/mehak6/accounting/mocks/port/persistence"
)

func TestDeleteTransaction(t *testing.T) {
	amount := decimal.RequireFromString("500.00")
	from := entity.PartyRef{Kind: entity.KindCompany, ID: 1}
	to := entity.PartyRef{Kind: entity.KindUser, ID: 2}
	stored := &entity.Transaction{
		ID:     101,
		Date:   time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
		Amount: amount,
		From:   from,
		To:     to,
	}

	t.Run("Deletion reverses both balance effects", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCompanies := persistencemocks.NewMockCompanyRepository(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTransactions := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockTransactions)
		mockUow.EXPECT().Companies(mock.Anything).Return(mockCompanies).Once()
		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockTransactions.EXPECT().GetByID(mock.Anything, uint64(101)).Return(stored, nil).Once()
		mockCompanies.EXPECT().AdjustBalance(mock.Anything, uint64(1), amount).Return(1, nil).Once()
		mockUsers.EXPECT().AdjustBalance(mock.Anything, uint64(2), amount.Neg()).Return(1, nil).Once()
		mockTransactions.EXPECT().Delete(mock.Anything, uint64(101)).Return(1, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		affected, err := service.DeleteTransaction(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("Missing id reports zero rows without error", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTransactions := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockTransactions).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockTransactions.EXPECT().GetByID(mock.Anything, uint64(999)).Return(nil, errs.ErrTransactionNotFound).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		affected, err := service.DeleteTransaction(ctx, 999)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	t.Run("A side deleted since recording is skipped", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCompanies := persistencemocks.NewMockCompanyRepository(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTransactions := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockTransactions)
		mockUow.EXPECT().Companies(mock.Anything).Return(mockCompanies).Once()
		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockTransactions.EXPECT().GetByID(mock.Anything, uint64(101)).Return(stored, nil).Once()
		mockCompanies.EXPECT().AdjustBalance(mock.Anything, uint64(1), amount).Return(0, nil).Once()
		mockUsers.EXPECT().AdjustBalance(mock.Anything, uint64(2), amount.Neg()).Return(1, nil).Once()
		mockTransactions.EXPECT().Delete(mock.Anything, uint64(101)).Return(1, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		affected, err := service.DeleteTransaction(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})
}

func TestDeleteTransactionsBulk(t *testing.T) {
	amount := decimal.RequireFromString("10.00")
	from := entity.PartyRef{Kind: entity.KindCompany, ID: 1}
	to := entity.PartyRef{Kind: entity.KindUser, ID: 2}

	t.Run("Missing ids are skipped, present ones deleted", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCompanies := persistencemocks.NewMockCompanyRepository(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTransactions := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockTransactions)
		mockUow.EXPECT().Companies(mock.Anything).Return(mockCompanies)
		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers)
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		for _, id := range []uint64{11, 13} {
			mockTransactions.EXPECT().GetByID(mock.Anything, id).
				Return(&entity.Transaction{ID: id, Amount: amount, From: from, To: to}, nil).Once()
			mockTransactions.EXPECT().Delete(mock.Anything, id).Return(1, nil).Once()
		}
		mockTransactions.EXPECT().GetByID(mock.Anything, uint64(12)).
			Return(nil, errs.ErrTransactionNotFound).Once()
		mockCompanies.EXPECT().AdjustBalance(mock.Anything, uint64(1), amount).Return(1, nil).Times(2)
		mockUsers.EXPECT().AdjustBalance(mock.Anything, uint64(2), amount.Neg()).Return(1, nil).Times(2)

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		deleted, err := service.DeleteTransactionsBulk(ctx, []uint64{11, 12, 13})
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)
	})
}

func TestAmendTransaction(t *testing.T) {
	oldAmount := decimal.RequireFromString("500.00")
	newAmount := decimal.RequireFromString("450.00")
	now := time.Date(2026, 4, 20, 9, 0, 0, 0, time.UTC)
	from := entity.PartyRef{Kind: entity.KindCompany, ID: 1}
	to := entity.PartyRef{Kind: entity.KindUser, ID: 2}
	original := &entity.Transaction{
		ID:     101,
		Date:   time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
		Amount: oldAmount,
		From:   from,
		To:     to,
	}
	input := usecase.RecordTransactionInput{
		Date:        time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC),
		Amount:      newAmount,
		From:        from,
		To:          to,
		Description: "Corrected salary",
	}

	t.Run("Amendment replaces the movement atomically", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCompanies := persistencemocks.NewMockCompanyRepository(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTransactions := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Once()

		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockTransactions)
		mockUow.EXPECT().Companies(mock.Anything).Return(mockCompanies)
		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers)
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockTransactions.EXPECT().GetByID(mock.Anything, uint64(101)).Return(original, nil).Once()

		// Reversal of the original
		mockCompanies.EXPECT().AdjustBalance(mock.Anything, uint64(1), oldAmount).Return(1, nil).Once()
		mockUsers.EXPECT().AdjustBalance(mock.Anything, uint64(2), oldAmount.Neg()).Return(1, nil).Once()
		mockTransactions.EXPECT().Delete(mock.Anything, uint64(101)).Return(1, nil).Once()

		// Application of the replacement
		mockTransactions.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
				return txn.Amount.Equal(newAmount) && txn.Description == "Corrected salary"
			})).
			Run(func(ctx context.Context, txn *entity.Transaction) {
				txn.ID = 102
			}).
			Return(nil).Once()
		mockCompanies.EXPECT().AdjustBalance(mock.Anything, uint64(1), newAmount.Neg()).Return(1, nil).Once()
		mockUsers.EXPECT().AdjustBalance(mock.Anything, uint64(2), newAmount).Return(1, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		newID, err := service.AmendTransaction(ctx, 101, input)
		require.NoError(t, err)
		assert.Equal(t, uint64(102), newID)
	})

	t.Run("Missing id fails the amendment", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTransactions := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Once()

		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockTransactions).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockTransactions.EXPECT().GetByID(mock.Anything, uint64(999)).Return(nil, errs.ErrTransactionNotFound).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		_, err := service.AmendTransaction(ctx, 999, input)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Cash sides are rejected up front", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		bad := input
		bad.To = entity.CashRef()
		_, err := service.AmendTransaction(context.Background(), 101, bad)
		assert.ErrorIs(t, err, errs.ErrInvalidPartyKind)
		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}
