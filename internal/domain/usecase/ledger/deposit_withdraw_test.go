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
	"github.com/mehak6/accounting/internal/infrastructure/adapter/logger"
	coremocks "github.com/mehak6/accounting/mocks/port/core"
	persistencemocks "github.com/mehak6/accounting/mocks/port/persistence"
)

func TestDeposit(t *testing.T) {
	now := time.Date(2026, 4, 10, 11, 0, 0, 0, time.UTC)
	today := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("250.00")
	ref := entity.PartyRef{Kind: entity.KindUser, ID: 5}

	t.Run("Successful deposit credits the party", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTransactions := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now)

		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockTransactions).Once()
		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockTransactions.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
				return txn.From.IsCash() && txn.To == ref &&
					txn.Date.Equal(today) &&
					txn.Description == "Cash Deposit" &&
					txn.Reference == entity.ReferenceDeposit
			})).
			Run(func(ctx context.Context, txn *entity.Transaction) {
				txn.ID = 55
			}).
			Return(nil).Once()
		mockUsers.EXPECT().AdjustBalance(mock.Anything, uint64(5), amount).Return(1, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		id, err := service.Deposit(ctx, ref, amount, "")
		require.NoError(t, err)
		assert.Equal(t, uint64(55), id)
	})

	t.Run("Explicit description is kept", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTransactions := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now)

		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockTransactions).Once()
		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockTransactions.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
				return txn.Description == "Opening float"
			})).
			Return(nil).Once()
		mockUsers.EXPECT().AdjustBalance(mock.Anything, uint64(5), amount).Return(1, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		_, err := service.Deposit(ctx, ref, amount, "Opening float")
		require.NoError(t, err)
	})

	t.Run("Cash reference is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		_, err := service.Deposit(context.Background(), entity.CashRef(), amount, "")
		assert.ErrorIs(t, err, errs.ErrInvalidPartyKind)
		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestWithdraw(t *testing.T) {
	now := time.Date(2026, 4, 10, 11, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("100.00")
	ref := entity.PartyRef{Kind: entity.KindUser, ID: 5}

	t.Run("Successful withdrawal debits the party", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTransactions := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now)

		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers)
		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockTransactions).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUsers.EXPECT().GetByID(mock.Anything, uint64(5)).
			Return(&entity.User{ID: 5, Name: "John", Balance: decimal.RequireFromString("300.00")}, nil).Once()
		mockTransactions.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
				return txn.From == ref && txn.To.IsCash() &&
					txn.Description == "Cash Withdrawal" &&
					txn.Reference == entity.ReferenceWithdraw
			})).
			Run(func(ctx context.Context, txn *entity.Transaction) {
				txn.ID = 56
			}).
			Return(nil).Once()
		mockUsers.EXPECT().AdjustBalance(mock.Anything, uint64(5), amount.Neg()).Return(1, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		id, err := service.Withdraw(ctx, ref, amount, "")
		require.NoError(t, err)
		assert.Equal(t, uint64(56), id)
	})

	t.Run("Insufficient balance is rejected before any write", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(5)).
			Return(&entity.User{ID: 5, Name: "John", Balance: decimal.RequireFromString("40.00")}, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		_, err := service.Withdraw(ctx, ref, amount, "")
		require.ErrorIs(t, err, errs.ErrInsufficientBalance)

		var ibe *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &ibe)
		assert.Equal(t, "40.00", ibe.Current.StringFixed(2))
		assert.Equal(t, "100.00", ibe.Requested.StringFixed(2))

		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Withdrawal of the exact balance is allowed", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTransactions := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now)

		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers)
		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockTransactions).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUsers.EXPECT().GetByID(mock.Anything, uint64(5)).
			Return(&entity.User{ID: 5, Name: "John", Balance: amount}, nil).Once()
		mockTransactions.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		mockUsers.EXPECT().AdjustBalance(mock.Anything, uint64(5), amount.Neg()).Return(1, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		_, err := service.Withdraw(ctx, ref, amount, "")
		require.NoError(t, err)
	})

	t.Run("Missing party propagates not found", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers).Once()
		mockUsers.EXPECT().GetByID(mock.Anything, uint64(5)).Return(nil, errs.ErrUserNotFound).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		_, err := service.Withdraw(ctx, ref, amount, "")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Non-positive amount is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		_, err := service.Withdraw(context.Background(), ref, decimal.Zero, "")
		assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)
	})
}
