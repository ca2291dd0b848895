package report

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
	persistencemocks "github.com/mehak6/accounting/mocks/port/persistence"
)

func newTestService(t *testing.T) (*Service, *persistencemocks.MockCompanyRepository, *persistencemocks.MockUserRepository, *persistencemocks.MockTransactionRepository) {
	mockCompanies := persistencemocks.NewMockCompanyRepository(t)
	mockUsers := persistencemocks.NewMockUserRepository(t)
	mockTransactions := persistencemocks.NewMockTransactionRepository(t)
	service := NewService(mockCompanies, mockUsers, mockTransactions, logger.NewNoopLogger())
	return service, mockCompanies, mockUsers, mockTransactions
}

func TestStatement(t *testing.T) {
	acme := entity.PartyRef{Kind: entity.KindCompany, ID: 1}
	john := entity.PartyRef{Kind: entity.KindUser, ID: 2}
	amt := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	day := func(d int, hour int) time.Time {
		return time.Date(2026, 1, d, hour, 0, 0, 0, time.UTC)
	}

	deposit := &entity.Transaction{
		ID: 1, Date: day(5, 0), CreatedAt: day(5, 9), Amount: amt("100.00"),
		From: entity.CashRef(), To: john, ToName: "John",
		Description: "Cash Deposit", Reference: entity.ReferenceDeposit,
	}
	salary := &entity.Transaction{
		ID: 2, Date: day(10, 0), CreatedAt: day(10, 9), Amount: amt("500.00"),
		From: acme, FromName: "Acme Corp", To: john, ToName: "John",
		Description: "January salary",
	}
	partialReturn := &entity.Transaction{
		ID: 3, Date: day(10, 0), CreatedAt: day(10, 10), Amount: amt("200.00"),
		From: john, FromName: "John", To: acme, ToName: "Acme Corp",
		Description: "Partial return",
	}
	withdrawal := &entity.Transaction{
		ID: 4, Date: day(20, 0), CreatedAt: day(20, 12), Amount: amt("50.00"),
		From: john, FromName: "John", To: entity.CashRef(),
		Description: "Cash Withdrawal", Reference: entity.ReferenceWithdraw,
	}

	t.Run("Running balance walks oldest first, display is newest first", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)
		history := []*entity.Transaction{partialReturn, deposit, salary, withdrawal}
		mockTransactions.EXPECT().ListByParty(mock.Anything, john).Return(history, nil).Once()

		entries, err := service.Statement(context.Background(), john)
		require.NoError(t, err)
		require.Len(t, entries, 4)

		// Newest first: withdrawal, return, salary, deposit
		assert.Equal(t, uint64(4), entries[0].TransactionID)
		assert.Equal(t, entity.Debit, entries[0].Direction)
		assert.Equal(t, entity.LabelCashWithdrawal, entries[0].Counterparty)
		assert.Equal(t, "350.00", entries[0].RunningBalance.StringFixed(2))

		assert.Equal(t, uint64(3), entries[1].TransactionID)
		assert.Equal(t, entity.Debit, entries[1].Direction)
		assert.Equal(t, "Acme Corp", entries[1].Counterparty)
		assert.Equal(t, "400.00", entries[1].RunningBalance.StringFixed(2))

		assert.Equal(t, uint64(2), entries[2].TransactionID)
		assert.Equal(t, entity.Credit, entries[2].Direction)
		assert.Equal(t, "Acme Corp", entries[2].Counterparty)
		assert.Equal(t, "600.00", entries[2].RunningBalance.StringFixed(2))

		assert.Equal(t, uint64(1), entries[3].TransactionID)
		assert.Equal(t, entity.Credit, entries[3].Direction)
		assert.Equal(t, entity.LabelCashDeposit, entries[3].Counterparty)
		assert.Equal(t, "100.00", entries[3].RunningBalance.StringFixed(2))
	})

	t.Run("The other side of the statement mirrors it", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)
		history := []*entity.Transaction{partialReturn, salary}
		mockTransactions.EXPECT().ListByParty(mock.Anything, acme).Return(history, nil).Once()

		entries, err := service.Statement(context.Background(), acme)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		// Newest first: the return credit, then the salary debit
		assert.Equal(t, entity.Credit, entries[0].Direction)
		assert.Equal(t, "John", entries[0].Counterparty)
		assert.Equal(t, "-300.00", entries[0].RunningBalance.StringFixed(2))

		assert.Equal(t, entity.Debit, entries[1].Direction)
		assert.Equal(t, "-500.00", entries[1].RunningBalance.StringFixed(2))
	})

	t.Run("Date ties fall back to creation order", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)
		history := []*entity.Transaction{partialReturn, salary}
		mockTransactions.EXPECT().ListByParty(mock.Anything, john).Return(history, nil).Once()

		entries, err := service.Statement(context.Background(), john)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		// Salary (created 09:00) applies before the return (created 10:00)
		assert.Equal(t, uint64(3), entries[0].TransactionID)
		assert.Equal(t, "300.00", entries[0].RunningBalance.StringFixed(2))
		assert.Equal(t, uint64(2), entries[1].TransactionID)
		assert.Equal(t, "500.00", entries[1].RunningBalance.StringFixed(2))
	})

	t.Run("Identical timestamps apply in insertion order", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)
		first := &entity.Transaction{
			ID: 5, Date: day(12, 0), CreatedAt: day(12, 9), Amount: amt("100.00"),
			From: acme, FromName: "Acme Corp", To: john, ToName: "John",
		}
		second := &entity.Transaction{
			ID: 6, Date: day(12, 0), CreatedAt: day(12, 9), Amount: amt("40.00"),
			From: acme, FromName: "Acme Corp", To: john, ToName: "John",
		}
		// The store hands rows back newest first
		history := []*entity.Transaction{second, first}
		mockTransactions.EXPECT().ListByParty(mock.Anything, john).Return(history, nil).Once()

		entries, err := service.Statement(context.Background(), john)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, uint64(6), entries[0].TransactionID)
		assert.Equal(t, "140.00", entries[0].RunningBalance.StringFixed(2))
		assert.Equal(t, uint64(5), entries[1].TransactionID)
		assert.Equal(t, "100.00", entries[1].RunningBalance.StringFixed(2))
	})

	t.Run("Dangling counterparty degrades to a placeholder", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)
		history := []*entity.Transaction{
			{
				ID: 9, Date: day(12, 0), CreatedAt: day(12, 9), Amount: amt("75.00"),
				From: entity.PartyRef{Kind: entity.KindCompany, ID: 77}, FromName: "",
				To: john, ToName: "John",
			},
		}
		mockTransactions.EXPECT().ListByParty(mock.Anything, john).Return(history, nil).Once()

		entries, err := service.Statement(context.Background(), john)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entity.LabelDeletedParty, entries[0].Counterparty)
	})

	t.Run("A row naming the party on both sides counts as a credit", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)
		history := []*entity.Transaction{
			{
				ID: 8, Date: day(15, 0), CreatedAt: day(15, 9), Amount: amt("10.00"),
				From: john, FromName: "John", To: john, ToName: "John",
			},
		}
		mockTransactions.EXPECT().ListByParty(mock.Anything, john).Return(history, nil).Once()

		entries, err := service.Statement(context.Background(), john)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entity.Credit, entries[0].Direction)
		assert.Equal(t, "10.00", entries[0].RunningBalance.StringFixed(2))
	})

	t.Run("Empty history yields an empty statement", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)
		mockTransactions.EXPECT().ListByParty(mock.Anything, john).Return([]*entity.Transaction{}, nil).Once()

		entries, err := service.Statement(context.Background(), john)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Cash and malformed references are rejected", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.Statement(context.Background(), entity.CashRef())
		assert.ErrorIs(t, err, errs.ErrInvalidPartyKind)

		_, err = service.Statement(context.Background(), entity.PartyRef{Kind: entity.KindUser, ID: 0})
		assert.ErrorIs(t, err, errs.ErrInvalidPartyKind)
	})
}
