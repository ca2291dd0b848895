package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mehak6/accounting/internal/domain/entity"
)

func TestPaginate(t *testing.T) {
	t.Run("Middle page reports offset and total", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)
		page := []*entity.Transaction{{ID: 11}, {ID: 10}}

		mockTransactions.EXPECT().Count(mock.Anything).Return(45, nil).Once()
		mockTransactions.EXPECT().ListPage(mock.Anything, 20, 10).Return(page, nil).Once()

		results, total, err := service.Paginate(context.Background(), 3, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(45), total)
		assert.Equal(t, page, results)
	})

	t.Run("Page past the end is empty but keeps the total", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)

		mockTransactions.EXPECT().Count(mock.Anything).Return(45, nil).Once()

		results, total, err := service.Paginate(context.Background(), 6, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(45), total)
		assert.Empty(t, results)
		mockTransactions.AssertNotCalled(t, "ListPage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Non-positive page or size is empty, never an error", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)

		mockTransactions.EXPECT().Count(mock.Anything).Return(45, nil).Times(2)

		results, total, err := service.Paginate(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(45), total)
		assert.Empty(t, results)

		results, _, err = service.Paginate(context.Background(), 1, 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Empty ledger yields an empty first page", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)

		mockTransactions.EXPECT().Count(mock.Anything).Return(0, nil).Once()

		results, total, err := service.Paginate(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, results)
	})

	t.Run("Count failure propagates", func(t *testing.T) {
		service, _, _, mockTransactions := newTestService(t)

		mockTransactions.EXPECT().Count(mock.Anything).Return(0, errors.New("database error")).Once()

		_, _, err := service.Paginate(context.Background(), 1, 10)
		assert.Error(t, err)
	})
}
