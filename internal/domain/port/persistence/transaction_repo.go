package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mehak6/accounting/internal/domain/entity"
)

// TransactionRepository defines persistence operations for the transaction
// ledger. Reads hydrate FromName/ToName from the party tables, falling back
// to empty strings for the cash sentinel and dangling references. List
// operations order newest-first by (date, created timestamp).
type TransactionRepository interface {
	// Create persists a new transaction and assigns its surrogate id
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction with resolved party names
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListByParty retrieves every transaction in which the party appears on
	// either side
	ListByParty(ctx context.Context, ref entity.PartyRef) ([]*entity.Transaction, error)

	// List retrieves transactions newest-first; limit <= 0 means no limit
	List(ctx context.Context, limit int) ([]*entity.Transaction, error)

	// ListPage retrieves one page of transactions newest-first
	ListPage(ctx context.Context, offset, limit int) ([]*entity.Transaction, error)

	// Count reports the number of transactions currently present
	Count(ctx context.Context) (int64, error)

	// Search matches term case-insensitively against description, reference
	// and both resolved party names; limit <= 0 means no limit
	Search(ctx context.Context, term string, limit int) ([]*entity.Transaction, error)

	// Delete removes the transaction row and reports affected rows
	Delete(ctx context.Context, id uint64) (int64, error)

	// DeleteAll clears the ledger
	DeleteAll(ctx context.Context) error

	// Aggregate reports transaction count, total amount and average amount
	Aggregate(ctx context.Context) (count int64, total, average decimal.Decimal, err error)
}
