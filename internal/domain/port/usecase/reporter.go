package usecase

import (
	"context"

	"github.com/mehak6/accounting/internal/domain/entity"
)

// Reporter builds derived read-only views over the ledger store's current
// state. It never mutates and recomputes fresh on every call.
type Reporter interface {
	// Statement returns the per-account statement, newest entry first
	Statement(ctx context.Context, ref entity.PartyRef) ([]entity.LedgerEntry, error)

	// Search matches term case-insensitively against description, reference
	// and both party names; limit <= 0 means unbounded
	Search(ctx context.Context, term string, limit int) ([]*entity.Transaction, error)

	// Paginate returns the 1-indexed page of transactions newest-first along
	// with the total count; out-of-range pages yield an empty slice
	Paginate(ctx context.Context, page, pageSize int) ([]*entity.Transaction, int64, error)

	// Summary aggregates balances and transaction statistics
	Summary(ctx context.Context) (*entity.Summary, error)
}
