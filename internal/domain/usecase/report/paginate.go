package report

import (
	"context"

	"github.com/mehak6/accounting/internal/domain/entity"
)

// Paginate returns one fixed-size page of the full transaction history,
// newest first, plus the total row count. Pages are 1-based; a page outside
// the valid range (or a non-positive page size) yields an empty slice with
// the total still reported, never an error.
func (s *Service) Paginate(ctx context.Context, page, pageSize int) ([]*entity.Transaction, int64, error) {
	total, err := s.transactions.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 || pageSize < 1 {
		return []*entity.Transaction{}, total, nil
	}

	offset := (page - 1) * pageSize
	if int64(offset) >= total {
		return []*entity.Transaction{}, total, nil
	}

	results, err := s.transactions.ListPage(ctx, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
