package report

import (
	"context"
	"strings"

	"github.com/mehak6/accounting/internal/domain/entity"
)

// Search finds transactions whose description, reference or resolved party
// names contain the term, case-insensitively, newest first. A blank term
// matches nothing. limit <= 0 means no cap.
func (s *Service) Search(ctx context.Context, term string, limit int) ([]*entity.Transaction, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*entity.Transaction{}, nil
	}

	results, err := s.transactions.Search(ctx, term, limit)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Transaction search executed", map[string]any{
		"term":    term,
		"matches": len(results),
	})
	return results, nil
}
