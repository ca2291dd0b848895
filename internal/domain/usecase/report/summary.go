package report

import (
	"context"

	"github.com/mehak6/accounting/internal/domain/entity"
)

// Summary aggregates the whole ledger: balance totals per party kind, their
// grand total, and transaction count with total and average amounts. An
// empty ledger reports zeros throughout.
func (s *Service) Summary(ctx context.Context) (*entity.Summary, error) {
	companyTotal, err := s.companies.SumBalances(ctx)
	if err != nil {
		return nil, err
	}

	userTotal, err := s.users.SumBalances(ctx)
	if err != nil {
		return nil, err
	}

	count, total, average, err := s.transactions.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.Summary{
		CompanyBalanceTotal: companyTotal,
		UserBalanceTotal:    userTotal,
		GrandTotal:          companyTotal.Add(userTotal),
		TransactionCount:    count,
		TotalAmount:         total,
		AverageAmount:       average,
	}, nil
}
