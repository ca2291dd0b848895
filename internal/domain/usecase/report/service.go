package report

import (
	coreport "github.com/mehak6/accounting/internal/domain/port/core"
	"github.com/mehak6/accounting/internal/domain/port/persistence"
	"github.com/mehak6/accounting/internal/domain/port/usecase"
)

// Service implements the Reporter port: derived read-only views recomputed
// fresh from the ledger store's current state on every call. It holds plain
// repositories rather than a unit of work because it never mutates.
type Service struct {
	companies    persistence.CompanyRepository
	users        persistence.UserRepository
	transactions persistence.TransactionRepository
	logger       coreport.Logger
}

// Compile-time interface check
var _ usecase.Reporter = (*Service)(nil)

// NewService creates a new reporting service
func NewService(
	companies persistence.CompanyRepository,
	users persistence.UserRepository,
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		companies:    companies,
		users:        users,
		transactions: transactions,
		logger:       logger,
	}
}
