package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mehak6/accounting/internal/domain/entity"
)

// CompanyRepository defines persistence operations for companies. Balance
// mutation goes exclusively through AdjustBalance so the ledger store remains
// the only writer of balances.
type CompanyRepository interface {
	// Create persists a new company and assigns its surrogate id
	Create(ctx context.Context, company *entity.Company) error

	// GetByID retrieves a company by id
	GetByID(ctx context.Context, id uint64) (*entity.Company, error)

	// GetAll retrieves all companies ordered by name
	GetAll(ctx context.Context) ([]*entity.Company, error)

	// Update applies the non-nil patch fields and reports affected rows
	Update(ctx context.Context, id uint64, patch entity.CompanyPatch) (int64, error)

	// Delete removes the company row and reports affected rows
	Delete(ctx context.Context, id uint64) (int64, error)

	// AdjustBalance applies balance += delta and reports affected rows
	AdjustBalance(ctx context.Context, id uint64, delta decimal.Decimal) (int64, error)

	// SumBalances totals all company balances
	SumBalances(ctx context.Context) (decimal.Decimal, error)

	// ZeroBalances resets every company balance to zero
	ZeroBalances(ctx context.Context) error
}
