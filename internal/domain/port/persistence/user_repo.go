package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mehak6/accounting/internal/domain/entity"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// Create persists a new user and assigns its surrogate id
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetAll retrieves all users ordered by name
	GetAll(ctx context.Context) ([]*entity.User, error)

	// GetByCompany retrieves the users referencing a company, ordered by name
	GetByCompany(ctx context.Context, companyID uint64) ([]*entity.User, error)

	// Update applies the non-nil patch fields and reports affected rows
	Update(ctx context.Context, id uint64, patch entity.UserPatch) (int64, error)

	// Delete removes the user row and reports affected rows
	Delete(ctx context.Context, id uint64) (int64, error)

	// ClearCompany nulls the company reference on every user pointing at the
	// given company and reports affected rows
	ClearCompany(ctx context.Context, companyID uint64) (int64, error)

	// AdjustBalance applies balance += delta and reports affected rows
	AdjustBalance(ctx context.Context, id uint64, delta decimal.Decimal) (int64, error)

	// SumBalances totals all user balances
	SumBalances(ctx context.Context) (decimal.Decimal, error)

	// ZeroBalances resets every user balance to zero
	ZeroBalances(ctx context.Context) error
}
