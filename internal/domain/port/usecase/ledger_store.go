package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mehak6/accounting/internal/domain/entity"
)

// CreateCompanyInput carries the fields for a new company
type CreateCompanyInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// CreateUserInput carries the fields for a new user
type CreateUserInput struct {
	Name       string
	Email      string
	Role       string
	Department string
	CompanyID  *uint64
}

// RecordTransactionInput carries the fields for one money movement between
// two persisted parties. Cash movements go through Deposit and Withdraw.
type RecordTransactionInput struct {
	Date        time.Time
	Amount      decimal.Decimal
	From        entity.PartyRef
	To          entity.PartyRef
	Description string
	Reference   string
}

// LedgerStore is the single source of truth for parties and transactions and
// the only component allowed to mutate balances. Every mutating operation is
// atomic: it commits all of its writes or none of them.
type LedgerStore interface {
	CreateCompany(ctx context.Context, in CreateCompanyInput) (uint64, error)
	CreateUser(ctx context.Context, in CreateUserInput) (uint64, error)
	GetCompany(ctx context.Context, id uint64) (*entity.Company, error)
	GetUser(ctx context.Context, id uint64) (*entity.User, error)
	ListCompanies(ctx context.Context) ([]*entity.Company, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	ListUsersByCompany(ctx context.Context, companyID uint64) ([]*entity.User, error)
	UpdateCompany(ctx context.Context, id uint64, patch entity.CompanyPatch) (int64, error)
	UpdateUser(ctx context.Context, id uint64, patch entity.UserPatch) (int64, error)
	DeleteCompany(ctx context.Context, id uint64) (int64, error)
	DeleteUser(ctx context.Context, id uint64) (int64, error)

	RecordTransaction(ctx context.Context, in RecordTransactionInput) (uint64, error)
	Deposit(ctx context.Context, ref entity.PartyRef, amount decimal.Decimal, description string) (uint64, error)
	Withdraw(ctx context.Context, ref entity.PartyRef, amount decimal.Decimal, description string) (uint64, error)
	DeleteTransaction(ctx context.Context, id uint64) (int64, error)
	DeleteTransactionsBulk(ctx context.Context, ids []uint64) (int, error)
	AmendTransaction(ctx context.Context, id uint64, in RecordTransactionInput) (uint64, error)
	ResetAll(ctx context.Context) error
}
