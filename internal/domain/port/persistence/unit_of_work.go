package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-repository writes so that every public ledger
// operation commits all of its effects or none of them
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Companies returns a company repository bound to the current transaction
	Companies(ctx context.Context) CompanyRepository

	// Users returns a user repository bound to the current transaction
	Users(ctx context.Context) UserRepository

	// Transactions returns a transaction repository bound to the current transaction
	Transactions(ctx context.Context) TransactionRepository
}
