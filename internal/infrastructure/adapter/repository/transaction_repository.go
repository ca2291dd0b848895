package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mehak6/accounting/internal/domain/entity"
	errs "github.com/mehak6/accounting/internal/domain/error"
	coreport "github.com/mehak6/accounting/internal/domain/port/core"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/model"
)

// selectWithNames joins both party tables on each endpoint so every read
// carries resolved display names. A dangling endpoint resolves to an empty
// name, which the reporting layer turns into a placeholder label.
const selectWithNames = `
SELECT t.id, t.transaction_date, t.amount, t.from_kind, t.from_id, t.to_kind, t.to_id,
       t.description, t.reference, t.created_at,
       COALESCE(CASE t.from_kind WHEN 'company' THEN fc.name WHEN 'user' THEN fu.name ELSE '' END, '') AS from_name,
       COALESCE(CASE t.to_kind WHEN 'company' THEN tc.name WHEN 'user' THEN tu.name ELSE '' END, '') AS to_name
FROM transactions t
LEFT JOIN companies fc ON t.from_kind = 'company' AND fc.id = t.from_id
LEFT JOIN users fu ON t.from_kind = 'user' AND fu.id = t.from_id
LEFT JOIN companies tc ON t.to_kind = 'company' AND tc.id = t.to_id
LEFT JOIN users tu ON t.to_kind = 'user' AND tu.id = t.to_id`

// newestFirst orders a joined read for display; the id column breaks
// same-instant ties deterministically.
const newestFirst = ` ORDER BY t.transaction_date DESC, t.created_at DESC, t.id DESC`

// transactionRow is the scan target for the joined select
type transactionRow struct {
	ID              uint64
	TransactionDate time.Time
	Amount          decimal.Decimal
	FromKind        string
	FromID          uint64
	ToKind          string
	ToID            uint64
	Description     string
	Reference       string
	CreatedAt       time.Time
	FromName        string
	ToName          string
}

// toEntity converts a joined row to a transaction entity
func (row *transactionRow) toEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          row.ID,
		Date:        row.TransactionDate,
		Amount:      row.Amount,
		From:        entity.PartyRef{Kind: entity.PartyKind(row.FromKind), ID: row.FromID},
		To:          entity.PartyRef{Kind: entity.PartyKind(row.ToKind), ID: row.ToID},
		Description: row.Description,
		Reference:   row.Reference,
		CreatedAt:   row.CreatedAt,
		FromName:    row.FromName,
		ToName:      row.ToName,
	}
}

// TransactionRepository implements the transaction persistence port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, transactionID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": transactionID,
		"error":          err.Error(),
		"error_type":     string(r.errorClassifier.Classify(err)),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Transaction table is locked by another connection", map[string]any{
			"transaction_id": transactionID,
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseBusy, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabase, err.Error())
}

// rowsToEntities converts scanned rows to entities
func rowsToEntities(rows []transactionRow) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, rows[i].toEntity())
	}
	return transactions
}

// Create inserts a new transaction row and fills its assigned ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		TransactionDate: transaction.Date,
		Amount:          transaction.Amount,
		FromKind:        string(transaction.From.Kind),
		FromID:          transaction.From.ID,
		ToKind:          string(transaction.To.Kind),
		ToID:            transaction.To.ID,
		Description:     transaction.Description,
		Reference:       transaction.Reference,
		CreatedAt:       transaction.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error, 0)
	}

	transaction.ID = transactionModel.ID
	return nil
}

// GetByID retrieves a transaction with resolved party names
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var rows []transactionRow
	result := r.db.WithContext(ctx).
		Raw(selectWithNames+` WHERE t.id = ?`, id).
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error, id)
	}
	if len(rows) == 0 {
		return nil, errs.ErrTransactionNotFound
	}

	return rows[0].toEntity(), nil
}

// ListByParty retrieves every transaction a party appears in, newest first
func (r *TransactionRepository) ListByParty(ctx context.Context, ref entity.PartyRef) ([]*entity.Transaction, error) {
	var rows []transactionRow
	result := r.db.WithContext(ctx).
		Raw(selectWithNames+
			` WHERE (t.from_kind = ? AND t.from_id = ?) OR (t.to_kind = ? AND t.to_id = ?)`+newestFirst,
			string(ref.Kind), ref.ID, string(ref.Kind), ref.ID).
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions by party", result.Error, 0)
	}

	return rowsToEntities(rows), nil
}

// List retrieves the most recent transactions up to limit; limit <= 0
// returns the full history.
func (r *TransactionRepository) List(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	query := selectWithNames + newestFirst
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []transactionRow
	result := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error, 0)
	}

	return rowsToEntities(rows), nil
}

// ListPage retrieves one window of the history, newest first
func (r *TransactionRepository) ListPage(ctx context.Context, offset, limit int) ([]*entity.Transaction, error) {
	var rows []transactionRow
	result := r.db.WithContext(ctx).
		Raw(selectWithNames+newestFirst+` LIMIT ? OFFSET ?`, limit, offset).
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("paging transactions", result.Error, 0)
	}

	return rowsToEntities(rows), nil
}

// Count returns the total number of transactions
func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting transactions", result.Error, 0)
	}

	return count, nil
}

// Search matches the term case-insensitively against description,
// reference and both resolved party names, newest first.
func (r *TransactionRepository) Search(ctx context.Context, term string, limit int) ([]*entity.Transaction, error) {
	pattern := "%" + term + "%"
	query := selectWithNames + `
 WHERE LOWER(t.description) LIKE LOWER(?)
    OR LOWER(t.reference) LIKE LOWER(?)
    OR LOWER(COALESCE(fc.name, fu.name, '')) LIKE LOWER(?)
    OR LOWER(COALESCE(tc.name, tu.name, '')) LIKE LOWER(?)` + newestFirst
	args := []interface{}{pattern, pattern, pattern, pattern}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []transactionRow
	result := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("searching transactions", result.Error, 0)
	}

	return rowsToEntities(rows), nil
}

// Delete removes a transaction row and reports affected rows
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting transaction", result.Error, id)
	}

	return result.RowsAffected, nil
}

// DeleteAll removes every transaction row
func (r *TransactionRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Transaction{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting all transactions", result.Error, 0)
	}

	return nil
}

// Aggregate returns the transaction count with total and average amounts.
// An empty table reports zeros.
func (r *TransactionRepository) Aggregate(ctx context.Context) (int64, decimal.Decimal, decimal.Decimal, error) {
	var row struct {
		Count   int64
		Total   decimal.Decimal
		Average decimal.Decimal
	}
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total, COALESCE(AVG(amount), 0) AS average").
		Scan(&row)
	if result.Error != nil {
		return 0, decimal.Zero, decimal.Zero, r.handleDatabaseError("aggregating transactions", result.Error, 0)
	}

	return row.Count, row.Total, row.Average, nil
}
