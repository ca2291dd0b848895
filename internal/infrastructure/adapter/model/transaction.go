package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger transactions.
// Endpoints are stored as (kind, id) pairs rather than foreign keys so a
// row survives deletion of the party it references. The cash sentinel is
// kind "cash" with id 0.
type Transaction struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement"`
	TransactionDate time.Time       `gorm:"column:transaction_date;not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric;not null"`
	FromKind        string          `gorm:"not null;size:20;index:idx_transactions_from,priority:1"`
	FromID          uint64          `gorm:"not null;index:idx_transactions_from,priority:2"`
	ToKind          string          `gorm:"not null;size:20;index:idx_transactions_to,priority:1"`
	ToID            uint64          `gorm:"not null;index:idx_transactions_to,priority:2"`
	Description     string          `gorm:"type:text"`
	Reference       string          `gorm:"size:100"`
	CreatedAt       time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
