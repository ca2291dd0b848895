package model

// TransactionType is seeded reference metadata describing the party kind
// pairings a transfer can take.
type TransactionType struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"uniqueIndex;not null;size:100"`
	FromKind string `gorm:"not null;size:20"`
	ToKind   string `gorm:"not null;size:20"`
}

// TableName specifies the table name for TransactionType
func (TransactionType) TableName() string {
	return "transaction_types"
}
