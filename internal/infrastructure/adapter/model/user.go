package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents the database model for users. CompanyID is a plain
// nullable column, not a foreign key constraint: a user may outlive the
// company it pointed at.
type User struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	CompanyID  *uint64         `gorm:"index"`
	Name       string          `gorm:"not null;size:255"`
	Email      string          `gorm:"size:255"`
	Role       string          `gorm:"size:100"`
	Department string          `gorm:"size:100"`
	Balance    decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
