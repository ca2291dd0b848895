package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company represents the database model for companies
type Company struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"not null;size:255"`
	Address   string          `gorm:"type:text"`
	Phone     string          `gorm:"size:50"`
	Email     string          `gorm:"size:255"`
	Balance   decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Company
func (Company) TableName() string {
	return "companies"
}
