package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/mehak6/accounting/internal/domain/error"
	coreport "github.com/mehak6/accounting/internal/domain/port/core"
)

// PartyKind identifies which table a party reference points into
type PartyKind string

// Party kinds
const (
	KindCompany PartyKind = "company"
	KindUser    PartyKind = "user"
	KindCash    PartyKind = "cash"
)

// CashID is the fixed id of the cash sentinel; it has no backing row
const CashID uint64 = 0

// PartyRef identifies one side of a money movement by (kind, id). It may
// dangle: deleting a party never touches the transactions referencing it.
type PartyRef struct {
	Kind PartyKind
	ID   uint64
}

// CashRef returns the sentinel reference used for deposits and withdrawals
func CashRef() PartyRef {
	return PartyRef{Kind: KindCash, ID: CashID}
}

// IsCash reports whether the reference is the cash sentinel kind
func (r PartyRef) IsCash() bool {
	return r.Kind == KindCash
}

// Valid reports whether the reference is well-formed. Company and user ids
// are surrogate keys starting at 1; cash always uses id 0.
func (r PartyRef) Valid() bool {
	switch r.Kind {
	case KindCompany, KindUser:
		return r.ID != 0
	case KindCash:
		return r.ID == CashID
	default:
		return false
	}
}

// Company represents a company party with a ledger-maintained balance
type Company struct {
	ID        uint64
	Name      string
	Address   string
	Phone     string
	Email     string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// NewCompany creates a new company with a zero balance. The name is required;
// contact fields are free text and duplicate or blank emails are allowed.
func NewCompany(name, address, phone, email string, timeProvider coreport.TimeProvider) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrBlankName
	}

	return &Company{
		Name:      name,
		Address:   address,
		Phone:     phone,
		Email:     email,
		Balance:   decimal.Zero,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// Ref returns the party reference for this company
func (c *Company) Ref() PartyRef {
	return PartyRef{Kind: KindCompany, ID: c.ID}
}

// User represents a user party with a ledger-maintained balance. CompanyID is
// a weak reference: nullable, no ownership, cleared when the company goes away.
type User struct {
	ID         uint64
	CompanyID  *uint64
	Name       string
	Email      string
	Role       string
	Department string
	Balance    decimal.Decimal
	CreatedAt  time.Time
}

// NewUser creates a new user with a zero balance
func NewUser(name, email, role, department string, companyID *uint64, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrBlankName
	}

	return &User{
		CompanyID:  companyID,
		Name:       name,
		Email:      email,
		Role:       role,
		Department: department,
		Balance:    decimal.Zero,
		CreatedAt:  timeProvider.Now(),
	}, nil
}

// Ref returns the party reference for this user
func (u *User) Ref() PartyRef {
	return PartyRef{Kind: KindUser, ID: u.ID}
}

// CompanyPatch carries a partial update for a company. Nil fields are left
// untouched. Balance is deliberately absent: it only ever moves as a side
// effect of transactions.
type CompanyPatch struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

// IsEmpty reports whether the patch changes nothing
func (p CompanyPatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.Phone == nil && p.Email == nil
}

// UserPatch carries a partial update for a user. Nil fields are left untouched.
type UserPatch struct {
	Name       *string
	Email      *string
	Role       *string
	Department *string
	CompanyID  *uint64
}

// IsEmpty reports whether the patch changes nothing
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Role == nil &&
		p.Department == nil && p.CompanyID == nil
}
