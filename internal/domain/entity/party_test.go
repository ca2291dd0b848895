package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/mehak6/accounting/internal/domain/error"
	coremocks "github.com/mehak6/accounting/mocks/port/core"
)

func TestPartyRef(t *testing.T) {
	t.Run("Validity per kind", func(t *testing.T) {
		assert.True(t, PartyRef{Kind: KindCompany, ID: 1}.Valid())
		assert.True(t, PartyRef{Kind: KindUser, ID: 7}.Valid())
		assert.True(t, CashRef().Valid())

		assert.False(t, PartyRef{Kind: KindCompany, ID: 0}.Valid())
		assert.False(t, PartyRef{Kind: KindUser, ID: 0}.Valid())
		assert.False(t, PartyRef{Kind: KindCash, ID: 3}.Valid())
		assert.False(t, PartyRef{Kind: "vendor", ID: 1}.Valid())
		assert.False(t, PartyRef{}.Valid())
	})

	t.Run("Cash sentinel", func(t *testing.T) {
		assert.True(t, CashRef().IsCash())
		assert.Equal(t, CashID, CashRef().ID)
		assert.False(t, PartyRef{Kind: KindCompany, ID: 1}.IsCash())
	})
}

func TestNewCompany(t *testing.T) {
	fixedTime := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		company, err := NewCompany("  Acme Corp  ", "12 High St", "555-0101", "info@acme.test", mockTime)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", company.Name)
		assert.True(t, company.Balance.IsZero())
		assert.Equal(t, fixedTime, company.CreatedAt)
	})

	t.Run("Blank name is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewCompany("   ", "", "", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrBlankName)
	})

	t.Run("Ref points at the company row", func(t *testing.T) {
		company := &Company{ID: 42}
		assert.Equal(t, PartyRef{Kind: KindCompany, ID: 42}, company.Ref())
	})
}

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	t.Run("Successful creation with employer", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		companyID := uint64(3)
		user, err := NewUser("John Doe", "john@acme.test", "Engineer", "R&D", &companyID, mockTime)
		require.NoError(t, err)
		assert.Equal(t, "John Doe", user.Name)
		require.NotNil(t, user.CompanyID)
		assert.Equal(t, uint64(3), *user.CompanyID)
		assert.True(t, user.Balance.IsZero())
	})

	t.Run("Employer is optional", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("Freelancer", "", "", "", nil, mockTime)
		require.NoError(t, err)
		assert.Nil(t, user.CompanyID)
	})

	t.Run("Blank name is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewUser("", "x@y.test", "", "", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrBlankName)
	})
}

func TestPatchIsEmpty(t *testing.T) {
	name := "New Name"

	assert.True(t, CompanyPatch{}.IsEmpty())
	assert.False(t, CompanyPatch{Name: &name}.IsEmpty())

	assert.True(t, UserPatch{}.IsEmpty())
	companyID := uint64(1)
	assert.False(t, UserPatch{CompanyID: &companyID}.IsEmpty())
}
