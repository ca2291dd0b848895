package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mehak6/accounting/internal/domain/entity"
	errs "github.com/mehak6/accounting/internal/domain/error"
	"github.com/mehak6/accounting/internal/domain/port/usecase"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/logger"
	coremocks "github.com/mehak6/accounting/mocks/port/core"
	persistencemocks "github.com/mehak6/accounting/mocks/port/persistence"
)

func TestCreateCompany(t *testing.T) {
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Successful creation returns the assigned id", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCompanies := persistencemocks.NewMockCompanyRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Once()

		mockUow.EXPECT().Companies(ctx).Return(mockCompanies).Once()
		mockCompanies.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(company *entity.Company) bool {
				return company.Name == "Acme Corp" && company.Balance.IsZero()
			})).
			Run(func(ctx context.Context, company *entity.Company) {
				company.ID = 1
			}).
			Return(nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		id, err := service.CreateCompany(ctx, usecase.CreateCompanyInput{Name: " Acme Corp "})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
	})

	t.Run("Blank name is rejected without touching storage", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		_, err := service.CreateCompany(context.Background(), usecase.CreateCompanyInput{Name: "  "})
		assert.ErrorIs(t, err, errs.ErrBlankName)
		mockUow.AssertNotCalled(t, "Companies", mock.Anything)
	})
}

func TestCreateUser(t *testing.T) {
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Successful creation with an employer", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Once()

		companyID := uint64(1)
		mockUow.EXPECT().Users(ctx).Return(mockUsers).Once()
		mockUsers.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
				return user.Name == "John Doe" && user.CompanyID != nil && *user.CompanyID == 1
			})).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = 2
			}).
			Return(nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		id, err := service.CreateUser(ctx, usecase.CreateUserInput{
			Name:      "John Doe",
			Email:     "john@acme.test",
			CompanyID: &companyID,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), id)
	})
}

func TestUpdateParties(t *testing.T) {
	t.Run("Empty patch changes nothing without touching storage", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		affected, err := service.UpdateCompany(context.Background(), 1, entity.CompanyPatch{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)

		affected, err = service.UpdateUser(context.Background(), 2, entity.UserPatch{})
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)

		mockUow.AssertNotCalled(t, "Companies", mock.Anything)
		mockUow.AssertNotCalled(t, "Users", mock.Anything)
	})

	t.Run("Patch fields are forwarded", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCompanies := persistencemocks.NewMockCompanyRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		name := "Acme Holdings"
		patch := entity.CompanyPatch{Name: &name}

		mockUow.EXPECT().Companies(ctx).Return(mockCompanies).Once()
		mockCompanies.EXPECT().Update(mock.Anything, uint64(1), patch).Return(1, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		affected, err := service.UpdateCompany(ctx, 1, patch)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("Patching a missing company is a not-found failure", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCompanies := persistencemocks.NewMockCompanyRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		name := "Ghost Corp"
		patch := entity.CompanyPatch{Name: &name}

		mockUow.EXPECT().Companies(ctx).Return(mockCompanies).Once()
		mockCompanies.EXPECT().Update(mock.Anything, uint64(99), patch).Return(0, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		affected, err := service.UpdateCompany(ctx, 99, patch)
		assert.ErrorIs(t, err, errs.ErrCompanyNotFound)
		assert.Equal(t, int64(0), affected)
	})

	t.Run("Patching a missing user is a not-found failure", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		role := "accountant"
		patch := entity.UserPatch{Role: &role}

		mockUow.EXPECT().Users(ctx).Return(mockUsers).Once()
		mockUsers.EXPECT().Update(mock.Anything, uint64(99), patch).Return(0, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		affected, err := service.UpdateUser(ctx, 99, patch)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Equal(t, int64(0), affected)
	})
}

func TestDeleteCompany(t *testing.T) {
	t.Run("Deletion detaches users in the same atomic scope", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCompanies := persistencemocks.NewMockCompanyRepository(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers).Once()
		mockUow.EXPECT().Companies(mock.Anything).Return(mockCompanies).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUsers.EXPECT().ClearCompany(mock.Anything, uint64(1)).Return(3, nil).Once()
		mockCompanies.EXPECT().Delete(mock.Anything, uint64(1)).Return(1, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		affected, err := service.DeleteCompany(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("Missing company reports zero rows", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockCompanies := persistencemocks.NewMockCompanyRepository(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		mockUow.EXPECT().Users(mock.Anything).Return(mockUsers).Once()
		mockUow.EXPECT().Companies(mock.Anything).Return(mockCompanies).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockUsers.EXPECT().ClearCompany(mock.Anything, uint64(9)).Return(0, nil).Once()
		mockCompanies.EXPECT().Delete(mock.Anything, uint64(9)).Return(0, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		affected, err := service.DeleteCompany(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Deletion reports affected rows", func(t *testing.T) {
		ctx := context.Background()
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockUsers := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUow.EXPECT().Users(ctx).Return(mockUsers).Once()
		mockUsers.EXPECT().Delete(mock.Anything, uint64(2)).Return(1, nil).Once()

		service := NewService(mockUow, mockTime, logger.NewNoopLogger())

		affected, err := service.DeleteUser(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})
}
