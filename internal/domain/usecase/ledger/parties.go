package ledger

import (
	"context"

	"github.com/mehak6/accounting/internal/domain/entity"
	errs "github.com/mehak6/accounting/internal/domain/error"
	"github.com/mehak6/accounting/internal/domain/port/usecase"
)

// CreateCompany creates a company with a zero starting balance and returns
// its assigned id. Names need not be unique; emails may be blank or duplicated.
func (s *Service) CreateCompany(ctx context.Context, in usecase.CreateCompanyInput) (uint64, error) {
	company, err := entity.NewCompany(in.Name, in.Address, in.Phone, in.Email, s.timeProvider)
	if err != nil {
		return 0, err
	}

	if err := s.uow.Companies(ctx).Create(ctx, company); err != nil {
		return 0, err
	}

	s.logger.Info("Company created", map[string]any{
		"company_id": company.ID,
		"name":       company.Name,
	})
	return company.ID, nil
}

// CreateUser creates a user with a zero starting balance and returns its
// assigned id. The company reference is weak and may be nil.
func (s *Service) CreateUser(ctx context.Context, in usecase.CreateUserInput) (uint64, error) {
	user, err := entity.NewUser(in.Name, in.Email, in.Role, in.Department, in.CompanyID, s.timeProvider)
	if err != nil {
		return 0, err
	}

	if err := s.uow.Users(ctx).Create(ctx, user); err != nil {
		return 0, err
	}

	s.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"name":    user.Name,
	})
	return user.ID, nil
}

// GetCompany retrieves a company by id
func (s *Service) GetCompany(ctx context.Context, id uint64) (*entity.Company, error) {
	return s.uow.Companies(ctx).GetByID(ctx, id)
}

// GetUser retrieves a user by id
func (s *Service) GetUser(ctx context.Context, id uint64) (*entity.User, error) {
	return s.uow.Users(ctx).GetByID(ctx, id)
}

// ListCompanies retrieves all companies ordered by name
func (s *Service) ListCompanies(ctx context.Context) ([]*entity.Company, error) {
	return s.uow.Companies(ctx).GetAll(ctx)
}

// ListUsers retrieves all users ordered by name
func (s *Service) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.uow.Users(ctx).GetAll(ctx)
}

// ListUsersByCompany retrieves the users referencing a company
func (s *Service) ListUsersByCompany(ctx context.Context, companyID uint64) ([]*entity.User, error) {
	return s.uow.Users(ctx).GetByCompany(ctx, companyID)
}

// UpdateCompany applies the supplied patch fields. An empty patch changes
// nothing and reports zero affected rows; a non-empty patch against a
// missing id fails with ErrCompanyNotFound. Balance cannot be patched.
func (s *Service) UpdateCompany(ctx context.Context, id uint64, patch entity.CompanyPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, nil
	}

	affected, err := s.uow.Companies(ctx).Update(ctx, id, patch)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, errs.ErrCompanyNotFound
	}
	return affected, nil
}

// UpdateUser applies the supplied patch fields. An empty patch changes
// nothing and reports zero affected rows; a non-empty patch against a
// missing id fails with ErrUserNotFound.
func (s *Service) UpdateUser(ctx context.Context, id uint64, patch entity.UserPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, nil
	}

	affected, err := s.uow.Users(ctx).Update(ctx, id, patch)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, errs.ErrUserNotFound
	}
	return affected, nil
}

// DeleteCompany removes the company and clears the company reference on its
// users in the same atomic scope. Deletion is never blocked by a nonzero
// balance or by transaction history; those references are left to dangle and
// the reporting engine degrades them to a placeholder label.
func (s *Service) DeleteCompany(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.run(ctx, "delete company", func(txCtx context.Context) error {
		detached, err := s.uow.Users(txCtx).ClearCompany(txCtx, id)
		if err != nil {
			return err
		}

		affected, err = s.uow.Companies(txCtx).Delete(txCtx, id)
		if err != nil {
			return err
		}

		if affected > 0 {
			s.logger.Info("Company deleted", map[string]any{
				"company_id":     id,
				"users_detached": detached,
			})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// DeleteUser removes the user row. Transaction history referencing the user
// is untouched.
func (s *Service) DeleteUser(ctx context.Context, id uint64) (int64, error) {
	affected, err := s.uow.Users(ctx).Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		s.logger.Info("User deleted", map[string]any{
			"user_id": id,
		})
	}
	return affected, nil
}
