package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mehak6/accounting/internal/domain/entity"
	errs "github.com/mehak6/accounting/internal/domain/error"
	coreport "github.com/mehak6/accounting/internal/domain/port/core"
	"github.com/mehak6/accounting/internal/infrastructure/adapter/model"
)

// UserRepository implements the user persistence port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:         userModel.ID,
		CompanyID:  userModel.CompanyID,
		Name:       userModel.Name,
		Email:      userModel.Email,
		Role:       userModel.Role,
		Department: userModel.Department,
		Balance:    userModel.Balance,
		CreatedAt:  userModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id":    userID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("User table is locked by another connection", map[string]any{
			"user_id": userID,
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseBusy, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabase, err.Error())
}

// Create inserts a new user and fills its assigned ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		CompanyID:  user.CompanyID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		Balance:    user.Balance,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, 0)
	}

	user.ID = userModel.ID
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetAll retrieves all users ordered by name
func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).Order("name asc").Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, 0)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.modelToEntity(&userModels[i]))
	}
	return users, nil
}

// GetByCompany retrieves the users attached to a company
func (r *UserRepository) GetByCompany(ctx context.Context, companyID uint64) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name asc").
		Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users by company", result.Error, 0)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.modelToEntity(&userModels[i]))
	}
	return users, nil
}

// Update applies the non-nil patch fields and reports affected rows
func (r *UserRepository) Update(ctx context.Context, id uint64, patch entity.UserPatch) (int64, error) {
	updates := map[string]interface{}{
		"updated_at": r.timeProvider.Now(),
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Role != nil {
		updates["role"] = *patch.Role
	}
	if patch.Department != nil {
		updates["department"] = *patch.Department
	}
	if patch.CompanyID != nil {
		updates["company_id"] = *patch.CompanyID
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return 0, r.handleDatabaseError("updating user", result.Error, id)
	}

	return result.RowsAffected, nil
}

// Delete removes a user row and reports affected rows
func (r *UserRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting user", result.Error, id)
	}

	return result.RowsAffected, nil
}

// ClearCompany detaches every user of a company, leaving the users in
// place with no employer. Reports how many rows were touched.
func (r *UserRepository) ClearCompany(ctx context.Context, companyID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("company_id = ?", companyID).
		Updates(map[string]interface{}{
			"company_id": nil,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("detaching company users", result.Error, 0)
	}

	return result.RowsAffected, nil
}

// AdjustBalance applies a signed delta to the stored balance in a single
// statement. Zero affected rows means the user does not exist.
func (r *UserRepository) AdjustBalance(ctx context.Context, id uint64, delta decimal.Decimal) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("adjusting user balance", result.Error, id)
	}

	return result.RowsAffected, nil
}

// SumBalances totals every user balance
func (r *UserRepository) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, r.handleDatabaseError("summing user balances", result.Error, 0)
	}

	return total, nil
}

// ZeroBalances resets every user balance to zero
func (r *UserRepository) ZeroBalances(ctx context.Context) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"balance":    decimal.Zero,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("zeroing user balances", result.Error, 0)
	}

	return nil
}
