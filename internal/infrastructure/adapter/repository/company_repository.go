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

// CompanyRepository implements the company persistence port using GORM
type CompanyRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCompanyRepository creates a new CompanyRepository instance
func NewCompanyRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CompanyRepository {
	return &CompanyRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a company model to an entity
func (r *CompanyRepository) modelToEntity(companyModel *model.Company) *entity.Company {
	return &entity.Company{
		ID:        companyModel.ID,
		Name:      companyModel.Name,
		Address:   companyModel.Address,
		Phone:     companyModel.Phone,
		Email:     companyModel.Email,
		Balance:   companyModel.Balance,
		CreatedAt: companyModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *CompanyRepository) handleDatabaseError(operation string, err error, companyID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"company_id": companyID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCompanyNotFound
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Company table is locked by another connection", map[string]any{
			"company_id": companyID,
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseBusy, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabase, err.Error())
}

// Create inserts a new company and fills its assigned ID
func (r *CompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyModel := model.Company{
		Name:      company.Name,
		Address:   company.Address,
		Phone:     company.Phone,
		Email:     company.Email,
		Balance:   company.Balance,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&companyModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating company", result.Error, 0)
	}

	company.ID = companyModel.ID
	return nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uint64) (*entity.Company, error) {
	var companyModel model.Company
	result := r.db.WithContext(ctx).First(&companyModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting company", result.Error, id)
	}

	return r.modelToEntity(&companyModel), nil
}

// GetAll retrieves all companies ordered by name
func (r *CompanyRepository) GetAll(ctx context.Context) ([]*entity.Company, error) {
	var companyModels []model.Company
	result := r.db.WithContext(ctx).Order("name asc").Find(&companyModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing companies", result.Error, 0)
	}

	companies := make([]*entity.Company, 0, len(companyModels))
	for i := range companyModels {
		companies = append(companies, r.modelToEntity(&companyModels[i]))
	}
	return companies, nil
}

// Update applies the non-nil patch fields and reports affected rows
func (r *CompanyRepository) Update(ctx context.Context, id uint64, patch entity.CompanyPatch) (int64, error) {
	updates := map[string]interface{}{
		"updated_at": r.timeProvider.Now(),
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}

	result := r.db.WithContext(ctx).Model(&model.Company{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return 0, r.handleDatabaseError("updating company", result.Error, id)
	}

	return result.RowsAffected, nil
}

// Delete removes a company row and reports affected rows
func (r *CompanyRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Company{}, id)
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting company", result.Error, id)
	}

	return result.RowsAffected, nil
}

// AdjustBalance applies a signed delta to the stored balance in a single
// statement. Zero affected rows means the company does not exist.
func (r *CompanyRepository) AdjustBalance(ctx context.Context, id uint64, delta decimal.Decimal) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Company{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("adjusting company balance", result.Error, id)
	}

	return result.RowsAffected, nil
}

// SumBalances totals every company balance
func (r *CompanyRepository) SumBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	result := r.db.WithContext(ctx).Model(&model.Company{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, r.handleDatabaseError("summing company balances", result.Error, 0)
	}

	return total, nil
}

// ZeroBalances resets every company balance to zero
func (r *CompanyRepository) ZeroBalances(ctx context.Context) error {
	result := r.db.WithContext(ctx).Model(&model.Company{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"balance":    decimal.Zero,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("zeroing company balances", result.Error, 0)
	}

	return nil
}
