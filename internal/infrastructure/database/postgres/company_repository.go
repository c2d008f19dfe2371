package postgres

import (
	"context"
	"errors"
	"fmt"

	domainCompany "asset-inventory-dashboard/internal/domain/company"
	"asset-inventory-dashboard/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository implements domain.Company.Repository interface
type CompanyRepository struct {
	db *DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *DB) domainCompany.Repository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetByID(ctx context.Context, companyID uuid.UUID) (*domainCompany.Company, error) {
	var dbModel models.CompanyModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", companyID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainCompany.ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &domainCompany.Company{
		ID:        dbModel.ID,
		Name:      dbModel.Name,
		CreatedAt: dbModel.CreatedAt,
		UpdatedAt: dbModel.UpdatedAt,
	}, nil
}
