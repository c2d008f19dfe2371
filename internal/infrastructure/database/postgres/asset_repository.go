package postgres

import (
	"context"
	"errors"
	"fmt"

	domainAsset "asset-inventory-dashboard/internal/domain/asset"
	"asset-inventory-dashboard/internal/infrastructure/database/postgres/models"
	"asset-inventory-dashboard/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetRepository implements domain.Asset.Repository interface
type AssetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domainAsset.Repository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) GetByID(ctx context.Context, assetID uuid.UUID) (*domainAsset.Asset, error) {
	var dbModel models.AssetModel
	err := r.db.DB.WithContext(ctx).
		Preload("Company").
		Where("id = ?", assetID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainAsset.ErrAssetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return toAssetEntity(&dbModel), nil
}

func (r *AssetRepository) List(ctx context.Context, filter *domainAsset.Filter) ([]*domainAsset.Asset, int64, error) {
	if filter == nil {
		filter = &domainAsset.Filter{}
	}

	var dbModels []models.AssetModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.AssetModel{}).
		Preload("Company")

	// Apply filters
	if filter.Status != nil {
		db = db.Where("assets.status = ?", string(*filter.Status))
	}
	if filter.CompanyID != nil {
		db = db.Where("assets.company_id = ?", *filter.CompanyID)
	}
	if search := utils.SanitizeSearch(filter.Search); search != "" {
		pattern := "%" + search + "%"
		db = db.Where("assets.name ILIKE ? OR assets.tag ILIKE ?", pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	db = db.Order("assets.created_at DESC").Order("assets.id")

	// Dashboard sessions read the whole inventory; the asset list API pages.
	if !filter.Unbounded() {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		db = db.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	if err := db.Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*domainAsset.Asset, len(dbModels))
	for i := range dbModels {
		assets[i] = toAssetEntity(&dbModels[i])
	}

	return assets, total, nil
}

func toAssetEntity(m *models.AssetModel) *domainAsset.Asset {
	a := &domainAsset.Asset{
		ID:        m.ID,
		Name:      m.Name,
		Tag:       m.Tag,
		Status:    domainAsset.Status(m.Status),
		CompanyID: m.CompanyID,
		Location:  m.Location,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Company != nil {
		name := m.Company.Name
		a.CompanyName = &name
	}
	return a
}
