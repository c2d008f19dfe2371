package asset

import (
	"context"

	domainAsset "asset-inventory-dashboard/internal/domain/asset"
	appErrors "asset-inventory-dashboard/pkg/errors"
	"asset-inventory-dashboard/pkg/utils"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service implements read-only asset use cases
type Service struct {
	assetRepo       domainAsset.Repository
	defaultPageSize int
}

// NewService creates a new asset service
func NewService(assetRepo domainAsset.Repository, pageSize int) *Service {
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return &Service{
		assetRepo:       assetRepo,
		defaultPageSize: pageSize,
	}
}

func (s *Service) GetAsset(ctx context.Context, assetID uuid.UUID) (*AssetResponse, error) {
	a, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	return ToAssetResponse(a), nil
}

func (s *Service) ListAssets(ctx context.Context, req *AssetFilterRequest) (*AssetListResponse, error) {
	if req == nil {
		req = &AssetFilterRequest{}
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = s.defaultPageSize
	}

	filter, err := ToDomainFilter(req)
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid company ID", err)
	}

	assets, total, err := s.assetRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]AssetResponse, len(assets))
	for i, a := range assets {
		responses[i] = *ToAssetResponse(a)
	}

	totalPages := int(total) / req.PageSize
	if int(total)%req.PageSize > 0 {
		totalPages++
	}

	return &AssetListResponse{
		Assets:     responses,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}
