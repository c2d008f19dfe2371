package asset

import (
	"time"

	domainAsset "asset-inventory-dashboard/internal/domain/asset"

	"github.com/google/uuid"
)

type AssetFilterRequest struct {
	Status    *string `form:"status" validate:"omitempty,asset_status"`
	CompanyID *string `form:"company_id" validate:"omitempty,uuid"`
	Search    string  `form:"search" validate:"omitempty,max=100"`
	Page      int     `form:"page" validate:"omitempty,min=1"`
	PageSize  int     `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type AssetResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Tag         string             `json:"tag"`
	Status      domainAsset.Status `json:"status"`
	CompanyID   *uuid.UUID         `json:"company_id"`
	CompanyName *string            `json:"company_name"`
	Location    *string            `json:"location"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type AssetListResponse struct {
	Assets     []AssetResponse `json:"assets"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

func ToAssetResponse(a *domainAsset.Asset) *AssetResponse {
	if a == nil {
		return nil
	}
	return &AssetResponse{
		ID:          a.ID,
		Name:        a.Name,
		Tag:         a.Tag,
		Status:      a.Status,
		CompanyID:   a.CompanyID,
		CompanyName: a.CompanyName,
		Location:    a.Location,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func ToDomainFilter(req *AssetFilterRequest) (*domainAsset.Filter, error) {
	if req == nil {
		return &domainAsset.Filter{}, nil
	}
	filter := &domainAsset.Filter{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Status != nil {
		status := domainAsset.Status(*req.Status)
		filter.Status = &status
	}
	if req.CompanyID != nil && *req.CompanyID != "" {
		companyID, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return nil, err
		}
		filter.CompanyID = &companyID
	}
	return filter, nil
}
