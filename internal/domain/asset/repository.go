package asset

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock_repository.go -package=asset asset-inventory-dashboard/internal/domain/asset Repository

// Repository defines the read operations on the asset inventory
type Repository interface {
	GetByID(ctx context.Context, assetID uuid.UUID) (*Asset, error)
	// List returns assets newest first.
	List(ctx context.Context, filter *Filter) ([]*Asset, int64, error)
}

// Filter represents filtering options for listing assets
type Filter struct {
	Status    *Status
	CompanyID *uuid.UUID
	Search    string
	Page      int
	PageSize  int
}

// Unbounded reports whether the filter asks for every matching asset
func (f *Filter) Unbounded() bool {
	return f == nil || f.PageSize <= 0
}
