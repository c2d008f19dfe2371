package company

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock_repository.go -package=company asset-inventory-dashboard/internal/domain/company Repository

// Repository defines the read operations on companies
type Repository interface {
	GetByID(ctx context.Context, companyID uuid.UUID) (*Company, error)
}
