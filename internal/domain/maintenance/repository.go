package maintenance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock_repository.go -package=maintenance asset-inventory-dashboard/internal/domain/maintenance SummaryFetcher,Repository

// SummaryFetcher provides the maintenance summary of a single company.
// Implementations must be safe to call once per company per dashboard session.
type SummaryFetcher interface {
	FetchSummary(ctx context.Context, companyID uuid.UUID) (*Summary, error)
}

// Repository defines the read operations on maintenance schedules
type Repository interface {
	SummaryFetcher
	ListSchedules(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]*Schedule, error)
}
