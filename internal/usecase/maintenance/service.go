package maintenance

import (
	"context"
	"time"

	domainCompany "asset-inventory-dashboard/internal/domain/company"
	domainMaintenance "asset-inventory-dashboard/internal/domain/maintenance"
	appErrors "asset-inventory-dashboard/pkg/errors"
	"asset-inventory-dashboard/pkg/utils"

	"github.com/google/uuid"
)

// Service implements maintenance summary use cases
type Service struct {
	maintenanceRepo domainMaintenance.Repository
	companyRepo     domainCompany.Repository
	now             func() time.Time
}

// NewService creates a new maintenance service
func NewService(maintenanceRepo domainMaintenance.Repository, companyRepo domainCompany.Repository) *Service {
	return &Service{
		maintenanceRepo: maintenanceRepo,
		companyRepo:     companyRepo,
		now:             time.Now,
	}
}

// GetSummary returns the maintenance summary of an existing company
func (s *Service) GetSummary(ctx context.Context, companyID uuid.UUID) (*SummaryResponse, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	summary, err := s.maintenanceRepo.FetchSummary(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		CompanyID:      company.ID,
		CompanyName:    company.Name,
		TotalSchedules: summary.TotalSchedules,
		Overdue:        summary.Overdue,
		Upcoming:       summary.Upcoming,
		ComplianceRate: summary.ComplianceRate,
	}, nil
}

// ListSchedules returns the schedules of an existing company due in [from, to)
func (s *Service) ListSchedules(ctx context.Context, companyID uuid.UUID, req *ScheduleFilterRequest) ([]ScheduleResponse, error) {
	if req == nil {
		req = &ScheduleFilterRequest{}
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if req.From != nil && req.To != nil && !req.To.After(*req.From) {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "'to' must be after 'from'", appErrors.ErrInvalidInput)
	}

	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	var from, to time.Time
	if req.From != nil {
		from = *req.From
	}
	if req.To != nil {
		to = *req.To
	}

	schedules, err := s.maintenanceRepo.ListSchedules(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]ScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = ToScheduleResponse(schedule, now)
	}

	return responses, nil
}
