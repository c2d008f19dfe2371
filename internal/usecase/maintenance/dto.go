package maintenance

import (
	"time"

	domainMaintenance "asset-inventory-dashboard/internal/domain/maintenance"

	"github.com/google/uuid"
)

type ScheduleFilterRequest struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// SummaryResponse keeps the compliance rate at full precision; display
// rounding happens in the dashboard view.
type SummaryResponse struct {
	CompanyID      uuid.UUID `json:"company_id"`
	CompanyName    string    `json:"company_name"`
	TotalSchedules int       `json:"total_schedules"`
	Overdue        int       `json:"overdue"`
	Upcoming       int       `json:"upcoming"`
	ComplianceRate float64   `json:"compliance_rate"`
}

type ScheduleResponse struct {
	ID          uuid.UUID                        `json:"id"`
	AssetID     uuid.UUID                        `json:"asset_id"`
	Title       string                           `json:"title"`
	Status      domainMaintenance.ScheduleStatus `json:"status"`
	DueAt       time.Time                        `json:"due_at"`
	CompletedAt *time.Time                       `json:"completed_at"`
	Overdue     bool                             `json:"overdue"`
}

func ToScheduleResponse(s *domainMaintenance.Schedule, now time.Time) ScheduleResponse {
	return ScheduleResponse{
		ID:          s.ID,
		AssetID:     s.AssetID,
		Title:       s.Title,
		Status:      s.Status,
		DueAt:       s.DueAt,
		CompletedAt: s.CompletedAt,
		Overdue:     s.IsOverdue(now),
	}
}
