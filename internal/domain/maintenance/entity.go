package maintenance

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus represents the state of a maintenance schedule
type ScheduleStatus string

const (
	ScheduleScheduled ScheduleStatus = "scheduled"
	ScheduleCompleted ScheduleStatus = "completed"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// Schedule is a planned maintenance task for one asset
type Schedule struct {
	ID          uuid.UUID
	AssetID     uuid.UUID
	CompanyID   uuid.UUID
	Title       string
	Status      ScheduleStatus
	DueAt       time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOverdue reports whether the schedule is still open past its due date
func (s *Schedule) IsOverdue(now time.Time) bool {
	return s.Status == ScheduleScheduled && s.DueAt.Before(now)
}

// Summary holds the maintenance statistics of one company.
// ComplianceRate is a percentage kept at full precision.
type Summary struct {
	TotalSchedules int
	Overdue        int
	Upcoming       int
	ComplianceRate float64
}
