package postgres

import (
	"context"
	"fmt"
	"time"

	domainMaintenance "asset-inventory-dashboard/internal/domain/maintenance"
	"asset-inventory-dashboard/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
)

const defaultUpcomingWindow = 30 * 24 * time.Hour

// MaintenanceRepository implements domain.Maintenance.Repository interface
type MaintenanceRepository struct {
	db             *DB
	upcomingWindow time.Duration
	now            func() time.Time
}

// NewMaintenanceRepository creates a new maintenance repository. Schedules due
// within upcomingWindow count as upcoming.
func NewMaintenanceRepository(db *DB, upcomingWindow time.Duration) *MaintenanceRepository {
	if upcomingWindow <= 0 {
		upcomingWindow = defaultUpcomingWindow
	}
	return &MaintenanceRepository{
		db:             db,
		upcomingWindow: upcomingWindow,
		now:            time.Now,
	}
}

type summaryRow struct {
	TotalSchedules  int
	Overdue         int
	Upcoming        int
	CompletedOnTime int
	Completed       int
}

func (r *MaintenanceRepository) FetchSummary(ctx context.Context, companyID uuid.UUID) (*domainMaintenance.Summary, error) {
	now := r.now()
	horizon := now.Add(r.upcomingWindow)

	var row summaryRow
	err := r.db.DB.WithContext(ctx).Raw(`
        SELECT
            COUNT(*) FILTER (WHERE status <> 'cancelled') as total_schedules,
            COUNT(*) FILTER (WHERE status = 'scheduled' AND due_at < ?) as overdue,
            COUNT(*) FILTER (WHERE status = 'scheduled' AND due_at >= ? AND due_at < ?) as upcoming,
            COUNT(*) FILTER (WHERE status = 'completed' AND completed_at <= due_at) as completed_on_time,
            COUNT(*) FILTER (WHERE status = 'completed') as completed
        FROM maintenance_schedules
        WHERE company_id = ?
    `, now, now, horizon, companyID).Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance summary: %w", err)
	}

	return &domainMaintenance.Summary{
		TotalSchedules: row.TotalSchedules,
		Overdue:        row.Overdue,
		Upcoming:       row.Upcoming,
		ComplianceRate: complianceRate(row.CompletedOnTime, row.Completed, row.Overdue),
	}, nil
}

func (r *MaintenanceRepository) ListSchedules(ctx context.Context, companyID uuid.UUID, from, to time.Time) ([]*domainMaintenance.Schedule, error) {
	var dbModels []models.MaintenanceScheduleModel

	db := r.db.DB.WithContext(ctx).
		Model(&models.MaintenanceScheduleModel{}).
		Where("company_id = ?", companyID)

	if !from.IsZero() {
		db = db.Where("due_at >= ?", from)
	}
	if !to.IsZero() {
		db = db.Where("due_at < ?", to)
	}

	if err := db.Order("due_at ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance schedules: %w", err)
	}

	schedules := make([]*domainMaintenance.Schedule, len(dbModels))
	for i := range dbModels {
		schedules[i] = toScheduleEntity(&dbModels[i])
	}

	return schedules, nil
}

// complianceRate is the share of due work done on time: on-time completions
// over completions plus overdue schedules. No due work counts as fully compliant.
func complianceRate(onTime, completed, overdue int) float64 {
	due := completed + overdue
	if due == 0 {
		return 100
	}
	return float64(onTime) * 100 / float64(due)
}

func toScheduleEntity(m *models.MaintenanceScheduleModel) *domainMaintenance.Schedule {
	return &domainMaintenance.Schedule{
		ID:          m.ID,
		AssetID:     m.AssetID,
		CompanyID:   m.CompanyID,
		Title:       m.Title,
		Status:      domainMaintenance.ScheduleStatus(m.Status),
		DueAt:       m.DueAt,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
