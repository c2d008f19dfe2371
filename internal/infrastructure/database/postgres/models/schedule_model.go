package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceScheduleModel represents the database model for maintenance schedules.
type MaintenanceScheduleModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AssetID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Status      string     `gorm:"type:varchar(50);not null;default:'scheduled'"`
	DueAt       time.Time  `gorm:"not null;index"`
	CompletedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

func (MaintenanceScheduleModel) TableName() string {
	return "maintenance_schedules"
}
