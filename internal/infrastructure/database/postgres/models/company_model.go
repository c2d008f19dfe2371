package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel represents the database model for Companies.
type CompanyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (CompanyModel) TableName() string {
	return "companies"
}
