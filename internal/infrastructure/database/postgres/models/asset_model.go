package models

import (
	"time"

	"github.com/google/uuid"
)

// AssetModel represents the database model for Assets.
type AssetModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string        `gorm:"type:varchar(255);not null"`
	Tag       string        `gorm:"type:varchar(100);not null;uniqueIndex"`
	Status    string        `gorm:"type:varchar(50);not null;default:'available';index"`
	CompanyID *uuid.UUID    `gorm:"type:uuid;index"`
	Location  *string       `gorm:"type:varchar(255)"`
	CreatedAt time.Time     `gorm:"not null;index"`
	UpdatedAt time.Time     `gorm:"not null"`
	Company   *CompanyModel `gorm:"foreignKey:CompanyID;references:ID"`
}

func (AssetModel) TableName() string {
	return "assets"
}
