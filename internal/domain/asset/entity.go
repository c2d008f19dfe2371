package asset

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an asset
type Status string

const (
	StatusAvailable   Status = "available"
	StatusAssigned    Status = "assigned"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
	StatusLost        Status = "lost"
)

// Statuses lists every lifecycle state in display order.
var Statuses = []Status{
	StatusAvailable,
	StatusAssigned,
	StatusMaintenance,
	StatusRetired,
	StatusLost,
}

// IsValid reports whether s is a known lifecycle state
func (s Status) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Asset represents a tracked inventory item
type Asset struct {
	ID          uuid.UUID
	Name        string
	Tag         string
	Status      Status
	CompanyID   *uuid.UUID
	CompanyName *string
	Location    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasCompany reports whether the asset is owned by a company
func (a *Asset) HasCompany() bool {
	return a.CompanyID != nil && *a.CompanyID != uuid.Nil
}
