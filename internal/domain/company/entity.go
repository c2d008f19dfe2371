package company

import (
	"time"

	"github.com/google/uuid"
)

// Company represents an organization that owns assets
type Company struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
