package dashboard

import (
	"math"

	domainMaintenance "asset-inventory-dashboard/internal/domain/maintenance"

	"github.com/google/uuid"
)

// Totals is the fold of every maintenance summary currently loaded.
type Totals struct {
	TotalSchedules int
	Overdue        int
	Upcoming       int
}

// FoldTotals sums schedule, overdue and upcoming counts. Compliance rates are per company and not summed.
func FoldTotals(summaries map[uuid.UUID]domainMaintenance.Summary) Totals {
	var totals Totals
	for _, s := range summaries {
		totals.TotalSchedules += s.TotalSchedules
		totals.Overdue += s.Overdue
		totals.Upcoming += s.Upcoming
	}
	return totals
}

// RoundRate rounds a compliance percentage to one decimal place for display.
func RoundRate(rate float64) float64 {
	return math.Round(rate*10) / 10
}
