package dashboard

import (
	"sort"
	"time"

	domainAsset "asset-inventory-dashboard/internal/domain/asset"
	domainMaintenance "asset-inventory-dashboard/internal/domain/maintenance"

	"github.com/google/uuid"
)

// MaxRecentAssets caps the recent assets table.
const MaxRecentAssets = 5

// ViewInput is everything the view model is composed from.
type ViewInput struct {
	Assets      []*domainAsset.Asset
	Aggregation *Aggregation
	Summaries   map[uuid.UUID]domainMaintenance.Summary
	Loading     bool
	Metrics     PassMetrics
	RecentLimit int
	Now         time.Time
}

// BuildView composes the dashboard view model. Missing summaries are allowed.
func BuildView(in ViewInput) *ViewModel {
	agg := in.Aggregation
	if agg == nil {
		agg = Aggregate(in.Assets)
	}

	totals := FoldTotals(in.Summaries)

	generatedAt := in.Now
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	return &ViewModel{
		Loading:           in.Loading,
		Cards:             buildCards(agg, totals),
		StatusBreakdown:   buildStatusBreakdown(agg),
		CompanyBreakdown:  buildCompanyBreakdown(agg, in.Summaries),
		RecentAssets:      RecentAssets(in.Assets, in.RecentLimit),
		MaintenanceTotals: toTotalsResponse(totals),
		Enrichment: EnrichmentResponse{
			Companies:        len(agg.CompanyOrder),
			CompaniesLoaded:  countLoaded(agg.CompanyOrder, in.Summaries),
			FetchesAttempted: in.Metrics.FetchesAttempted,
			FetchesFailed:    in.Metrics.FetchesFailed,
			LastPassAt:       timePtr(in.Metrics.LastPassFinishedAt),
		},
		GeneratedAt: generatedAt,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// RecentAssets renders the first rows of the asset list, never more than MaxRecentAssets.
func RecentAssets(assets []*domainAsset.Asset, limit int) []AssetRow {
	if limit <= 0 || limit > MaxRecentAssets {
		limit = MaxRecentAssets
	}

	rows := make([]AssetRow, 0, limit)
	for _, a := range assets {
		if len(rows) == limit {
			break
		}
		if a == nil {
			continue
		}
		rows = append(rows, toAssetRow(a))
	}
	return rows
}

func toAssetRow(a *domainAsset.Asset) AssetRow {
	company := unassignedCompany
	if a.CompanyName != nil && *a.CompanyName != "" {
		company = *a.CompanyName
	}

	location := unspecifiedLocation
	if a.Location != nil && *a.Location != "" {
		location = *a.Location
	}

	return AssetRow{
		ID:       a.ID,
		Name:     a.Name,
		Tag:      a.Tag,
		Status:   a.Status,
		Company:  company,
		Location: location,
	}
}

func buildCards(agg *Aggregation, totals Totals) []Card {
	return []Card{
		{Key: "total_assets", Title: "Total Assets", Value: agg.TotalAssets},
		{Key: "available_assets", Title: "Available", Value: agg.StatusCounts[domainAsset.StatusAvailable]},
		{Key: "maintenance_assets", Title: "In Maintenance", Value: agg.StatusCounts[domainAsset.StatusMaintenance]},
		{Key: "total_schedules", Title: "Maintenance Schedules", Value: totals.TotalSchedules},
		{Key: "overdue_schedules", Title: "Overdue", Value: totals.Overdue},
		{Key: "upcoming_schedules", Title: "Upcoming", Value: totals.Upcoming},
	}
}

// buildStatusBreakdown lists the known statuses in display order, then any
// unknown status found in the data sorted by name.
func buildStatusBreakdown(agg *Aggregation) []StatusRow {
	rows := make([]StatusRow, 0, len(domainAsset.Statuses))
	for _, status := range domainAsset.Statuses {
		rows = append(rows, statusRow(status, agg.StatusCounts[status], agg.TotalAssets))
	}

	var unknown []domainAsset.Status
	for status := range agg.StatusCounts {
		if !status.IsValid() {
			unknown = append(unknown, status)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	for _, status := range unknown {
		rows = append(rows, statusRow(status, agg.StatusCounts[status], agg.TotalAssets))
	}

	return rows
}

func statusRow(status domainAsset.Status, count, total int) StatusRow {
	var pct float64
	if total > 0 {
		pct = RoundRate(float64(count) * 100 / float64(total))
	}
	return StatusRow{Status: status, Count: count, Percentage: pct}
}

func buildCompanyBreakdown(agg *Aggregation, summaries map[uuid.UUID]domainMaintenance.Summary) []CompanyRow {
	rows := make([]CompanyRow, 0, len(agg.CompanyOrder))
	for _, companyID := range agg.CompanyOrder {
		row := CompanyRow{
			CompanyID:   companyID,
			CompanyName: agg.CompanyName(companyID),
			AssetCount:  len(agg.Groups[companyID]),
		}
		if s, ok := summaries[companyID]; ok {
			row.Summary = ToSummaryResponse(s)
		}
		rows = append(rows, row)
	}
	return rows
}

// ToSummaryResponse converts a summary for display, rounding the compliance rate.
func ToSummaryResponse(s domainMaintenance.Summary) *SummaryResponse {
	return &SummaryResponse{
		TotalSchedules: s.TotalSchedules,
		Overdue:        s.Overdue,
		Upcoming:       s.Upcoming,
		ComplianceRate: RoundRate(s.ComplianceRate),
	}
}

func countLoaded(ids []uuid.UUID, summaries map[uuid.UUID]domainMaintenance.Summary) int {
	n := 0
	for _, id := range ids {
		if _, ok := summaries[id]; ok {
			n++
		}
	}
	return n
}
