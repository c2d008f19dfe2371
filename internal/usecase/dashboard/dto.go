package dashboard

import (
	"time"

	domainAsset "asset-inventory-dashboard/internal/domain/asset"

	"github.com/google/uuid"
)

const (
	unassignedCompany   = "Unassigned"
	unspecifiedLocation = "Not specified"
)

// OpenSessionRequest narrows the asset list a dashboard session is built from.
type OpenSessionRequest struct {
	Status    *string `json:"status" form:"status" validate:"omitempty,asset_status"`
	CompanyID *string `json:"company_id" form:"company_id" validate:"omitempty,uuid"`
	Search    string  `json:"search" form:"search" validate:"omitempty,max=100"`
}

type ViewModel struct {
	SessionID         *uuid.UUID         `json:"session_id,omitempty"`
	Loading           bool               `json:"loading"`
	Cards             []Card             `json:"cards"`
	StatusBreakdown   []StatusRow        `json:"status_breakdown"`
	CompanyBreakdown  []CompanyRow       `json:"company_breakdown"`
	RecentAssets      []AssetRow         `json:"recent_assets"`
	MaintenanceTotals TotalsResponse     `json:"maintenance_totals"`
	Enrichment        EnrichmentResponse `json:"enrichment"`
	GeneratedAt       time.Time          `json:"generated_at"`
}

type Card struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Value int    `json:"value"`
}

type StatusRow struct {
	Status     domainAsset.Status `json:"status"`
	Count      int                `json:"count"`
	Percentage float64            `json:"percentage"`
}

type CompanyRow struct {
	CompanyID   uuid.UUID        `json:"company_id"`
	CompanyName string           `json:"company_name"`
	AssetCount  int              `json:"asset_count"`
	Summary     *SummaryResponse `json:"maintenance_summary"`
}

type SummaryResponse struct {
	TotalSchedules int     `json:"total_schedules"`
	Overdue        int     `json:"overdue"`
	Upcoming       int     `json:"upcoming"`
	ComplianceRate float64 `json:"compliance_rate"`
}

type AssetRow struct {
	ID       uuid.UUID          `json:"id"`
	Name     string             `json:"name"`
	Tag      string             `json:"tag"`
	Status   domainAsset.Status `json:"status"`
	Company  string             `json:"company"`
	Location string             `json:"location"`
}

type TotalsResponse struct {
	TotalSchedules int `json:"total_schedules"`
	Overdue        int `json:"overdue"`
	Upcoming       int `json:"upcoming"`
}

type EnrichmentResponse struct {
	Companies        int       `json:"companies"`
	CompaniesLoaded  int       `json:"companies_loaded"`
	FetchesAttempted int64      `json:"fetches_attempted"`
	FetchesFailed    int64      `json:"fetches_failed"`
	LastPassAt       *time.Time `json:"last_pass_at,omitempty"`
}

func (r *OpenSessionRequest) toFilter() (*domainAsset.Filter, error) {
	filter := &domainAsset.Filter{}
	if r == nil {
		return filter, nil
	}
	if r.Status != nil {
		status := domainAsset.Status(*r.Status)
		filter.Status = &status
	}
	if r.CompanyID != nil && *r.CompanyID != "" {
		companyID, err := uuid.Parse(*r.CompanyID)
		if err != nil {
			return nil, err
		}
		filter.CompanyID = &companyID
	}
	filter.Search = r.Search
	return filter, nil
}

func toTotalsResponse(t Totals) TotalsResponse {
	return TotalsResponse{
		TotalSchedules: t.TotalSchedules,
		Overdue:        t.Overdue,
		Upcoming:       t.Upcoming,
	}
}
