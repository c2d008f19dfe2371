package dashboard

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	domainAsset "asset-inventory-dashboard/internal/domain/asset"
	domainMaintenance "asset-inventory-dashboard/internal/domain/maintenance"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentAssetsNeverExceedsFive(t *testing.T) {
	assets := make([]*domainAsset.Asset, 100)
	for i := range assets {
		assets[i] = newAsset(fmt.Sprintf("asset-%d", i), domainAsset.StatusAvailable, nil, "")
	}

	for _, limit := range []int{0, 3, 5, 50, -1} {
		rows := RecentAssets(assets, limit)
		assert.LessOrEqual(t, len(rows), MaxRecentAssets, "limit %d", limit)
	}

	rows := RecentAssets(assets, 0)
	require.Len(t, rows, 5)
	assert.Equal(t, "asset-0", rows[0].Name)
	assert.Equal(t, "asset-4", rows[4].Name)

	assert.Len(t, RecentAssets(assets, 3), 3)
	assert.Len(t, RecentAssets(assets[:2], 5), 2)
	assert.Empty(t, RecentAssets(nil, 5))
}

func TestRecentAssetsFallbacks(t *testing.T) {
	company := uuid.New()
	location := "Warehouse 3"
	owned := newAsset("owned", domainAsset.StatusAssigned, idPtr(company), "Acme")
	owned.Location = &location
	loose := newAsset("loose", domainAsset.StatusAvailable, nil, "")

	rows := RecentAssets([]*domainAsset.Asset{owned, nil, loose}, 5)

	require.Len(t, rows, 2)
	assert.Equal(t, "Acme", rows[0].Company)
	assert.Equal(t, "Warehouse 3", rows[0].Location)
	assert.Equal(t, "Unassigned", rows[1].Company)
	assert.Equal(t, "Not specified", rows[1].Location)
}

func TestBuildViewWithPartialSummaries(t *testing.T) {
	companyA, companyB := uuid.New(), uuid.New()
	assets := []*domainAsset.Asset{
		newAsset("1", domainAsset.StatusAvailable, idPtr(companyA), "Acme"),
		newAsset("2", domainAsset.StatusMaintenance, idPtr(companyB), "Globex"),
		newAsset("3", domainAsset.StatusMaintenance, idPtr(companyA), "Acme"),
		newAsset("4", domainAsset.StatusRetired, nil, ""),
	}
	summaries := map[uuid.UUID]domainMaintenance.Summary{
		companyA: {TotalSchedules: 5, Overdue: 1, Upcoming: 2, ComplianceRate: 66.6666},
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	view := BuildView(ViewInput{
		Assets:    assets,
		Summaries: summaries,
		Loading:   true,
		Metrics:   PassMetrics{FetchesAttempted: 1, LastPassFinishedAt: now},
		Now:       now,
	})

	assert.True(t, view.Loading)
	assert.Equal(t, now, view.GeneratedAt)
	assert.Nil(t, view.SessionID)

	cards := make(map[string]int)
	for _, card := range view.Cards {
		cards[card.Key] = card.Value
	}
	assert.Equal(t, 4, cards["total_assets"])
	assert.Equal(t, 1, cards["available_assets"])
	assert.Equal(t, 2, cards["maintenance_assets"])
	assert.Equal(t, 5, cards["total_schedules"])
	assert.Equal(t, 1, cards["overdue_schedules"])
	assert.Equal(t, 2, cards["upcoming_schedules"])

	require.Len(t, view.CompanyBreakdown, 2)
	assert.Equal(t, companyA, view.CompanyBreakdown[0].CompanyID)
	assert.Equal(t, "Acme", view.CompanyBreakdown[0].CompanyName)
	assert.Equal(t, 2, view.CompanyBreakdown[0].AssetCount)
	require.NotNil(t, view.CompanyBreakdown[0].Summary)
	assert.InDelta(t, 66.7, view.CompanyBreakdown[0].Summary.ComplianceRate, 1e-9)
	assert.Nil(t, view.CompanyBreakdown[1].Summary, "missing summaries render as pending")

	assert.Equal(t, TotalsResponse{TotalSchedules: 5, Overdue: 1, Upcoming: 2}, view.MaintenanceTotals)
	assert.Equal(t, 2, view.Enrichment.Companies)
	assert.Equal(t, 1, view.Enrichment.CompaniesLoaded)
	assert.Equal(t, int64(1), view.Enrichment.FetchesAttempted)
	require.NotNil(t, view.Enrichment.LastPassAt)
	assert.Equal(t, now, *view.Enrichment.LastPassAt)
	assert.Len(t, view.RecentAssets, 4)
}

func TestBuildStatusBreakdown(t *testing.T) {
	agg := Aggregate([]*domainAsset.Asset{
		newAsset("1", domainAsset.StatusAvailable, nil, ""),
		newAsset("2", domainAsset.StatusAvailable, nil, ""),
		newAsset("3", domainAsset.StatusLost, nil, ""),
		newAsset("4", domainAsset.Status("zeta"), nil, ""),
		newAsset("5", domainAsset.Status("alpha"), nil, ""),
		newAsset("6", domainAsset.StatusAssigned, nil, ""),
	})

	rows := buildStatusBreakdown(agg)

	require.Len(t, rows, len(domainAsset.Statuses)+2)
	for i, status := range domainAsset.Statuses {
		assert.Equal(t, status, rows[i].Status)
	}
	assert.Equal(t, domainAsset.Status("alpha"), rows[5].Status)
	assert.Equal(t, domainAsset.Status("zeta"), rows[6].Status)

	assert.Equal(t, 2, rows[0].Count)
	assert.InDelta(t, 33.3, rows[0].Percentage, 1e-9)
	assert.Zero(t, rows[2].Percentage)
}

func TestBuildViewEmpty(t *testing.T) {
	view := BuildView(ViewInput{})

	assert.False(t, view.Loading)
	assert.Empty(t, view.CompanyBreakdown)
	assert.Empty(t, view.RecentAssets)
	assert.Equal(t, TotalsResponse{}, view.MaintenanceTotals)
	for _, row := range view.StatusBreakdown {
		assert.Zero(t, row.Count)
		assert.Zero(t, row.Percentage)
	}
	assert.False(t, view.GeneratedAt.IsZero())
	assert.Nil(t, view.Enrichment.LastPassAt)

	body, err := json.Marshal(view.Enrichment)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "last_pass_at")
}
