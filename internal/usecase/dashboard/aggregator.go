package dashboard

import (
	domainAsset "asset-inventory-dashboard/internal/domain/asset"

	"github.com/google/uuid"
)

// Aggregation is the grouped view of an asset list.
// Groups preserve input order; CompanyOrder holds company IDs by first appearance.
type Aggregation struct {
	Groups           map[uuid.UUID][]*domainAsset.Asset
	CompanyOrder     []uuid.UUID
	StatusCounts     map[domainAsset.Status]int
	TotalAssets      int
	UnassignedAssets int
}

// Aggregate groups assets by owning company and tallies them by status.
// Assets without a company are left out of the groups but still counted.
func Aggregate(assets []*domainAsset.Asset) *Aggregation {
	agg := &Aggregation{
		Groups:       make(map[uuid.UUID][]*domainAsset.Asset),
		CompanyOrder: []uuid.UUID{},
		StatusCounts: make(map[domainAsset.Status]int),
	}

	for _, a := range assets {
		if a == nil {
			continue
		}

		agg.TotalAssets++
		agg.StatusCounts[a.Status]++

		if !a.HasCompany() {
			agg.UnassignedAssets++
			continue
		}

		companyID := *a.CompanyID
		if _, seen := agg.Groups[companyID]; !seen {
			agg.CompanyOrder = append(agg.CompanyOrder, companyID)
		}
		agg.Groups[companyID] = append(agg.Groups[companyID], a)
	}

	return agg
}

// CompanyIDs returns the distinct company IDs in first-appearance order.
func (a *Aggregation) CompanyIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(a.CompanyOrder))
	copy(ids, a.CompanyOrder)
	return ids
}

// CompanyName returns the display name of a company group, falling back to its ID.
func (a *Aggregation) CompanyName(companyID uuid.UUID) string {
	for _, item := range a.Groups[companyID] {
		if item.CompanyName != nil && *item.CompanyName != "" {
			return *item.CompanyName
		}
	}
	return companyID.String()
}
