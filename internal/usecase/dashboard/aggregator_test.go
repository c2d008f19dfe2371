package dashboard

import (
	"testing"

	domainAsset "asset-inventory-dashboard/internal/domain/asset"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateGroupsPreserveInputOrder(t *testing.T) {
	companyA := uuid.New()
	companyB := uuid.New()

	assets := []*domainAsset.Asset{
		newAsset("a1", domainAsset.StatusAvailable, idPtr(companyA), "Acme"),
		newAsset("b1", domainAsset.StatusAssigned, idPtr(companyB), "Globex"),
		newAsset("u1", domainAsset.StatusLost, nil, ""),
		newAsset("a2", domainAsset.StatusMaintenance, idPtr(companyA), "Acme"),
		newAsset("b2", domainAsset.StatusAvailable, idPtr(companyB), "Globex"),
	}

	agg := Aggregate(assets)

	assert.Equal(t, []uuid.UUID{companyA, companyB}, agg.CompanyOrder)
	assert.Equal(t, []*domainAsset.Asset{assets[0], assets[3]}, agg.Groups[companyA])
	assert.Equal(t, []*domainAsset.Asset{assets[1], assets[4]}, agg.Groups[companyB])

	// Flattening the groups in first-appearance order yields every owned asset.
	var flattened []*domainAsset.Asset
	for _, id := range agg.CompanyOrder {
		flattened = append(flattened, agg.Groups[id]...)
	}
	var owned []*domainAsset.Asset
	for _, a := range assets {
		if a.CompanyID != nil {
			owned = append(owned, a)
		}
	}
	assert.ElementsMatch(t, owned, flattened)
}

func TestAggregateStatusCountsSumToTotal(t *testing.T) {
	company := uuid.New()
	assets := []*domainAsset.Asset{
		newAsset("1", domainAsset.StatusAvailable, idPtr(company), ""),
		newAsset("2", domainAsset.StatusAvailable, nil, ""),
		newAsset("3", domainAsset.StatusRetired, idPtr(company), ""),
		newAsset("4", domainAsset.Status("quarantined"), nil, ""),
		newAsset("5", domainAsset.StatusLost, idPtr(company), ""),
	}

	agg := Aggregate(assets)

	sum := 0
	for _, count := range agg.StatusCounts {
		sum += count
	}
	assert.Equal(t, len(assets), sum)
	assert.Equal(t, 5, agg.TotalAssets)
	assert.Equal(t, 2, agg.StatusCounts[domainAsset.StatusAvailable])
	assert.Equal(t, 1, agg.StatusCounts[domainAsset.Status("quarantined")])
}

func TestAggregateUnassignedAssetCountedOnce(t *testing.T) {
	company := uuid.New()
	unassigned := newAsset("loose", domainAsset.StatusMaintenance, nil, "")
	nilCompany := newAsset("nil-id", domainAsset.StatusMaintenance, idPtr(uuid.Nil), "")

	agg := Aggregate([]*domainAsset.Asset{
		newAsset("owned", domainAsset.StatusAvailable, idPtr(company), "Acme"),
		unassigned,
		nilCompany,
	})

	for _, group := range agg.Groups {
		assert.NotContains(t, group, unassigned)
		assert.NotContains(t, group, nilCompany)
	}
	assert.Len(t, agg.Groups, 1)
	assert.Equal(t, 2, agg.StatusCounts[domainAsset.StatusMaintenance])
	assert.Equal(t, 2, agg.UnassignedAssets)
	assert.Equal(t, 3, agg.TotalAssets)
}

func TestAggregateIsDeterministic(t *testing.T) {
	companyA := uuid.New()
	companyB := uuid.New()
	assets := []*domainAsset.Asset{
		newAsset("1", domainAsset.StatusAvailable, idPtr(companyB), "Globex"),
		newAsset("2", domainAsset.StatusAssigned, idPtr(companyA), "Acme"),
		newAsset("3", domainAsset.StatusAssigned, nil, ""),
		newAsset("4", domainAsset.StatusRetired, idPtr(companyB), "Globex"),
	}

	first := Aggregate(assets)
	second := Aggregate(assets)

	assert.Equal(t, first, second)
}

func TestAggregateEmptyAndNilEntries(t *testing.T) {
	agg := Aggregate(nil)
	require.NotNil(t, agg)
	assert.Empty(t, agg.Groups)
	assert.Empty(t, agg.CompanyOrder)
	assert.Zero(t, agg.TotalAssets)

	agg = Aggregate([]*domainAsset.Asset{nil, newAsset("x", domainAsset.StatusAvailable, nil, "")})
	assert.Equal(t, 1, agg.TotalAssets)
}

func TestAggregationCompanyHelpers(t *testing.T) {
	named := uuid.New()
	unnamed := uuid.New()
	agg := Aggregate([]*domainAsset.Asset{
		newAsset("1", domainAsset.StatusAvailable, idPtr(named), "Acme"),
		newAsset("2", domainAsset.StatusAvailable, idPtr(unnamed), ""),
	})

	assert.Equal(t, "Acme", agg.CompanyName(named))
	assert.Equal(t, unnamed.String(), agg.CompanyName(unnamed))

	ids := agg.CompanyIDs()
	ids[0] = uuid.Nil
	assert.Equal(t, named, agg.CompanyOrder[0], "CompanyIDs must return a copy")
}
