package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"asset-inventory-dashboard/internal/config"
	domainAsset "asset-inventory-dashboard/internal/domain/asset"
	domainCompany "asset-inventory-dashboard/internal/domain/company"
	domainMaintenance "asset-inventory-dashboard/internal/domain/maintenance"
	"asset-inventory-dashboard/internal/usecase/asset"
	"asset-inventory-dashboard/internal/usecase/dashboard"
	"asset-inventory-dashboard/internal/usecase/maintenance"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

type summaryFetcher map[uuid.UUID]domainMaintenance.Summary

func (f summaryFetcher) FetchSummary(_ context.Context, companyID uuid.UUID) (*domainMaintenance.Summary, error) {
	s, ok := f[companyID]
	if !ok {
		return nil, errors.New("not found")
	}
	return &s, nil
}

func newDashboardRouter(assetRepo domainAsset.Repository, fetcher domainMaintenance.SummaryFetcher) (*gin.Engine, *dashboard.Service) {
	service := dashboard.NewService(assetRepo, fetcher, nil, config.DashboardConfig{
		FetchConcurrency: 1,
		FetchTimeout:     time.Second,
		RecentLimit:      5,
		SessionTTL:       time.Minute,
		SnapshotTimeout:  2 * time.Second,
		MaxOpenSessions:  1,
	})

	router := gin.New()
	NewDashboardHandler(service).RegisterRoutes(router.Group("/api/v1"))
	return router, service
}

func TestDashboardSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	company := uuid.New()
	name := "Acme"
	assetRepo := domainAsset.NewMockRepository(ctrl)
	assetRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domainAsset.Asset{
		{ID: uuid.New(), Name: "Drill", Status: domainAsset.StatusAvailable, CompanyID: &company, CompanyName: &name},
	}, int64(1), nil)

	router, service := newDashboardRouter(assetRepo, summaryFetcher{
		company: {TotalSchedules: 3, Overdue: 1, Upcoming: 1, ComplianceRate: 50},
	})
	defer service.CloseAll()

	w, resp := perform(t, router, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	var view dashboard.ViewModel
	require.NoError(t, json.Unmarshal(resp.Data, &view))
	assert.False(t, view.Loading)
	assert.Equal(t, 3, view.MaintenanceTotals.TotalSchedules)
	require.Len(t, view.CompanyBreakdown, 1)
	assert.Equal(t, "Acme", view.CompanyBreakdown[0].CompanyName)
}

func TestDashboardSnapshotInvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, service := newDashboardRouter(domainAsset.NewMockRepository(ctrl), summaryFetcher{})
	defer service.CloseAll()

	w, resp := perform(t, router, http.MethodGet, "/api/v1/dashboard?status=broken", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestDashboardSessionLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assetRepo := domainAsset.NewMockRepository(ctrl)
	assetRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil).Times(2)

	router, service := newDashboardRouter(assetRepo, summaryFetcher{})
	defer service.CloseAll()

	w, resp := perform(t, router, http.MethodPost, "/api/v1/dashboard/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var view dashboard.ViewModel
	require.NoError(t, json.Unmarshal(resp.Data, &view))
	require.NotNil(t, view.SessionID)
	path := "/api/v1/dashboard/sessions/" + view.SessionID.String()

	w, _ = perform(t, router, http.MethodPost, "/api/v1/dashboard/sessions", `{"search":"pump"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w, _ = perform(t, router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = perform(t, router, http.MethodPost, path+"/reload", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, resp.Message, "reloaded")

	w, _ = perform(t, router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = perform(t, router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardSessionBadRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, service := newDashboardRouter(domainAsset.NewMockRepository(ctrl), summaryFetcher{})
	defer service.CloseAll()

	w, _ := perform(t, router, http.MethodGet, "/api/v1/dashboard/sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = perform(t, router, http.MethodPost, "/api/v1/dashboard/sessions", `{"status":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = perform(t, router, http.MethodPost, "/api/v1/dashboard/sessions", `{"company_id":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assetID := uuid.New()
	repo := domainAsset.NewMockRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), assetID).Return(&domainAsset.Asset{ID: assetID, Name: "Crane"}, nil)
	repo.EXPECT().GetByID(gomock.Any(), gomock.Not(assetID)).Return(nil, domainAsset.ErrAssetNotFound)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domainAsset.Asset{{ID: assetID, Name: "Crane"}}, int64(1), nil)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db down"))

	router := gin.New()
	NewAssetHandler(asset.NewService(repo, 20)).RegisterRoutes(router.Group("/api/v1"))

	w, resp := perform(t, router, http.MethodGet, "/api/v1/assets/"+assetID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	var got asset.AssetResponse
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "Crane", got.Name)

	w, _ = perform(t, router, http.MethodGet, "/api/v1/assets/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = perform(t, router, http.MethodGet, "/api/v1/assets?page=1&page_size=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list asset.AssetListResponse
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(1), list.Total)

	w, resp = perform(t, router, http.MethodGet, "/api/v1/assets", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", resp.Message)

	w, _ = perform(t, router, http.MethodGet, "/api/v1/assets?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMaintenanceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()
	companyRepo := domainCompany.NewMockRepository(ctrl)
	companyRepo.EXPECT().GetByID(gomock.Any(), companyID).Return(&domainCompany.Company{ID: companyID, Name: "Acme"}, nil).AnyTimes()
	companyRepo.EXPECT().GetByID(gomock.Any(), gomock.Not(companyID)).Return(nil, domainCompany.ErrCompanyNotFound)

	maintenanceRepo := domainMaintenance.NewMockRepository(ctrl)
	maintenanceRepo.EXPECT().FetchSummary(gomock.Any(), companyID).Return(&domainMaintenance.Summary{TotalSchedules: 2, ComplianceRate: 100}, nil)
	maintenanceRepo.EXPECT().ListSchedules(gomock.Any(), companyID, gomock.Any(), gomock.Any()).Return(nil, nil)

	router := gin.New()
	NewMaintenanceHandler(maintenance.NewService(maintenanceRepo, companyRepo)).RegisterRoutes(router.Group("/api/v1"))

	base := "/api/v1/companies/" + companyID.String()

	w, resp := perform(t, router, http.MethodGet, base+"/maintenance-summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	var summary maintenance.SummaryResponse
	require.NoError(t, json.Unmarshal(resp.Data, &summary))
	assert.Equal(t, "Acme", summary.CompanyName)
	assert.Equal(t, 2, summary.TotalSchedules)

	w, _ = perform(t, router, http.MethodGet, "/api/v1/companies/"+uuid.New().String()+"/maintenance-summary", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = perform(t, router, http.MethodGet, base+"/maintenance-schedules?from=2026-01-01&to=2026-02-01", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = perform(t, router, http.MethodGet, base+"/maintenance-schedules?from=2026-02-01&to=2026-01-01", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "'to' must be after 'from'", resp.Message)

	w, _ = perform(t, router, http.MethodGet, "/api/v1/companies/xyz/maintenance-summary", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
