package handler

import (
	"net/http"

	"asset-inventory-dashboard/internal/usecase/dashboard"
	"asset-inventory-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboards := router.Group("/dashboard")
	{
		dashboards.GET("", h.Snapshot)
		dashboards.POST("/sessions", h.OpenSession)
		dashboards.GET("/sessions/:id", h.GetSession)
		dashboards.POST("/sessions/:id/reload", h.ReloadSession)
		dashboards.DELETE("/sessions/:id", h.CloseSession)
	}
}

// Snapshot builds a one-off dashboard and waits for enrichment to finish or time out.
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	var req dashboard.OpenSessionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	view, err := h.service.Snapshot(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", view)
}

func (h *DashboardHandler) OpenSession(c *gin.Context) {
	var req dashboard.OpenSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	session, err := h.service.Open(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Dashboard session opened", session.View())
}

func (h *DashboardHandler) GetSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid session ID")
		return
	}

	view, err := h.service.View(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard session retrieved successfully", view)
}

func (h *DashboardHandler) ReloadSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid session ID")
		return
	}

	view, started, err := h.service.Reload(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	message := "Dashboard session reloaded"
	if !started {
		message = "Dashboard session reloaded, company set unchanged"
	}

	utils.SuccessResponse(c, http.StatusOK, message, view)
}

func (h *DashboardHandler) CloseSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid session ID")
		return
	}

	if err := h.service.Close(sessionID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard session closed", nil)
}
