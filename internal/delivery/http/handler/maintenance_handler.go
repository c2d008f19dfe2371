package handler

import (
	"net/http"

	"asset-inventory-dashboard/internal/usecase/maintenance"
	"asset-inventory-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenanceHandler struct {
	service *maintenance.Service
}

func NewMaintenanceHandler(service *maintenance.Service) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

func (h *MaintenanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	companies := router.Group("/companies")
	{
		companies.GET("/:id/maintenance-summary", h.GetSummary)
		companies.GET("/:id/maintenance-schedules", h.ListSchedules)
	}
}

func (h *MaintenanceHandler) GetSummary(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid company ID")
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), companyID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance summary retrieved successfully", summary)
}

func (h *MaintenanceHandler) ListSchedules(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid company ID")
		return
	}

	var req maintenance.ScheduleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	schedules, err := h.service.ListSchedules(c.Request.Context(), companyID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance schedules retrieved successfully", schedules)
}
