package handler

import (
	"net/http"

	"asset-inventory-dashboard/internal/usecase/asset"
	"asset-inventory-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssetHandler struct {
	service *asset.Service
}

func NewAssetHandler(service *asset.Service) *AssetHandler {
	return &AssetHandler{service: service}
}

func (h *AssetHandler) RegisterRoutes(router *gin.RouterGroup) {
	assets := router.Group("/assets")
	{
		assets.GET("", h.ListAssets)
		assets.GET("/:id", h.GetAsset)
	}
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	var req asset.AssetFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	assets, err := h.service.ListAssets(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assets retrieved successfully", assets)
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid asset ID")
		return
	}

	a, err := h.service.GetAsset(c.Request.Context(), assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset retrieved successfully", a)
}
