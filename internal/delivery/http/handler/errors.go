package handler

import (
	"errors"
	"net/http"

	domainAsset "asset-inventory-dashboard/internal/domain/asset"
	domainCompany "asset-inventory-dashboard/internal/domain/company"
	"asset-inventory-dashboard/internal/logger"
	"asset-inventory-dashboard/internal/middleware"
	"asset-inventory-dashboard/internal/usecase/dashboard"
	appErrors "asset-inventory-dashboard/pkg/errors"
	"asset-inventory-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrUnauthorized),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrTokenInvalid),
		errors.Is(err, appErrors.ErrTokenExpired):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, dashboard.ErrSessionNotFound),
		errors.Is(err, domainAsset.ErrAssetNotFound),
		errors.Is(err, domainCompany.ErrCompanyNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, dashboard.ErrTooManySessions):
		utils.ErrorResponse(c, http.StatusTooManyRequests, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		requestID := middleware.GetRequestID(c)
		logger.Error("Internal server error",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
