package handler

import (
	"net/http"

	"github.com/autoservis/orders-api/internal/constants"
	"github.com/autoservis/orders-api/internal/dto"
	apperrors "github.com/autoservis/orders-api/internal/errors"
	"github.com/autoservis/orders-api/internal/service"
	"github.com/autoservis/orders-api/pkg/logger"
	"github.com/autoservis/orders-api/pkg/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatusHandler struct {
	statusService *service.StatusService
}

func NewStatusHandler(statusService *service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

func (h *StatusHandler) GetAll(c *gin.Context) {
	statuses, err := h.statusService.GetAll(c.Request.Context())
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.GetLogger().Error("Failed to fetch statuses", zap.Error(err))
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch statuses", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, statuses)
}

func (h *StatusHandler) Create(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().Warn("Invalid request body for status creation", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, constants.BuildErrorResponse("Validation failed", validation.Problems(err)))
		return
	}

	status, err := h.statusService.Create(c.Request.Context(), &req)
	if err != nil {
		httpStatus := apperrors.ToHTTPStatus(err)
		logger.GetLogger().Error("Failed to create status",
			zap.String("status", req.Status),
			zap.Int("http_status", httpStatus),
			zap.Error(err),
		)
		c.JSON(httpStatus, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	logger.GetLogger().Info("Status created",
		zap.Uint("status_id", status.ID),
		zap.String("status", status.Status),
	)
	c.JSON(http.StatusCreated, status)
}

func (h *StatusHandler) Delete(c *gin.Context) {
	id, ok := parseIDPathParam(c, "status")
	if !ok {
		return
	}

	if err := h.statusService.Delete(c.Request.Context(), id); err != nil {
		httpStatus := apperrors.ToHTTPStatus(err)
		logger.GetLogger().Warn("Failed to delete status",
			zap.Uint("status_id", id),
			zap.Int("http_status", httpStatus),
			zap.Error(err),
		)
		c.JSON(httpStatus, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	logger.GetLogger().Info("Status deleted", zap.Uint("status_id", id))
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Status deleted successfully"))
}
