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

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.categoryService.GetAll(c.Request.Context())
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.GetLogger().Error("Failed to fetch vehicle categories", zap.Error(err))
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch vehicle categories", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseIDPathParam(c, "category")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch vehicle category", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().Warn("Invalid request body for category creation", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, constants.BuildErrorResponse("Validation failed", validation.Problems(err)))
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.GetLogger().Error("Failed to create vehicle category",
			zap.String("name", req.Name),
			zap.Int("http_status", status),
			zap.Error(err),
		)
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	logger.GetLogger().Info("Vehicle category created",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name),
	)
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDPathParam(c, "category")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().Warn("Invalid request body for category update",
			zap.Uint("category_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, constants.BuildErrorResponse("Validation failed", validation.Problems(err)))
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDPathParam(c, "category")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.GetLogger().Warn("Failed to delete vehicle category",
			zap.Uint("category_id", id),
			zap.Int("http_status", status),
			zap.Error(err),
		)
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	logger.GetLogger().Info("Vehicle category deleted", zap.Uint("category_id", id))
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Vehicle category deleted successfully"))
}
