package handler

import (
	"net/http"
	"strconv"

	"github.com/autoservis/orders-api/internal/constants"
	"github.com/autoservis/orders-api/internal/dto"
	apperrors "github.com/autoservis/orders-api/internal/errors"
	"github.com/autoservis/orders-api/internal/service"
	"github.com/autoservis/orders-api/pkg/logger"
	"github.com/autoservis/orders-api/pkg/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List returns a filtered, paginated page of orders. Malformed filter
// parameters never fail the request; they are dropped during parsing.
func (h *OrderHandler) List(c *gin.Context) {
	pagination := constants.ParsePaginationParams(c)
	filter := dto.ParseOrderFilter(c)

	items, total, err := h.orderService.List(c.Request.Context(), filter, pagination.PerPage, pagination.Offset)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.GetLogger().Error("Failed to fetch orders",
			zap.Int("page", pagination.Page),
			zap.Int("per_page", pagination.PerPage),
			zap.Int("http_status", status),
			zap.Error(err),
		)
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch orders", apperrors.GetErrorMessage(err)))
		return
	}

	totalPages := constants.TotalPages(total, pagination.PerPage)
	c.JSON(http.StatusOK, constants.BuildListResponse(items, total, pagination.Page, pagination.PerPage, totalPages))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseIDPathParam(c, "order")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch order", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().Warn("Invalid request body for order creation", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, constants.BuildErrorResponse("Validation failed", validation.Problems(err)))
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.GetLogger().Error("Failed to create order",
			zap.String("brand", req.Brand),
			zap.Int("http_status", status),
			zap.Error(err),
		)
		c.JSON(status, constants.BuildErrorResponse("Failed to create order", apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.String("brand", order.Brand),
	)
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseIDPathParam(c, "order")
	if !ok {
		return
	}

	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().Warn("Invalid request body for order update",
			zap.Uint("order_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusUnprocessableEntity, constants.BuildErrorResponse("Validation failed", validation.Problems(err)))
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to update order", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDPathParam(c, "order")
	if !ok {
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		c.JSON(status, constants.BuildErrorResponse("Failed to delete order", apperrors.GetErrorMessage(err)))
		return
	}

	logger.GetLogger().Info("Order deleted", zap.Uint("order_id", id))
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Order deleted successfully"))
}

// parseIDPathParam parses the :id path parameter, writing a 400 response
// when it is not a positive integer.
func parseIDPathParam(c *gin.Context, entity string) (uint, bool) {
	raw := c.Param("id")
	id64, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		logger.GetLogger().Warn("Invalid id path parameter",
			zap.String("entity", entity),
			zap.String("raw_id", raw),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid "+entity+" ID", nil))
		return 0, false
	}
	return uint(id64), true
}
