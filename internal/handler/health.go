package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/autoservis/orders-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck reports service liveness and database connectivity.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "connected"
	overall := "healthy"
	statusCode := http.StatusOK

	if err := h.checkDatabase(ctx); err != nil {
		logger.GetLogger().Error("Database health check failed", zap.Error(err))
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"status":   overall,
		"database": dbStatus,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
