package router

import (
	"github.com/autoservis/orders-api/internal/handler"
	"github.com/autoservis/orders-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	orderHandler    *handler.OrderHandler
	categoryHandler *handler.CategoryHandler
	statusHandler   *handler.StatusHandler
	healthHandler   *handler.HealthHandler
}

func NewRouter(
	order *handler.OrderHandler,
	category *handler.CategoryHandler,
	status *handler.StatusHandler,
	health *handler.HealthHandler,
) *Router {
	return &Router{
		orderHandler:    order,
		categoryHandler: category,
		statusHandler:   status,
		healthHandler:   health,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.HealthCheck)

		r.orderRoutes(api)
		r.categoryRoutes(api)
		r.statusRoutes(api)
	}

	return router
}
