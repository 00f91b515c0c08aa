package router

import "github.com/gin-gonic/gin"

func (r *Router) orderRoutes(api *gin.RouterGroup) {
	orders := api.Group("/orders")
	{
		// Filtered, paginated listing
		orders.GET("", r.orderHandler.List)

		orders.POST("", r.orderHandler.Create)
		orders.GET("/:id", r.orderHandler.GetByID)

		// Full-record replacement of mutable fields
		orders.PUT("/:id", r.orderHandler.Update)

		orders.DELETE("/:id", r.orderHandler.Delete)
	}
}
