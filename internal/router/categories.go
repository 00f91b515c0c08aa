package router

import "github.com/gin-gonic/gin"

func (r *Router) categoryRoutes(api *gin.RouterGroup) {
	categories := api.Group("/vehicle-categories")
	{
		categories.GET("", r.categoryHandler.GetAll)
		categories.POST("", r.categoryHandler.Create)
		categories.GET("/:id", r.categoryHandler.GetByID)
		categories.PUT("/:id", r.categoryHandler.Update)

		// Blocked while any order references the category
		categories.DELETE("/:id", r.categoryHandler.Delete)
	}
}
