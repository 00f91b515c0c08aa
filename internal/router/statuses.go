package router

import "github.com/gin-gonic/gin"

func (r *Router) statusRoutes(api *gin.RouterGroup) {
	statuses := api.Group("/statuses")
	{
		statuses.GET("", r.statusHandler.GetAll)
		statuses.POST("", r.statusHandler.Create)

		// Blocked while any order references the status
		statuses.DELETE("/:id", r.statusHandler.Delete)
	}
}
