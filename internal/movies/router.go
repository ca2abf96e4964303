package movies

import (
	"github.com/gin-gonic/gin"
)

// Router handles movie catalog routes
type Router struct {
	controller *Controller
}

// NewRouter creates a new movies router
func NewRouter(controller *Controller) *Router {
	return &Router{controller: controller}
}

// SetupRoutes registers all movie routes; the catalog is public
func (movieRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	movies := rg.Group("/movies")
	{
		movies.GET("", movieRouter.controller.ListMovies)
		movies.GET("/filters", movieRouter.controller.GetFilters)
		movies.GET("/:id", movieRouter.controller.GetMovie)
	}
}
