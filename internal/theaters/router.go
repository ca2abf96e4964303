package theaters

import (
	"cinegold/internal/shared/config"
	"cinegold/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles theater-related routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new theaters router
func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers public theater routes
func (theaterRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	theaters := rg.Group("/theaters")
	{
		theaters.GET("", theaterRouter.controller.ListTheaters)
		theaters.GET("/:id", theaterRouter.controller.GetTheater)
	}
}

// SetupAdminRoutes registers admin-only theater management routes
func (theaterRouter *Router) SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/theaters")
	admin.Use(middleware.JWTAuthWithConfig(theaterRouter.config), middleware.RequireAdmin())
	{
		admin.POST("", theaterRouter.controller.CreateTheater)
		admin.PUT("/:id", theaterRouter.controller.UpdateTheater)
		admin.DELETE("/:id", theaterRouter.controller.DeleteTheater)
	}
}
