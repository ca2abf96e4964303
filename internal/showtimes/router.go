package showtimes

import (
	"cinegold/internal/shared/config"
	"cinegold/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles showtime-related routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new showtimes router
func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers public showtime routes. The per-movie listing hangs
// off /movies so URLs read the way the booking flow navigates.
func (showtimeRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	rg.GET("/movies/:id/showtimes", showtimeRouter.controller.ListByMovie)

	showtimes := rg.Group("/showtimes")
	{
		showtimes.GET("/:id", showtimeRouter.controller.GetShowtime)
	}
}

// SetupAdminRoutes registers admin-only showtime management routes
func (showtimeRouter *Router) SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/showtimes")
	admin.Use(middleware.JWTAuthWithConfig(showtimeRouter.config), middleware.RequireAdmin())
	{
		admin.POST("", showtimeRouter.controller.CreateShowtime)
		admin.PUT("/:id", showtimeRouter.controller.UpdateShowtime)
		admin.DELETE("/:id", showtimeRouter.controller.DeleteShowtime)
	}
}
