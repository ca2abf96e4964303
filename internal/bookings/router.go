package bookings

import (
	"cinegold/internal/shared/config"
	"cinegold/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles booking-related routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new bookings router
func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{
		controller: controller,
		config:     cfg,
	}
}

// SetupRoutes registers booking routes. The seat map is public so browsers
// can pick seats before signing in; everything else requires auth.
func (bookingRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	rg.GET("/showtimes/:id/seatmap", bookingRouter.controller.GetSeatMap)

	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuthWithConfig(bookingRouter.config))
	{
		bookings.POST("", bookingRouter.controller.CreateBooking)
		bookings.GET("", bookingRouter.controller.ListBookings)
		bookings.GET("/:id", bookingRouter.controller.GetBooking)
		bookings.POST("/:id/pay", bookingRouter.controller.PayBooking)
		bookings.GET("/:id/ticket", bookingRouter.controller.GetTicket)
	}
}
