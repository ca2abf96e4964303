package routes

import (
	"net/http"
	"time"

	"cinegold/internal/auth"
	"cinegold/internal/bookings"
	"cinegold/internal/movies"
	"cinegold/internal/notifications"
	"cinegold/internal/payments"
	"cinegold/internal/shared/config"
	"cinegold/internal/shared/database"
	"cinegold/internal/showtimes"
	"cinegold/internal/theaters"
	"cinegold/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer

	// shared across feature wiring
	cacheService cache.Service
	catalog      movies.Catalog
	theaterRepo  theaters.Repository
	showtimeRepo showtimes.Repository
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.cacheService = cache.NewService(r.db.GetRedisClient())
	r.catalog = movies.NewCatalog()
	r.theaterRepo = theaters.NewRepository(r.db.GetPostgreSQL())
	r.showtimeRepo = showtimes.NewRepository(r.db.GetPostgreSQL())

	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupMovieRoutes(api)
		r.setupTheaterRoutes(api)
		r.setupShowtimeRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinegold-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinegold-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

func (r *Router) setupMovieRoutes(rg *gin.RouterGroup) {
	movieController := movies.NewController(r.catalog)
	movieRouter := movies.NewRouter(movieController)

	movieRouter.SetupRoutes(rg)
}

func (r *Router) setupTheaterRoutes(rg *gin.RouterGroup) {
	theaterService := theaters.NewService(r.theaterRepo, r.cacheService)
	theaterController := theaters.NewController(theaterService)
	theaterRouter := theaters.NewRouter(theaterController, r.config)

	theaterRouter.SetupRoutes(rg)

	admin := rg.Group("/admin")
	theaterRouter.SetupAdminRoutes(admin)
}

func (r *Router) setupShowtimeRoutes(rg *gin.RouterGroup) {
	showtimeService := showtimes.NewService(r.showtimeRepo, r.theaterRepo, r.catalog, r.cacheService)
	showtimeController := showtimes.NewController(showtimeService)
	showtimeRouter := showtimes.NewRouter(showtimeController, r.config)

	showtimeRouter.SetupRoutes(rg)

	admin := rg.Group("/admin")
	showtimeRouter.SetupAdminRoutes(admin)
}

func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	gateway := payments.NewSimulatedGateway(r.config.Payment.SettleDelay, nil)
	bookingService := bookings.NewService(bookingRepo, r.showtimeRepo, r.theaterRepo, gateway, r.producer)
	bookingController := bookings.NewController(bookingService)
	bookingRouter := bookings.NewRouter(bookingController, r.config)

	bookingRouter.SetupRoutes(rg)
}
