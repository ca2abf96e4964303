package showtimes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"cinegold/internal/shared/utils/response"
	"cinegold/internal/theaters"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// ListByMovie handles GET /movies/:id/showtimes?date=YYYY-MM-DD
func (ctrl *Controller) ListByMovie(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid movie ID", nil, err.Error())
		return
	}

	grouped, err := ctrl.service.ListByMovie(c.Request.Context(), movieID, c.Query("date"))
	if err != nil {
		if errors.Is(err, ErrUnknownMovie) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Movie not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to retrieve showtimes", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Showtimes retrieved successfully", gin.H{
		"theaters": grouped,
		"count":    len(grouped),
	}, nil)
}

// GetShowtime handles GET /showtimes/:id
func (ctrl *Controller) GetShowtime(c *gin.Context) {
	showtime, err := ctrl.service.GetShowtime(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctrl.respondError(c, err, "retrieve")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Showtime retrieved successfully", showtime, nil)
}

// CreateShowtime handles POST /admin/showtimes
func (ctrl *Controller) CreateShowtime(c *gin.Context) {
	var req CreateShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	showtime, err := ctrl.service.CreateShowtime(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownMovie):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Unknown movie", nil, err.Error())
		case errors.Is(err, theaters.ErrTheaterNotFound):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Unknown theater", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create showtime", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Showtime created successfully", showtime, nil)
}

// UpdateShowtime handles PUT /admin/showtimes/:id
func (ctrl *Controller) UpdateShowtime(c *gin.Context) {
	var req UpdateShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	showtime, err := ctrl.service.UpdateShowtime(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		ctrl.respondError(c, err, "update")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Showtime updated successfully", showtime, nil)
}

// DeleteShowtime handles DELETE /admin/showtimes/:id
func (ctrl *Controller) DeleteShowtime(c *gin.Context) {
	if err := ctrl.service.DeleteShowtime(c.Request.Context(), c.Param("id")); err != nil {
		ctrl.respondError(c, err, "delete")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Showtime deleted successfully", nil, nil)
}

func (ctrl *Controller) respondError(c *gin.Context, err error, verb string) {
	switch {
	case errors.Is(err, ErrShowtimeNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Showtime not found", nil, err.Error())
	case strings.Contains(err.Error(), "invalid showtime ID"):
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid showtime ID", nil, err.Error())
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to "+verb+" showtime", nil, err.Error())
	}
}
