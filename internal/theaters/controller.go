package theaters

import (
	"errors"
	"net/http"

	"cinegold/internal/shared/utils/response"

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

// ListTheaters handles GET /theaters with an optional ?location= filter
func (ctrl *Controller) ListTheaters(c *gin.Context) {
	theaters, err := ctrl.service.ListTheaters(c.Request.Context(), c.Query("location"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to retrieve theaters", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Theaters retrieved successfully", gin.H{
		"theaters": theaters,
		"count":    len(theaters),
	}, nil)
}

// GetTheater handles GET /theaters/:id
func (ctrl *Controller) GetTheater(c *gin.Context) {
	theater, err := ctrl.service.GetTheater(c.Request.Context(), c.Param("id"))
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "Failed to retrieve theater"

		switch {
		case errors.Is(err, ErrTheaterNotFound):
			statusCode = http.StatusNotFound
			message = "Theater not found"
		case isInvalidID(err):
			statusCode = http.StatusBadRequest
			message = "Invalid theater ID"
		}

		response.RespondJSON(c, "error", statusCode, message, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Theater retrieved successfully", theater, nil)
}

// CreateTheater handles POST /admin/theaters
func (ctrl *Controller) CreateTheater(c *gin.Context) {
	var req CreateTheaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	theater, err := ctrl.service.CreateTheater(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create theater", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Theater created successfully", theater, nil)
}

// UpdateTheater handles PUT /admin/theaters/:id
func (ctrl *Controller) UpdateTheater(c *gin.Context) {
	var req UpdateTheaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	theater, err := ctrl.service.UpdateTheater(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "Failed to update theater"

		switch {
		case errors.Is(err, ErrTheaterNotFound):
			statusCode = http.StatusNotFound
			message = "Theater not found"
		case isInvalidID(err):
			statusCode = http.StatusBadRequest
			message = "Invalid theater ID"
		}

		response.RespondJSON(c, "error", statusCode, message, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Theater updated successfully", theater, nil)
}

// DeleteTheater handles DELETE /admin/theaters/:id
func (ctrl *Controller) DeleteTheater(c *gin.Context) {
	if err := ctrl.service.DeleteTheater(c.Request.Context(), c.Param("id")); err != nil {
		statusCode := http.StatusInternalServerError
		message := "Failed to delete theater"

		switch {
		case errors.Is(err, ErrTheaterNotFound):
			statusCode = http.StatusNotFound
			message = "Theater not found"
		case isInvalidID(err):
			statusCode = http.StatusBadRequest
			message = "Invalid theater ID"
		}

		response.RespondJSON(c, "error", statusCode, message, nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Theater deleted successfully", nil, nil)
}
