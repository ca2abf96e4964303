package bookings

import (
	"errors"
	"net/http"

	"cinegold/internal/shared/utils/response"
	"cinegold/internal/showtimes"

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

// GetSeatMap handles GET /showtimes/:id/seatmap
func (ctrl *Controller) GetSeatMap(c *gin.Context) {
	seatMap, err := ctrl.service.GetSeatMap(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}

// CreateBooking handles POST /bookings
func (ctrl *Controller) CreateBooking(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := ctrl.service.RequestBooking(c.Request.Context(), userID, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

// PayBooking handles POST /bookings/:id/pay
func (ctrl *Controller) PayBooking(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PayBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := ctrl.service.ConfirmPayment(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Payment confirmed successfully", booking, nil)
}

// GetBooking handles GET /bookings/:id
func (ctrl *Controller) GetBooking(c *gin.Context) {
	userID := c.GetString("user_id")

	booking, err := ctrl.service.GetBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// ListBookings handles GET /bookings
func (ctrl *Controller) ListBookings(c *gin.Context) {
	userID := c.GetString("user_id")

	bookings, err := ctrl.service.ListBookings(c.Request.Context(), userID)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved successfully", gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	}, nil)
}

// GetTicket handles GET /bookings/:id/ticket
func (ctrl *Controller) GetTicket(c *gin.Context) {
	userID := c.GetString("user_id")

	ticket, err := ctrl.service.GetTicket(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket retrieved successfully", ticket, nil)
}

func (ctrl *Controller) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptySelection):
		response.RespondJSON(c, "error", http.StatusBadRequest, "No seats selected", nil, err.Error())
	case errors.Is(err, ErrInvalidSeat):
		response.RespondJSON(c, "error", http.StatusUnprocessableEntity, "Invalid seat selection", nil, err.Error())
	case errors.Is(err, ErrSeatConflict):
		response.RespondJSON(c, "error", http.StatusConflict, "One or more seats are already booked", nil, err.Error())
	case errors.Is(err, ErrBookingNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Booking not found", nil, err.Error())
	case errors.Is(err, showtimes.ErrShowtimeNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Showtime not found", nil, err.Error())
	case errors.Is(err, ErrNotOwner):
		response.RespondJSON(c, "error", http.StatusForbidden, "You do not have access to this booking", nil, err.Error())
	case errors.Is(err, ErrAlreadyTerminal):
		response.RespondJSON(c, "error", http.StatusConflict, "Booking is already settled", nil, err.Error())
	case errors.Is(err, ErrPaymentDeclined):
		response.RespondJSON(c, "error", http.StatusPaymentRequired, "Payment was declined", nil, err.Error())
	case errors.Is(err, ErrStoreUnavailable):
		response.RespondJSON(c, "error", http.StatusServiceUnavailable, "Booking service temporarily unavailable", nil, err.Error())
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Booking request failed", nil, err.Error())
	}
}
