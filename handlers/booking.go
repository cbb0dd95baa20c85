package handlers

import (
	"errors"
	"net/http"

	"salonbook/models"
	"salonbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler owns the booking submission endpoint.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("CreateBookingHandler: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	result, err := h.BookingSvc.Book(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"message": err.Error(),
			})
			return
		}
		h.Logger.Error("CreateBookingHandler: booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "booking failed",
			"message": err.Error(),
		})
		return
	}

	status := http.StatusCreated
	switch result.Outcome {
	case models.OutcomePartial:
		status = http.StatusMultiStatus
	case models.OutcomeAllFail:
		status = http.StatusBadGateway
	}
	c.JSON(status, result)
}
