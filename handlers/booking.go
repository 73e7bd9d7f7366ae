package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stayhaven/middleware"
	"stayhaven/services/booking"
)

// BookingHandler serves the guest-facing booking endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

type requestBookingPayload struct {
	ApartmentID string `json:"apartment_id" binding:"required"`
	CheckIn     string `json:"check_in" binding:"required"`
	CheckOut    string `json:"check_out" binding:"required"`
	GuestsCount int    `json:"guests_count" binding:"required"`
	Notes       string `json:"notes"`
}

// RequestBooking creates a PENDING booking for the caller.
func (bh *BookingHandler) RequestBooking(c *gin.Context) {
	var payload requestBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	checkIn, checkOut, err := parseDateRange(payload.CheckIn, payload.CheckOut, "check_in", "check_out")
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := bh.Svc.RequestBooking(c.Request.Context(), booking.RequestBookingInput{
		ApartmentID: payload.ApartmentID,
		GuestID:     middleware.GuestID(c),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GuestsCount: payload.GuestsCount,
		Notes:       payload.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetQuote prices a stay without creating anything.
func (bh *BookingHandler) GetQuote(c *gin.Context) {
	checkIn, checkOut, err := parseDateRange(c.Query("check_in"), c.Query("check_out"), "check_in", "check_out")
	if err != nil {
		respondError(c, err)
		return
	}
	quote, err := bh.Svc.GetQuote(c.Request.Context(), c.Param("id"), checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CheckAvailability answers whether a stay could currently be booked.
func (bh *BookingHandler) CheckAvailability(c *gin.Context) {
	checkIn, checkOut, err := parseDateRange(c.Query("check_in"), c.Query("check_out"), "check_in", "check_out")
	if err != nil {
		respondError(c, err)
		return
	}
	guests := 1
	if raw := c.Query("guests"); raw != "" {
		parsed, convErr := strconv.Atoi(raw)
		if convErr != nil {
			respondError(c, booking.NewValidationError("guests", "expected an integer"))
			return
		}
		guests = parsed
	}
	bookable, err := bh.Svc.IsDateRangeBookable(c.Request.Context(), c.Param("id"), checkIn, checkOut, guests)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookable": bookable})
}

// GetCalendar serves the disabled-dates feed for the booking widget.
func (bh *BookingHandler) GetCalendar(c *gin.Context) {
	var from, to time.Time
	var err error
	if raw := c.Query("from"); raw != "" {
		if from, err = parseDate(raw, "from"); err != nil {
			respondError(c, err)
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = parseDate(raw, "to"); err != nil {
			respondError(c, err)
			return
		}
	}
	feed, err := bh.Svc.AvailabilityCalendar(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// MyBookings lists the caller's bookings, newest first.
func (bh *BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := bh.Svc.ListGuestBookings(c.Request.Context(), middleware.GuestID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one of the caller's bookings.
func (bh *BookingHandler) GetBooking(c *gin.Context) {
	b, err := bh.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if b.GuestID != middleware.GuestID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelMyBooking cancels one of the caller's bookings.
func (bh *BookingHandler) CancelMyBooking(c *gin.Context) {
	b, err := bh.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if b.GuestID != middleware.GuestID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	cancelled, err := bh.Svc.CancelBooking(c.Request.Context(), c.Param("id"), booking.ActorGuest)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
