package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhaven/models"
	"stayhaven/services/booking"
)

// AdminHandler encapsulates the owner-side operations: lifecycle
// transitions, calendar management and pricing rules.
type AdminHandler struct {
	Svc booking.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc booking.BookingService) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

// ConfirmBooking accepts a PENDING booking, re-checking availability.
func (ah *AdminHandler) ConfirmBooking(c *gin.Context) {
	b, err := ah.Svc.ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking cancels a booking on the owner's behalf.
func (ah *AdminHandler) CancelBooking(c *gin.Context) {
	b, err := ah.Svc.CancelBooking(c.Request.Context(), c.Param("id"), booking.ActorAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteBooking marks a finished stay COMPLETED.
func (ah *AdminHandler) CompleteBooking(c *gin.Context) {
	b, err := ah.Svc.CompleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// SetPaymentStatus moves a booking's payment sub-state.
func (ah *AdminHandler) SetPaymentStatus(c *gin.Context) {
	var payload struct {
		PaymentStatus string `json:"payment_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := ah.Svc.SetPaymentStatus(c.Request.Context(), c.Param("id"), models.PaymentStatus(payload.PaymentStatus))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings lists bookings filtered by status.
func (ah *AdminHandler) ListBookings(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status query parameter is required"})
		return
	}
	bookings, err := ah.Svc.ListBookingsByStatus(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type calendarRangePayload struct {
	From      string `json:"from" binding:"required"`
	To        string `json:"to" binding:"required"`
	Available *bool  `json:"available" binding:"required"`
	MinStay   *int   `json:"min_stay"`
	MaxStay   *int   `json:"max_stay"`
	Note      string `json:"note"`
}

// SetCalendarRange blocks or annotates a date range on the calendar.
func (ah *AdminHandler) SetCalendarRange(c *gin.Context) {
	var payload calendarRangePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	from, to, err := parseDateRange(payload.From, payload.To, "from", "to")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ah.Svc.SetCalendarRange(c.Request.Context(), c.Param("id"), from, to, *payload.Available, payload.MinStay, payload.MaxStay, payload.Note); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// ClearCalendarRange removes owner-entered calendar records over a range.
func (ah *AdminHandler) ClearCalendarRange(c *gin.Context) {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"), "from", "to")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ah.Svc.ClearCalendarRange(c.Request.Context(), c.Param("id"), from, to); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

type pricingRulePayload struct {
	Kind          string   `json:"kind" binding:"required"`
	StartDate     string   `json:"start_date" binding:"required"`
	EndDate       string   `json:"end_date" binding:"required"`
	Weekday       *int     `json:"weekday"`
	PricePerNight *float64 `json:"price_per_night"`
	PercentChange *float64 `json:"percent_change"`
}

// AddPricingRule creates a pricing rule for an apartment.
func (ah *AdminHandler) AddPricingRule(c *gin.Context) {
	var payload pricingRulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	start, end, err := parseDateRange(payload.StartDate, payload.EndDate, "start_date", "end_date")
	if err != nil {
		respondError(c, err)
		return
	}
	rule := &models.PricingRule{
		ApartmentID:   c.Param("id"),
		Kind:          models.PricingRuleKind(payload.Kind),
		StartDate:     start,
		EndDate:       end,
		Weekday:       payload.Weekday,
		PricePerNight: payload.PricePerNight,
		PercentChange: payload.PercentChange,
	}
	if err := ah.Svc.AddPricingRule(c.Request.Context(), rule); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// DeletePricingRule removes a pricing rule.
func (ah *AdminHandler) DeletePricingRule(c *gin.Context) {
	if err := ah.Svc.DeletePricingRule(c.Request.Context(), c.Param("id"), c.Param("ruleId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListPricingRules lists an apartment's pricing rules.
func (ah *AdminHandler) ListPricingRules(c *gin.Context) {
	rules, err := ah.Svc.ListPricingRules(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}
