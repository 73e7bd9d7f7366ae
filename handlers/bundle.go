package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so routing
// stays declarative.
type HandlerBundle struct {
	// Public listing endpoints
	ListApartments     gin.HandlerFunc
	GetApartmentBySlug gin.HandlerFunc

	// Guest endpoints
	RequestBooking    gin.HandlerFunc
	GetQuote          gin.HandlerFunc
	CheckAvailability gin.HandlerFunc
	GetCalendar       gin.HandlerFunc
	MyBookings        gin.HandlerFunc
	GetBooking        gin.HandlerFunc
	CancelMyBooking   gin.HandlerFunc

	// Admin lifecycle endpoints
	ConfirmBooking   gin.HandlerFunc
	CancelBooking    gin.HandlerFunc
	CompleteBooking  gin.HandlerFunc
	SetPaymentStatus gin.HandlerFunc
	ListBookings     gin.HandlerFunc

	// Admin calendar endpoints
	SetCalendarRange   gin.HandlerFunc
	ClearCalendarRange gin.HandlerFunc

	// Admin pricing endpoints
	AddPricingRule    gin.HandlerFunc
	DeletePricingRule gin.HandlerFunc
	ListPricingRules  gin.HandlerFunc
}
