package booking

import (
	"context"
	"time"

	"stayhaven/models"
)

// RequestBookingInput is a guest's request-to-book.
type RequestBookingInput struct {
	ApartmentID string    `json:"apartment_id"`
	GuestID     string    `json:"-"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	GuestsCount int       `json:"guests_count"`
	Notes       string    `json:"notes"`
}

// NightlyRate is one night of a quote's breakdown.
type NightlyRate struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Quote is a priced stay, computed without creating a booking.
type Quote struct {
	ApartmentID string        `json:"apartment_id"`
	CheckIn     string        `json:"check_in"`
	CheckOut    string        `json:"check_out"`
	Nights      int           `json:"nights"`
	Breakdown   []NightlyRate `json:"breakdown"`
	TotalPrice  float64       `json:"total_price"`
	Currency    string        `json:"currency"`
}

// CalendarFeed is the payload the browsing UI renders a disabled-dates
// calendar from. Owner blocks and booked dates are reported separately.
type CalendarFeed struct {
	ApartmentID string   `json:"apartment_id"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Unavailable []string `json:"unavailable"`
	Booked      []string `json:"booked"`
	BasePrice   float64  `json:"base_price"`
	Currency    string   `json:"currency"`
}

// BookingService is the façade over the availability index, the pricing
// resolver and the booking lifecycle.
type BookingService interface {
	// Guest-facing operations.
	RequestBooking(ctx context.Context, input RequestBookingInput) (*models.Booking, error)
	GetQuote(ctx context.Context, apartmentID string, checkIn, checkOut time.Time) (*Quote, error)
	IsDateRangeBookable(ctx context.Context, apartmentID string, checkIn, checkOut time.Time, guests int) (bool, error)
	AvailabilityCalendar(ctx context.Context, apartmentID string, from, to time.Time) (*CalendarFeed, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListGuestBookings(ctx context.Context, guestID string) ([]models.Booking, error)

	// Lifecycle transitions.
	ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string, actor CancelActor) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	SetPaymentStatus(ctx context.Context, bookingID string, to models.PaymentStatus) (*models.Booking, error)

	// Admin operations.
	ListBookingsByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	SetCalendarRange(ctx context.Context, apartmentID string, from, to time.Time, available bool, minStay, maxStay *int, note string) error
	ClearCalendarRange(ctx context.Context, apartmentID string, from, to time.Time) error
	AddPricingRule(ctx context.Context, rule *models.PricingRule) error
	DeletePricingRule(ctx context.Context, apartmentID, ruleID string) error
	ListPricingRules(ctx context.Context, apartmentID string) ([]models.PricingRule, error)

	// AutoCompleteFinished flips CONFIRMED bookings with a past check-out to
	// COMPLETED; it backs the daily sweep.
	AutoCompleteFinished(ctx context.Context) (int, error)
}
