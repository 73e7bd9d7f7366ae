package models

import "time"

// BookingStatus is the lifecycle state of a booking. Bookings are created
// PENDING and are never deleted; cancellation is a status, not a removal.
type BookingStatus string

const (
	StatusPending          BookingStatus = "PENDING"
	StatusConfirmed        BookingStatus = "CONFIRMED"
	StatusCancelledByUser  BookingStatus = "CANCELLED_BY_USER"
	StatusCancelledByAdmin BookingStatus = "CANCELLED_BY_ADMIN"
	StatusCompleted        BookingStatus = "COMPLETED"
)

// PaymentStatus is the orthogonal payment sub-state of a booking.
type PaymentStatus string

const (
	PaymentNotRequired PaymentStatus = "NOT_REQUIRED"
	PaymentUnpaid      PaymentStatus = "UNPAID"
	PaymentPaid        PaymentStatus = "PAID"
	PaymentRefunded    PaymentStatus = "REFUNDED"
)

// Booking is the unit of truth for a stay. Calendar holds derived from a
// confirmed booking are a projection kept consistent by the lifecycle.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	ApartmentID   string        `bson:"apartment_id" json:"apartment_id"`
	GuestID       string        `bson:"guest_id" json:"guest_id"` // opaque identity from the auth layer
	CheckIn       time.Time     `bson:"check_in" json:"check_in"`
	CheckOut      time.Time     `bson:"check_out" json:"check_out"` // exclusive
	GuestsCount   int           `bson:"guests_count" json:"guests_count"`
	TotalPrice    float64       `bson:"total_price" json:"total_price"`
	Currency      string        `bson:"currency" json:"currency"`
	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"payment_status"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"` // message from guest to owner
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

// Nights returns the length of the stay; the check-out night is excluded.
func (b *Booking) Nights() int {
	return Nights(b.CheckIn, b.CheckOut)
}

// Overlaps reports whether the booking's date range intersects [in, out).
func (b *Booking) Overlaps(in, out time.Time) bool {
	return RangesOverlap(b.CheckIn, b.CheckOut, in, out)
}

// IsTerminal reports whether no further status transitions are possible.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case StatusCompleted, StatusCancelledByUser, StatusCancelledByAdmin:
		return true
	}
	return false
}
