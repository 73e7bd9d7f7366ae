package notification

import (
	"context"

	"stayhaven/models"
)

// Event names the booking transitions worth telling people about.
type Event string

const (
	EventBookingRequested Event = "booking_requested"
	EventBookingConfirmed Event = "booking_confirmed"
	EventBookingCancelled Event = "booking_cancelled"
	EventBookingCompleted Event = "booking_completed"
)

// NotificationService is the seam to the platform's dispatcher (email, push).
// Calls are fire-and-forget: a delivery failure must never fail or roll back
// the transition that triggered it.
type NotificationService interface {
	NotifyBookingEvent(ctx context.Context, event Event, booking *models.Booking) error
}
