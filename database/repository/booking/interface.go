package bookingRepo

import (
	"context"
	"errors"
	"time"

	calendarRepo "stayhaven/database/repository/calendar"
	"stayhaven/models"
)

// ErrStatusConflict is returned by conditional status updates when the booking
// is no longer in the expected state, i.e. another actor got there first.
var ErrStatusConflict = errors.New("booking: status changed concurrently")

// BookingRepository stores bookings. Bookings are never deleted; every
// lifecycle outcome is a status write so audit and calendar history survive.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByGuest(ctx context.Context, guestID string) ([]models.Booking, error)
	ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)

	// FindConfirmedOverlapping returns CONFIRMED bookings whose half-open date
	// range intersects [checkIn, checkOut) for the apartment.
	FindConfirmedOverlapping(ctx context.Context, apartmentID string, checkIn, checkOut time.Time) ([]models.Booking, error)

	// UpdateStatus transitions the booking from exactly `from` to `to` and
	// returns the updated record, or ErrStatusConflict if the booking is no
	// longer in `from`.
	UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus) (*models.Booking, error)

	// UpdatePaymentStatus sets the payment sub-state.
	UpdatePaymentStatus(ctx context.Context, id string, to models.PaymentStatus) (*models.Booking, error)

	// ListConfirmedEndingBefore returns CONFIRMED bookings whose check-out is
	// strictly before the cutoff; used by the auto-complete sweep.
	ListConfirmedEndingBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error)

	// ConfirmWithHold atomically transitions the booking PENDING -> CONFIRMED
	// and commits its date range into the calendar store as a hold. Either
	// both happen or neither: a blocked date surfaces as
	// calendarRepo.ErrDayBlocked and leaves the booking PENDING.
	ConfirmWithHold(ctx context.Context, booking *models.Booking, cal calendarRepo.CalendarRepository) error

	// CancelWithRelease atomically transitions a CONFIRMED booking to `to` and
	// releases its calendar hold. Either both happen or neither: a failed
	// release leaves the booking CONFIRMED so a retried cancel runs the
	// release again instead of stranding the held dates.
	CancelWithRelease(ctx context.Context, booking *models.Booking, to models.BookingStatus, cal calendarRepo.CalendarRepository) (*models.Booking, error)
}
