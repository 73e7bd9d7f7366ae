package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "stayhaven/database/repository/booking"
	calendarRepo "stayhaven/database/repository/calendar"
	"stayhaven/models"
)

// ConflictValidator decides whether a proposed stay is admissible. Checks run
// in a fixed order and short-circuit on the first failure. Explicit calendar
// blocks and booking-derived unavailability are kept as distinct sources:
// the calendar store is consulted for the former, the bookings collection for
// the latter.
type ConflictValidator struct {
	Calendar calendarRepo.CalendarRepository
	Bookings bookingRepo.BookingRepository
}

// Validate runs the full admission check for a requested stay. A non-nil
// Rejection is a routine business outcome; the error return is reserved for
// storage failures.
func (v *ConflictValidator) Validate(ctx context.Context, apt *models.Apartment, checkIn, checkOut time.Time, guests int) (*Rejection, error) {
	checkIn, checkOut = models.DateOnly(checkIn), models.DateOnly(checkOut)

	if !checkOut.After(checkIn) {
		return NewRejection(RejectInvalidRange, "check-out date must be after check-in date"), nil
	}
	if guests > apt.Capacity {
		msg := fmt.Sprintf("guests count exceeds apartment capacity (%d)", apt.Capacity)
		return NewRejection(RejectOverCapacity, msg), nil
	}

	days, err := v.Calendar.GetRange(ctx, apt.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if rej := checkStayLength(days, models.Nights(checkIn, checkOut)); rej != nil {
		return rej, nil
	}
	if rej := checkCalendarOpen(days); rej != nil {
		return rej, nil
	}
	return v.checkConfirmedOverlap(ctx, apt.ID, checkIn, checkOut)
}

// Revalidate re-runs only the availability checks (calendar plus confirmed
// overlap). The confirm transition uses it because time has passed since the
// request was admitted and other bookings may have confirmed meanwhile.
func (v *ConflictValidator) Revalidate(ctx context.Context, apartmentID string, checkIn, checkOut time.Time) (*Rejection, error) {
	checkIn, checkOut = models.DateOnly(checkIn), models.DateOnly(checkOut)

	days, err := v.Calendar.GetRange(ctx, apartmentID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if rej := checkCalendarOpen(days); rej != nil {
		return rej, nil
	}
	return v.checkConfirmedOverlap(ctx, apartmentID, checkIn, checkOut)
}

// checkStayLength applies the strictest constraint found across the covered
// dates: the maximum of the lower bounds and the minimum of the upper bounds.
func checkStayLength(days []models.CalendarDay, nights int) *Rejection {
	minRequired, maxAllowed := 0, 0
	for i := range days {
		d := &days[i]
		if d.MinStay != nil && *d.MinStay > minRequired {
			minRequired = *d.MinStay
		}
		if d.MaxStay != nil && (maxAllowed == 0 || *d.MaxStay < maxAllowed) {
			maxAllowed = *d.MaxStay
		}
	}
	if minRequired > 0 && nights < minRequired {
		return NewRejection(RejectStayLength, fmt.Sprintf("stay requires at least %d nights", minRequired))
	}
	if maxAllowed > 0 && nights > maxAllowed {
		return NewRejection(RejectStayLength, fmt.Sprintf("stay allows at most %d nights", maxAllowed))
	}
	return nil
}

// checkCalendarOpen rejects if any covered date carries an explicit
// unavailable record. Dates without a record are available by default.
func checkCalendarOpen(days []models.CalendarDay) *Rejection {
	for i := range days {
		if !days[i].Available {
			return NewRejection(RejectDatesUnavailable, "the apartment is not available for the selected dates")
		}
	}
	return nil
}

func (v *ConflictValidator) checkConfirmedOverlap(ctx context.Context, apartmentID string, checkIn, checkOut time.Time) (*Rejection, error) {
	overlapping, err := v.Bookings.FindConfirmedOverlapping(ctx, apartmentID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return NewRejection(RejectDatesUnavailable, "the selected dates overlap a confirmed booking"), nil
	}
	return nil, nil
}
