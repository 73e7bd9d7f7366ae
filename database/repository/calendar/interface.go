package calendarRepo

import (
	"context"
	"errors"
	"time"

	"stayhaven/models"
)

// ErrDayBlocked is returned when a hold cannot be committed because a date in
// the range is already unavailable (owner block or a competing hold).
var ErrDayBlocked = errors.New("calendar: date in range is already blocked")

// CalendarRepository is the per-apartment, per-date availability store.
// Absence of a record for a date means available with no constraints.
type CalendarRepository interface {
	// GetRange returns the records covering [from, to), ordered by date.
	GetRange(ctx context.Context, apartmentID string, from, to time.Time) ([]models.CalendarDay, error)

	// SetRange upserts an owner-entered record for every date in [from, to).
	// It is idempotent and never touches booking holds.
	SetRange(ctx context.Context, apartmentID string, from, to time.Time, available bool, minStay, maxStay *int, note string) error

	// DeleteManualRange removes owner-entered records in [from, to), restoring
	// the open-world default for those dates. Booking holds are untouched.
	DeleteManualRange(ctx context.Context, apartmentID string, from, to time.Time) error

	// CommitHold marks every date in [from, to) unavailable, tagged with the
	// owning booking. It fails with ErrDayBlocked if any date is already
	// unavailable; on failure no date is modified.
	CommitHold(ctx context.Context, apartmentID string, from, to time.Time, bookingID string) error

	// ReleaseHold removes the hold tagged with the booking, restoring each
	// affected date to what it represented before the hold: records that only
	// existed for the hold are deleted, records carrying owner constraints are
	// kept with the hold stripped. Releasing a hold twice is a no-op.
	ReleaseHold(ctx context.Context, bookingID string) error
}
