package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apartmentRepo "stayhaven/database/repository/apartment"
	bookingRepo "stayhaven/database/repository/booking"
	calendarRepo "stayhaven/database/repository/calendar"
	pricingRepo "stayhaven/database/repository/pricing"
	"stayhaven/models"
	"stayhaven/services/notification"
	"stayhaven/utils"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Apartments apartmentRepo.ApartmentRepository
	Bookings   bookingRepo.BookingRepository
	Calendar   calendarRepo.CalendarRepository
	Pricing    pricingRepo.PricingRuleRepository
	Validator  *ConflictValidator
	Notifier   notification.NotificationService
	Cache      CalendarCache

	locks *apartmentLocks
}

func NewDefaultBookingService(
	apartments apartmentRepo.ApartmentRepository,
	bookings bookingRepo.BookingRepository,
	calendar calendarRepo.CalendarRepository,
	pricing pricingRepo.PricingRuleRepository,
	notifier notification.NotificationService,
	cache CalendarCache,
) *DefaultBookingService {
	return &DefaultBookingService{
		Apartments: apartments,
		Bookings:   bookings,
		Calendar:   calendar,
		Pricing:    pricing,
		Validator:  &ConflictValidator{Calendar: calendar, Bookings: bookings},
		Notifier:   notifier,
		Cache:      cache,
		locks:      newApartmentLocks(),
	}
}

// RequestBooking admits or rejects a guest's request and, when admissible,
// creates the booking in PENDING. Pending requests never reserve dates:
// several guests may request the same range and the owner picks one.
func (s *DefaultBookingService) RequestBooking(ctx context.Context, input RequestBookingInput) (*models.Booking, error) {
	if input.GuestID == "" {
		return nil, NewValidationError("guest_id", "guest identity is required")
	}
	if input.GuestsCount < 1 {
		return nil, NewValidationError("guests_count", "at least one guest is required")
	}
	if input.CheckIn.IsZero() || input.CheckOut.IsZero() {
		return nil, NewValidationError("check_in", "check-in and check-out dates are required")
	}

	apt, err := s.Apartments.GetByID(input.ApartmentID)
	if err != nil {
		return nil, err
	}
	if !apt.IsActive {
		return nil, NewValidationError("apartment_id", "apartment is not accepting bookings")
	}

	rej, err := s.Validator.Validate(ctx, apt, input.CheckIn, input.CheckOut, input.GuestsCount)
	if err != nil {
		return nil, err
	}
	if rej != nil {
		return nil, rej
	}

	rules, err := s.Pricing.ListForRange(ctx, apt.ID, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ApartmentID:   apt.ID,
		GuestID:       input.GuestID,
		CheckIn:       models.DateOnly(input.CheckIn),
		CheckOut:      models.DateOnly(input.CheckOut),
		GuestsCount:   input.GuestsCount,
		TotalPrice:    PriceForRange(apt.BasePricePerNight, rules, input.CheckIn, input.CheckOut),
		Currency:      apt.Currency,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentNotRequired,
		Notes:         input.Notes,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notify(notification.EventBookingRequested, booking)
	return booking, nil
}

// GetQuote prices a stay without creating anything.
func (s *DefaultBookingService) GetQuote(ctx context.Context, apartmentID string, checkIn, checkOut time.Time) (*Quote, error) {
	checkIn, checkOut = models.DateOnly(checkIn), models.DateOnly(checkOut)
	if !checkOut.After(checkIn) {
		return nil, NewValidationError("check_out", "check-out date must be after check-in date")
	}

	apt, err := s.Apartments.GetByID(apartmentID)
	if err != nil {
		return nil, err
	}
	rules, err := s.Pricing.ListForRange(ctx, apt.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	quote := &Quote{
		ApartmentID: apt.ID,
		CheckIn:     checkIn.Format(models.DateFormat),
		CheckOut:    checkOut.Format(models.DateFormat),
		Nights:      models.Nights(checkIn, checkOut),
		Currency:    apt.Currency,
	}
	models.EachDay(checkIn, checkOut, func(d time.Time) {
		price := PriceForNight(apt.BasePricePerNight, rules, d)
		quote.Breakdown = append(quote.Breakdown, NightlyRate{Date: d.Format(models.DateFormat), Price: price})
		quote.TotalPrice += price
	})
	return quote, nil
}

// IsDateRangeBookable is the read-only form of the admission check.
func (s *DefaultBookingService) IsDateRangeBookable(ctx context.Context, apartmentID string, checkIn, checkOut time.Time, guests int) (bool, error) {
	apt, err := s.Apartments.GetByID(apartmentID)
	if err != nil {
		return false, err
	}
	if !apt.IsActive {
		return false, nil
	}
	rej, err := s.Validator.Validate(ctx, apt, checkIn, checkOut, guests)
	if err != nil {
		return false, err
	}
	return rej == nil, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.Bookings.GetByID(ctx, bookingID)
}

func (s *DefaultBookingService) ListGuestBookings(ctx context.Context, guestID string) ([]models.Booking, error) {
	return s.Bookings.ListByGuest(ctx, guestID)
}

func (s *DefaultBookingService) ListBookingsByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	return s.Bookings.ListByStatus(ctx, status)
}

// ConfirmBooking transitions a PENDING booking to CONFIRMED and commits its
// dates as a calendar hold. Availability is re-validated against the current
// state under the apartment's lock; a booking that lost the race stays
// PENDING with a NO_LONGER_AVAILABLE rejection for the owner to resolve.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(booking.Status, models.StatusConfirmed) {
		return nil, &TransitionError{From: string(booking.Status), Action: "confirm"}
	}

	lock := s.locks.get(booking.ApartmentID)
	lock.Lock()
	defer lock.Unlock()

	rej, err := s.Validator.Revalidate(ctx, booking.ApartmentID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		return nil, err
	}
	if rej != nil {
		return nil, NewRejection(RejectNoLongerAvailable, rej.Message)
	}

	if err := s.Bookings.ConfirmWithHold(ctx, booking, s.Calendar); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) || errors.Is(err, calendarRepo.ErrDayBlocked) {
			return nil, NewRejection(RejectNoLongerAvailable, "the dates are no longer available")
		}
		return nil, err
	}
	booking.Status = models.StatusConfirmed

	s.invalidateCalendar(ctx, booking.ApartmentID)
	s.notify(notification.EventBookingConfirmed, booking)
	return booking, nil
}

// CancelBooking cancels a PENDING or CONFIRMED booking. Cancelling a CONFIRMED
// booking flips the status and releases its calendar hold in one transaction:
// if the release fails the booking stays CONFIRMED, so a retried cancel runs
// the release again rather than stranding the held dates. Cancelling a booking
// that is already cancelled is a no-op.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string, actor CancelActor) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	switch booking.Status {
	case models.StatusCancelledByUser, models.StatusCancelledByAdmin:
		return booking, nil
	}

	target := cancelTarget(actor)
	if !CanTransition(booking.Status, target) {
		return nil, &TransitionError{From: string(booking.Status), Action: "cancel"}
	}

	var updated *models.Booking
	if booking.Status == models.StatusConfirmed {
		updated, err = s.Bookings.CancelWithRelease(ctx, booking, target, s.Calendar)
		if err != nil {
			return nil, err
		}
		s.invalidateCalendar(ctx, booking.ApartmentID)
	} else {
		updated, err = s.Bookings.UpdateStatus(ctx, bookingID, booking.Status, target)
		if err != nil {
			return nil, err
		}
	}

	s.notify(notification.EventBookingCancelled, updated)
	return updated, nil
}

// CompleteBooking closes out a CONFIRMED stay once the check-out date has
// passed. A stay is completable from the day after check-out, the same cutoff
// the nightly sweep uses. Past calendar entries are left as they are.
func (s *DefaultBookingService) CompleteBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(booking.Status, models.StatusCompleted) {
		return nil, &TransitionError{From: string(booking.Status), Action: "complete"}
	}
	if !models.DateOnly(time.Now()).After(models.DateOnly(booking.CheckOut)) {
		return nil, NewValidationError("check_out", "cannot complete a stay before its check-out date has passed")
	}

	updated, err := s.Bookings.UpdateStatus(ctx, bookingID, models.StatusConfirmed, models.StatusCompleted)
	if err != nil {
		return nil, err
	}

	s.notify(notification.EventBookingCompleted, updated)
	return updated, nil
}

// SetPaymentStatus moves the orthogonal payment sub-state. Anything but
// NOT_REQUIRED is only meaningful once the booking is CONFIRMED or COMPLETED.
func (s *DefaultBookingService) SetPaymentStatus(ctx context.Context, bookingID string, to models.PaymentStatus) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !CanTransitionPayment(booking.PaymentStatus, to) {
		return nil, &TransitionError{From: string(booking.PaymentStatus), Action: "set payment status"}
	}
	switch booking.Status {
	case models.StatusConfirmed, models.StatusCompleted:
	default:
		return nil, &TransitionError{From: string(booking.Status), Action: "set payment status"}
	}
	return s.Bookings.UpdatePaymentStatus(ctx, bookingID, to)
}

// AutoCompleteFinished sweeps CONFIRMED bookings whose check-out has passed.
// Individual failures are logged and skipped; the sweep runs again tomorrow.
func (s *DefaultBookingService) AutoCompleteFinished(ctx context.Context) (int, error) {
	finished, err := s.Bookings.ListConfirmedEndingBefore(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	completed := 0
	for i := range finished {
		if _, err := s.CompleteBooking(ctx, finished[i].ID); err != nil {
			utils.GetLogger().Warn("auto-complete skipped booking",
				zap.String("bookingID", finished[i].ID), zap.Error(err))
			continue
		}
		completed++
	}
	return completed, nil
}

// notify dispatches an event without letting a delivery failure touch the
// transition that caused it.
func (s *DefaultBookingService) notify(event notification.Event, booking *models.Booking) {
	if s.Notifier == nil {
		return
	}
	go func(b models.Booking) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Notifier.NotifyBookingEvent(ctx, event, &b); err != nil {
			utils.GetLogger().Warn("booking notification failed",
				zap.String("event", string(event)), zap.String("bookingID", b.ID), zap.Error(err))
		}
	}(*booking)
}

func (s *DefaultBookingService) invalidateCalendar(ctx context.Context, apartmentID string) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, apartmentID)
	}
}

var _ BookingService = (*DefaultBookingService)(nil)
