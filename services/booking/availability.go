package booking

import (
	"context"
	"time"

	"stayhaven/models"
)

// defaultCalendarWindowDays is how far ahead the public calendar feed looks
// when the caller does not narrow the window.
const defaultCalendarWindowDays = 365

// AvailabilityCalendar builds the disabled-dates payload for an apartment.
// Owner blocks and confirmed-booking dates are listed separately so the UI
// can style them differently. The default window is served from cache.
func (s *DefaultBookingService) AvailabilityCalendar(ctx context.Context, apartmentID string, from, to time.Time) (*CalendarFeed, error) {
	defaultWindow := from.IsZero() && to.IsZero()
	if from.IsZero() {
		from = time.Now()
	}
	if to.IsZero() {
		to = from.AddDate(0, 0, defaultCalendarWindowDays)
	}
	from, to = models.DateOnly(from), models.DateOnly(to)
	if !to.After(from) {
		return nil, NewValidationError("to", "window end must be after window start")
	}

	if defaultWindow && s.Cache != nil {
		if feed, ok := s.Cache.GetFeed(ctx, apartmentID); ok {
			return feed, nil
		}
	}

	apt, err := s.Apartments.GetByID(apartmentID)
	if err != nil {
		return nil, err
	}

	feed := &CalendarFeed{
		ApartmentID: apt.ID,
		From:        from.Format(models.DateFormat),
		To:          to.Format(models.DateFormat),
		Unavailable: []string{},
		Booked:      []string{},
		BasePrice:   apt.BasePricePerNight,
		Currency:    apt.Currency,
	}

	days, err := s.Calendar.GetRange(ctx, apt.ID, from, to)
	if err != nil {
		return nil, err
	}
	for i := range days {
		d := &days[i]
		if !d.Available && d.BlockType != models.BlockBookingHold {
			feed.Unavailable = append(feed.Unavailable, d.Date.Format(models.DateFormat))
		}
	}

	confirmed, err := s.Bookings.FindConfirmedOverlapping(ctx, apt.ID, from, to)
	if err != nil {
		return nil, err
	}
	for i := range confirmed {
		b := &confirmed[i]
		models.EachDay(b.CheckIn, b.CheckOut, func(d time.Time) {
			if !d.Before(from) && d.Before(to) {
				feed.Booked = append(feed.Booked, d.Format(models.DateFormat))
			}
		})
	}

	if defaultWindow && s.Cache != nil {
		s.Cache.SetFeed(ctx, apartmentID, feed)
	}
	return feed, nil
}

// SetCalendarRange records an owner block or unblock over [from, to).
func (s *DefaultBookingService) SetCalendarRange(ctx context.Context, apartmentID string, from, to time.Time, available bool, minStay, maxStay *int, note string) error {
	from, to = models.DateOnly(from), models.DateOnly(to)
	if !to.After(from) {
		return NewValidationError("to", "range end must be after range start")
	}
	if minStay != nil && *minStay < 1 {
		return NewValidationError("min_stay", "minimum stay must be at least one night")
	}
	if maxStay != nil && *maxStay < 1 {
		return NewValidationError("max_stay", "maximum stay must be at least one night")
	}
	if maxStay != nil && minStay != nil && *maxStay < *minStay {
		return NewValidationError("max_stay", "maximum stay cannot be below minimum stay")
	}
	if _, err := s.Apartments.GetByID(apartmentID); err != nil {
		return err
	}
	if err := s.Calendar.SetRange(ctx, apartmentID, from, to, available, minStay, maxStay, note); err != nil {
		return err
	}
	s.invalidateCalendar(ctx, apartmentID)
	return nil
}

// ClearCalendarRange removes owner-entered records, restoring the open-world
// default. Booking holds are untouched.
func (s *DefaultBookingService) ClearCalendarRange(ctx context.Context, apartmentID string, from, to time.Time) error {
	from, to = models.DateOnly(from), models.DateOnly(to)
	if !to.After(from) {
		return NewValidationError("to", "range end must be after range start")
	}
	if err := s.Calendar.DeleteManualRange(ctx, apartmentID, from, to); err != nil {
		return err
	}
	s.invalidateCalendar(ctx, apartmentID)
	return nil
}

// AddPricingRule validates and stores a rule. Overlaps with existing rules
// are allowed; precedence is resolved when pricing, not when writing.
func (s *DefaultBookingService) AddPricingRule(ctx context.Context, rule *models.PricingRule) error {
	switch rule.Kind {
	case models.RuleSeasonal, models.RuleWeekend, models.RuleDiscount:
	default:
		return NewValidationError("kind", "unknown pricing rule kind")
	}
	if !models.DateOnly(rule.EndDate).After(models.DateOnly(rule.StartDate)) {
		return NewValidationError("end_date", "rule end date must be after start date")
	}
	if (rule.PricePerNight == nil) == (rule.PercentChange == nil) {
		return NewValidationError("price_per_night", "a rule sets either an absolute price or a percentage, not both")
	}
	if rule.PricePerNight != nil && *rule.PricePerNight <= 0 {
		return NewValidationError("price_per_night", "absolute price must be positive")
	}
	if rule.Kind == models.RuleDiscount {
		if rule.PercentChange == nil || *rule.PercentChange > 0 {
			return NewValidationError("percent_change", "discount rules must lower the price")
		}
	}
	if rule.PercentChange != nil && *rule.PercentChange <= -100 {
		return NewValidationError("percent_change", "percentage cannot reduce the price below zero")
	}
	if rule.Weekday != nil && (*rule.Weekday < 0 || *rule.Weekday > 6) {
		return NewValidationError("weekday", "weekday must be between 0 (Monday) and 6 (Sunday)")
	}
	if _, err := s.Apartments.GetByID(rule.ApartmentID); err != nil {
		return err
	}
	return s.Pricing.Create(ctx, rule)
}

func (s *DefaultBookingService) DeletePricingRule(ctx context.Context, apartmentID, ruleID string) error {
	return s.Pricing.Delete(ctx, apartmentID, ruleID)
}

func (s *DefaultBookingService) ListPricingRules(ctx context.Context, apartmentID string) ([]models.PricingRule, error) {
	return s.Pricing.ListByApartment(ctx, apartmentID)
}
