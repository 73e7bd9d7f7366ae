package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stayhaven/models"
)

func TestAvailabilityCalendarSeparatesBlocksAndBookings(t *testing.T) {
	f := newServiceFixture()
	f.apt.On("GetByID", "apt-1").Return(testApartment(), nil)
	f.cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.CalendarDay{
		{ApartmentID: "apt-1", Date: date(2026, time.July, 10), Available: false, BlockType: models.BlockManual},
		{ApartmentID: "apt-1", Date: date(2026, time.July, 11), Available: true, MinStay: intPtr(2)},
		{ApartmentID: "apt-1", Date: date(2026, time.July, 20), Available: false, BlockType: models.BlockBookingHold, HoldBookingID: "bk-9"},
	}, nil)
	f.bk.On("FindConfirmedOverlapping", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.Booking{
		{ID: "bk-9", ApartmentID: "apt-1", Status: models.StatusConfirmed,
			CheckIn: date(2026, time.July, 20), CheckOut: date(2026, time.July, 22)},
	}, nil)

	feed, err := f.svc.AvailabilityCalendar(context.Background(), "apt-1", date(2026, time.July, 1), date(2026, time.August, 1))
	assert.NoError(t, err)
	// Hold dates are reported through the booking, not as owner blocks.
	assert.Equal(t, []string{"2026-07-10"}, feed.Unavailable)
	assert.Equal(t, []string{"2026-07-20", "2026-07-21"}, feed.Booked)
	assert.Equal(t, 100.0, feed.BasePrice)
}

func TestAvailabilityCalendarClampsBookingsToWindow(t *testing.T) {
	f := newServiceFixture()
	f.apt.On("GetByID", "apt-1").Return(testApartment(), nil)
	f.cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.CalendarDay{}, nil)
	f.bk.On("FindConfirmedOverlapping", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.Booking{
		{ID: "bk-1", Status: models.StatusConfirmed,
			CheckIn: date(2026, time.June, 28), CheckOut: date(2026, time.July, 3)},
	}, nil)

	feed, err := f.svc.AvailabilityCalendar(context.Background(), "apt-1", date(2026, time.July, 1), date(2026, time.August, 1))
	assert.NoError(t, err)
	assert.Equal(t, []string{"2026-07-01", "2026-07-02"}, feed.Booked)
}

func TestAvailabilityCalendarRejectsInvertedWindow(t *testing.T) {
	f := newServiceFixture()
	_, err := f.svc.AvailabilityCalendar(context.Background(), "apt-1", date(2026, time.August, 1), date(2026, time.July, 1))
	_, ok := AsValidationError(err)
	assert.True(t, ok)
}

func TestSetCalendarRangeValidatesBounds(t *testing.T) {
	f := newServiceFixture()

	err := f.svc.SetCalendarRange(context.Background(), "apt-1", date(2026, time.July, 14), date(2026, time.July, 10), false, nil, nil, "")
	_, ok := AsValidationError(err)
	assert.True(t, ok)

	err = f.svc.SetCalendarRange(context.Background(), "apt-1", date(2026, time.July, 10), date(2026, time.July, 14), true, intPtr(0), nil, "")
	_, ok = AsValidationError(err)
	assert.True(t, ok)

	// max_stay alone must still be at least one night, not a silent
	// "unconstrained".
	err = f.svc.SetCalendarRange(context.Background(), "apt-1", date(2026, time.July, 10), date(2026, time.July, 14), true, nil, intPtr(0), "")
	_, ok = AsValidationError(err)
	assert.True(t, ok)

	err = f.svc.SetCalendarRange(context.Background(), "apt-1", date(2026, time.July, 10), date(2026, time.July, 14), true, nil, intPtr(-1), "")
	_, ok = AsValidationError(err)
	assert.True(t, ok)

	err = f.svc.SetCalendarRange(context.Background(), "apt-1", date(2026, time.July, 10), date(2026, time.July, 14), true, intPtr(5), intPtr(3), "")
	_, ok = AsValidationError(err)
	assert.True(t, ok)

	f.cal.AssertNotCalled(t, "SetRange")
}

func TestSetCalendarRangeWritesThrough(t *testing.T) {
	f := newServiceFixture()
	f.apt.On("GetByID", "apt-1").Return(testApartment(), nil)
	f.cal.On("SetRange", mock.Anything, "apt-1", date(2026, time.July, 10), date(2026, time.July, 14), false, (*int)(nil), (*int)(nil), "maintenance").Return(nil)

	err := f.svc.SetCalendarRange(context.Background(), "apt-1", date(2026, time.July, 10), date(2026, time.July, 14), false, nil, nil, "maintenance")
	assert.NoError(t, err)
	f.cal.AssertExpectations(t)
}

func TestClearCalendarRange(t *testing.T) {
	f := newServiceFixture()
	f.cal.On("DeleteManualRange", mock.Anything, "apt-1", date(2026, time.July, 10), date(2026, time.July, 14)).Return(nil)

	err := f.svc.ClearCalendarRange(context.Background(), "apt-1", date(2026, time.July, 10), date(2026, time.July, 14))
	assert.NoError(t, err)
	f.cal.AssertExpectations(t)
}

func validSeasonalRule() *models.PricingRule {
	return &models.PricingRule{
		ApartmentID:   "apt-1",
		Kind:          models.RuleSeasonal,
		StartDate:     date(2026, time.June, 1),
		EndDate:       date(2026, time.September, 1),
		PricePerNight: floatPtr(150),
	}
}

func TestAddPricingRuleValidShapes(t *testing.T) {
	f := newServiceFixture()
	f.apt.On("GetByID", "apt-1").Return(testApartment(), nil)
	f.pr.On("Create", mock.Anything, mock.AnythingOfType("*models.PricingRule")).Return(nil)

	assert.NoError(t, f.svc.AddPricingRule(context.Background(), validSeasonalRule()))

	weekend := validSeasonalRule()
	weekend.Kind = models.RuleWeekend
	weekend.Weekday = intPtr(5)
	weekend.PricePerNight = nil
	weekend.PercentChange = floatPtr(20)
	assert.NoError(t, f.svc.AddPricingRule(context.Background(), weekend))

	discount := validSeasonalRule()
	discount.Kind = models.RuleDiscount
	discount.PricePerNight = nil
	discount.PercentChange = floatPtr(-15)
	assert.NoError(t, f.svc.AddPricingRule(context.Background(), discount))
}

func TestAddPricingRuleRejectsBadShapes(t *testing.T) {
	f := newServiceFixture()

	cases := map[string]*models.PricingRule{}

	unknownKind := validSeasonalRule()
	unknownKind.Kind = "HOLIDAY"
	cases["unknown kind"] = unknownKind

	inverted := validSeasonalRule()
	inverted.StartDate, inverted.EndDate = inverted.EndDate, inverted.StartDate
	cases["inverted range"] = inverted

	both := validSeasonalRule()
	both.PercentChange = floatPtr(10)
	cases["both price and percent"] = both

	neither := validSeasonalRule()
	neither.PricePerNight = nil
	cases["neither price nor percent"] = neither

	freePrice := validSeasonalRule()
	freePrice.PricePerNight = floatPtr(0)
	cases["non-positive price"] = freePrice

	raisingDiscount := validSeasonalRule()
	raisingDiscount.Kind = models.RuleDiscount
	raisingDiscount.PricePerNight = nil
	raisingDiscount.PercentChange = floatPtr(10)
	cases["discount that raises"] = raisingDiscount

	belowZero := validSeasonalRule()
	belowZero.Kind = models.RuleDiscount
	belowZero.PricePerNight = nil
	belowZero.PercentChange = floatPtr(-120)
	cases["percent below -100"] = belowZero

	badWeekday := validSeasonalRule()
	badWeekday.Kind = models.RuleWeekend
	badWeekday.PricePerNight = nil
	badWeekday.PercentChange = floatPtr(20)
	badWeekday.Weekday = intPtr(7)
	cases["weekday out of range"] = badWeekday

	for name, rule := range cases {
		err := f.svc.AddPricingRule(context.Background(), rule)
		_, ok := AsValidationError(err)
		assert.True(t, ok, name)
	}
	f.pr.AssertNotCalled(t, "Create")
}
