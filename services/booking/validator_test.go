package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stayhaven/models"
)

func testApartment() *models.Apartment {
	return &models.Apartment{
		ID:                "apt-1",
		Title:             "Seaside loft",
		Capacity:          4,
		BasePricePerNight: 100,
		Currency:          "EUR",
		IsActive:          true,
	}
}

func newValidator() (*ConflictValidator, *MockCalendarRepository, *MockBookingRepository) {
	cal := new(MockCalendarRepository)
	bk := new(MockBookingRepository)
	return &ConflictValidator{Calendar: cal, Bookings: bk}, cal, bk
}

func TestValidateRejectsInvalidRange(t *testing.T) {
	v, cal, bk := newValidator()

	rej, err := v.Validate(context.Background(), testApartment(), date(2026, time.July, 14), date(2026, time.July, 10), 2)
	assert.NoError(t, err)
	assert.Equal(t, RejectInvalidRange, rej.Code)

	// Equal dates are an empty stay, also invalid.
	rej, err = v.Validate(context.Background(), testApartment(), date(2026, time.July, 10), date(2026, time.July, 10), 2)
	assert.NoError(t, err)
	assert.Equal(t, RejectInvalidRange, rej.Code)

	cal.AssertNotCalled(t, "GetRange")
	bk.AssertNotCalled(t, "FindConfirmedOverlapping")
}

func TestValidateRejectsOverCapacity(t *testing.T) {
	v, cal, _ := newValidator()

	rej, err := v.Validate(context.Background(), testApartment(), date(2026, time.July, 10), date(2026, time.July, 14), 5)
	assert.NoError(t, err)
	assert.Equal(t, RejectOverCapacity, rej.Code)
	cal.AssertNotCalled(t, "GetRange")
}

func TestValidateAllowsExactCapacity(t *testing.T) {
	v, cal, bk := newValidator()
	cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.CalendarDay{}, nil)
	bk.On("FindConfirmedOverlapping", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.Booking{}, nil)

	rej, err := v.Validate(context.Background(), testApartment(), date(2026, time.July, 10), date(2026, time.July, 14), 4)
	assert.NoError(t, err)
	assert.Nil(t, rej)
}

func TestValidateStayLengthUsesStrictestBounds(t *testing.T) {
	v, cal, bk := newValidator()
	days := []models.CalendarDay{
		{ApartmentID: "apt-1", Date: date(2026, time.July, 10), Available: true, MinStay: intPtr(2)},
		{ApartmentID: "apt-1", Date: date(2026, time.July, 11), Available: true, MinStay: intPtr(5), MaxStay: intPtr(10)},
		{ApartmentID: "apt-1", Date: date(2026, time.July, 12), Available: true, MaxStay: intPtr(7)},
	}
	cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return(days, nil)
	bk.On("FindConfirmedOverlapping", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.Booking{}, nil)

	// 4 nights < strictest minimum of 5.
	rej, err := v.Validate(context.Background(), testApartment(), date(2026, time.July, 10), date(2026, time.July, 14), 2)
	assert.NoError(t, err)
	assert.Equal(t, RejectStayLength, rej.Code)

	// 5 nights satisfies min 5, max 7.
	rej, err = v.Validate(context.Background(), testApartment(), date(2026, time.July, 10), date(2026, time.July, 15), 2)
	assert.NoError(t, err)
	assert.Nil(t, rej)
}

func TestValidateStayLengthRejectsAboveMaximum(t *testing.T) {
	v, cal, _ := newValidator()
	days := []models.CalendarDay{
		{ApartmentID: "apt-1", Date: date(2026, time.July, 10), Available: true, MaxStay: intPtr(3)},
	}
	cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return(days, nil)

	rej, err := v.Validate(context.Background(), testApartment(), date(2026, time.July, 10), date(2026, time.July, 15), 2)
	assert.NoError(t, err)
	assert.Equal(t, RejectStayLength, rej.Code)
}

func TestValidateRejectsBlockedDates(t *testing.T) {
	v, cal, _ := newValidator()
	days := []models.CalendarDay{
		{ApartmentID: "apt-1", Date: date(2026, time.July, 12), Available: false, BlockType: models.BlockManual},
	}
	cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return(days, nil)

	rej, err := v.Validate(context.Background(), testApartment(), date(2026, time.July, 10), date(2026, time.July, 14), 2)
	assert.NoError(t, err)
	assert.Equal(t, RejectDatesUnavailable, rej.Code)
}

func TestValidateRejectsConfirmedOverlap(t *testing.T) {
	v, cal, bk := newValidator()
	cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.CalendarDay{}, nil)
	bk.On("FindConfirmedOverlapping", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.Booking{
		{ID: "b-1", Status: models.StatusConfirmed},
	}, nil)

	rej, err := v.Validate(context.Background(), testApartment(), date(2026, time.July, 10), date(2026, time.July, 14), 2)
	assert.NoError(t, err)
	assert.Equal(t, RejectDatesUnavailable, rej.Code)
}

func TestValidateOpenWorldDefault(t *testing.T) {
	// No calendar records at all means every date is available.
	v, cal, bk := newValidator()
	cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.CalendarDay{}, nil)
	bk.On("FindConfirmedOverlapping", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.Booking{}, nil)

	rej, err := v.Validate(context.Background(), testApartment(), date(2026, time.July, 10), date(2026, time.July, 14), 2)
	assert.NoError(t, err)
	assert.Nil(t, rej)
}

func TestValidatePropagatesStorageErrors(t *testing.T) {
	v, cal, _ := newValidator()
	boom := errors.New("connection reset")
	cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.CalendarDay{}, boom)

	rej, err := v.Validate(context.Background(), testApartment(), date(2026, time.July, 10), date(2026, time.July, 14), 2)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, rej)
}

func TestRevalidateSkipsCapacityAndStayLength(t *testing.T) {
	// Revalidation at confirm time only re-checks availability; capacity and
	// stay-length were settled when the request was admitted.
	v, cal, bk := newValidator()
	days := []models.CalendarDay{
		{ApartmentID: "apt-1", Date: date(2026, time.July, 10), Available: true, MinStay: intPtr(30)},
	}
	cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return(days, nil)
	bk.On("FindConfirmedOverlapping", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return([]models.Booking{}, nil)

	rej, err := v.Revalidate(context.Background(), "apt-1", date(2026, time.July, 10), date(2026, time.July, 12))
	assert.NoError(t, err)
	assert.Nil(t, rej)
}

func TestRevalidateRejectsNewBlock(t *testing.T) {
	v, cal, _ := newValidator()
	days := []models.CalendarDay{
		{ApartmentID: "apt-1", Date: date(2026, time.July, 11), Available: false, BlockType: models.BlockBookingHold, HoldBookingID: "other"},
	}
	cal.On("GetRange", mock.Anything, "apt-1", mock.Anything, mock.Anything).Return(days, nil)

	rej, err := v.Revalidate(context.Background(), "apt-1", date(2026, time.July, 10), date(2026, time.July, 14))
	assert.NoError(t, err)
	assert.Equal(t, RejectDatesUnavailable, rej.Code)
}
