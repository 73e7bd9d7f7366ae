package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	calendarRepo "stayhaven/database/repository/calendar"
	"stayhaven/models"
)

type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) GetByID(id string) (*models.Apartment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) GetBySlug(slug string) (*models.Apartment, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) GetAllActive() ([]models.Apartment, error) {
	args := m.Called()
	return args.Get(0).([]models.Apartment), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByGuest(ctx context.Context, guestID string) ([]models.Booking, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindConfirmedOverlapping(ctx context.Context, apartmentID string, checkIn, checkOut time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, apartmentID, checkIn, checkOut)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus) (*models.Booking, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, id string, to models.PaymentStatus) (*models.Booking, error) {
	args := m.Called(ctx, id, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListConfirmedEndingBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ConfirmWithHold(ctx context.Context, booking *models.Booking, cal calendarRepo.CalendarRepository) error {
	args := m.Called(ctx, booking, cal)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithRelease(ctx context.Context, booking *models.Booking, to models.BookingStatus, cal calendarRepo.CalendarRepository) (*models.Booking, error) {
	args := m.Called(ctx, booking, to, cal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockCalendarRepository struct {
	mock.Mock
}

func (m *MockCalendarRepository) GetRange(ctx context.Context, apartmentID string, from, to time.Time) ([]models.CalendarDay, error) {
	args := m.Called(ctx, apartmentID, from, to)
	return args.Get(0).([]models.CalendarDay), args.Error(1)
}

func (m *MockCalendarRepository) SetRange(ctx context.Context, apartmentID string, from, to time.Time, available bool, minStay, maxStay *int, note string) error {
	args := m.Called(ctx, apartmentID, from, to, available, minStay, maxStay, note)
	return args.Error(0)
}

func (m *MockCalendarRepository) DeleteManualRange(ctx context.Context, apartmentID string, from, to time.Time) error {
	args := m.Called(ctx, apartmentID, from, to)
	return args.Error(0)
}

func (m *MockCalendarRepository) CommitHold(ctx context.Context, apartmentID string, from, to time.Time, bookingID string) error {
	args := m.Called(ctx, apartmentID, from, to, bookingID)
	return args.Error(0)
}

func (m *MockCalendarRepository) ReleaseHold(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type MockPricingRuleRepository struct {
	mock.Mock
}

func (m *MockPricingRuleRepository) Create(ctx context.Context, rule *models.PricingRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockPricingRuleRepository) Delete(ctx context.Context, apartmentID, ruleID string) error {
	args := m.Called(ctx, apartmentID, ruleID)
	return args.Error(0)
}

func (m *MockPricingRuleRepository) ListByApartment(ctx context.Context, apartmentID string) ([]models.PricingRule, error) {
	args := m.Called(ctx, apartmentID)
	return args.Get(0).([]models.PricingRule), args.Error(1)
}

func (m *MockPricingRuleRepository) ListForRange(ctx context.Context, apartmentID string, from, to time.Time) ([]models.PricingRule, error) {
	args := m.Called(ctx, apartmentID, from, to)
	return args.Get(0).([]models.PricingRule), args.Error(1)
}
