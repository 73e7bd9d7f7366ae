package notification

import (
	"context"

	"go.uber.org/zap"

	"stayhaven/models"
	"stayhaven/utils"
)

// DefaultNotificationService records booking events in the log. The actual
// dispatch channel (owner email, guest push) is operated by the surrounding
// platform; it consumes these events through this interface.
type DefaultNotificationService struct{}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{}
}

func (s *DefaultNotificationService) NotifyBookingEvent(ctx context.Context, event Event, booking *models.Booking) error {
	logger := utils.GetLogger()
	logger.Info("booking event",
		zap.String("event", string(event)),
		zap.String("bookingID", booking.ID),
		zap.String("apartmentID", booking.ApartmentID),
		zap.String("guestID", booking.GuestID),
		zap.String("status", string(booking.Status)),
	)
	return nil
}
