package services

import (
	"context"

	"courtside/internal/mailer"
	"courtside/internal/models"
	"courtside/internal/utils"
	"courtside/pkg/logger"
)

// Notifier tells the admin about new bookings. Delivery is best-effort with
// no retry; failures never reach the customer.
type Notifier interface {
	BookingCreated(booking *models.Booking)
}

type NotificationService struct {
	mailer      mailer.Mailer
	adminEmail  string
	fromAddress string
	logger      *logger.Logger
}

func NewNotificationService(m mailer.Mailer, adminEmail, fromAddress string, logger *logger.Logger) *NotificationService {
	return &NotificationService{
		mailer:      m,
		adminEmail:  adminEmail,
		fromAddress: fromAddress,
		logger:      logger,
	}
}

func (s *NotificationService) BookingCreated(booking *models.Booking) {
	if s.adminEmail == "" {
		s.logger.Warn("Admin notification address not configured, skipping booking email")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), utils.MailRequestTimeout)
		defer cancel()

		msg := mailer.BuildBookingMessage(s.fromAddress, s.adminEmail, mailer.SummaryFromBooking(booking))
		if err := s.mailer.Send(ctx, msg); err != nil {
			s.logger.WithError(err).WithBookingID(booking.ID.Hex()).Error("Failed to send booking notification")
		}
	}()
}
