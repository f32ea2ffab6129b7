package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courtside/internal/models"
	"courtside/internal/repositories/interfaces"
	"courtside/internal/utils"
	"courtside/internal/validators"
	"courtside/pkg/logger"
	"courtside/pkg/websocket"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCourtUnavailable = errors.New("court is not available for booking")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

type BookingService struct {
	bookingRepo interfaces.BookingRepository
	courtRepo   interfaces.CourtRepository
	promoSvc    *PromoService
	notifier    Notifier
	wsHandler   *websocket.Handler
	logger      *logger.Logger
}

func NewBookingService(
	bookingRepo interfaces.BookingRepository,
	courtRepo interfaces.CourtRepository,
	promoSvc *PromoService,
	notifier Notifier,
	wsHandler *websocket.Handler,
	logger *logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		promoSvc:    promoSvc,
		notifier:    notifier,
		wsHandler:   wsHandler,
		logger:      logger,
	}
}

// Create turns a submission into a pending booking. Pricing is computed
// server-side from the court's stored rates, and any promo code is
// re-evaluated against the final base amount rather than trusted from the
// client. A promo that no longer qualifies is dropped, not an error: the
// booking proceeds at full price.
func (s *BookingService) Create(ctx context.Context, req *validators.BookingRequest) (*models.Booking, error) {
	now := time.Now()

	if errs := validators.ValidateBookingRequest(req, now); len(errs) > 0 {
		return nil, errs
	}

	courtID, err := primitive.ObjectIDFromHex(req.CourtID)
	if err != nil {
		return nil, interfaces.ErrCourtNotFound
	}

	court, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if !court.IsActive {
		return nil, ErrCourtUnavailable
	}

	plan := models.PlanType(req.Plan)

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}

	endDate := startDate
	if plan.IsMultiDay() && req.EndDate != "" {
		if parsed, err := utils.ParseDate(req.EndDate); err == nil && !parsed.Before(startDate) {
			endDate = parsed
		}
	}

	hours := 0
	if plan == models.PlanHourly {
		hours = ClampHours(req.Hours)
	}

	baseAmount := BasePrice(court, plan, startDate, endDate, hours)

	booking := &models.Booking{
		CourtID:       court.ID,
		CourtName:     court.Name,
		Plan:          plan,
		StartDate:     startDate,
		EndDate:       endDate,
		StartTime:     req.StartTime,
		Hours:         hours,
		BaseAmount:    baseAmount,
		TotalAmount:   baseAmount,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		EventType:     req.EventType,
		Notes:         req.Notes,
		Status:        models.BookingStatusPending,
	}

	if req.PromoCode != "" {
		result, err := s.promoSvc.Evaluate(ctx, req.PromoCode, baseAmount, now)
		if err == nil && result.Applied {
			booking.DiscountAmount = result.Discount
			booking.TotalAmount = result.Total
			booking.PromoCode = result.Promo.Code
			if result.Discount > 0 {
				promoID := result.Promo.ID
				booking.PromoID = &promoID
			}
		} else {
			s.logger.WithField("code", req.PromoCode).Info("Promo dropped at submission: " + result.Message)
		}
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.LogBookingEvent(booking.ID.Hex(), utils.EventBookingCreated, map[string]interface{}{
		"court":  booking.CourtName,
		"plan":   string(booking.Plan),
		"total":  booking.TotalAmount,
		"status": string(booking.Status),
	})

	if s.wsHandler != nil {
		s.wsHandler.SendBookingCreated(booking.ID.Hex(), feedPayload(booking))
	}
	if s.notifier != nil {
		s.notifier.BookingCreated(booking)
	}

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// List returns bookings for the admin review queue, newest first by default.
func (s *BookingService) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	return s.bookingRepo.List(ctx, params)
}

// UpdateStatus moves a booking between pending, confirmed and rejected. The
// redemption counter of an attached promo is bumped exactly on the transition
// into confirmed, so re-confirming after a re-open counts again only if the
// booking actually left the confirmed state.
func (s *BookingService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) (*models.Booking, error) {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusRejected:
	default:
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := booking.Status
	if previous == status {
		return booking, nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	booking.Status = status

	if status == models.BookingStatusConfirmed && booking.PromoID != nil {
		if err := s.promoSvc.promoRepo.IncrementRedemptions(ctx, *booking.PromoID); err != nil {
			s.logger.WithError(err).WithBookingID(id.Hex()).Error("Failed to record promo redemption")
		}
	}

	s.logger.LogBookingEvent(id.Hex(), eventForStatus(status), map[string]interface{}{
		"from": string(previous),
		"to":   string(status),
	})

	if s.wsHandler != nil {
		s.wsHandler.SendBookingUpdated(booking.ID.Hex(), feedPayload(booking))
	}

	return booking, nil
}

// feedPayload is what the admin feed shows per event; it mirrors the list
// row, not the full document.
func feedPayload(b *models.Booking) map[string]interface{} {
	return map[string]interface{}{
		"court_name":     b.CourtName,
		"plan":           string(b.Plan),
		"start_date":     utils.FormatDate(b.StartDate),
		"customer_name":  b.CustomerName,
		"customer_email": b.CustomerEmail,
		"total_amount":   b.TotalAmount,
		"status":         string(b.Status),
	}
}

func eventForStatus(status models.BookingStatus) string {
	switch status {
	case models.BookingStatusConfirmed:
		return utils.EventBookingConfirmed
	case models.BookingStatusRejected:
		return utils.EventBookingRejected
	default:
		return utils.EventBookingReopened
	}
}
