package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"courtside/internal/models"
	"courtside/internal/utils"
)

// ErrMissingCredentials is returned when a provider is asked to send without
// the credentials it needs.
var ErrMissingCredentials = errors.New("mail service is not configured")

type Message struct {
	From    string
	To      string
	Subject string
	Text    string
}

// Mailer relays a message through an upstream mail API. Implementations do
// not retry; a delivery failure is surfaced to the caller once.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// BookingSummary carries the booking fields the admin notification shows.
type BookingSummary struct {
	CourtLabel    string
	Plan          string
	DateLabel     string
	TotalLabel    string
	PromoCode     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	EventType     string
	Notes         string
}

// SummaryFromBooking flattens a booking into the labels used in the email.
func SummaryFromBooking(b *models.Booking) *BookingSummary {
	courtLabel := b.CourtName
	if courtLabel == "" && !b.CourtID.IsZero() {
		courtLabel = b.CourtID.Hex()
	}

	return &BookingSummary{
		CourtLabel:    courtLabel,
		Plan:          string(b.Plan),
		DateLabel:     DateLabel(b.Plan, b.StartDate, b.EndDate, b.StartTime),
		TotalLabel:    utils.FormatIDR(b.TotalAmount),
		PromoCode:     b.PromoCode,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		EventType:     b.EventType,
		Notes:         b.Notes,
	}
}

// DateLabel renders the booked period: time-qualified for hourly bookings,
// a date range for multi-day plans.
func DateLabel(plan models.PlanType, start, end time.Time, startTime string) string {
	startLabel := utils.FormatDate(start)

	if plan == models.PlanHourly {
		if startTime != "" {
			return fmt.Sprintf("%s at %s", startLabel, startTime)
		}
		return startLabel
	}

	if end.IsZero() || utils.SameDate(start, end) {
		return startLabel
	}

	return fmt.Sprintf("%s to %s", startLabel, utils.FormatDate(end))
}

// BuildBookingMessage composes the admin notification for a new booking.
func BuildBookingMessage(from, to string, s *BookingSummary) *Message {
	subject := fmt.Sprintf("New booking request: %s (%s)", s.CourtLabel, s.DateLabel)

	var b strings.Builder
	fmt.Fprintf(&b, "A new booking request has arrived.\n\n")
	fmt.Fprintf(&b, "Court:    %s\n", s.CourtLabel)
	fmt.Fprintf(&b, "Plan:     %s\n", s.Plan)
	fmt.Fprintf(&b, "When:     %s\n", s.DateLabel)
	fmt.Fprintf(&b, "Total:    %s\n", s.TotalLabel)
	if s.PromoCode != "" {
		fmt.Fprintf(&b, "Promo:    %s\n", s.PromoCode)
	}
	fmt.Fprintf(&b, "Customer: %s\n", s.CustomerName)
	fmt.Fprintf(&b, "Phone:    %s\n", s.CustomerPhone)
	fmt.Fprintf(&b, "Email:    %s\n", s.CustomerEmail)
	if s.EventType != "" {
		fmt.Fprintf(&b, "Event:    %s\n", s.EventType)
	}
	if s.Notes != "" {
		fmt.Fprintf(&b, "Notes:    %s\n", s.Notes)
	}

	return &Message{
		From:    from,
		To:      to,
		Subject: subject,
		Text:    b.String(),
	}
}
