package validators

import (
	"time"

	"courtside/internal/models"
	"courtside/internal/utils"
)

// BookingRequest is the public submission payload. Contact fields are
// presence-only; out-of-range hour counts are clamped at pricing time, not
// rejected here.
type BookingRequest struct {
	CourtID       string `json:"court_id" validate:"required,object_id"`
	Plan          string `json:"plan" validate:"required,oneof=hourly daily weekly"`
	StartDate     string `json:"start_date" validate:"required,booking_date"`
	EndDate       string `json:"end_date" validate:"omitempty,booking_date"`
	StartTime     string `json:"start_time" validate:"omitempty,clock_time"`
	Hours         int    `json:"hours"`
	PromoCode     string `json:"promo_code" validate:"omitempty,max=32"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required"`
	EventType     string `json:"event_type" validate:"omitempty,max=100"`
	Notes         string `json:"notes" validate:"omitempty,max=1000"`
}

// ValidateBookingRequest runs structural validation plus the temporal rules:
// no past dates, and same-day hourly bookings must start after the current
// wall-clock time (minute resolution). Future dates carry no time check.
func ValidateBookingRequest(req *BookingRequest, now time.Time) ValidationErrors {
	errors := ValidateStruct(req)
	if len(errors) > 0 {
		return errors
	}

	today := utils.StartOfDay(now)

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return append(errors, ValidationError{
			Field:   "start_date",
			Tag:     "booking_date",
			Message: "Invalid date, expected YYYY-MM-DD",
		})
	}

	if startDate.Before(today) {
		errors = append(errors, ValidationError{
			Field:   "start_date",
			Tag:     "not_past",
			Message: "Start date cannot be in the past",
		})
	}

	plan := models.PlanType(req.Plan)

	if plan.IsMultiDay() && req.EndDate != "" {
		endDate, err := utils.ParseDate(req.EndDate)
		if err == nil && endDate.Before(today) {
			errors = append(errors, ValidationError{
				Field:   "end_date",
				Tag:     "not_past",
				Message: "End date cannot be in the past",
			})
		}
	}

	if plan == models.PlanHourly && startDate.Equal(today) {
		if req.StartTime == "" {
			errors = append(errors, ValidationError{
				Field:   "start_time",
				Tag:     "required",
				Message: "Start time is required for same-day bookings",
			})
		} else if hour, minute, err := utils.ParseClock(req.StartTime); err == nil {
			if hour*60+minute <= now.Hour()*60+now.Minute() {
				errors = append(errors, ValidationError{
					Field:   "start_time",
					Tag:     "future_time",
					Message: "Start time must be later than the current time",
				})
			}
		}
	}

	return errors
}
