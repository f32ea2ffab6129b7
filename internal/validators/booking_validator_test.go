package validators

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validRequest() *BookingRequest {
	return &BookingRequest{
		CourtID:       primitive.NewObjectID().Hex(),
		Plan:          "hourly",
		StartDate:     "2026-09-20",
		StartTime:     "10:00",
		Hours:         2,
		CustomerName:  "Dewi Lestari",
		CustomerPhone: "081234567890",
		CustomerEmail: "dewi@example.com",
	}
}

func fieldError(t *testing.T, errs ValidationErrors, field string) ValidationError {
	t.Helper()
	for _, e := range errs {
		if e.Field == field {
			return e
		}
	}
	t.Fatalf("no error for field %q in %v", field, errs)
	return ValidationError{}
}

func TestValidateBookingRequestAccepts(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)

	if errs := ValidateBookingRequest(validRequest(), now); len(errs) > 0 {
		t.Fatalf("expected valid request, got %v", errs)
	}
}

func TestValidateBookingRequestMissingFields(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)

	req := validRequest()
	req.CustomerName = ""
	req.CustomerEmail = ""

	errs := ValidateBookingRequest(req, now)
	if len(errs) == 0 {
		t.Fatal("expected validation errors")
	}
	fieldError(t, errs, "customername")
	fieldError(t, errs, "customeremail")
}

func TestValidateBookingRequestContactFieldsPresenceOnly(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)

	// Contact fields only need to be present; a front-desk note or a local
	// phone format is not rejected.
	req := validRequest()
	req.CustomerEmail = "front-desk"
	req.CustomerPhone = "ext. 204"

	if errs := ValidateBookingRequest(req, now); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateBookingRequestNegativeHoursAccepted(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)

	// Out-of-range hour counts are corrected by the pricing clamp, never
	// rejected at validation.
	req := validRequest()
	req.Hours = -3

	if errs := ValidateBookingRequest(req, now); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateBookingRequestPastDate(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)

	req := validRequest()
	req.StartDate = "2026-09-14"

	errs := ValidateBookingRequest(req, now)
	e := fieldError(t, errs, "start_date")
	if e.Tag != "not_past" {
		t.Errorf("Tag = %q, want not_past", e.Tag)
	}
}

func TestValidateBookingRequestSameDayTimes(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name      string
		startTime string
		wantErr   bool
	}{
		{"earlier than now", "09:00", true},
		{"exactly now", "14:30", true},
		{"later than now", "14:31", false},
		{"evening slot", "19:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartDate = "2026-09-15"
			req.StartTime = tt.startTime

			errs := ValidateBookingRequest(req, now)
			if tt.wantErr && len(errs) == 0 {
				t.Error("expected a start_time error")
			}
			if !tt.wantErr && len(errs) > 0 {
				t.Errorf("unexpected errors: %v", errs)
			}
		})
	}
}

func TestValidateBookingRequestSameDayRequiresTime(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)

	req := validRequest()
	req.StartDate = "2026-09-15"
	req.StartTime = ""

	errs := ValidateBookingRequest(req, now)
	fieldError(t, errs, "start_time")
}

func TestValidateBookingRequestFutureDateSkipsTimeCheck(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)

	// A morning slot on a future date is fine even though it is earlier
	// than the current wall-clock time.
	req := validRequest()
	req.StartDate = "2026-09-16"
	req.StartTime = "08:00"

	if errs := ValidateBookingRequest(req, now); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateBookingRequestMultiDayPastEndDate(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)

	req := validRequest()
	req.Plan = "daily"
	req.StartTime = ""
	req.StartDate = "2026-09-20"
	req.EndDate = "2026-09-10"

	errs := ValidateBookingRequest(req, now)
	e := fieldError(t, errs, "end_date")
	if e.Tag != "not_past" {
		t.Errorf("Tag = %q, want not_past", e.Tag)
	}
}
