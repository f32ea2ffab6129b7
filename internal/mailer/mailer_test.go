package mailer

import (
	"strings"
	"testing"
	"time"

	"courtside/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateLabel(t *testing.T) {
	tests := []struct {
		name      string
		plan      models.PlanType
		start     string
		end       string
		startTime string
		want      string
	}{
		{"hourly with time", models.PlanHourly, "2026-09-20", "2026-09-20", "10:00", "2026-09-20 at 10:00"},
		{"hourly without time", models.PlanHourly, "2026-09-20", "2026-09-20", "", "2026-09-20"},
		{"daily range", models.PlanDaily, "2026-09-20", "2026-09-22", "", "2026-09-20 to 2026-09-22"},
		{"daily single day", models.PlanDaily, "2026-09-20", "2026-09-20", "", "2026-09-20"},
		{"weekly range", models.PlanWeekly, "2026-09-01", "2026-09-14", "", "2026-09-01 to 2026-09-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateLabel(tt.plan, date(tt.start), date(tt.end), tt.startTime)
			if got != tt.want {
				t.Errorf("DateLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateLabelZeroEnd(t *testing.T) {
	got := DateLabel(models.PlanDaily, date("2026-09-20"), time.Time{}, "")
	if got != "2026-09-20" {
		t.Errorf("DateLabel = %q, want start date only", got)
	}
}

func TestSummaryFromBookingFallsBackToCourtID(t *testing.T) {
	courtID := primitive.NewObjectID()
	b := &models.Booking{
		CourtID:   courtID,
		Plan:      models.PlanHourly,
		StartDate: date("2026-09-20"),
	}

	summary := SummaryFromBooking(b)
	if summary.CourtLabel != courtID.Hex() {
		t.Errorf("CourtLabel = %q, want court id fallback", summary.CourtLabel)
	}
}

func TestBuildBookingMessage(t *testing.T) {
	summary := &BookingSummary{
		CourtLabel:    "Center Court",
		Plan:          "hourly",
		DateLabel:     "2026-09-20 at 10:00",
		TotalLabel:    "Rp60.000",
		PromoCode:     "SUMMER10",
		CustomerName:  "Dewi Lestari",
		CustomerEmail: "dewi@example.com",
		CustomerPhone: "081234567890",
		EventType:     "Friendly match",
	}

	msg := BuildBookingMessage("Courtside <noreply@example.com>", "admin@example.com", summary)

	if msg.To != "admin@example.com" {
		t.Errorf("To = %q", msg.To)
	}
	if want := "New booking request: Center Court (2026-09-20 at 10:00)"; msg.Subject != want {
		t.Errorf("Subject = %q, want %q", msg.Subject, want)
	}
	for _, fragment := range []string{"Rp60.000", "Dewi Lestari", "SUMMER10", "Friendly match", "081234567890"} {
		if !strings.Contains(msg.Text, fragment) {
			t.Errorf("body missing %q:\n%s", fragment, msg.Text)
		}
	}
	if strings.Contains(msg.Text, "Notes:") {
		t.Error("empty notes should not render a Notes line")
	}
}
