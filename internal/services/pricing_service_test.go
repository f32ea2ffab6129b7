package services

import (
	"testing"
	"time"

	"courtside/internal/models"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClampHours(t *testing.T) {
	tests := []struct {
		name  string
		hours int
		want  int
	}{
		{"below minimum", 0, 1},
		{"negative", -3, 1},
		{"at minimum", 1, 1},
		{"in range", 5, 5},
		{"at maximum", 12, 12},
		{"above maximum", 20, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampHours(tt.hours); got != tt.want {
				t.Errorf("ClampHours(%d) = %d, want %d", tt.hours, got, tt.want)
			}
		})
	}
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2026-09-01", "2026-09-01", 1},
		{"two days", "2026-09-01", "2026-09-02", 2},
		{"three days", "2026-01-01", "2026-01-03", 3},
		{"inverted range floors to one", "2026-09-05", "2026-09-01", 1},
		{"full week", "2026-09-01", "2026-09-07", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InclusiveDays(date(tt.start), date(tt.end)); got != tt.want {
				t.Errorf("InclusiveDays(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestWeeksForDays(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{1, 1},
		{7, 1},
		{8, 2},
		{14, 2},
		{15, 3},
		{0, 1},
	}

	for _, tt := range tests {
		if got := WeeksForDays(tt.days); got != tt.want {
			t.Errorf("WeeksForDays(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestBasePrice(t *testing.T) {
	court := &models.Court{
		HourlyRate: 30000,
		DailyRate:  140000,
		WeeklyRate: 800000,
	}

	tests := []struct {
		name  string
		plan  models.PlanType
		start string
		end   string
		hours int
		want  int64
	}{
		{"hourly two hours", models.PlanHourly, "2026-09-01", "2026-09-01", 2, 60000},
		{"hourly clamps high", models.PlanHourly, "2026-09-01", "2026-09-01", 99, 12 * 30000},
		{"hourly clamps zero", models.PlanHourly, "2026-09-01", "2026-09-01", 0, 30000},
		{"daily three days", models.PlanDaily, "2026-01-01", "2026-01-03", 0, 420000},
		{"daily same day", models.PlanDaily, "2026-01-01", "2026-01-01", 0, 140000},
		{"weekly eight days", models.PlanWeekly, "2026-09-01", "2026-09-08", 0, 1600000},
		{"weekly one day", models.PlanWeekly, "2026-09-01", "2026-09-01", 0, 800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BasePrice(court, tt.plan, date(tt.start), date(tt.end), tt.hours)
			if got != tt.want {
				t.Errorf("BasePrice(%s) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestBasePriceNilCourt(t *testing.T) {
	if got := BasePrice(nil, models.PlanHourly, time.Now(), time.Now(), 2); got != 0 {
		t.Errorf("BasePrice(nil court) = %d, want 0", got)
	}
}
