package services

import (
	"math"
	"time"

	"courtside/internal/models"
	"courtside/internal/utils"
)

// ClampHours forces an hourly booking length into the bookable range.
// Out-of-range values are corrected silently, not rejected.
func ClampHours(hours int) int {
	if hours < utils.MinBookingHours {
		return utils.MinBookingHours
	}
	if hours > utils.MaxBookingHours {
		return utils.MaxBookingHours
	}
	return hours
}

// InclusiveDays counts calendar days between two dates, both ends included.
// Same-day ranges count as one day; inverted ranges floor to one day.
func InclusiveDays(start, end time.Time) int {
	start = utils.StartOfDay(start)
	end = utils.StartOfDay(end)

	days := int(math.Floor(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// WeeksForDays converts an inclusive day count into billed weeks, with a
// floor of one week.
func WeeksForDays(days int) int {
	weeks := (days + utils.DaysPerWeek - 1) / utils.DaysPerWeek
	if weeks < 1 {
		return 1
	}
	return weeks
}

// BasePrice derives the pre-discount amount for a booking. A nil court
// prices to zero.
func BasePrice(court *models.Court, plan models.PlanType, start, end time.Time, hours int) int64 {
	if court == nil {
		return 0
	}

	switch plan {
	case models.PlanDaily:
		return court.DailyRate * int64(InclusiveDays(start, end))
	case models.PlanWeekly:
		return court.WeeklyRate * int64(WeeksForDays(InclusiveDays(start, end)))
	default:
		return court.HourlyRate * int64(ClampHours(hours))
	}
}
