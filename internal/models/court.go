package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Court struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Slug        string             `json:"slug" bson:"slug"`
	ImageURL    string             `json:"image_url" bson:"image_url"`
	GalleryURLs []string           `json:"gallery_urls" bson:"gallery_urls"`
	HourlyRate  int64              `json:"hourly_rate" bson:"hourly_rate" validate:"min=0"`
	DailyRate   int64              `json:"daily_rate" bson:"daily_rate" validate:"min=0"`
	WeeklyRate  int64              `json:"weekly_rate" bson:"weekly_rate" validate:"min=0"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Rate returns the rate used for the given plan. Exactly one rate applies
// per booking.
func (c *Court) Rate(plan PlanType) int64 {
	switch plan {
	case PlanDaily:
		return c.DailyRate
	case PlanWeekly:
		return c.WeeklyRate
	default:
		return c.HourlyRate
	}
}
