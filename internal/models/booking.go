package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlanType string
type BookingStatus string

const (
	PlanHourly PlanType = "hourly"
	PlanDaily  PlanType = "daily"
	PlanWeekly PlanType = "weekly"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
)

func (p PlanType) IsMultiDay() bool {
	return p == PlanDaily || p == PlanWeekly
}

type Booking struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	CourtID        primitive.ObjectID  `json:"court_id" bson:"court_id" validate:"required"`
	CourtName      string              `json:"court_name" bson:"court_name"`
	Plan           PlanType            `json:"plan" bson:"plan" validate:"required,oneof=hourly daily weekly"`
	StartDate      time.Time           `json:"start_date" bson:"start_date"`
	EndDate        time.Time           `json:"end_date" bson:"end_date"`
	StartTime      string              `json:"start_time" bson:"start_time"`
	Hours          int                 `json:"hours" bson:"hours"`
	BaseAmount     int64               `json:"base_amount" bson:"base_amount"`
	DiscountAmount int64               `json:"discount_amount" bson:"discount_amount"`
	TotalAmount    int64               `json:"total_amount" bson:"total_amount"`
	PromoID        *primitive.ObjectID `json:"promo_id" bson:"promo_id"`
	PromoCode      string              `json:"promo_code" bson:"promo_code"`
	CustomerName   string              `json:"customer_name" bson:"customer_name" validate:"required"`
	CustomerPhone  string              `json:"customer_phone" bson:"customer_phone" validate:"required"`
	CustomerEmail  string              `json:"customer_email" bson:"customer_email" validate:"required"`
	EventType      string              `json:"event_type" bson:"event_type"`
	Notes          string              `json:"notes" bson:"notes"`
	Status         BookingStatus       `json:"status" bson:"status"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}
