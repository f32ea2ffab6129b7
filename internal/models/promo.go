package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PromoType string

const (
	PromoTypePercentage PromoType = "percentage"
	PromoTypeFixed      PromoType = "fixed"
)

type Promo struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code" validate:"required"`
	Type           PromoType          `json:"type" bson:"type" validate:"required,oneof=percentage fixed"`
	Value          float64            `json:"value" bson:"value" validate:"min=0"`
	StartsAt       *time.Time         `json:"starts_at" bson:"starts_at"`
	EndsAt         *time.Time         `json:"ends_at" bson:"ends_at"`
	MaxRedemptions int                `json:"max_redemptions" bson:"max_redemptions"`
	RedeemedCount  int                `json:"redeemed_count" bson:"redeemed_count"`
	MinAmount      int64              `json:"min_amount" bson:"min_amount"`
	IsActive       bool               `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}
