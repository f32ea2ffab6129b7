package interfaces

import (
	"context"

	"courtside/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PromoRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, promo *models.Promo) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Promo, error)
	GetAll(ctx context.Context) ([]*models.Promo, error)

	// Code operations
	GetByCode(ctx context.Context, code string) (*models.Promo, error)

	// Usage tracking
	IncrementRedemptions(ctx context.Context, id primitive.ObjectID) error
}
