package interfaces

import (
	"context"

	"courtside/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourtRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, court *models.Court) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Court, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// Lookup by URL slug, for court=<id-or-slug> deep links
	GetBySlug(ctx context.Context, slug string) (*models.Court, error)

	// Listing
	GetActive(ctx context.Context) ([]*models.Court, error)
	GetAll(ctx context.Context) ([]*models.Court, error)

	// Admin operations
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
}
