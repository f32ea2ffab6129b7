package interfaces

import (
	"context"

	"courtside/internal/models"
	"courtside/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)

	// Admin listing, newest first
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error)

	// Status operations
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error
}
