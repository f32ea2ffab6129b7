package mongodb

import (
	"context"
	"fmt"
	"time"

	"courtside/internal/models"
	"courtside/internal/repositories/interfaces"
	"courtside/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type courtRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewCourtRepository(db *mongo.Database, cache CacheService) interfaces.CourtRepository {
	return &courtRepository{
		collection: db.Collection("courts"),
		cache:      cache,
	}
}

func (r *courtRepository) Create(ctx context.Context, court *models.Court) error {
	court.ID = primitive.NewObjectID()
	court.CreatedAt = time.Now()
	court.UpdatedAt = time.Now()

	if court.Slug == "" {
		court.Slug = utils.Slugify(court.Name)
	}

	_, err := r.collection.InsertOne(ctx, court)
	if err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}

	r.invalidateListCache(ctx)

	return nil
}

func (r *courtRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Court, error) {
	cacheKey := utils.CacheCourtPrefix + id.Hex()
	if r.cache != nil {
		var court models.Court
		if err := r.cache.Get(ctx, cacheKey, &court); err == nil {
			return &court, nil
		}
	}

	var court models.Court
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&court)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to get court: %w", err)
	}

	r.cacheCourt(ctx, &court)

	return &court, nil
}

func (r *courtRepository) GetBySlug(ctx context.Context, slug string) (*models.Court, error) {
	var court models.Court
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&court)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to get court by slug: %w", err)
	}

	r.cacheCourt(ctx, &court)

	return &court, nil
}

// GetActive returns bookable courts ordered by display name.
func (r *courtRepository) GetActive(ctx context.Context) ([]*models.Court, error) {
	if r.cache != nil {
		var courts []*models.Court
		if err := r.cache.Get(ctx, utils.CacheActiveCourts, &courts); err == nil {
			return courts, nil
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list active courts: %w", err)
	}
	defer cursor.Close(ctx)

	var courts []*models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, fmt.Errorf("failed to decode courts: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, utils.CacheActiveCourts, courts, utils.CourtCacheTTL)
	}

	return courts, nil
}

func (r *courtRepository) GetAll(ctx context.Context) ([]*models.Court, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list courts: %w", err)
	}
	defer cursor.Close(ctx)

	var courts []*models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, fmt.Errorf("failed to decode courts: %w", err)
	}

	return courts, nil
}

func (r *courtRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update court: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrCourtNotFound
	}

	r.invalidateCourtCache(ctx, id.Hex())

	return nil
}

func (r *courtRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": active})
}

func (r *courtRepository) cacheCourt(ctx context.Context, court *models.Court) {
	if r.cache != nil {
		r.cache.Set(ctx, utils.CacheCourtPrefix+court.ID.Hex(), court, utils.CourtCacheTTL)
	}
}

func (r *courtRepository) invalidateCourtCache(ctx context.Context, id string) {
	if r.cache != nil {
		r.cache.Delete(ctx, utils.CacheCourtPrefix+id, utils.CacheActiveCourts)
	}
}

func (r *courtRepository) invalidateListCache(ctx context.Context) {
	if r.cache != nil {
		r.cache.Delete(ctx, utils.CacheActiveCourts)
	}
}
