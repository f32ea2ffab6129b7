package mongodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courtside/internal/models"
	"courtside/internal/repositories/interfaces"
	"courtside/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type promoRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewPromoRepository(db *mongo.Database, cache CacheService) interfaces.PromoRepository {
	return &promoRepository{
		collection: db.Collection("promos"),
		cache:      cache,
	}
}

func (r *promoRepository) Create(ctx context.Context, promo *models.Promo) error {
	promo.ID = primitive.NewObjectID()
	promo.CreatedAt = time.Now()
	promo.UpdatedAt = time.Now()

	// Codes are stored upper-case; lookups normalize the same way.
	promo.Code = strings.ToUpper(strings.TrimSpace(promo.Code))

	_, err := r.collection.InsertOne(ctx, promo)
	if err != nil {
		return fmt.Errorf("failed to create promo: %w", err)
	}

	return nil
}

func (r *promoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Promo, error) {
	var promo models.Promo
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&promo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrPromoNotFound
		}
		return nil, fmt.Errorf("failed to get promo: %w", err)
	}

	return &promo, nil
}

func (r *promoRepository) GetAll(ctx context.Context) ([]*models.Promo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list promos: %w", err)
	}
	defer cursor.Close(ctx)

	var promos []*models.Promo
	if err := cursor.All(ctx, &promos); err != nil {
		return nil, fmt.Errorf("failed to decode promos: %w", err)
	}

	return promos, nil
}

func (r *promoRepository) GetByCode(ctx context.Context, code string) (*models.Promo, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	cacheKey := utils.CachePromoPrefix + code
	if r.cache != nil {
		var promo models.Promo
		if err := r.cache.Get(ctx, cacheKey, &promo); err == nil {
			return &promo, nil
		}
	}

	var promo models.Promo
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&promo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrPromoNotFound
		}
		return nil, fmt.Errorf("failed to get promo by code: %w", err)
	}

	// Short TTL: redemption counts move while a promo is being handed out.
	if r.cache != nil && promo.IsActive {
		r.cache.Set(ctx, cacheKey, promo, utils.PromoCacheTTL)
	}

	return &promo, nil
}

func (r *promoRepository) IncrementRedemptions(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"redeemed_count": 1},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to increment promo redemptions: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrPromoNotFound
	}

	r.invalidatePromoCache(ctx, id)

	return nil
}

func (r *promoRepository) invalidatePromoCache(ctx context.Context, id primitive.ObjectID) {
	if r.cache == nil {
		return
	}

	promo, err := r.GetByID(ctx, id)
	if err != nil {
		return
	}

	r.cache.Delete(ctx, utils.CachePromoPrefix+promo.Code)
}
