package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"courtside/internal/models"
	"courtside/internal/repositories/interfaces"
	"courtside/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePromoRepo struct {
	promos      map[string]*models.Promo
	err         error
	incremented []primitive.ObjectID
}

func (f *fakePromoRepo) Create(ctx context.Context, promo *models.Promo) error { return nil }

func (f *fakePromoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Promo, error) {
	return nil, interfaces.ErrPromoNotFound
}

func (f *fakePromoRepo) GetAll(ctx context.Context) ([]*models.Promo, error) { return nil, nil }

func (f *fakePromoRepo) GetByCode(ctx context.Context, code string) (*models.Promo, error) {
	if f.err != nil {
		return nil, f.err
	}
	promo, ok := f.promos[code]
	if !ok {
		return nil, interfaces.ErrPromoNotFound
	}
	return promo, nil
}

func (f *fakePromoRepo) IncrementRedemptions(ctx context.Context, id primitive.ObjectID) error {
	f.incremented = append(f.incremented, id)
	return nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return log
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestEvaluateEmptyCodeClears(t *testing.T) {
	svc := NewPromoService(&fakePromoRepo{}, testLogger(t))

	result, err := svc.Evaluate(context.Background(), "   ", 60000, time.Now())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !result.Cleared {
		t.Error("expected empty code to clear")
	}
	if result.Applied {
		t.Error("expected empty code not to apply")
	}
	if result.Total != 60000 {
		t.Errorf("Total = %d, want 60000", result.Total)
	}
}

func TestEvaluatePercentage(t *testing.T) {
	repo := &fakePromoRepo{promos: map[string]*models.Promo{
		"SUMMER10": {Code: "SUMMER10", Type: models.PromoTypePercentage, Value: 10, IsActive: true},
	}}
	svc := NewPromoService(repo, testLogger(t))

	result, err := svc.Evaluate(context.Background(), " summer10 ", 60000, time.Now())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !result.Applied {
		t.Fatalf("expected promo to apply, got %q", result.Message)
	}
	if result.Discount != 6000 {
		t.Errorf("Discount = %d, want 6000", result.Discount)
	}
	if result.Total != 54000 {
		t.Errorf("Total = %d, want 54000", result.Total)
	}
}

func TestEvaluateRejections(t *testing.T) {
	now := date("2026-09-15")
	promoID := primitive.NewObjectID()

	tests := []struct {
		name    string
		promo   *models.Promo
		base    int64
		message string
	}{
		{
			name:    "inactive",
			promo:   &models.Promo{ID: promoID, Code: "X", Type: models.PromoTypeFixed, Value: 5000, IsActive: false},
			base:    60000,
			message: PromoStatusInvalid,
		},
		{
			name:    "not yet active",
			promo:   &models.Promo{ID: promoID, Code: "X", Type: models.PromoTypeFixed, Value: 5000, IsActive: true, StartsAt: ptrTime(date("2026-10-01"))},
			base:    60000,
			message: PromoStatusNotYetActive,
		},
		{
			name:    "expired",
			promo:   &models.Promo{ID: promoID, Code: "X", Type: models.PromoTypeFixed, Value: 5000, IsActive: true, EndsAt: ptrTime(date("2026-09-01"))},
			base:    60000,
			message: PromoStatusExpired,
		},
		{
			name:    "limit reached",
			promo:   &models.Promo{ID: promoID, Code: "X", Type: models.PromoTypeFixed, Value: 5000, IsActive: true, MaxRedemptions: 3, RedeemedCount: 3},
			base:    60000,
			message: PromoStatusLimitReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePromoRepo{promos: map[string]*models.Promo{"X": tt.promo}}
			svc := NewPromoService(repo, testLogger(t))

			result, err := svc.Evaluate(context.Background(), "X", tt.base, now)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if result.Applied {
				t.Fatal("expected rejection")
			}
			if result.Message != tt.message {
				t.Errorf("Message = %q, want %q", result.Message, tt.message)
			}
			if result.Total != tt.base {
				t.Errorf("Total = %d, want base %d", result.Total, tt.base)
			}
		})
	}
}

func TestEvaluateMinimumNotMet(t *testing.T) {
	repo := &fakePromoRepo{promos: map[string]*models.Promo{
		"BIG": {Code: "BIG", Type: models.PromoTypeFixed, Value: 20000, IsActive: true, MinAmount: 100000},
	}}
	svc := NewPromoService(repo, testLogger(t))

	result, err := svc.Evaluate(context.Background(), "BIG", 60000, time.Now())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result.Applied {
		t.Fatal("expected rejection below minimum")
	}
	if !strings.Contains(result.Message, "Rp100.000") {
		t.Errorf("message %q should mention the minimum", result.Message)
	}
}

func TestEvaluateUnknownCode(t *testing.T) {
	svc := NewPromoService(&fakePromoRepo{promos: map[string]*models.Promo{}}, testLogger(t))

	result, err := svc.Evaluate(context.Background(), "NOPE", 60000, time.Now())
	if err != nil {
		t.Fatalf("unknown code should not be an error: %v", err)
	}
	if result.Message != PromoStatusInvalid {
		t.Errorf("Message = %q, want %q", result.Message, PromoStatusInvalid)
	}
}

func TestEvaluateLookupFailure(t *testing.T) {
	svc := NewPromoService(&fakePromoRepo{err: errors.New("connection reset")}, testLogger(t))

	result, err := svc.Evaluate(context.Background(), "ANY", 60000, time.Now())
	if !errors.Is(err, ErrPromoLookup) {
		t.Fatalf("err = %v, want ErrPromoLookup", err)
	}
	if result.Message != PromoStatusLookupFailed {
		t.Errorf("Message = %q, want %q", result.Message, PromoStatusLookupFailed)
	}
}

func TestDiscountCaps(t *testing.T) {
	tests := []struct {
		name  string
		promo *models.Promo
		base  int64
		want  int64
	}{
		{"percentage rounds", &models.Promo{Type: models.PromoTypePercentage, Value: 12.5}, 60000, 7500},
		{"fixed", &models.Promo{Type: models.PromoTypeFixed, Value: 5000}, 60000, 5000},
		{"fixed capped at base", &models.Promo{Type: models.PromoTypeFixed, Value: 90000}, 60000, 60000},
		{"negative floors to zero", &models.Promo{Type: models.PromoTypeFixed, Value: -100}, 60000, 0},
		{"unknown type", &models.Promo{Type: "mystery", Value: 50}, 60000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Discount(tt.promo, tt.base); got != tt.want {
				t.Errorf("Discount = %d, want %d", got, tt.want)
			}
		})
	}
}
