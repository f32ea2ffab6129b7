package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"courtside/internal/models"
	"courtside/internal/repositories/interfaces"
	"courtside/internal/utils"
	"courtside/pkg/logger"
)

// User-facing promo statuses. The evaluator never exposes transport detail
// beyond "lookup failed".
const (
	PromoStatusApplied      = "promo applied"
	PromoStatusInvalid      = "invalid code"
	PromoStatusNotYetActive = "not active yet"
	PromoStatusExpired      = "expired"
	PromoStatusLimitReached = "limit reached"
	PromoStatusLookupFailed = "lookup failed"
)

var ErrPromoLookup = errors.New("promo lookup failed")

// PromoResult is the outcome of evaluating a code against a base amount.
// Cleared marks the empty-code case: any applied promo should be removed
// without showing an error.
type PromoResult struct {
	Applied  bool          `json:"applied"`
	Cleared  bool          `json:"cleared"`
	Promo    *models.Promo `json:"promo,omitempty"`
	Discount int64         `json:"discount"`
	Total    int64         `json:"total"`
	Message  string        `json:"message"`
}

type PromoService struct {
	promoRepo interfaces.PromoRepository
	logger    *logger.Logger
}

func NewPromoService(promoRepo interfaces.PromoRepository, logger *logger.Logger) *PromoService {
	return &PromoService{
		promoRepo: promoRepo,
		logger:    logger,
	}
}

// Evaluate validates a promo code against the current base amount. The
// checks short-circuit in a fixed order; the first failure decides the
// message. A transport failure is reported through ErrPromoLookup so callers
// can distinguish it from a rejected code.
func (s *PromoService) Evaluate(ctx context.Context, code string, baseAmount int64, now time.Time) (*PromoResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	if code == "" {
		return &PromoResult{Cleared: true, Total: baseAmount}, nil
	}

	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, interfaces.ErrPromoNotFound) {
			return s.reject(baseAmount, PromoStatusInvalid), nil
		}
		s.logger.WithError(err).WithField("code", code).Error("Promo lookup failed")
		return s.reject(baseAmount, PromoStatusLookupFailed), ErrPromoLookup
	}

	if !promo.IsActive {
		return s.reject(baseAmount, PromoStatusInvalid), nil
	}

	if promo.StartsAt != nil && now.Before(*promo.StartsAt) {
		return s.reject(baseAmount, PromoStatusNotYetActive), nil
	}

	if promo.EndsAt != nil && now.After(*promo.EndsAt) {
		return s.reject(baseAmount, PromoStatusExpired), nil
	}

	if promo.MaxRedemptions > 0 && promo.RedeemedCount >= promo.MaxRedemptions {
		return s.reject(baseAmount, PromoStatusLimitReached), nil
	}

	if promo.MinAmount > 0 && baseAmount < promo.MinAmount {
		message := fmt.Sprintf("minimum not met: requires at least %s", utils.FormatIDR(promo.MinAmount))
		return s.reject(baseAmount, message), nil
	}

	discount := Discount(promo, baseAmount)
	total := baseAmount - discount
	if total < 0 {
		total = 0
	}

	return &PromoResult{
		Applied:  true,
		Promo:    promo,
		Discount: discount,
		Total:    total,
		Message:  PromoStatusApplied,
	}, nil
}

// Redeem bumps the redemption counter once a booking carrying the promo is
// confirmed.
func (s *PromoService) Redeem(ctx context.Context, promo *models.Promo) error {
	if promo == nil {
		return nil
	}
	return s.promoRepo.IncrementRedemptions(ctx, promo.ID)
}

func (s *PromoService) reject(baseAmount int64, message string) *PromoResult {
	return &PromoResult{
		Total:   baseAmount,
		Message: message,
	}
}

// Discount computes the promo's discount against a base amount. Fixed
// discounts are capped at the base so a promo can never drive the total
// negative.
func Discount(promo *models.Promo, baseAmount int64) int64 {
	var discount int64
	switch promo.Type {
	case models.PromoTypePercentage:
		discount = int64(math.Round(promo.Value / 100 * float64(baseAmount)))
	case models.PromoTypeFixed:
		discount = int64(math.Round(promo.Value))
	default:
		return 0
	}

	if discount < 0 {
		return 0
	}
	if discount > baseAmount {
		return baseAmount
	}
	return discount
}
