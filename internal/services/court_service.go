package services

import (
	"context"

	"courtside/internal/models"
	"courtside/internal/repositories/interfaces"
	"courtside/internal/utils"
	"courtside/internal/validators"
	"courtside/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourtService struct {
	courtRepo interfaces.CourtRepository
	logger    *logger.Logger
}

func NewCourtService(courtRepo interfaces.CourtRepository, logger *logger.Logger) *CourtService {
	return &CourtService{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// ListActive returns the bookable courts, ordered by name.
func (s *CourtService) ListActive(ctx context.Context) ([]*models.Court, error) {
	return s.courtRepo.GetActive(ctx)
}

// ListAll returns every court, including inactive ones, for the admin view.
func (s *CourtService) ListAll(ctx context.Context) ([]*models.Court, error) {
	return s.courtRepo.GetAll(ctx)
}

// Get resolves a court by hex id or URL slug, matching the court=<id-or-slug>
// deep-link parameter.
func (s *CourtService) Get(ctx context.Context, idOrSlug string) (*models.Court, error) {
	if id, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		return s.courtRepo.GetByID(ctx, id)
	}
	return s.courtRepo.GetBySlug(ctx, idOrSlug)
}

func (s *CourtService) Create(ctx context.Context, court *models.Court) error {
	if errs := validators.ValidateStruct(court); len(errs) > 0 {
		return errs
	}

	if court.Slug == "" {
		court.Slug = utils.Slugify(court.Name)
	}

	return s.courtRepo.Create(ctx, court)
}

func (s *CourtService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	if err := s.courtRepo.SetActive(ctx, id, active); err != nil {
		return err
	}

	s.logger.WithCourt(id.Hex()).WithField("active", active).Info("Court availability changed")
	return nil
}
