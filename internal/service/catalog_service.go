package service

import (
	"context"
	"errors"

	"fitbuddy/server/internal/domain"
	"fitbuddy/server/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService exposes the shared plan catalog.
type CatalogService interface {
	ListPlans(ctx context.Context) ([]domain.PlanTemplate, error)
	GetPlan(ctx context.Context, planID string) (*domain.PlanTemplate, error)
	// SeedDefaults inserts the built-in plan templates, but only when the
	// catalog holds no templates at all. Safe to call on every startup.
	SeedDefaults(ctx context.Context) error
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	planRepo repository.PlanRepository
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(planRepo repository.PlanRepository) CatalogService {
	return &catalogService{planRepo: planRepo}
}

// ListPlans returns every plan template in the catalog.
func (s *catalogService) ListPlans(ctx context.Context) ([]domain.PlanTemplate, error) {
	return s.planRepo.List(ctx)
}

// GetPlan resolves a plan template by its hex id. A malformed id is
// indistinguishable from an absent plan: both map to ErrPlanNotFound.
func (s *catalogService) GetPlan(ctx context.Context, planID string) (*domain.PlanTemplate, error) {
	id, err := primitive.ObjectIDFromHex(planID)
	if err != nil {
		return nil, ErrPlanNotFound
	}

	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// SeedDefaults checks the catalog's emptiness precondition and inserts the
// built-in templates. The presence of ANY template, not just the seeds,
// suppresses re-seeding, so repeated startups never duplicate data.
func (s *catalogService) SeedDefaults(ctx context.Context) error {
	count, err := s.planRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.planRepo.InsertMany(ctx, DefaultPlans()); err != nil {
		return err
	}
	log.Info("default workout plans initialized")
	return nil
}
