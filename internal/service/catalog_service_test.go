package service

import (
	"context"
	"testing"

	"fitbuddy/server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSeedDefaultsOnEmptyCatalog(t *testing.T) {
	planRepo := &fakePlanRepo{}
	svc := NewCatalogService(planRepo)

	require.NoError(t, svc.SeedDefaults(context.Background()))

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "Push Pull Legs (PPL)", plans[0].Name)
	assert.Equal(t, "Bro Split", plans[1].Name)
	assert.Equal(t, "Upper/Lower Split", plans[2].Name)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	planRepo := &fakePlanRepo{}
	svc := NewCatalogService(planRepo)

	require.NoError(t, svc.SeedDefaults(context.Background()))
	require.NoError(t, svc.SeedDefaults(context.Background()))

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 3)
}

func TestSeedDefaultsSkipsNonEmptyCatalog(t *testing.T) {
	// Any existing template suppresses seeding, not just the seeds.
	planRepo := &fakePlanRepo{plans: []domain.PlanTemplate{
		{ID: primitive.NewObjectID(), Name: "Existing Plan"},
	}}
	svc := NewCatalogService(planRepo)

	require.NoError(t, svc.SeedDefaults(context.Background()))

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestDefaultPlansAreConsistent(t *testing.T) {
	for _, plan := range DefaultPlans() {
		assert.Equal(t, plan.DaysPerWeek, len(domain.ActiveDays(plan.Schedule)), plan.Name)
		for _, day := range plan.Schedule {
			assert.NotEmpty(t, day.DayID, "%s/%s", plan.Name, day.Day)
			assert.False(t, day.Completed)
		}
	}
}

func TestGetPlan(t *testing.T) {
	planRepo := &fakePlanRepo{}
	svc := NewCatalogService(planRepo)
	require.NoError(t, svc.SeedDefaults(context.Background()))

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		plan, err := svc.GetPlan(context.Background(), plans[0].ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, plans[0].Name, plan.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetPlan(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("malformed id reads as absent", func(t *testing.T) {
		_, err := svc.GetPlan(context.Background(), "not-a-hex-id")
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})
}
