package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fitbuddy/server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type communityFixture struct {
	svc         CommunityService
	workoutSvc  WorkoutService
	planRepo    *fakePlanRepo
	userRepo    *fakeUserRepo
	workoutRepo *fakeWorkoutRepo
	ppl         domain.PlanTemplate
}

func newCommunityFixture(t *testing.T) *communityFixture {
	t.Helper()
	planRepo := &fakePlanRepo{}
	require.NoError(t, planRepo.InsertMany(context.Background(), DefaultPlans()))
	userRepo := &fakeUserRepo{}
	workoutRepo := &fakeWorkoutRepo{}
	return &communityFixture{
		svc:         NewCommunityService(planRepo, workoutRepo, userRepo),
		workoutSvc:  NewWorkoutService(workoutRepo, planRepo),
		planRepo:    planRepo,
		userRepo:    userRepo,
		workoutRepo: workoutRepo,
		ppl:         planRepo.plans[0], // PPL, 6 active days
	}
}

func (f *communityFixture) addUser(t *testing.T, name, email string) domain.User {
	t.Helper()
	user := domain.User{Name: name, Email: email, PasswordHash: "x", CreatedAt: time.Now().UTC()}
	_, err := f.userRepo.Create(context.Background(), &user)
	require.NoError(t, err)
	return user
}

func TestGetCommunityEmpty(t *testing.T) {
	f := newCommunityFixture(t)

	community, err := f.svc.GetCommunity(context.Background(), f.ppl.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, f.ppl.Name, community.PlanName)
	assert.NotNil(t, community.Users)
	assert.Empty(t, community.Users)
	// No members means no reason to touch the user collection.
	assert.Empty(t, f.userRepo.getByIDsLog)
}

func TestGetCommunityDeletedPlanFallsBackName(t *testing.T) {
	f := newCommunityFixture(t)

	community, err := f.svc.GetCommunity(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Equal(t, "Workout Plan", community.PlanName)

	community, err = f.svc.GetCommunity(context.Background(), "not-hex")
	require.NoError(t, err)
	assert.Equal(t, "Workout Plan", community.PlanName)
}

func TestGetCommunityStats(t *testing.T) {
	f := newCommunityFixture(t)

	alice := f.addUser(t, "Alice", "alice@example.com")
	workout, err := f.workoutSvc.Adopt(context.Background(), alice.ID.Hex(), f.ppl.ID.Hex())
	require.NoError(t, err)

	// Bob follows a different plan and must not appear.
	bob := f.addUser(t, "Bob", "bob@example.com")
	_, err = f.workoutSvc.Adopt(context.Background(), bob.ID.Hex(), f.planRepo.plans[1].ID.Hex())
	require.NoError(t, err)

	_, err = f.workoutSvc.ToggleDayCompletion(context.Background(), workout.ID.Hex(), 0)
	require.NoError(t, err)
	_, err = f.workoutSvc.ToggleDayCompletion(context.Background(), workout.ID.Hex(), 2)
	require.NoError(t, err)

	community, err := f.svc.GetCommunity(context.Background(), f.ppl.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, "Push Pull Legs (PPL)", community.PlanName)
	require.Len(t, community.Users, 1)

	buddy := community.Users[0]
	assert.Equal(t, alice.ID.Hex(), buddy.ID)
	assert.Equal(t, "Alice", buddy.Name)
	assert.Equal(t, 2, buddy.CompletedDays)
	assert.Equal(t, 33, buddy.Consistency) // 2 of 6 days
	assert.Equal(t, 0, buddy.DaysActive)
	assert.WithinDuration(t, workout.StartDate, buddy.StartDate, time.Second)
}

func TestGetCommunityDropsUnresolvableOwners(t *testing.T) {
	f := newCommunityFixture(t)

	alice := f.addUser(t, "Alice", "alice@example.com")
	_, err := f.workoutSvc.Adopt(context.Background(), alice.ID.Hex(), f.ppl.ID.Hex())
	require.NoError(t, err)

	// An instance whose owner id is not a valid object id, and one whose
	// owner no longer exists. Neither produces a buddy or an error.
	_, err = f.workoutRepo.Create(context.Background(), &domain.UserWorkout{
		UserID: "legacy-string-id", PlanID: f.ppl.ID.Hex(), PlanName: f.ppl.Name,
	})
	require.NoError(t, err)
	_, err = f.workoutRepo.Create(context.Background(), &domain.UserWorkout{
		UserID: primitive.NewObjectID().Hex(), PlanID: f.ppl.ID.Hex(), PlanName: f.ppl.Name,
	})
	require.NoError(t, err)

	community, err := f.svc.GetCommunity(context.Background(), f.ppl.ID.Hex())
	require.NoError(t, err)
	require.Len(t, community.Users, 1)
	assert.Equal(t, alice.ID.Hex(), community.Users[0].ID)
}

func TestGetCommunityFirstInstanceWins(t *testing.T) {
	f := newCommunityFixture(t)

	alice := f.addUser(t, "Alice", "alice@example.com")
	first, err := f.workoutSvc.Adopt(context.Background(), alice.ID.Hex(), f.ppl.ID.Hex())
	require.NoError(t, err)
	second, err := f.workoutSvc.Adopt(context.Background(), alice.ID.Hex(), f.ppl.ID.Hex())
	require.NoError(t, err)

	// Completions on the second instance are invisible to the community
	// view while the first instance exists.
	_, err = f.workoutSvc.ToggleDayCompletion(context.Background(), second.ID.Hex(), 0)
	require.NoError(t, err)
	_, err = f.workoutSvc.ToggleDayCompletion(context.Background(), first.ID.Hex(), 1)
	require.NoError(t, err)

	community, err := f.svc.GetCommunity(context.Background(), f.ppl.ID.Hex())
	require.NoError(t, err)
	require.Len(t, community.Users, 1)
	assert.Equal(t, 1, community.Users[0].CompletedDays)
}

func TestBuddyCarriesNoCredentials(t *testing.T) {
	f := newCommunityFixture(t)

	alice := f.addUser(t, "Alice", "alice@example.com")
	_, err := f.workoutSvc.Adopt(context.Background(), alice.ID.Hex(), f.ppl.ID.Hex())
	require.NoError(t, err)

	community, err := f.svc.GetCommunity(context.Background(), f.ppl.ID.Hex())
	require.NoError(t, err)

	raw, err := json.Marshal(community)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "Password")
}
