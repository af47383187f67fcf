package service

import (
	"context"
	"errors"
	"time"

	"fitbuddy/server/internal/domain"
	"fitbuddy/server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fallbackPlanName labels a community whose plan template no longer
// resolves; the listing still works off the instances themselves.
const fallbackPlanName = "Workout Plan"

// Buddy is one community member enriched with workout stats. It carries no
// credential material by construction.
type Buddy struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
	CompletedDays int       `json:"completedDays"`
	Consistency   int       `json:"consistency"`
	StartDate     time.Time `json:"startDate"`
	DaysActive    int       `json:"daysActive"`
}

// Community is the buddy listing for one plan. Users are returned in no
// particular order; any ranking is a presentation concern.
type Community struct {
	PlanName string  `json:"planName"`
	Users    []Buddy `json:"users"`
}

// CommunityService aggregates buddy statistics per plan.
type CommunityService interface {
	GetCommunity(ctx context.Context, planID string) (*Community, error)
}

// communityService implements the CommunityService interface.
type communityService struct {
	planRepo    repository.PlanRepository
	workoutRepo repository.UserWorkoutRepository
	userRepo    repository.UserRepository
}

// NewCommunityService creates a new instance of communityService.
func NewCommunityService(
	planRepo repository.PlanRepository,
	workoutRepo repository.UserWorkoutRepository,
	userRepo repository.UserRepository,
) CommunityService {
	return &communityService{
		planRepo:    planRepo,
		workoutRepo: workoutRepo,
		userRepo:    userRepo,
	}
}

// GetCommunity collects every workout instance referencing the plan, joins
// the owning users and derives per-user consistency stats. Malformed or
// unresolvable user ids are silently dropped; a deleted plan template only
// degrades the display name, never the listing.
//
// When a user owns more than one instance of the same plan, the first one
// in collection order wins. That ambiguity is inherited behavior;
// enforcing one-instance-per-user-per-plan would be the alternative.
func (s *communityService) GetCommunity(ctx context.Context, planID string) (*Community, error) {
	planName := fallbackPlanName
	if id, err := primitive.ObjectIDFromHex(planID); err == nil {
		plan, err := s.planRepo.GetByID(ctx, id)
		switch {
		case err == nil:
			planName = plan.Name
		case errors.Is(err, repository.ErrNotFound):
			// keep the fallback name
		default:
			return nil, err
		}
	}

	workouts, err := s.workoutRepo.GetByPlanID(ctx, planID)
	if err != nil {
		return nil, err
	}

	// Distinct owner ids, dropping anything that cannot address a user
	// document. A malformed id is "no match", never a fault.
	seen := map[string]bool{}
	var userIDs []primitive.ObjectID
	for _, w := range workouts {
		if w.UserID == "" || seen[w.UserID] {
			continue
		}
		seen[w.UserID] = true
		if id, err := primitive.ObjectIDFromHex(w.UserID); err == nil {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		return &Community{PlanName: planName, Users: []Buddy{}}, nil
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	buddies := make([]Buddy, 0, len(users))
	for _, user := range users {
		buddies = append(buddies, buildBuddy(user, firstWorkoutOf(workouts, user.ID.Hex()), now))
	}

	return &Community{PlanName: planName, Users: buddies}, nil
}

// firstWorkoutOf returns the user's first instance in collection order, or
// nil if none matches.
func firstWorkoutOf(workouts []domain.UserWorkout, userID string) *domain.UserWorkout {
	for i := range workouts {
		if workouts[i].UserID == userID {
			return &workouts[i]
		}
	}
	return nil
}

func buildBuddy(user domain.User, workout *domain.UserWorkout, now time.Time) Buddy {
	buddy := Buddy{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		StartDate: user.CreatedAt,
	}
	if workout == nil {
		// Transient state: the instance vanished between the two lookups.
		// Denominator 1 keeps the percentage well-defined.
		return buddy
	}

	buddy.CompletedDays = domain.CompletedCount(workout.Schedule)
	buddy.Consistency = domain.ProgressPercent(workout.Schedule)
	buddy.StartDate = workout.StartDate
	buddy.DaysActive = domain.DaysActive(workout.StartDate, now)
	return buddy
}
