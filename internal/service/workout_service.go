package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitbuddy/server/internal/domain"
	"fitbuddy/server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// toggleRetries bounds how often a lost completion-toggle race is retried
// before the conflict is surfaced to the caller.
const toggleRetries = 3

var ErrToggleConflict = errors.New("day completion changed concurrently, please retry")

// WorkoutService manages a user's workout instances.
type WorkoutService interface {
	// Adopt copies a catalog plan into a new workout instance owned by the
	// user. The schedule is a deep copy; completing days on the instance
	// never touches the template.
	Adopt(ctx context.Context, userID, planID string) (*domain.UserWorkout, error)
	// CreateCustom builds a workout instance from a user-authored schedule.
	// Rest days (empty focus) are filtered out before persisting.
	CreateCustom(ctx context.Context, userID, name, description string, days []domain.ScheduleDay) (*domain.UserWorkout, error)
	ListForUser(ctx context.Context, userID string) ([]domain.UserWorkout, error)
	// Remove deletes the instance. Removing an absent instance succeeds.
	Remove(ctx context.Context, workoutID string) error
	// ToggleDayCompletion flips the completed flag of the day at dayIndex
	// and returns the updated instance.
	ToggleDayCompletion(ctx context.Context, workoutID string, dayIndex int) (*domain.UserWorkout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.UserWorkoutRepository
	planRepo    repository.PlanRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.UserWorkoutRepository, planRepo repository.PlanRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		planRepo:    planRepo,
	}
}

// Adopt creates a user's personal copy of a plan template.
func (s *workoutService) Adopt(ctx context.Context, userID, planID string) (*domain.UserWorkout, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

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

	now := time.Now().UTC()
	workout := &domain.UserWorkout{
		UserID:      userID,
		PlanID:      plan.ID.Hex(),
		PlanName:    plan.Name,
		Description: plan.Description,
		DaysPerWeek: plan.DaysPerWeek,
		Schedule:    domain.CloneSchedule(plan.Schedule),
		IsCustom:    false,
		CreatedAt:   now,
		StartDate:   now,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID
	return workout, nil
}

// CreateCustom validates and persists a user-authored plan. Validation
// failures are reported per field; all violated fields are collected into
// a single ValidationError.
func (s *workoutService) CreateCustom(ctx context.Context, userID, name, description string, days []domain.ScheduleDay) (*domain.UserWorkout, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["planName"] = "Plan name is required"
	}
	if strings.TrimSpace(description) == "" {
		fields["description"] = "Description is required"
	}

	active := domain.ActiveDays(days)
	if len(active) == 0 {
		fields["schedule"] = "Please add at least one workout day"
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	// Custom days arrive from the client without identifiers or meaningful
	// completion state; cloning normalizes both.
	schedule := domain.CloneSchedule(active)

	now := time.Now().UTC()
	workout := &domain.UserWorkout{
		UserID:      userID,
		PlanName:    name,
		Description: description,
		DaysPerWeek: len(schedule),
		Schedule:    schedule,
		IsCustom:    true,
		CreatedAt:   now,
		StartDate:   now,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID
	return workout, nil
}

// ListForUser returns all workout instances owned by the user.
func (s *workoutService) ListForUser(ctx context.Context, userID string) ([]domain.UserWorkout, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

// Remove deletes a workout instance. A malformed or unknown id is a no-op.
func (s *workoutService) Remove(ctx context.Context, workoutID string) error {
	id, err := primitive.ObjectIDFromHex(workoutID)
	if err != nil {
		return nil
	}
	return s.workoutRepo.Delete(ctx, id)
}

// ToggleDayCompletion flips one day's completed flag. The update is a
// targeted compare-and-swap addressed by the day's stable DayID, so a
// concurrent toggle on another day of the same instance is never clobbered
// by a stale schedule snapshot. A lost race on the SAME day re-reads and
// retries a bounded number of times.
func (s *workoutService) ToggleDayCompletion(ctx context.Context, workoutID string, dayIndex int) (*domain.UserWorkout, error) {
	id, err := primitive.ObjectIDFromHex(workoutID)
	if err != nil {
		return nil, ErrWorkoutNotFound
	}

	for attempt := 0; attempt < toggleRetries; attempt++ {
		workout, err := s.workoutRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrWorkoutNotFound
			}
			return nil, err
		}
		if dayIndex < 0 || dayIndex >= len(workout.Schedule) {
			return nil, ErrDayNotFound
		}

		day := workout.Schedule[dayIndex]
		err = s.workoutRepo.SetDayCompletion(ctx, id, day.DayID, day.Completed, !day.Completed)
		if err == nil {
			workout.Schedule[dayIndex].Completed = !day.Completed
			return workout, nil
		}
		if errors.Is(err, repository.ErrConflict) {
			continue
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	return nil, ErrToggleConflict
}
