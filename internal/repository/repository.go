package repository

import (
	"context"

	"fitbuddy/server/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer. Services match on these with
// errors.Is and translate them to API responses; raw driver errors never
// cross the service boundary.
var (
	ErrNotFound = RepositoryError("not found")
	// ErrUnavailable means the backing store could not be reached. Every
	// operation surfaces it; the process keeps running and the next request
	// simply tries again.
	ErrUnavailable = RepositoryError("store unavailable")
	// ErrConflict means a compare-and-swap update found the document but the
	// expected field state had changed underneath it.
	ErrConflict = RepositoryError("concurrent modification")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// PlanRepository defines the interface for the shared plan catalog.
type PlanRepository interface {
	List(ctx context.Context) ([]domain.PlanTemplate, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanTemplate, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, plans []domain.PlanTemplate) error
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.User, error)
	SetAvatarKey(ctx context.Context, id primitive.ObjectID, key string) error
}

// UserWorkoutRepository defines the interface for user workout instances.
type UserWorkoutRepository interface {
	Create(ctx context.Context, workout *domain.UserWorkout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.UserWorkout, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.UserWorkout, error)
	GetByPlanID(ctx context.Context, planID string) ([]domain.UserWorkout, error)
	// Delete removes the instance; deleting an already-absent instance is
	// not an error.
	Delete(ctx context.Context, id primitive.ObjectID) error
	// SetDayCompletion flips the completion flag of a single day, addressed
	// by its stable DayID, as one targeted update. The update only applies
	// while the day still holds the expected current value; a lost race
	// yields ErrConflict and the caller re-reads and retries.
	SetDayCompletion(ctx context.Context, id primitive.ObjectID, dayID string, current, next bool) error
}
