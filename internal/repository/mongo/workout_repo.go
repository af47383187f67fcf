package mongo

import (
	"context"
	"errors"
	"time"

	"fitbuddy/server/internal/domain"
	"fitbuddy/server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userWorkoutCollectionName = "userWorkouts"

// mongoUserWorkoutRepository implements repository.UserWorkoutRepository.
type mongoUserWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoUserWorkoutRepository creates a new user workout repository.
func NewMongoUserWorkoutRepository(db *mongo.Database) repository.UserWorkoutRepository {
	return &mongoUserWorkoutRepository{
		collection: db.Collection(userWorkoutCollectionName),
	}
}

// Create inserts a new workout instance.
func (r *mongoUserWorkoutRepository) Create(ctx context.Context, workout *domain.UserWorkout) (primitive.ObjectID, error) {
	if workout.UserID == "" || workout.PlanName == "" {
		return primitive.NilObjectID, errors.New("workout requires userId and planName")
	}

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = now
	}
	if workout.StartDate.IsZero() {
		workout.StartDate = now
	}

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, mapError(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single workout instance by its ID.
func (r *mongoUserWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.UserWorkout, error) {
	var workout domain.UserWorkout
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		return nil, mapError(err)
	}
	return &workout, nil
}

// GetByUserID retrieves all workout instances owned by a user.
func (r *mongoUserWorkoutRepository) GetByUserID(ctx context.Context, userID string) ([]domain.UserWorkout, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// GetByPlanID retrieves all workout instances adopted from a plan, across
// all users, in collection order.
func (r *mongoUserWorkoutRepository) GetByPlanID(ctx context.Context, planID string) ([]domain.UserWorkout, error) {
	return r.find(ctx, bson.M{"planId": planID})
}

func (r *mongoUserWorkoutRepository) find(ctx context.Context, filter bson.M) ([]domain.UserWorkout, error) {
	var workouts []domain.UserWorkout

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, mapError(err)
	}
	if err = cursor.Err(); err != nil {
		return nil, mapError(err)
	}
	if workouts == nil {
		workouts = []domain.UserWorkout{}
	}
	return workouts, nil
}

// Delete removes a workout instance. Deleting an instance that is already
// gone is not an error.
func (r *mongoUserWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return mapError(err)
}

// SetDayCompletion flips a single day's completion flag as one targeted
// update. The day is addressed by its stable DayID through an array filter
// that also pins the expected current value, so two concurrent toggles on
// different days of the same instance can no longer overwrite each other
// with stale whole-schedule snapshots.
func (r *mongoUserWorkoutRepository) SetDayCompletion(ctx context.Context, id primitive.ObjectID, dayID string, current, next bool) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{"schedule.$[d].completed": next},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.dayId": dayID, "d.completed": bson.M{"$eq": current}},
		},
	})

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return mapError(err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	if result.ModifiedCount == 0 {
		// Instance exists but the array filter matched nothing: either the
		// day's state changed under us, or the dayID is stale.
		return repository.ErrConflict
	}
	return nil
}

// EnsureUserWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureUserWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Index for listing a user's workouts
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
		{
			// Index for the community aggregation by plan
			Keys:    bson.D{{Key: "planId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
