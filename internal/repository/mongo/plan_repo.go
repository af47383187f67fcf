package mongo

import (
	"context"
	"errors"

	"fitbuddy/server/internal/domain"
	"fitbuddy/server/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const planCollectionName = "plans"

// mongoPlanRepository implements repository.PlanRepository using MongoDB.
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a new plan catalog repository.
// It expects a connected *mongo.Database instance.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// List retrieves every plan template in the catalog, in insertion order.
func (r *mongoPlanRepository) List(ctx context.Context) ([]domain.PlanTemplate, error) {
	var plans []domain.PlanTemplate

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, mapError(err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &plans); err != nil {
		return nil, mapError(err)
	}
	if err = cursor.Err(); err != nil {
		return nil, mapError(err)
	}
	if plans == nil {
		plans = []domain.PlanTemplate{}
	}
	return plans, nil
}

// GetByID retrieves a single plan template by its ObjectID.
func (r *mongoPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanTemplate, error) {
	var plan domain.PlanTemplate
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		return nil, mapError(err)
	}
	return &plan, nil
}

// Count returns the number of templates in the catalog. Seeding uses this
// as its emptiness precondition.
func (r *mongoPlanRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

// InsertMany inserts a batch of plan templates.
func (r *mongoPlanRepository) InsertMany(ctx context.Context, plans []domain.PlanTemplate) error {
	if len(plans) == 0 {
		return errors.New("no plans to insert")
	}

	docs := make([]interface{}, len(plans))
	for i := range plans {
		if plans[i].ID == primitive.NilObjectID {
			plans[i].ID = primitive.NewObjectID()
		}
		docs[i] = plans[i]
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return mapError(err)
}

// EnsurePlanIndexes creates necessary indexes for the plans collection.
// Call this once during application startup.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
