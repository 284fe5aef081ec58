package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/domain"
	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const planCollectionName = "workout_plans"

// mongoPlanRepository implements repository.PlanRepository.
// Exercise usages are embedded in the plan document in insertion order.
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a new WorkoutPlan repository.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// normalize guarantees a non-nil exercise list after decoding.
func normalize(plan domain.WorkoutPlan) *domain.WorkoutPlan {
	out := domain.NewWorkoutPlan(domain.PlanSpec{
		ID:              plan.ID,
		OwnerID:         plan.OwnerID,
		Name:            plan.Name,
		GoalDescription: plan.GoalDescription,
		Exercises:       plan.Exercises,
		CreatedAt:       plan.CreatedAt,
		UpdatedAt:       plan.UpdatedAt,
	})
	return &out
}

// Create inserts a new workout plan.
func (r *mongoPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (string, error) {
	if plan.OwnerID == "" {
		return "", errors.New("plan requires an owner")
	}
	plan.ID = uuid.NewString()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	if plan.Exercises == nil {
		plan.Exercises = []domain.ExerciseUsage{}
	}

	if _, err := r.collection.InsertOne(ctx, plan); err != nil {
		return "", err
	}
	return plan.ID, nil
}

// GetByID retrieves a single workout plan by its ID.
func (r *mongoPlanRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return normalize(plan), nil
}

// GetByOwner retrieves the user's plans, oldest first.
func (r *mongoPlanRepository) GetByOwner(ctx context.Context, ownerID string) ([]domain.WorkoutPlan, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var decoded []domain.WorkoutPlan
	if err = cursor.All(ctx, &decoded); err != nil {
		return nil, err
	}

	plans := make([]domain.WorkoutPlan, 0, len(decoded))
	for _, p := range decoded {
		plans = append(plans, *normalize(p))
	}
	return plans, nil
}

func (r *mongoPlanRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddExercise replaces the stored exercise list and returns the updated plan.
func (r *mongoPlanRepository) AddExercise(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	update := bson.M{
		"$set": bson.M{
			"exercises": exercisesOf(plan),
			"updatedAt": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.WorkoutPlan
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": plan.ID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return normalize(updated), nil
}

// DeleteExercise replaces the stored exercise list.
func (r *mongoPlanRepository) DeleteExercise(ctx context.Context, plan *domain.WorkoutPlan) error {
	update := bson.M{
		"$set": bson.M{
			"exercises": exercisesOf(plan),
			"updatedAt": time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": plan.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// exercisesOf never yields nil so the stored field stays an array.
func exercisesOf(plan *domain.WorkoutPlan) []domain.ExerciseUsage {
	if plan.Exercises == nil {
		return []domain.ExerciseUsage{}
	}
	return plan.Exercises
}

// EnsurePlanIndexes creates necessary indexes for the workout_plans collection.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
