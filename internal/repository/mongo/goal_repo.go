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

const goalCollectionName = "fitness_goals"

type mongoGoalRepository struct {
	collection *mongo.Collection
}

func NewMongoGoalRepository(db *mongo.Database) repository.GoalRepository {
	return &mongoGoalRepository{
		collection: db.Collection(goalCollectionName),
	}
}

func (r *mongoGoalRepository) Create(ctx context.Context, goal *domain.FitnessGoal) (string, error) {
	if goal.UserID == "" {
		return "", errors.New("goal requires a user")
	}
	goal.ID = uuid.NewString()
	goal.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, goal); err != nil {
		return "", err
	}
	return goal.ID, nil
}

func (r *mongoGoalRepository) GetByID(ctx context.Context, id string) (*domain.FitnessGoal, error) {
	var goal domain.FitnessGoal
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// GetByUser returns the user's goals, oldest first.
func (r *mongoGoalRepository) GetByUser(ctx context.Context, userID string) ([]domain.FitnessGoal, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	goals := []domain.FitnessGoal{}
	if err = cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// Update rewrites the mutable fields. Owner and creation time are left alone.
func (r *mongoGoalRepository) Update(ctx context.Context, goal *domain.FitnessGoal) error {
	update := bson.M{
		"$set": bson.M{
			"name":         goal.Name,
			"type":         goal.Type,
			"targetValue":  goal.TargetValue,
			"currentValue": goal.CurrentValue,
			"isCompleted":  goal.IsCompleted,
			"dueDate":      goal.DueDate,
			"exerciseId":   goal.ExerciseID,
			"description":  goal.Description,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": goal.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoGoalRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func EnsureGoalIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}
