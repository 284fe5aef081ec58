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

const weightCollectionName = "weight_entries"

type mongoWeightRepository struct {
	collection *mongo.Collection
}

func NewMongoWeightRepository(db *mongo.Database) repository.WeightRepository {
	return &mongoWeightRepository{
		collection: db.Collection(weightCollectionName),
	}
}

func (r *mongoWeightRepository) Create(ctx context.Context, entry *domain.WeightEntry) (string, error) {
	if entry.UserID == "" {
		return "", errors.New("weight entry requires a user")
	}
	// V7 ids sort by creation, which breaks ties on recordedAt.
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	entry.ID = id.String()
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *mongoWeightRepository) GetByID(ctx context.Context, id string) (*domain.WeightEntry, error) {
	var entry domain.WeightEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetByUser returns the user's history, newest first.
func (r *mongoWeightRepository) GetByUser(ctx context.Context, userID string) ([]domain.WeightEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "recordedAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []domain.WeightEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoWeightRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func EnsureWeightIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "recordedAt", Value: -1}},
	})
	return err
}
