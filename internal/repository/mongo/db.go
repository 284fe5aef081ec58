package mongo

import (
	"context"
	"time"

	"github.com/gkulo22/WorkoutApp-API/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI and
// verifies it with a ping against the primary.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// The server may accept the connection and still be unresponsive.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// NewRepositories wires every store to collections of db.
func NewRepositories(db *mongo.Database) repository.Repositories {
	return repository.Repositories{
		Exercises: NewMongoExerciseRepository(db),
		Plans:     NewMongoPlanRepository(db),
		Users:     NewMongoUserRepository(db),
		Weights:   NewMongoWeightRepository(db),
		Goals:     NewMongoGoalRepository(db),
	}
}

// EnsureIndexes creates the indexes every collection relies on.
// Call this once during application startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	steps := []struct {
		collection string
		ensure     func(context.Context, *mongo.Collection) error
	}{
		{exerciseCollectionName, EnsureExerciseIndexes},
		{planCollectionName, EnsurePlanIndexes},
		{userCollectionName, EnsureUserIndexes},
		{weightCollectionName, EnsureWeightIndexes},
		{goalCollectionName, EnsureGoalIndexes},
	}
	for _, step := range steps {
		if err := step.ensure(ctx, db.Collection(step.collection)); err != nil {
			return err
		}
	}
	return nil
}
