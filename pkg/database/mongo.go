// Package database bootstraps the shared MongoDB client. The returned
// handles are created once at startup and passed down explicitly; nothing
// in the application reconnects or mutates them afterwards.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitebasket/bitebasket/config"
)

// Collection names used across the application.
const (
	UsersCollection  = "users"
	FoodsCollection  = "foods"
	OrdersCollection = "orders"
	LogsCollection   = "logs"
)

// Connect opens the Mongo client, verifies the connection with a ping, and
// returns the application database handle.
func Connect(ctx context.Context) (*mongo.Database, error) {
	opts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return client.Database(config.MongoDatabase()), nil
}

// EnsureIndexes creates the indexes the application relies on. The unique
// index on users.email is what makes duplicate registration race-safe.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			collection: UsersCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		{
			collection: FoodsCollection,
			model: mongo.IndexModel{
				Keys: bson.D{{Key: "category", Value: 1}},
			},
		},
		{
			collection: OrdersCollection,
			model: mongo.IndexModel{
				Keys: bson.D{{Key: "buyerEmail", Value: 1}},
			},
		},
		{
			collection: LogsCollection,
			model: mongo.IndexModel{
				Keys: bson.D{{Key: "time", Value: -1}},
			},
		},
	}

	for _, idx := range indexes {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("database: index on %s: %w", idx.collection, err)
		}
	}
	return nil
}

// Disconnect closes the underlying client.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}
