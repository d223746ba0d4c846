package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitebasket/bitebasket/app/models"
	"github.com/bitebasket/bitebasket/pkg/apperr"
	"github.com/bitebasket/bitebasket/pkg/database"
	"github.com/bitebasket/bitebasket/pkg/metrics"
)

// FoodRepository handles the foods collection.
type FoodRepository struct {
	col *mongo.Collection
}

func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{col: db.Collection(database.FoodsCollection)}
}

// List returns foods, optionally filtered by category. An empty category
// or "all" means no filter; matching is case-insensitive because
// categories are stored lower-case.
func (r *FoodRepository) List(ctx context.Context, category string) ([]models.Food, error) {
	defer metrics.ObserveMongoOp(database.FoodsCollection, "find", time.Now())

	filter := bson.M{}
	if c := strings.ToLower(strings.TrimSpace(category)); c != "" && c != "all" {
		filter["category"] = c
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("foods: list: %w", err)
	}
	defer cursor.Close(ctx)

	foods := []models.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("foods: decode: %w", err)
	}
	return foods, nil
}

// FindByID returns a single food by its hex object id.
func (r *FoodRepository) FindByID(ctx context.Context, id string) (models.Food, error) {
	defer metrics.ObserveMongoOp(database.FoodsCollection, "find", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Food{}, apperr.ErrInvalidID
	}

	var food models.Food
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Food{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Food{}, fmt.Errorf("foods: find %s: %w", id, err)
	}
	return food, nil
}

// Create inserts a food and returns the inserted id. The category is
// lower-cased before the write so listings filter consistently.
func (r *FoodRepository) Create(ctx context.Context, food *models.Food) (string, error) {
	defer metrics.ObserveMongoOp(database.FoodsCollection, "insert", time.Now())

	food.Category = strings.ToLower(strings.TrimSpace(food.Category))
	food.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, food)
	if err != nil {
		return "", fmt.Errorf("foods: insert: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("foods: unexpected inserted id type %T", res.InsertedID)
	}
	food.ID = oid
	return oid.Hex(), nil
}

// DeleteByID removes a food and returns the deleted count.
func (r *FoodRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	defer metrics.ObserveMongoOp(database.FoodsCollection, "delete", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, apperr.ErrInvalidID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("foods: delete %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return 0, apperr.ErrNotFound
	}
	return res.DeletedCount, nil
}
