package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitebasket/bitebasket/app/models"
	"github.com/bitebasket/bitebasket/pkg/apperr"
	"github.com/bitebasket/bitebasket/pkg/database"
	"github.com/bitebasket/bitebasket/pkg/metrics"
)

// OrderRepository handles the orders collection.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(database.OrdersCollection)}
}

// Create inserts an order. CreatedAt is assigned here, server-side.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	defer metrics.ObserveMongoOp(database.OrdersCollection, "insert", time.Now())

	order.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return "", fmt.Errorf("orders: insert: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("orders: unexpected inserted id type %T", res.InsertedID)
	}
	order.ID = oid
	return oid.Hex(), nil
}

// ListByBuyer returns the orders placed by one buyer, newest first.
func (r *OrderRepository) ListByBuyer(ctx context.Context, email string) ([]models.Order, error) {
	defer metrics.ObserveMongoOp(database.OrdersCollection, "find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"buyerEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("orders: list for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("orders: decode: %w", err)
	}
	return orders, nil
}

// FindByID returns a single order by its hex object id.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	defer metrics.ObserveMongoOp(database.OrdersCollection, "find", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Order{}, apperr.ErrInvalidID
	}

	var order models.Order
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("orders: find %s: %w", id, err)
	}
	return order, nil
}

// DeleteByID removes an order and returns the deleted count.
func (r *OrderRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	defer metrics.ObserveMongoOp(database.OrdersCollection, "delete", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, apperr.ErrInvalidID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("orders: delete %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return 0, apperr.ErrNotFound
	}
	return res.DeletedCount, nil
}
