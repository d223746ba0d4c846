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
	"github.com/bitebasket/bitebasket/pkg/auth"
	"github.com/bitebasket/bitebasket/pkg/database"
	"github.com/bitebasket/bitebasket/pkg/metrics"
)

// UserRepository handles the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(database.UsersCollection)}
}

// Create inserts a new user. A duplicate email is a no-op: the existing
// record is left untouched and created=false is returned. The unique index
// on email closes the lookup/insert race.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (created bool, err error) {
	defer metrics.ObserveMongoOp(database.UsersCollection, "insert", time.Now())

	err = r.col.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, fmt.Errorf("users: lookup %s: %w", user.Email, err)
	}

	if user.Role == "" {
		user.Role = auth.RoleUser
	}
	user.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("users: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return true, nil
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	defer metrics.ObserveMongoOp(database.UsersCollection, "find", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("users: find %s: %w", email, err)
	}
	return user, nil
}

// RoleByEmail returns just the role field for the admin gate.
func (r *UserRepository) RoleByEmail(ctx context.Context, email string) (string, error) {
	defer metrics.ObserveMongoOp(database.UsersCollection, "find", time.Now())

	var doc struct {
		Role string `bson:"role"`
	}
	opts := options.FindOne().SetProjection(bson.M{"role": 1})
	err := r.col.FindOne(ctx, bson.M{"email": email}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", apperr.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("users: role of %s: %w", email, err)
	}
	return doc.Role, nil
}

// All returns every user record.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	defer metrics.ObserveMongoOp(database.UsersCollection, "find", time.Now())

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("users: list: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("users: decode: %w", err)
	}
	return users, nil
}
