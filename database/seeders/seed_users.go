package seeders

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitebasket/bitebasket/app/models"
	"github.com/bitebasket/bitebasket/config"
	"github.com/bitebasket/bitebasket/pkg/auth"
	"github.com/bitebasket/bitebasket/pkg/database"
)

func init() {
	Register("admin-user", SeedAdminUser)
}

// SeedAdminUser creates the initial super-admin account so the admin-only
// routes are reachable on a fresh database. The email comes from
// ADMIN_EMAIL; seeding is skipped when the account already exists.
func SeedAdminUser(ctx context.Context, db *mongo.Database) error {
	email := config.Get("ADMIN_EMAIL", "admin@bitebasket.dev")
	col := db.Collection(database.UsersCollection)

	err := col.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	_, err = col.InsertOne(ctx, adminUser(email))
	return err
}

// adminUser builds the super-admin document. CreatedAt is stamped here,
// same as the registration path does for regular users.
func adminUser(email string) models.User {
	return models.User{
		Email:     email,
		Name:      "Administrator",
		Role:      auth.RoleSuperAdmin,
		CreatedAt: time.Now().UTC(),
	}
}
