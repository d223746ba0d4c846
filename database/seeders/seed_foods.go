package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitebasket/bitebasket/app/models"
	"github.com/bitebasket/bitebasket/pkg/collection"
	"github.com/bitebasket/bitebasket/pkg/database"
)

func init() {
	Register("starter-foods", SeedStarterFoods)
}

var starterFoods = []models.Food{
	{Name: "Margherita Pizza", Price: 9.99, Image: "https://img.bitebasket.dev/margherita.jpg", Category: "pizza"},
	{Name: "Pepperoni Pizza", Price: 11.49, Image: "https://img.bitebasket.dev/pepperoni.jpg", Category: "pizza"},
	{Name: "Classic Burger", Price: 8.50, Image: "https://img.bitebasket.dev/burger.jpg", Category: "burger"},
	{Name: "Caesar Salad", Price: 6.75, Image: "https://img.bitebasket.dev/caesar.jpg", Category: "salad"},
	{Name: "Tiramisu", Price: 5.25, Image: "https://img.bitebasket.dev/tiramisu.jpg", Category: "dessert"},
}

// SeedStarterFoods inserts a small menu so a fresh install has something
// to list. Runs only when the foods collection is empty.
func SeedStarterFoods(ctx context.Context, db *mongo.Database) error {
	col := db.Collection(database.FoodsCollection)

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	now := time.Now().UTC()
	docs := collection.Map(starterFoods, func(f models.Food) interface{} {
		f.CreatedAt = now
		return f
	})

	_, err = col.InsertMany(ctx, docs)
	return err
}
