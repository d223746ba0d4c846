package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line of an order.
type OrderItem struct {
	FoodID   string  `bson:"foodId,omitempty" json:"foodId,omitempty"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Order belongs to the user whose email matches BuyerEmail. CreatedAt is
// always assigned by the server at insert time, never taken from the body.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BuyerEmail string             `bson:"buyerEmail" json:"buyerEmail"`
	Items      []OrderItem        `bson:"items" json:"items"`
	Total      float64            `bson:"total" json:"total"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
