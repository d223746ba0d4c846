package controllers

import (
	"context"

	"github.com/bitebasket/bitebasket/app/models"
)

// The controllers depend on these store interfaces rather than on the
// Mongo repositories directly, so handler logic is testable with
// in-memory fakes. The repositories package provides the real
// implementations; wiring happens once at startup.

type UserStore interface {
	Create(ctx context.Context, user *models.User) (created bool, err error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	All(ctx context.Context) ([]models.User, error)
}

type FoodStore interface {
	List(ctx context.Context, category string) ([]models.Food, error)
	FindByID(ctx context.Context, id string) (models.Food, error)
	Create(ctx context.Context, food *models.Food) (string, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) (string, error)
	ListByBuyer(ctx context.Context, email string) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (models.Order, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}
