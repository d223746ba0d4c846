package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bitebasket/bitebasket/app/models"
	"github.com/bitebasket/bitebasket/pkg/bind"
	"github.com/bitebasket/bitebasket/pkg/cache"
	"github.com/bitebasket/bitebasket/pkg/logger"
	"github.com/bitebasket/bitebasket/pkg/response"
)

// foodCacheTTL bounds staleness of cached listings; invalidation on
// create/delete covers the common case, the TTL covers the rest.
const foodCacheTTL = 5 * time.Minute

// FoodController serves the menu catalogue.
type FoodController struct {
	foods FoodStore
}

func NewFoodController(foods FoodStore) *FoodController {
	return &FoodController{foods: foods}
}

type foodInput struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
	Image       string  `json:"image" validate:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func foodCacheKey(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		c = "all"
	}
	return "foods:" + c
}

// Index handles GET /foods?category=… Listings are cached in Redis per
// category; a cold cache falls through to Mongo.
func (c *FoodController) Index(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	key := foodCacheKey(category)

	var cached []models.Food
	if cache.Get(r.Context(), key, &cached) {
		response.Success(w, cached)
		return
	}

	foods, err := c.foods.List(r.Context(), category)
	if err != nil {
		logger.WithCtx(r.Context()).Error("food listing failed", "error", err)
		response.FromError(w, err)
		return
	}

	if err := cache.Set(r.Context(), key, foods, foodCacheTTL); err != nil {
		logger.WithCtx(r.Context()).Warn("food cache write failed", "error", err)
	}

	response.Success(w, foods)
}

// Show handles GET /foods/{id}.
func (c *FoodController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	food, err := c.foods.FindByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, food)
}

// Store handles POST /foods (admin only; gated in the route table).
// Missing name, price, or image rejects the request before anything is
// persisted.
func (c *FoodController) Store(w http.ResponseWriter, r *http.Request) {
	var body foodInput
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	food := models.Food{
		Name:        body.Name,
		Price:       body.Price,
		Image:       body.Image,
		Category:    body.Category,
		Description: body.Description,
	}

	id, err := c.foods.Create(r.Context(), &food)
	if err != nil {
		logger.WithCtx(r.Context()).Error("food creation failed", "error", err)
		response.FromError(w, err)
		return
	}

	c.invalidateListings(r, food.Category)
	logger.WithCtx(r.Context()).Info("food created", "id", id, "name", food.Name)
	response.Created(w, map[string]string{"insertedId": id})
}

// Destroy handles DELETE /foods/{id} (admin only; gated in the route
// table). The food is fetched first so a missing id is a 404, and so the
// right category listing can be invalidated.
func (c *FoodController) Destroy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	food, err := c.foods.FindByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	count, err := c.foods.DeleteByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	c.invalidateListings(r, food.Category)
	logger.WithCtx(r.Context()).Info("food deleted", "id", id)
	response.Success(w, map[string]int64{"deletedCount": count})
}

func (c *FoodController) invalidateListings(r *http.Request, category string) {
	keys := []string{foodCacheKey("")}
	if k := foodCacheKey(category); k != keys[0] {
		keys = append(keys, k)
	}
	if err := cache.Del(r.Context(), keys...); err != nil {
		logger.WithCtx(r.Context()).Warn("food cache invalidation failed", "error", err)
	}
}
