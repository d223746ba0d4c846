package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bitebasket/bitebasket/app/models"
	"github.com/bitebasket/bitebasket/pkg/bind"
	"github.com/bitebasket/bitebasket/pkg/logger"
	"github.com/bitebasket/bitebasket/pkg/response"
)

// UserController serves registration and user lookups.
type UserController struct {
	users UserStore
}

func NewUserController(users UserStore) *UserController {
	return &UserController{users: users}
}

type registerInput struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name"`
}

// Register handles POST /users. Registering an email that already exists
// is not an error: the existing record stays as-is and the response says
// so, which makes first-login registration from the frontend idempotent.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerInput
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user := models.User{Email: body.Email, Name: body.Name}
	created, err := c.users.Create(r.Context(), &user)
	if err != nil {
		logger.WithCtx(r.Context()).Error("user registration failed", "error", err)
		response.FromError(w, err)
		return
	}

	if !created {
		response.Success(w, map[string]string{"message": "user already exists"})
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", "email", user.Email)
	response.Created(w, user)
}

// Show handles GET /users/{email}.
func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := c.users.FindByEmail(r.Context(), email)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, user)
}

// Index handles GET /users (admin only; gated in the route table).
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("user listing failed", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, users)
}
