package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bitebasket/bitebasket/app/models"
	"github.com/bitebasket/bitebasket/pkg/apperr"
	"github.com/bitebasket/bitebasket/pkg/auth"
	"github.com/bitebasket/bitebasket/pkg/bind"
	"github.com/bitebasket/bitebasket/pkg/collection"
	"github.com/bitebasket/bitebasket/pkg/logger"
	"github.com/bitebasket/bitebasket/pkg/response"
)

// OrderController serves order creation, listing, and deletion. Every
// route here sits behind RequireAuth; ownership checks are evaluated
// against what is stored, never against what the client claims.
type OrderController struct {
	orders OrderStore
	users  UserStore
}

func NewOrderController(orders OrderStore, users UserStore) *OrderController {
	return &OrderController{orders: orders, users: users}
}

type orderInput struct {
	BuyerEmail string             `json:"buyerEmail" validate:"required"`
	Items      []models.OrderItem `json:"items" validate:"required"`
}

// Store handles POST /orders. The total is computed server-side from the
// submitted line items and the creation timestamp is assigned by the
// repository.
//
// The buyer email is taken from the body as submitted and is not
// cross-checked against the authenticated caller; reads and deletes do
// enforce ownership against the stored value.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	var body orderInput
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order := models.Order{
		BuyerEmail: body.BuyerEmail,
		Items:      body.Items,
		Total: collection.Sum(body.Items, func(it models.OrderItem) float64 {
			return it.Price * float64(it.Quantity)
		}),
	}

	id, err := c.orders.Create(r.Context(), &order)
	if err != nil {
		logger.WithCtx(r.Context()).Error("order creation failed", "error", err)
		response.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("order created", "id", id, "buyer", order.BuyerEmail)
	response.Created(w, map[string]string{"insertedId": id})
}

// Index handles GET /orders?email=… With no email parameter the caller
// gets their own orders. Asking for someone else's orders requires the
// admin role.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	caller := auth.EmailFromCtx(r.Context())

	email := r.URL.Query().Get("email")
	if email == "" {
		email = caller
	}

	if email != caller && !c.callerIsAdmin(r) {
		response.FromError(w, apperr.ErrForbidden)
		return
	}

	orders, err := c.orders.ListByBuyer(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("order listing failed", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, orders)
}

// Destroy handles DELETE /orders/{id}. The order is fetched first and its
// stored buyer email compared against the caller, so a forged query can
// never reach someone else's order.
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := c.orders.FindByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	caller := auth.EmailFromCtx(r.Context())
	if order.BuyerEmail != caller && !c.callerIsAdmin(r) {
		response.FromError(w, apperr.ErrForbidden)
		return
	}

	count, err := c.orders.DeleteByID(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("order deleted", "id", id, "by", caller)
	response.Success(w, map[string]int64{"deletedCount": count})
}

// callerIsAdmin looks the caller's role up fresh from the user store.
// A missing user record simply means not an admin.
func (c *OrderController) callerIsAdmin(r *http.Request) bool {
	email := auth.EmailFromCtx(r.Context())
	if email == "" {
		return false
	}

	role, err := c.users.RoleByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			logger.WithCtx(r.Context()).Error("role lookup failed", "error", err)
		}
		return false
	}
	return auth.IsAdminRole(role)
}
