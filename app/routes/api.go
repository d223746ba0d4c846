package routes

import (
	"net/http"

	"github.com/bitebasket/bitebasket/app/controllers"
	"github.com/bitebasket/bitebasket/pkg/metrics"
	"github.com/bitebasket/bitebasket/pkg/middleware"
	"github.com/bitebasket/bitebasket/pkg/router"
)

// Deps carries the constructed controllers and the role lookup used by
// the admin gate. Everything is built once at startup and injected here;
// no handler reaches for globals.
type Deps struct {
	Auth   *controllers.AuthController
	Users  *controllers.UserController
	Foods  *controllers.FoodController
	Orders *controllers.OrderController
	Roles  middleware.RoleLookup
}

// RegisterAPI mounts every route. Guard composition per route:
// public, authenticated (RequireAuth), or admin (RequireAuth then
// RequireAdmin).
func RegisterAPI(r *router.Router, d Deps) {
	admin := []router.Middleware{middleware.RequireAuth, middleware.RequireAdmin(d.Roles)}

	r.Get("/", "health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("bitebasket api is running"))
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	r.Post("/jwt", "auth.token", d.Auth.IssueToken)

	r.Post("/users", "users.register", d.Users.Register)
	r.Get("/users/{email}", "users.show", d.Users.Show)
	r.Get("/users", "users.index", d.Users.Index, admin...)

	r.Get("/foods", "foods.index", d.Foods.Index)
	r.Get("/foods/{id}", "foods.show", d.Foods.Show)
	r.Post("/foods", "foods.store", d.Foods.Store, admin...)
	r.Delete("/foods/{id}", "foods.destroy", d.Foods.Destroy, admin...)

	orders := r.Group("/orders", middleware.RequireAuth)
	orders.Post("/", "orders.store", d.Orders.Store)
	orders.Get("/", "orders.index", d.Orders.Index)
	orders.Delete("/{id}", "orders.destroy", d.Orders.Destroy)
}
