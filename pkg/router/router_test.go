package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/bitebasket/bitebasket/pkg/router"
)

func TestGetRoute(t *testing.T) {
	r := router.New()
	r.Get("/ping", "ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("pong"))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "pong" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestURLParam(t *testing.T) {
	r := router.New()
	r.Get("/foods/{id}", "foods.show", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(chi.URLParam(req, "id")))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/foods/abc123", nil))

	if rec.Body.String() != "abc123" {
		t.Errorf("expected abc123, got %s", rec.Body.String())
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var order []string
	mw := func(label string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, label)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := router.New()
	g := r.Group("/orders", mw("group"))
	g.Get("/{id}", "orders.show", func(w http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
	}, mw("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))

	if len(order) != 3 || order[0] != "group" || order[1] != "route" || order[2] != "handler" {
		t.Errorf("unexpected call order: %v", order)
	}
}

func TestGroupRootPath(t *testing.T) {
	r := router.New()
	g := r.Group("/orders")
	g.Post("/", "orders.store", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", nil))

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Get("/", "health", func(http.ResponseWriter, *http.Request) {})
	r.Post("/jwt", "auth.token", func(http.ResponseWriter, *http.Request) {})
	g := r.Group("/orders")
	g.Delete("/{id}", "orders.destroy", func(http.ResponseWriter, *http.Request) {})

	routes := r.Routes()
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}

	byName := map[string]router.RouteInfo{}
	for _, info := range routes {
		byName[info.Name] = info
	}

	if byName["health"].Path != "/" {
		t.Errorf("health path = %s", byName["health"].Path)
	}
	if byName["auth.token"].Method != http.MethodPost {
		t.Errorf("auth.token method = %s", byName["auth.token"].Method)
	}
	if byName["orders.destroy"].Path != "/orders/{id}" {
		t.Errorf("orders.destroy path = %s", byName["orders.destroy"].Path)
	}
}

func TestUnnamedRouteNotListed(t *testing.T) {
	r := router.New()
	r.Get("/internal", "", func(http.ResponseWriter, *http.Request) {})

	if len(r.Routes()) != 0 {
		t.Error("unnamed routes must not appear in the listing")
	}
}
