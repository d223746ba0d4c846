// Package server wires configuration, storage, cache, and routes into a
// running HTTP server. All collaborators are constructed here once and
// passed down explicitly.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitebasket/bitebasket/app/controllers"
	"github.com/bitebasket/bitebasket/app/repositories"
	"github.com/bitebasket/bitebasket/app/routes"
	"github.com/bitebasket/bitebasket/config"
	"github.com/bitebasket/bitebasket/pkg/cache"
	"github.com/bitebasket/bitebasket/pkg/database"
	"github.com/bitebasket/bitebasket/pkg/logger"
	"github.com/bitebasket/bitebasket/pkg/metrics"
	"github.com/bitebasket/bitebasket/pkg/middleware"
	"github.com/bitebasket/bitebasket/pkg/reqid"
	"github.com/bitebasket/bitebasket/pkg/router"
)

// Start boots the API and blocks until SIGINT/SIGTERM, then shuts the
// server down gracefully.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx := context.Background()

	db, err := database.Connect(ctx)
	if err != nil {
		return err
	}
	defer database.Disconnect(context.Background(), db) //nolint:errcheck

	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	// A dead Redis is only a slower API, never a down one.
	if err := cache.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, serving without cache", "error", err)
	}

	// Persist application logs into Mongo alongside stdout when enabled.
	var mongoLogs *logger.MongoHandler
	if config.Get("LOG_TO_MONGO", "") == "true" {
		mongoLogs = logger.NewMongoHandler(db.Collection(database.LogsCollection))
		logger.L = slog.New(logger.NewMultiHandler(logger.L.Handler(), mongoLogs))
		slog.SetDefault(logger.L)
		defer mongoLogs.Close()
	}

	userRepo := repositories.NewUserRepository(db)
	foodRepo := repositories.NewFoodRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions(config.CORSOrigins())),
	)

	routes.RegisterAPI(r, routes.Deps{
		Auth:   controllers.NewAuthController(),
		Users:  controllers.NewUserController(userRepo),
		Foods:  controllers.NewFoodController(foodRepo),
		Orders: controllers.NewOrderController(orderRepo, userRepo),
		Roles:  userRepo,
	})

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
