package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/MikeMC777/restaurant-analytics/docs"
	"github.com/MikeMC777/restaurant-analytics/internal/analytics"
	"github.com/MikeMC777/restaurant-analytics/internal/config"
	"github.com/MikeMC777/restaurant-analytics/internal/health"
	"github.com/MikeMC777/restaurant-analytics/internal/logging"
	"github.com/MikeMC777/restaurant-analytics/internal/order"
	"github.com/MikeMC777/restaurant-analytics/internal/restaurant"
	"github.com/MikeMC777/restaurant-analytics/internal/store"
)

// @title           Restaurant Analytics API
// @version         1.0
// @description     Read-only restaurant listings and order analytics.
// @BasePath        /api
// @securityDefinitions.basic  BasicAuth
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("analytics-service stopped")
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	if !cfg.App.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := store.Open(ctx, cfg.DB.DSN, cfg.DB.MaxConns)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer pool.Close()

	h := store.Handle{DB: pool, Timeout: cfg.DB.QueryTimeout, Location: cfg.App.Timezone}
	restaurants := restaurant.NewPGRepo(h)
	restSvc := restaurant.NewService(restaurants, order.NewPGRepo(h))
	analyticsSvc := analytics.NewService(analytics.NewPGRepo(h), restaurants)

	hs := health.New(logger)
	if err := hs.Check(ctx, pool); err != nil {
		logger.Warn().Err(err).Msg("store not ready")
	}
	go func() {
		if err := hs.Serve(cfg.GRPC.HealthAddr); err != nil {
			logger.Error().Err(err).Msg("grpc health server")
		}
	}()

	docs.SwaggerInfo.BasePath = cfg.HTTP.APIPrefix
	router := newRouter(deps{
		restaurants: restSvc,
		analytics:   analyticsSvc,
		store:       pool,
		loc:         h.Loc(),
		log:         logger.With().Str("component", "http").Logger(),
		apiPrefix:   cfg.HTTP.APIPrefix,
		corsOrigins: cfg.HTTP.CORSOrigins,
		authUser:    cfg.Auth.User,
		authHash:    []byte(cfg.Auth.PasswordHash),
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", cfg.HTTP.Addr).
			Str("prefix", cfg.HTTP.APIPrefix).
			Str("tz", h.Zone()).
			Msg("analytics-service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		hs.Stop()
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info().Msg("shutting down")
	hs.SetServing(false)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	hs.Stop()
	return err
}
