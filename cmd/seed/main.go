package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MikeMC777/restaurant-analytics/internal/config"
	"github.com/MikeMC777/restaurant-analytics/internal/logging"
	"github.com/MikeMC777/restaurant-analytics/internal/order"
	"github.com/MikeMC777/restaurant-analytics/internal/restaurant"
	"github.com/MikeMC777/restaurant-analytics/internal/store"
)

func main() {
	file := flag.String("file", "data/orders.json", "orders JSON file")
	reset := flag.Bool("reset", false, "truncate restaurants and orders before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger = logger.With().Str("component", "seed").Logger()

	if err := run(cfg, logger, *file, *reset); err != nil {
		logger.Fatal().Err(err).Msg("seed failed")
	}
}

func run(cfg config.Config, logger zerolog.Logger, file string, reset bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	recs, err := readRecords(f)
	if err != nil {
		return err
	}

	pool, err := store.Open(ctx, cfg.DB.DSN, cfg.DB.MaxConns)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer pool.Close()

	if err := store.Migrate(ctx, pool); err != nil {
		return err
	}
	if reset {
		if err := store.Truncate(ctx, pool); err != nil {
			return err
		}
		logger.Info().Msg("tables truncated")
	}

	// seeding is one bulk COPY; give it more room than a single API query
	h := store.Handle{DB: pool, Timeout: 10 * cfg.DB.QueryTimeout, Location: cfg.App.Timezone}
	s := seeder{
		restaurants: restaurant.NewPGRepo(h),
		orders:      order.NewPGRepo(h),
		loc:         h.Loc(),
		log:         logger,
	}
	st, err := s.run(ctx, recs)
	if err != nil {
		return err
	}
	if err := store.ResetSequences(ctx, pool); err != nil {
		return err
	}

	logger.Info().
		Int("restaurants", st.Restaurants).
		Int64("orders", st.Imported).
		Int("invalid", st.Invalid).
		Int("unknown_restaurant", st.Unknown).
		Str("file", file).
		Msg("seed complete")
	return nil
}
