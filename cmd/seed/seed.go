package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/MikeMC777/restaurant-analytics/internal/order"
	"github.com/MikeMC777/restaurant-analytics/internal/restaurant"
)

var defaultRestaurants = []restaurant.Restaurant{
	{ID: 101, Name: "Tandoori Treats", Location: "Bangalore", Cuisine: "North Indian"},
	{ID: 102, Name: "Sushi Bay", Location: "Mumbai", Cuisine: "Japanese"},
	{ID: 103, Name: "Pasta Palace", Location: "Delhi", Cuisine: "Italian"},
	{ID: 104, Name: "Burger Hub", Location: "Hyderabad", Cuisine: "American"},
}

type importer interface {
	Count(ctx context.Context) (int64, error)
	Import(ctx context.Context, orders []order.Order) (int64, error)
}

// errAlreadySeeded stops a second import from duplicating every order.
var errAlreadySeeded = errors.New("orders table is not empty; rerun with -reset to reseed")

type stats struct {
	Restaurants int
	Imported    int64
	Invalid     int
	Unknown     int
}

type seeder struct {
	restaurants restaurant.Repository
	orders      importer
	loc         *time.Location
	log         zerolog.Logger
}

func readRecords(r io.Reader) ([]order.ImportRecord, error) {
	var recs []order.ImportRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return recs, nil
}

// run inserts the fixed restaurants and bulk loads every record whose
// restaurant exists. Unparseable records and orders of unknown restaurants
// are counted and skipped. Nothing is written when orders already exist.
func (s seeder) run(ctx context.Context, recs []order.ImportRecord) (stats, error) {
	var st stats
	existing, err := s.orders.Count(ctx)
	if err != nil {
		return st, err
	}
	if existing > 0 {
		return st, fmt.Errorf("%w (%d orders)", errAlreadySeeded, existing)
	}

	for i := range defaultRestaurants {
		r := defaultRestaurants[i]
		if err := s.restaurants.Create(ctx, &r); err != nil {
			return st, err
		}
		st.Restaurants++
	}

	known := map[int64]bool{}
	batch := make([]order.Order, 0, len(recs))
	for i, rec := range recs {
		o, err := rec.ToOrder(s.loc)
		if err != nil {
			st.Invalid++
			s.log.Warn().Err(err).Int("record", i).Msg("skipping invalid order")
			continue
		}
		ok, seen := known[o.RestaurantID]
		if !seen {
			_, err := s.restaurants.GetByID(ctx, o.RestaurantID)
			switch {
			case errors.Is(err, restaurant.ErrNotFound):
				ok = false
			case err != nil:
				return st, err
			default:
				ok = true
			}
			known[o.RestaurantID] = ok
		}
		if !ok {
			st.Unknown++
			continue
		}
		batch = append(batch, o)
	}
	if st.Unknown > 0 {
		s.log.Warn().Int("orders", st.Unknown).Msg("skipped orders of unknown restaurants")
	}

	if len(batch) == 0 {
		return st, nil
	}
	n, err := s.orders.Import(ctx, batch)
	if err != nil {
		return st, err
	}
	st.Imported = n
	return st, nil
}
