package store

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id       BIGSERIAL PRIMARY KEY,
		name     TEXT NOT NULL,
		location TEXT NOT NULL,
		cuisine  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id            BIGSERIAL PRIMARY KEY,
		restaurant_id BIGINT NOT NULL REFERENCES restaurants (id),
		order_amount  NUMERIC(10,2) NOT NULL,
		order_time    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS orders_restaurant_time_idx ON orders (restaurant_id, order_time)`,
	`CREATE INDEX IF NOT EXISTS orders_time_idx ON orders (order_time)`,
	`CREATE INDEX IF NOT EXISTS restaurants_cuisine_idx ON restaurants (cuisine)`,
	`CREATE INDEX IF NOT EXISTS restaurants_location_idx ON restaurants (location)`,
}

// Migrate creates the tables and indexes if they do not exist.
func Migrate(ctx context.Context, db DBTX) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

// ResetSequences moves the id sequences past rows inserted with explicit ids.
func ResetSequences(ctx context.Context, db DBTX) error {
	for _, table := range []string{"restaurants", "orders"} {
		_, err := db.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`,
			table))
		if err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}
	return nil
}

// Truncate empties both tables and restarts their id sequences.
func Truncate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, `TRUNCATE orders, restaurants RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return nil
}
