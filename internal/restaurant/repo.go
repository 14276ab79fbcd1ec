// Package restaurant provides the restaurant listing and detail queries.
package restaurant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/restaurant-analytics/internal/store"
)

var (
	ErrNotFound = errors.New("restaurant not found")
)

type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	GetByID(ctx context.Context, id int64) (*Restaurant, error)
	// List returns one page of matching rows and the number of matching rows.
	List(ctx context.Context, q ListQuery) ([]Restaurant, int64, error)
}

type PGRepo struct{ h store.Handle }

func NewPGRepo(h store.Handle) *PGRepo { return &PGRepo{h: h} }

// Create inserts r. A zero ID is assigned by the sequence; an explicit ID that
// already exists leaves the stored row untouched.
func (r *PGRepo) Create(ctx context.Context, rest *Restaurant) error {
	ctx, cancel := r.h.Context(ctx)
	defer cancel()

	if rest.ID == 0 {
		err := r.h.DB.QueryRow(ctx, `
			INSERT INTO restaurants (name, location, cuisine)
			VALUES ($1, $2, $3)
			RETURNING id
		`, rest.Name, rest.Location, rest.Cuisine).Scan(&rest.ID)
		if err != nil {
			return fmt.Errorf("insert restaurant: %w", err)
		}
		return nil
	}

	_, err := r.h.DB.Exec(ctx, `
		INSERT INTO restaurants (id, name, location, cuisine)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, rest.ID, rest.Name, rest.Location, rest.Cuisine)
	if err != nil {
		return fmt.Errorf("insert restaurant %d: %w", rest.ID, err)
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Restaurant, error) {
	ctx, cancel := r.h.Context(ctx)
	defer cancel()

	var rest Restaurant
	err := r.h.DB.QueryRow(ctx, `
		SELECT id, name, location, cuisine
		FROM restaurants WHERE id = $1
	`, id).Scan(&rest.ID, &rest.Name, &rest.Location, &rest.Cuisine)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return &rest, nil
}

func (r *PGRepo) List(ctx context.Context, q ListQuery) ([]Restaurant, int64, error) {
	ctx, cancel := r.h.Context(ctx)
	defer cancel()

	countSQL, countArgs, err := countQuery(q).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int64
	if err := r.h.DB.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count restaurants: %w", err)
	}

	out := []Restaurant{}
	if total == 0 {
		return out, 0, nil
	}

	pageSQL, pageArgs, err := pageQuery(q).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}
	rows, err := r.h.DB.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rest Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Location, &rest.Cuisine); err != nil {
			return nil, 0, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, rest)
	}
	return out, total, rows.Err()
}
