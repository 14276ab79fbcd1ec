package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/restaurant-analytics/internal/store"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]Order, error)
}

type PGRepo struct{ h store.Handle }

func NewPGRepo(h store.Handle) *PGRepo { return &PGRepo{h: h} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := r.h.Context(ctx)
	defer cancel()

	err := r.h.DB.QueryRow(ctx, `
		INSERT INTO orders (restaurant_id, order_amount, order_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`, o.RestaurantID, o.OrderAmount.String(), o.OrderTime).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByRestaurant returns every order of a restaurant, newest first.
func (r *PGRepo) ListByRestaurant(ctx context.Context, restaurantID int64) ([]Order, error) {
	ctx, cancel := r.h.Context(ctx)
	defer cancel()

	rows, err := r.h.DB.Query(ctx, `
		SELECT id, restaurant_id, order_amount::text, order_time
		FROM orders
		WHERE restaurant_id = $1
		ORDER BY order_time DESC, id DESC
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.RestaurantID, &o.OrderAmount, &o.OrderTime); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.OrderTime = o.OrderTime.In(r.h.Loc())
		out = append(out, o)
	}
	return out, rows.Err()
}

// Count returns the number of stored orders.
func (r *PGRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.h.Context(ctx)
	defer cancel()

	var n int64
	if err := r.h.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// Import bulk loads orders with COPY. Ids are assigned by the sequence.
func (r *PGRepo) Import(ctx context.Context, orders []Order) (int64, error) {
	n, err := r.h.DB.CopyFrom(ctx,
		pgx.Identifier{"orders"},
		[]string{"restaurant_id", "order_amount", "order_time"},
		pgx.CopyFromSlice(len(orders), func(i int) ([]any, error) {
			o := orders[i]
			return []any{o.RestaurantID, o.OrderAmount.String(), o.OrderTime}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy orders: %w", err)
	}
	return n, nil
}
