// Package analytics computes order trends, revenue rankings and filtered
// order listings.
package analytics

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/MikeMC777/restaurant-analytics/internal/paging"
	"github.com/MikeMC777/restaurant-analytics/internal/params"
	"github.com/MikeMC777/restaurant-analytics/internal/restaurant"
	"github.com/MikeMC777/restaurant-analytics/internal/store"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository interface {
	// HourlyBuckets returns one row per (local day, local hour) with orders,
	// ordered by day then hour. Buckets span every calendar day the range
	// touches; InRange counts the orders inside rng itself.
	HourlyBuckets(ctx context.Context, restaurantID int64, rng params.DateRange) ([]HourBucket, error)
	TopRestaurants(ctx context.Context, rng params.DateRange, limit int) ([]RestaurantRevenue, error)
	CountOrders(ctx context.Context, f OrderFilter) (int64, error)
	ListOrders(ctx context.Context, f OrderFilter, p paging.Params) ([]OrderRow, error)
}

type PGRepo struct{ h store.Handle }

func NewPGRepo(h store.Handle) *PGRepo { return &PGRepo{h: h} }

func hourlyQuery(restaurantID int64, rng params.DateRange, loc *time.Location) sq.SelectBuilder {
	zone := loc.String()
	days := rng.WholeDays(loc)
	f := OrderFilter{Range: &days, RestaurantID: &restaurantID}
	return psql.Select().
		Column(sq.Expr("(o.order_time AT TIME ZONE ?)::date AS day", zone)).
		Column(sq.Expr("EXTRACT(HOUR FROM o.order_time AT TIME ZONE ?)::int AS hour", zone)).
		Column("COUNT(*) AS orders").
		Column("SUM(o.order_amount)::text AS revenue").
		Column(sq.Expr("COUNT(*) FILTER (WHERE o.order_time >= ? AND o.order_time <= ?) AS range_orders", rng.Start, rng.End)).
		Column(sq.Expr("COALESCE(SUM(o.order_amount) FILTER (WHERE o.order_time >= ? AND o.order_time <= ?), 0)::text AS range_revenue", rng.Start, rng.End)).
		From("orders o").
		Where(f.Predicate(zone)).
		GroupBy("1", "2").
		OrderBy("1", "2")
}

func topQuery(rng params.DateRange, zone string, limit int) sq.SelectBuilder {
	f := OrderFilter{Range: &rng}
	return psql.
		Select("r.id", "r.name", "r.location", "COUNT(o.id) AS total_orders", "SUM(o.order_amount)::text AS total_revenue").
		From("restaurants r").
		Join("orders o ON o.restaurant_id = r.id").
		Where(f.Predicate(zone)).
		GroupBy("r.id", "r.name", "r.location").
		OrderBy("SUM(o.order_amount) DESC", "r.id ASC").
		Limit(uint64(limit))
}

// filteredFrom is shared by the page and the count so both see the same rows.
func filteredFrom(f OrderFilter, zone string, columns ...string) sq.SelectBuilder {
	return psql.
		Select(columns...).
		From("orders o").
		LeftJoin("restaurants r ON r.id = o.restaurant_id").
		Where(f.Predicate(zone))
}

func filteredPageQuery(f OrderFilter, p paging.Params, zone string) sq.SelectBuilder {
	return filteredFrom(f, zone,
		"o.id", "o.restaurant_id", "o.order_amount::text", "o.order_time",
		"r.id", "r.name", "r.location",
	).
		OrderBy("o.order_time DESC", "o.id DESC").
		Limit(p.Limit()).
		Offset(p.Offset())
}

func filteredCountQuery(f OrderFilter, zone string) sq.SelectBuilder {
	return filteredFrom(f, zone, "COUNT(*)")
}

func (r *PGRepo) HourlyBuckets(ctx context.Context, restaurantID int64, rng params.DateRange) ([]HourBucket, error) {
	ctx, cancel := r.h.Context(ctx)
	defer cancel()

	query, args, err := hourlyQuery(restaurantID, rng, r.h.Loc()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build hourly query: %w", err)
	}
	rows, err := r.h.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("hourly buckets for %d: %w", restaurantID, err)
	}
	defer rows.Close()

	var out []HourBucket
	for rows.Next() {
		var b HourBucket
		if err := rows.Scan(&b.Day, &b.Hour, &b.Orders, &b.Revenue, &b.InRange, &b.InRangeRevenue); err != nil {
			return nil, fmt.Errorf("scan hourly bucket: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PGRepo) TopRestaurants(ctx context.Context, rng params.DateRange, limit int) ([]RestaurantRevenue, error) {
	ctx, cancel := r.h.Context(ctx)
	defer cancel()

	query, args, err := topQuery(rng, r.h.Zone(), limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top query: %w", err)
	}
	rows, err := r.h.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top restaurants: %w", err)
	}
	defer rows.Close()

	out := []RestaurantRevenue{}
	for rows.Next() {
		var rr RestaurantRevenue
		if err := rows.Scan(&rr.Restaurant.ID, &rr.Restaurant.Name, &rr.Restaurant.Location, &rr.TotalOrders, &rr.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan top restaurant: %w", err)
		}
		rr.AvgOrderValue = rr.TotalRevenue.Avg(rr.TotalOrders)
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *PGRepo) CountOrders(ctx context.Context, f OrderFilter) (int64, error) {
	ctx, cancel := r.h.Context(ctx)
	defer cancel()

	query, args, err := filteredCountQuery(f, r.h.Zone()).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var total int64
	if err := r.h.DB.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

func (r *PGRepo) ListOrders(ctx context.Context, f OrderFilter, p paging.Params) ([]OrderRow, error) {
	ctx, cancel := r.h.Context(ctx)
	defer cancel()

	query, args, err := filteredPageQuery(f, p, r.h.Zone()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build orders query: %w", err)
	}
	rows, err := r.h.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	loc := r.h.Loc()
	out := []OrderRow{}
	for rows.Next() {
		var (
			o        OrderRow
			restID   pgtype.Int8
			restName pgtype.Text
			restLoc  pgtype.Text
		)
		if err := rows.Scan(&o.ID, &o.RestaurantID, &o.OrderAmount, &o.OrderTime, &restID, &restName, &restLoc); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.OrderTime = o.OrderTime.In(loc)
		if restID.Valid {
			o.Restaurant = &restaurant.Ref{ID: restID.Int64, Name: restName.String, Location: restLoc.String}
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
