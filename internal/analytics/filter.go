package analytics

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MikeMC777/restaurant-analytics/internal/money"
	"github.com/MikeMC777/restaurant-analytics/internal/params"
)

// HourRange is an inclusive hour-of-day window, 0..23.
type HourRange struct {
	From int
	To   int
}

// OrderFilter is the set of optional predicates over the orders table
// (aliased o). Nil fields are not applied.
type OrderFilter struct {
	Range        *params.DateRange
	RestaurantID *int64
	MinAmount    *money.Money
	MaxAmount    *money.Money
	Hours        *HourRange
}

// Predicate renders the filter as one conjunction. zone is the IANA zone the
// hour window is evaluated in.
func (f OrderFilter) Predicate(zone string) sq.And {
	pred := sq.And{}
	if f.Range != nil {
		pred = append(pred,
			sq.GtOrEq{"o.order_time": f.Range.Start},
			sq.LtOrEq{"o.order_time": f.Range.End},
		)
	}
	if f.RestaurantID != nil {
		pred = append(pred, sq.Eq{"o.restaurant_id": *f.RestaurantID})
	}
	if f.MinAmount != nil {
		pred = append(pred, sq.GtOrEq{"o.order_amount": f.MinAmount.String()})
	}
	if f.MaxAmount != nil {
		pred = append(pred, sq.LtOrEq{"o.order_amount": f.MaxAmount.String()})
	}
	if f.Hours != nil {
		pred = append(pred, sq.Expr(
			"EXTRACT(HOUR FROM o.order_time AT TIME ZONE ?)::int BETWEEN ? AND ?",
			zone, f.Hours.From, f.Hours.To,
		))
	}
	return pred
}
