package analytics

import (
	"time"

	"github.com/MikeMC777/restaurant-analytics/internal/money"
	"github.com/MikeMC777/restaurant-analytics/internal/restaurant"
)

// HourBucket is the order count and revenue of one restaurant for one local
// hour of one local day. Orders and Revenue cover the whole hour; the InRange
// pair counts only the orders inside the requested range.
type HourBucket struct {
	Day            time.Time
	Hour           int
	Orders         int64
	Revenue        money.Money
	InRange        int64
	InRangeRevenue money.Money
}

// TrendDay is one calendar day with at least one order.
// swagger:model TrendDay
type TrendDay struct {
	Date          string      `json:"date" example:"2025-06-22"`
	OrdersCount   int64       `json:"ordersCount" example:"2"`
	Revenue       money.Money `json:"revenue" swaggertype:"number" example:"350.50"`
	AvgOrderValue money.Money `json:"avgOrderValue" swaggertype:"number" example:"175.25"`
	// hour of day (0-23) with the most orders; the lowest hour wins a tie
	PeakHour int `json:"peakHour" example:"13"`
}

// swagger:model TrendSummary
type Summary struct {
	TotalOrders   int64       `json:"totalOrders"`
	TotalRevenue  money.Money `json:"totalRevenue" swaggertype:"number"`
	AvgOrderValue money.Money `json:"avgOrderValue" swaggertype:"number"`
}

// swagger:model TrendsReport
type TrendsReport struct {
	Restaurant restaurant.Restaurant `json:"restaurant"`
	Trends     []TrendDay            `json:"trends"`
	Summary    Summary               `json:"summary"`
}

// RestaurantRevenue is one row of the top restaurants ranking.
// swagger:model RestaurantRevenue
type RestaurantRevenue struct {
	Restaurant    restaurant.Ref `json:"restaurant"`
	TotalRevenue  money.Money    `json:"total_revenue" swaggertype:"number"`
	TotalOrders   int64          `json:"total_orders"`
	AvgOrderValue money.Money    `json:"avg_order_value" swaggertype:"number"`
}

// OrderRow is an order with its restaurant; Restaurant is nil for orders
// whose restaurant no longer exists.
// swagger:model OrderRow
type OrderRow struct {
	ID           int64           `json:"id"`
	RestaurantID int64           `json:"restaurant_id"`
	OrderTime    time.Time       `json:"order_time"`
	OrderAmount  money.Money     `json:"order_amount" swaggertype:"number"`
	Restaurant   *restaurant.Ref `json:"restaurant"`
}

// swagger:model FilteredPage
type FilteredPage struct {
	Data        []OrderRow `json:"data"`
	Total       int64      `json:"total"`
	PerPage     int        `json:"per_page"`
	CurrentPage int        `json:"current_page"`
	LastPage    int64      `json:"last_page"`
}
