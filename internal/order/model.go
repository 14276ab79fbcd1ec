package order

import (
	"time"

	"github.com/MikeMC777/restaurant-analytics/internal/money"
)

// Order is one immutable order row.
type Order struct {
	ID           int64       `json:"id"`
	RestaurantID int64       `json:"restaurant_id"`
	OrderAmount  money.Money `json:"order_amount" swaggertype:"number"` // NUMERIC(10,2)
	OrderTime    time.Time   `json:"order_time"`
}

// Totals is orders_count / total_revenue over a set of orders.
func Totals(orders []Order) (count int, revenue money.Money) {
	revenue = money.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.OrderAmount)
	}
	return len(orders), revenue
}
