package order

import (
	"fmt"
	"time"

	"github.com/MikeMC777/restaurant-analytics/internal/money"
	"github.com/MikeMC777/restaurant-analytics/internal/params"
)

// ImportRecord is one entry of the orders seed file.
// swagger:model ImportRecord
type ImportRecord struct {
	RestaurantID int64       `json:"restaurant_id" example:"101"`
	OrderAmount  money.Money `json:"order_amount"  example:"250.50"`
	OrderTime    string      `json:"order_time"    example:"2025-06-22 13:15:00"`
}

// ToOrder parses the timestamp in loc.
func (r ImportRecord) ToOrder(loc *time.Location) (Order, error) {
	if r.RestaurantID <= 0 {
		return Order{}, fmt.Errorf("restaurant_id must be positive, got %d", r.RestaurantID)
	}
	t, _, err := params.ParseTime(r.OrderTime, loc)
	if err != nil {
		return Order{}, err
	}
	return Order{RestaurantID: r.RestaurantID, OrderAmount: r.OrderAmount, OrderTime: t}, nil
}
