package restaurant

import (
	"github.com/MikeMC777/restaurant-analytics/internal/money"
	"github.com/MikeMC777/restaurant-analytics/internal/order"
	"github.com/MikeMC777/restaurant-analytics/internal/paging"
)

type Restaurant struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Cuisine  string `json:"cuisine"`
}

// Ref is the short form embedded in analytics rows.
// swagger:model RestaurantRef
type Ref struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (r Restaurant) Ref() Ref { return Ref{ID: r.ID, Name: r.Name, Location: r.Location} }

// ListResponse is a page of restaurants.
// swagger:model
type ListResponse struct {
	Data       []Restaurant `json:"data"`
	Pagination paging.Meta  `json:"pagination"`
}

// Detail is one restaurant with all of its orders.
// swagger:model
type Detail struct {
	Restaurant   Restaurant    `json:"restaurant"`
	Orders       []order.Order `json:"orders"`
	OrdersCount  int           `json:"orders_count"`
	TotalRevenue money.Money   `json:"total_revenue" swaggertype:"number"`
}

// DetailResponse wraps Detail the way the listing wraps its rows.
// swagger:model
type DetailResponse struct {
	Data Detail `json:"data"`
}
