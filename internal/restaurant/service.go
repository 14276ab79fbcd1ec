package restaurant

import (
	"context"
	"fmt"

	"github.com/MikeMC777/restaurant-analytics/internal/order"
	"github.com/MikeMC777/restaurant-analytics/internal/paging"
)

type Service struct {
	repo   Repository
	orders order.Repository
}

func NewService(repo Repository, orders order.Repository) *Service {
	return &Service{repo: repo, orders: orders}
}

// List filters, sorts and pages restaurants.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResponse, error) {
	p := q.Paging()
	q.Page, q.PerPage = p.Page, p.PerPage

	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Restaurant{}
	}
	return &ListResponse{Data: rows, Pagination: paging.NewMeta(p, total, len(rows))}, nil
}

// Get returns the restaurant, all of its orders and totals over them.
// ErrNotFound is returned as is.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	rest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("orders of restaurant %d: %w", id, err)
	}
	if orders == nil {
		orders = []order.Order{}
	}
	count, revenue := order.Totals(orders)
	return &Detail{
		Restaurant:   *rest,
		Orders:       orders,
		OrdersCount:  count,
		TotalRevenue: revenue,
	}, nil
}
