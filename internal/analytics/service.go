package analytics

import (
	"context"

	"github.com/MikeMC777/restaurant-analytics/internal/paging"
	"github.com/MikeMC777/restaurant-analytics/internal/params"
	"github.com/MikeMC777/restaurant-analytics/internal/restaurant"
)

// TopN is the size of the top restaurants ranking.
const TopN = 3

type Service struct {
	repo        Repository
	restaurants restaurant.Repository
}

func NewService(repo Repository, restaurants restaurant.Repository) *Service {
	return &Service{repo: repo, restaurants: restaurants}
}

// RestaurantTrends reports per-day orders, revenue and peak hour for one
// restaurant. Days without orders are left out. An unknown restaurant yields
// restaurant.ErrNotFound.
func (s *Service) RestaurantTrends(ctx context.Context, restaurantID int64, rng params.DateRange) (*TrendsReport, error) {
	rest, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	buckets, err := s.repo.HourlyBuckets(ctx, restaurantID, rng)
	if err != nil {
		return nil, err
	}
	days, summary := BuildTrends(buckets)
	return &TrendsReport{Restaurant: *rest, Trends: days, Summary: summary}, nil
}

// TopRestaurants ranks restaurants by revenue inside rng, highest first, ties
// broken by id. Restaurants without orders in the range are not ranked.
func (s *Service) TopRestaurants(ctx context.Context, rng params.DateRange) ([]RestaurantRevenue, error) {
	out, err := s.repo.TopRestaurants(ctx, rng, TopN)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []RestaurantRevenue{}
	}
	return out, nil
}

// FilteredOrders returns one page of orders matching f, newest first.
func (s *Service) FilteredOrders(ctx context.Context, f OrderFilter, p paging.Params) (*FilteredPage, error) {
	total, err := s.repo.CountOrders(ctx, f)
	if err != nil {
		return nil, err
	}
	page := &FilteredPage{
		Data:        []OrderRow{},
		Total:       total,
		PerPage:     p.PerPage,
		CurrentPage: p.Page,
		LastPage:    paging.LastPage(total, p.PerPage),
	}
	if total == 0 || int64(p.Offset()) >= total {
		return page, nil
	}
	rows, err := s.repo.ListOrders(ctx, f, p)
	if err != nil {
		return nil, err
	}
	if rows != nil {
		page.Data = rows
	}
	return page, nil
}
