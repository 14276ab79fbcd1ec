// Package client is a typed HTTP client for the analytics API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MikeMC777/restaurant-analytics/internal/analytics"
	"github.com/MikeMC777/restaurant-analytics/internal/httpx"
	"github.com/MikeMC777/restaurant-analytics/internal/restaurant"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api %d %s: %s %v", e.Status, e.Code, e.Message, e.Fields)
	}
	return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
}

type Client struct {
	HTTP    *http.Client
	BaseURL string // scheme://host[:port]/api
	// User and Password are sent as basic auth when User is set.
	User     string
	Password string
}

func New(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.User != "" {
		req.SetBasicAuth(c.User, c.Password)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{Status: res.StatusCode, Message: res.Status}
		var body httpx.ErrorResponse
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		if json.Unmarshal(raw, &body) == nil && body.Error.Code != "" {
			apiErr.Code = body.Error.Code
			apiErr.Message = body.Error.Message
			apiErr.Fields = body.Error.Fields
		}
		return apiErr
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) Restaurants(ctx context.Context, q restaurant.ListQuery) (*restaurant.ListResponse, error) {
	var out restaurant.ListResponse
	if err := c.get(ctx, "/restaurants", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Restaurant(ctx context.Context, id int64) (*restaurant.Detail, error) {
	var out restaurant.DetailResponse
	if err := c.get(ctx, "/restaurants/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) RestaurantTrends(ctx context.Context, id int64, rng analytics.RangeQuery) (*analytics.TrendsReport, error) {
	var out analytics.TrendsReport
	path := "/analytics/restaurant/" + strconv.FormatInt(id, 10) + "/trends"
	if err := c.get(ctx, path, rng.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TopRestaurants(ctx context.Context, rng analytics.RangeQuery) ([]analytics.RestaurantRevenue, error) {
	var out []analytics.RestaurantRevenue
	if err := c.get(ctx, "/analytics/top-restaurants", rng.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FilteredOrders(ctx context.Context, q analytics.FilterQuery) (*analytics.FilteredPage, error) {
	var out analytics.FilteredPage
	if err := c.get(ctx, "/analytics/filtered", q.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
