package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restaurant-analytics/internal/analytics"
	"github.com/MikeMC777/restaurant-analytics/internal/health"
	"github.com/MikeMC777/restaurant-analytics/internal/httpx"
	"github.com/MikeMC777/restaurant-analytics/internal/restaurant"
)

// listRestaurantsHandler godoc
// @Summary      List restaurants
// @Tags         restaurants
// @Produce      json
// @Param        search      query  string  false  "substring of name, location or cuisine"
// @Param        cuisine     query  string  false  "exact cuisine"
// @Param        location    query  string  false  "exact location"
// @Param        sort_by     query  string  false  "name | location | cuisine"  default(name)
// @Param        sort_order  query  string  false  "asc | desc"                 default(asc)
// @Param        page        query  int     false  "page"                       minimum(1) default(1)
// @Param        per_page    query  int     false  "rows per page"              minimum(1) maximum(100) default(10)
// @Success      200  {object}  restaurant.ListResponse
// @Failure      422  {object}  httpx.ErrorResponse
// @Failure      500  {object}  httpx.ErrorResponse
// @Router       /restaurants [get]
func listRestaurantsHandler(svc *restaurant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q restaurant.ListQuery
		if err := httpx.BindQuery(c, &q); err != nil {
			httpx.Fail(c, err)
			return
		}
		resp, err := svc.List(c.Request.Context(), q)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// getRestaurantHandler godoc
// @Summary      Restaurant with its orders
// @Tags         restaurants
// @Produce      json
// @Param        id   path  int  true  "Restaurant ID"
// @Success      200  {object}  restaurant.DetailResponse
// @Failure      404  {object}  httpx.ErrorResponse
// @Failure      422  {object}  httpx.ErrorResponse
// @Failure      500  {object}  httpx.ErrorResponse
// @Router       /restaurants/{id} [get]
func getRestaurantHandler(svc *restaurant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.PathID(c, "id")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		d, err := svc.Get(c.Request.Context(), id)
		if errors.Is(err, restaurant.ErrNotFound) {
			httpx.NotFound(c, "restaurant not found")
			return
		}
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurant.DetailResponse{Data: *d})
	}
}

// restaurantTrendsHandler godoc
// @Summary      Daily order trends of one restaurant
// @Description  Lists every day with an order in the range. Day metrics cover the whole day; the summary covers only the range.
// @Tags         analytics
// @Produce      json
// @Param        id          path   int     true  "Restaurant ID"
// @Param        start_date  query  string  true  "YYYY-MM-DD or timestamp"
// @Param        end_date    query  string  true  "YYYY-MM-DD (whole day) or timestamp"
// @Success      200  {object}  analytics.TrendsReport
// @Failure      404  {object}  httpx.ErrorResponse
// @Failure      422  {object}  httpx.ErrorResponse
// @Failure      500  {object}  httpx.ErrorResponse
// @Router       /analytics/restaurant/{id}/trends [get]
func restaurantTrendsHandler(svc *analytics.Service, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.PathID(c, "id")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		var q analytics.RangeQuery
		if err := httpx.BindQuery(c, &q); err != nil {
			httpx.Fail(c, err)
			return
		}
		rng, err := q.Range(loc)
		if err != nil {
			httpx.Fail(c, err)
			return
		}

		rep, err := svc.RestaurantTrends(c.Request.Context(), id, rng)
		if errors.Is(err, restaurant.ErrNotFound) {
			httpx.NotFound(c, "restaurant not found")
			return
		}
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}

// topRestaurantsHandler godoc
// @Summary      Top 3 restaurants by revenue
// @Tags         analytics
// @Produce      json
// @Param        start_date  query  string  true  "YYYY-MM-DD or timestamp"
// @Param        end_date    query  string  true  "YYYY-MM-DD (whole day) or timestamp"
// @Success      200  {array}   analytics.RestaurantRevenue
// @Failure      422  {object}  httpx.ErrorResponse
// @Failure      500  {object}  httpx.ErrorResponse
// @Router       /analytics/top-restaurants [get]
func topRestaurantsHandler(svc *analytics.Service, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q analytics.RangeQuery
		if err := httpx.BindQuery(c, &q); err != nil {
			httpx.Fail(c, err)
			return
		}
		rng, err := q.Range(loc)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		top, err := svc.TopRestaurants(c.Request.Context(), rng)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, top)
	}
}

// filteredOrdersHandler godoc
// @Summary      Filtered order listing
// @Tags         analytics
// @Produce      json
// @Param        start_date     query  string  false  "applied with end_date"
// @Param        end_date       query  string  false  "applied with start_date"
// @Param        restaurant_id  query  int     false  "restaurant"  minimum(1)
// @Param        min_amount     query  number  false  "minimum order amount"
// @Param        max_amount     query  number  false  "maximum order amount"
// @Param        start_hour     query  int     false  "applied with end_hour"    minimum(0) maximum(23)
// @Param        end_hour       query  int     false  "applied with start_hour"  minimum(0) maximum(23)
// @Param        page           query  int     false  "page"           minimum(1) default(1)
// @Param        per_page       query  int     false  "rows per page"  minimum(1) maximum(100) default(20)
// @Success      200  {object}  analytics.FilteredPage
// @Failure      422  {object}  httpx.ErrorResponse
// @Failure      500  {object}  httpx.ErrorResponse
// @Router       /analytics/filtered [get]
func filteredOrdersHandler(svc *analytics.Service, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q analytics.FilterQuery
		if err := httpx.BindQuery(c, &q); err != nil {
			httpx.Fail(c, err)
			return
		}
		f, p, err := q.Filter(loc)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		page, err := svc.FilteredOrders(c.Request.Context(), f, p)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func healthzHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func readyzHandler(p health.Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			httpx.Log(c).Warn().Err(err).Msg("readiness ping failed")
			httpx.Abort(c, http.StatusServiceUnavailable, httpx.CodeUnavailable, "store unavailable", nil)
			return
		}
		c.String(http.StatusOK, "ready")
	}
}
