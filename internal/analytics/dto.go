package analytics

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MikeMC777/restaurant-analytics/internal/money"
	"github.com/MikeMC777/restaurant-analytics/internal/paging"
	"github.com/MikeMC777/restaurant-analytics/internal/params"
)

const DefaultPerPage = 20

// RangeQuery is the required start_date/end_date pair of the trend and top
// restaurant endpoints.
// swagger:model RangeQuery
type RangeQuery struct {
	StartDate string `form:"start_date" example:"2025-06-01"`
	EndDate   string `form:"end_date"   example:"2025-06-30"`
}

func (q RangeQuery) Range(loc *time.Location) (params.DateRange, error) {
	r, err := params.ParseDateRange(q.StartDate, q.EndDate, loc, true)
	if err != nil {
		return params.DateRange{}, err
	}
	return *r, nil
}

func (q RangeQuery) Values() url.Values {
	return url.Values{"start_date": {q.StartDate}, "end_date": {q.EndDate}}
}

// FilterQuery is the query string of GET /analytics/filtered.
// swagger:model FilterQuery
type FilterQuery struct {
	StartDate    string `form:"start_date"    example:"2025-06-01"`
	EndDate      string `form:"end_date"      example:"2025-06-30"`
	RestaurantID *int64 `form:"restaurant_id" binding:"omitempty,min=1"           example:"101"`
	MinAmount    string `form:"min_amount"    example:"100"`
	MaxAmount    string `form:"max_amount"    example:"500.50"`
	StartHour    *int   `form:"start_hour"    binding:"omitempty,min=0,max=23"    example:"12"`
	EndHour      *int   `form:"end_hour"      binding:"omitempty,min=0,max=23"    example:"14"`
	Page         int    `form:"page"          binding:"omitempty,min=1"           example:"1"`
	PerPage      int    `form:"per_page"      binding:"omitempty,min=1,max=100"   example:"20"`
}

// Filter turns the raw query into predicates and paging. Every problem found
// is reported in one ValidationError.
func (q FilterQuery) Filter(loc *time.Location) (OrderFilter, paging.Params, error) {
	var f OrderFilter
	verr := &params.ValidationError{}

	rng, err := params.ParseDateRange(q.StartDate, q.EndDate, loc, false)
	if err != nil {
		if v, ok := err.(*params.ValidationError); ok {
			for k, msg := range v.Fields {
				verr.Add(k, msg)
			}
		} else {
			return f, paging.Params{}, err
		}
	}
	f.Range = rng
	f.RestaurantID = q.RestaurantID

	f.MinAmount = parseAmount(verr, "min_amount", q.MinAmount)
	f.MaxAmount = parseAmount(verr, "max_amount", q.MaxAmount)
	if f.MinAmount != nil && f.MaxAmount != nil && f.MaxAmount.LessThan(f.MinAmount.Decimal) {
		verr.Add("max_amount", "must be greater than or equal to min_amount")
	}

	if q.StartHour != nil && q.EndHour != nil {
		if *q.EndHour < *q.StartHour {
			verr.Add("end_hour", "must be greater than or equal to start_hour")
		}
		f.Hours = &HourRange{From: *q.StartHour, To: *q.EndHour}
	}

	if err := verr.Err(); err != nil {
		return OrderFilter{}, paging.Params{}, err
	}
	return f, paging.New(q.Page, q.PerPage, DefaultPerPage), nil
}

func parseAmount(verr *params.ValidationError, field, raw string) *money.Money {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	m, err := money.FromString(raw)
	if err != nil {
		verr.Add(field, "must be a decimal number")
		return nil
	}
	return &m
}

// Values encodes the set fields back into a query string.
func (q FilterQuery) Values() url.Values {
	v := url.Values{}
	set := func(k, s string) {
		if s = strings.TrimSpace(s); s != "" {
			v.Set(k, s)
		}
	}
	set("start_date", q.StartDate)
	set("end_date", q.EndDate)
	set("min_amount", q.MinAmount)
	set("max_amount", q.MaxAmount)
	if q.RestaurantID != nil {
		v.Set("restaurant_id", strconv.FormatInt(*q.RestaurantID, 10))
	}
	if q.StartHour != nil {
		v.Set("start_hour", strconv.Itoa(*q.StartHour))
	}
	if q.EndHour != nil {
		v.Set("end_hour", strconv.Itoa(*q.EndHour))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return v
}
