package restaurant

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MikeMC777/restaurant-analytics/internal/paging"
)

const DefaultPerPage = 10

// ListQuery is the query string of GET /restaurants.
// swagger:model ListQuery
type ListQuery struct {
	// substring of name, location or cuisine (case-insensitive)
	Search   string `form:"search"   example:"sushi"`
	Cuisine  string `form:"cuisine"  example:"Japanese"`
	Location string `form:"location" example:"Mumbai"`
	// name | location | cuisine; anything else sorts by name
	SortBy string `form:"sort_by" example:"name"`
	// desc sorts descending; anything else ascending
	SortOrder string `form:"sort_order" example:"asc"`
	Page      int    `form:"page"     binding:"omitempty,min=1"         example:"1"`
	PerPage   int    `form:"per_page" binding:"omitempty,min=1,max=100" example:"10"`
}

func (q ListQuery) Paging() paging.Params {
	return paging.New(q.Page, q.PerPage, DefaultPerPage)
}

var sortColumns = map[string]string{
	"name":     "name",
	"location": "location",
	"cuisine":  "cuisine",
}

// SortColumn is the whitelisted ORDER BY column.
func (q ListQuery) SortColumn() string {
	if c, ok := sortColumns[q.SortBy]; ok {
		return c
	}
	return "name"
}

func (q ListQuery) Descending() bool { return q.SortOrder == "desc" }

// Values encodes the non-empty fields back into a query string.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	set := func(k, s string) {
		if s = strings.TrimSpace(s); s != "" {
			v.Set(k, s)
		}
	}
	set("search", q.Search)
	set("cuisine", q.Cuisine)
	set("location", q.Location)
	set("sort_by", q.SortBy)
	set("sort_order", q.SortOrder)
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return v
}
