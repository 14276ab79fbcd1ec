package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/MikeMC777/restaurant-analytics/internal/analytics"
	"github.com/MikeMC777/restaurant-analytics/internal/httpx"
	"github.com/MikeMC777/restaurant-analytics/internal/money"
	"github.com/MikeMC777/restaurant-analytics/internal/order"
	"github.com/MikeMC777/restaurant-analytics/internal/paging"
	"github.com/MikeMC777/restaurant-analytics/internal/params"
	"github.com/MikeMC777/restaurant-analytics/internal/restaurant"
)

//
// ---------- STUBS ----------
//

// stubDB keeps restaurants and orders in memory and implements the
// restaurant, order and analytics repositories over them.
type stubDB struct {
	restaurants map[int64]restaurant.Restaurant
	orders      []order.Order
	fail        error
}

func newStubDB() *stubDB {
	db := &stubDB{restaurants: map[int64]restaurant.Restaurant{}}
	for _, r := range []restaurant.Restaurant{
		{ID: 101, Name: "Tandoori Treats", Location: "Bangalore", Cuisine: "North Indian"},
		{ID: 102, Name: "Sushi Bay", Location: "Mumbai", Cuisine: "Japanese"},
		{ID: 103, Name: "Pasta Palace", Location: "Delhi", Cuisine: "Italian"},
		{ID: 104, Name: "Burger Hub", Location: "Hyderabad", Cuisine: "American"},
	} {
		db.restaurants[r.ID] = r
	}
	return db
}

func (db *stubDB) addOrder(restaurantID int64, amount, at string) {
	t, err := time.Parse("2006-01-02 15:04", at)
	if err != nil {
		panic(err)
	}
	db.orders = append(db.orders, order.Order{
		ID:           int64(len(db.orders) + 1),
		RestaurantID: restaurantID,
		OrderAmount:  money.MustParse(amount),
		OrderTime:    t,
	})
}

// restaurant.Repository

func (db *stubDB) Create(_ context.Context, r *restaurant.Restaurant) error {
	db.restaurants[r.ID] = *r
	return nil
}

func (db *stubDB) GetByID(_ context.Context, id int64) (*restaurant.Restaurant, error) {
	if db.fail != nil {
		return nil, db.fail
	}
	r, ok := db.restaurants[id]
	if !ok {
		return nil, restaurant.ErrNotFound
	}
	return &r, nil
}

func (db *stubDB) List(_ context.Context, q restaurant.ListQuery) ([]restaurant.Restaurant, int64, error) {
	if db.fail != nil {
		return nil, 0, db.fail
	}
	var all []restaurant.Restaurant
	for _, r := range db.restaurants {
		if q.Cuisine != "" && r.Cuisine != q.Cuisine {
			continue
		}
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	p := q.Paging()
	start := int(p.Offset())
	if start >= len(all) {
		return nil, int64(len(all)), nil
	}
	end := start + p.PerPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

// order.Repository, via a thin adapter so Create does not clash.

type stubOrders struct{ db *stubDB }

func (s stubOrders) Create(_ context.Context, o *order.Order) error {
	o.ID = int64(len(s.db.orders) + 1)
	s.db.orders = append(s.db.orders, *o)
	return nil
}

func (s stubOrders) ListByRestaurant(_ context.Context, id int64) ([]order.Order, error) {
	var out []order.Order
	for i := len(s.db.orders) - 1; i >= 0; i-- {
		if s.db.orders[i].RestaurantID == id {
			out = append(out, s.db.orders[i])
		}
	}
	return out, nil
}

// analytics.Repository

func (db *stubDB) matches(o order.Order, f analytics.OrderFilter) bool {
	if f.Range != nil && !f.Range.Contains(o.OrderTime) {
		return false
	}
	if f.RestaurantID != nil && o.RestaurantID != *f.RestaurantID {
		return false
	}
	if f.MinAmount != nil && o.OrderAmount.LessThan(f.MinAmount.Decimal) {
		return false
	}
	if f.MaxAmount != nil && o.OrderAmount.GreaterThan(f.MaxAmount.Decimal) {
		return false
	}
	if f.Hours != nil {
		h := o.OrderTime.UTC().Hour()
		if h < f.Hours.From || h > f.Hours.To {
			return false
		}
	}
	return true
}

func (db *stubDB) HourlyBuckets(_ context.Context, id int64, rng params.DateRange) ([]analytics.HourBucket, error) {
	type key struct {
		day  string
		hour int
	}
	idx := map[key]int{}
	var out []analytics.HourBucket
	days := rng.WholeDays(time.UTC)
	for _, o := range db.orders {
		if !db.matches(o, analytics.OrderFilter{Range: &days, RestaurantID: &id}) {
			continue
		}
		t := o.OrderTime.UTC()
		k := key{t.Format(params.DateLayout), t.Hour()}
		i, ok := idx[k]
		if !ok {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			out = append(out, analytics.HourBucket{Day: day, Hour: t.Hour(), Revenue: money.Zero, InRangeRevenue: money.Zero})
			i = len(out) - 1
			idx[k] = i
		}
		out[i].Orders++
		out[i].Revenue = out[i].Revenue.Add(o.OrderAmount)
		if rng.Contains(o.OrderTime) {
			out[i].InRange++
			out[i].InRangeRevenue = out[i].InRangeRevenue.Add(o.OrderAmount)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Day.Equal(out[j].Day) {
			return out[i].Day.Before(out[j].Day)
		}
		return out[i].Hour < out[j].Hour
	})
	return out, nil
}

func (db *stubDB) TopRestaurants(_ context.Context, rng params.DateRange, limit int) ([]analytics.RestaurantRevenue, error) {
	if db.fail != nil {
		return nil, db.fail
	}
	byID := map[int64]*analytics.RestaurantRevenue{}
	for _, o := range db.orders {
		r, ok := db.restaurants[o.RestaurantID]
		if !ok || !rng.Contains(o.OrderTime) {
			continue
		}
		rr, ok := byID[r.ID]
		if !ok {
			rr = &analytics.RestaurantRevenue{Restaurant: r.Ref(), TotalRevenue: money.Zero}
			byID[r.ID] = rr
		}
		rr.TotalOrders++
		rr.TotalRevenue = rr.TotalRevenue.Add(o.OrderAmount)
	}
	var out []analytics.RestaurantRevenue
	for _, rr := range byID {
		rr.AvgOrderValue = rr.TotalRevenue.Avg(rr.TotalOrders)
		out = append(out, *rr)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalRevenue.Cmp(out[j].TotalRevenue.Decimal); c != 0 {
			return c > 0
		}
		return out[i].Restaurant.ID < out[j].Restaurant.ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (db *stubDB) filtered(f analytics.OrderFilter) []analytics.OrderRow {
	var rows []analytics.OrderRow
	for _, o := range db.orders {
		if !db.matches(o, f) {
			continue
		}
		row := analytics.OrderRow{ID: o.ID, RestaurantID: o.RestaurantID, OrderTime: o.OrderTime, OrderAmount: o.OrderAmount}
		if r, ok := db.restaurants[o.RestaurantID]; ok {
			ref := r.Ref()
			row.Restaurant = &ref
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].OrderTime.Equal(rows[j].OrderTime) {
			return rows[i].OrderTime.After(rows[j].OrderTime)
		}
		return rows[i].ID > rows[j].ID
	})
	return rows
}

func (db *stubDB) CountOrders(_ context.Context, f analytics.OrderFilter) (int64, error) {
	if db.fail != nil {
		return 0, db.fail
	}
	return int64(len(db.filtered(f))), nil
}

func (db *stubDB) ListOrders(_ context.Context, f analytics.OrderFilter, p paging.Params) ([]analytics.OrderRow, error) {
	rows := db.filtered(f)
	start := int(p.Offset())
	if start >= len(rows) {
		return nil, nil
	}
	end := start + p.PerPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

//
// ---------- ROUTER ----------
//

func testRouter(db *stubDB, mutate ...func(*deps)) *gin.Engine {
	d := deps{
		restaurants: restaurant.NewService(db, stubOrders{db}),
		analytics:   analytics.NewService(db, db),
		store:       stubPinger{},
		loc:         time.UTC,
		log:         zerolog.Nop(),
		apiPrefix:   "/api",
	}
	for _, m := range mutate {
		m(&d)
	}
	return newRouter(d)
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) httpx.ErrorDetail {
	t.Helper()
	var body httpx.ErrorResponse
	decode(t, w, &body)
	return body.Error
}

//
// ---------- TESTS ----------
//

func TestListRestaurants_Pagination(t *testing.T) {
	r := testRouter(newStubDB())

	w := get(r, "/api/restaurants?per_page=3&page=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got restaurant.ListResponse
	decode(t, w, &got)
	p := got.Pagination
	if len(got.Data) != 1 || p.Total != 4 || p.LastPage != 2 || *p.From != 4 || *p.To != 4 {
		t.Fatalf("data=%+v pagination=%+v", got.Data, p)
	}
}

func TestListRestaurants_EmptyPageOmitsFromTo(t *testing.T) {
	w := get(testRouter(newStubDB()), "/api/restaurants?cuisine=Thai")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var raw struct {
		Data       []json.RawMessage          `json:"data"`
		Pagination map[string]json.RawMessage `json:"pagination"`
	}
	decode(t, w, &raw)
	if raw.Data == nil || len(raw.Data) != 0 {
		t.Fatalf("data should be [] got %s", w.Body.String())
	}
	if _, ok := raw.Pagination["from"]; ok {
		t.Fatalf("from present on empty page: %s", w.Body.String())
	}
}

func TestListRestaurants_InvalidPaging(t *testing.T) {
	r := testRouter(newStubDB())
	for _, q := range []string{"per_page=101", "page=-1", "page=abc"} {
		w := get(r, "/api/restaurants?"+q)
		if w.Code != http.StatusUnprocessableEntity || errorCode(t, w).Code != httpx.CodeValidation {
			t.Errorf("%s: status=%d body=%s", q, w.Code, w.Body.String())
		}
	}
}

func TestListRestaurants_StoreError(t *testing.T) {
	db := newStubDB()
	db.fail = errors.New("dial tcp 10.0.0.5:5432: connection refused")
	w := get(testRouter(db), "/api/restaurants")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	if e := errorCode(t, w); e.Code != httpx.CodeInternal || e.Message != "internal server error" {
		t.Fatalf("error=%+v", e)
	}
}

func TestGetRestaurant_RoundTrip(t *testing.T) {
	db := newStubDB()
	ctx := context.Background()
	_ = db.Create(ctx, &restaurant.Restaurant{ID: 200, Name: "Dosa Corner", Location: "Chennai", Cuisine: "South Indian"})
	_ = stubOrders{db}.Create(ctx, &order.Order{RestaurantID: 200, OrderAmount: money.MustParse("349.99"), OrderTime: time.Now()})

	w := get(testRouter(db), "/api/restaurants/200")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got restaurant.DetailResponse
	decode(t, w, &got)
	if got.Data.OrdersCount != 1 || got.Data.TotalRevenue.String() != "349.99" || got.Data.Restaurant.Name != "Dosa Corner" {
		t.Fatalf("detail=%+v", got.Data)
	}
}

func TestGetRestaurant_NotFoundAndBadID(t *testing.T) {
	r := testRouter(newStubDB())
	if w := get(r, "/api/restaurants/999"); w.Code != http.StatusNotFound || errorCode(t, w).Code != httpx.CodeNotFound {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if w := get(r, "/api/restaurants/abc"); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestRestaurantTrends_Example(t *testing.T) {
	db := newStubDB()
	db.addOrder(101, "100.00", "2025-06-22 12:10")
	db.addOrder(101, "250.50", "2025-06-22 19:45")
	db.addOrder(101, "80.00", "2025-06-24 13:00")
	db.addOrder(102, "999.00", "2025-06-22 12:00")
	db.addOrder(101, "55.00", "2025-07-01 09:00") // outside the range

	w := get(testRouter(db), "/api/analytics/restaurant/101/trends?start_date=2025-06-01&end_date=2025-06-30")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var rep analytics.TrendsReport
	decode(t, w, &rep)

	if len(rep.Trends) != 2 || rep.Trends[0].Date != "2025-06-22" || rep.Trends[1].Date != "2025-06-24" {
		t.Fatalf("trends=%+v", rep.Trends)
	}
	d := rep.Trends[0]
	if d.OrdersCount != 2 || d.Revenue.String() != "350.50" || d.AvgOrderValue.String() != "175.25" || d.PeakHour != 12 {
		t.Fatalf("day=%+v", d)
	}
	if rep.Summary.TotalOrders != 3 || rep.Summary.TotalRevenue.String() != "430.50" {
		t.Fatalf("summary=%+v", rep.Summary)
	}
	if rep.Restaurant.ID != 101 {
		t.Fatalf("restaurant=%+v", rep.Restaurant)
	}
}

func TestRestaurantTrends_EndDateIsInclusive(t *testing.T) {
	db := newStubDB()
	db.addOrder(101, "10.00", "2025-06-30 23:30")
	w := get(testRouter(db), "/api/analytics/restaurant/101/trends?start_date=2025-06-30&end_date=2025-06-30")
	var rep analytics.TrendsReport
	decode(t, w, &rep)
	if len(rep.Trends) != 1 || rep.Summary.TotalOrders != 1 {
		t.Fatalf("late order on end_date missing: %s", w.Body.String())
	}
}

func TestRestaurantTrends_PartialDayRange(t *testing.T) {
	db := newStubDB()
	db.addOrder(101, "30.00", "2025-06-22 09:00")
	db.addOrder(101, "20.00", "2025-06-22 09:30")
	db.addOrder(101, "50.00", "2025-06-22 13:00")
	db.addOrder(101, "70.00", "2025-06-23 10:00")

	w := get(testRouter(db), "/api/analytics/restaurant/101/trends?start_date=2025-06-22%2012:00:00&end_date=2025-06-22%2023:00:00")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var rep analytics.TrendsReport
	decode(t, w, &rep)

	// the day is reported whole, the summary only covers the range
	if len(rep.Trends) != 1 {
		t.Fatalf("trends=%+v", rep.Trends)
	}
	d := rep.Trends[0]
	if d.Date != "2025-06-22" || d.OrdersCount != 3 || d.Revenue.String() != "100.00" || d.PeakHour != 9 {
		t.Fatalf("day=%+v", d)
	}
	if rep.Summary.TotalOrders != 1 || rep.Summary.TotalRevenue.String() != "50.00" {
		t.Fatalf("summary=%+v", rep.Summary)
	}
}

func TestRestaurantTrends_Validation(t *testing.T) {
	r := testRouter(newStubDB())
	cases := map[string]string{
		"/api/analytics/restaurant/101/trends":                                             "start_date",
		"/api/analytics/restaurant/101/trends?start_date=2025-06-30&end_date=2025-06-01":   "end_date",
		"/api/analytics/restaurant/101/trends?start_date=someday&end_date=2025-06-01":      "start_date",
		"/api/analytics/restaurant/0/trends?start_date=2025-06-01&end_date=2025-06-30":     "id",
	}
	for url, field := range cases {
		w := get(r, url)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: status=%d", url, w.Code)
			continue
		}
		if e := errorCode(t, w); e.Fields[field] == "" {
			t.Errorf("%s: fields=%v, want %s", url, e.Fields, field)
		}
	}
}

func TestRestaurantTrends_UnknownRestaurant(t *testing.T) {
	w := get(testRouter(newStubDB()), "/api/analytics/restaurant/999/trends?start_date=2025-06-01&end_date=2025-06-30")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestTopRestaurants(t *testing.T) {
	db := newStubDB()
	db.addOrder(101, "350.50", "2025-06-22 12:00")
	db.addOrder(102, "500.00", "2025-06-10 20:00")
	db.addOrder(103, "500.00", "2025-06-11 20:00")
	db.addOrder(104, "20.00", "2025-06-12 20:00")
	db.addOrder(104, "9999.00", "2025-05-12 20:00") // outside the range
	r := testRouter(db)

	w := get(r, "/api/analytics/top-restaurants?start_date=2025-06-01&end_date=2025-06-30")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var top []analytics.RestaurantRevenue
	decode(t, w, &top)
	if len(top) != 3 {
		t.Fatalf("len=%d", len(top))
	}
	want := []int64{102, 103, 101}
	for i, id := range want {
		if top[i].Restaurant.ID != id {
			t.Fatalf("position %d: got %d want %d (%+v)", i, top[i].Restaurant.ID, id, top)
		}
	}

	w = get(r, "/api/analytics/top-restaurants?start_date=2020-01-01&end_date=2020-01-31")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("empty range: status=%d body=%s", w.Code, w.Body.String())
	}

	if w := get(r, "/api/analytics/top-restaurants?start_date=2025-06-01"); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing end_date: status=%d", w.Code)
	}
}

func TestFilteredOrders_SecondPage(t *testing.T) {
	db := newStubDB()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 45; i++ {
		db.addOrder(101+int64(i%4), "10.00", base.Add(time.Duration(i)*time.Hour).Format("2006-01-02 15:04"))
	}
	r := testRouter(db)

	w := get(r, "/api/analytics/filtered?page=2&per_page=20")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var page analytics.FilteredPage
	decode(t, w, &page)
	if page.Total != 45 || page.LastPage != 3 || len(page.Data) != 20 {
		t.Fatalf("total=%d last=%d rows=%d", page.Total, page.LastPage, len(page.Data))
	}
	// newest first: row 21 overall is the 25th order created (id 25)
	if page.Data[0].ID != 25 || page.Data[19].ID != 6 {
		t.Fatalf("first=%d last=%d", page.Data[0].ID, page.Data[19].ID)
	}

	w = get(r, "/api/analytics/filtered?page=9")
	decode(t, w, &page)
	if w.Code != http.StatusOK || len(page.Data) != 0 || page.Total != 45 {
		t.Fatalf("past last page: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestFilteredOrders_Filters(t *testing.T) {
	db := newStubDB()
	db.addOrder(101, "100.00", "2025-06-22 12:10")
	db.addOrder(101, "250.50", "2025-06-22 19:45")
	db.addOrder(102, "120.00", "2025-06-23 13:00")
	db.addOrder(777, "130.00", "2025-06-23 13:30") // restaurant no longer exists
	r := testRouter(db)

	w := get(r, "/api/analytics/filtered?min_amount=100&max_amount=200&start_hour=12&end_hour=14")
	var page analytics.FilteredPage
	decode(t, w, &page)
	if page.Total != 3 {
		t.Fatalf("total=%d body=%s", page.Total, w.Body.String())
	}
	if page.Data[0].RestaurantID != 777 || page.Data[0].Restaurant != nil {
		t.Fatalf("orphan row=%+v", page.Data[0])
	}

	w = get(r, "/api/analytics/filtered?restaurant_id=101&start_date=2025-06-22&end_date=2025-06-22")
	decode(t, w, &page)
	if page.Total != 2 || page.Data[0].Restaurant.Name != "Tandoori Treats" {
		t.Fatalf("page=%+v", page)
	}

	for _, q := range []string{"min_amount=500&max_amount=100", "start_hour=15&end_hour=12", "start_hour=24&end_hour=25", "restaurant_id=0", "min_amount=cheap"} {
		if w := get(r, "/api/analytics/filtered?"+q); w.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: status=%d body=%s", q, w.Code, w.Body.String())
		}
	}
}

func TestHealthAndReadiness(t *testing.T) {
	r := testRouter(newStubDB())
	if w := get(r, "/healthz"); w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("healthz status=%d body=%s", w.Code, w.Body.String())
	}
	if w := get(r, "/readyz"); w.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w.Code)
	}

	down := testRouter(newStubDB(), func(d *deps) { d.store = stubPinger{err: errors.New("no route to host")} })
	if w := get(down, "/readyz"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d", w.Code)
	}
}

func TestSwaggerDoc(t *testing.T) {
	w := get(testRouter(newStubDB()), "/swagger/doc.json")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	decode(t, w, &doc)
	if _, ok := doc.Paths["/analytics/top-restaurants"]; !ok {
		t.Fatalf("paths=%v", doc.Paths)
	}
}

func TestBasicAuth_GuardsAPIOnly(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	r := testRouter(newStubDB(), func(d *deps) {
		d.authUser, d.authHash = "admin", hash
	})

	if w := get(r, "/api/restaurants"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d", w.Code)
	}
	if w := get(r, "/healthz"); w.Code != http.StatusOK {
		t.Fatalf("healthz behind auth: %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	req.SetBasicAuth("admin", "s3cret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("authorized status=%d", w.Code)
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard
}
