package analytics

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"

	"github.com/MikeMC777/restaurant-analytics/internal/money"
	"github.com/MikeMC777/restaurant-analytics/internal/paging"
	"github.com/MikeMC777/restaurant-analytics/internal/params"
	"github.com/MikeMC777/restaurant-analytics/internal/store"
)

func juneRange() params.DateRange {
	return params.DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 23, 59, 59, 999999000, time.UTC),
	}
}

func TestPGRepo_HourlyBuckets(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	rng := params.DateRange{
		Start: time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 23, 59, 59, 999999000, time.UTC),
	}
	days := rng.WholeDays(time.UTC)
	sql, _, _ := hourlyQuery(101, rng, time.UTC).ToSql()
	day := time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WithArgs("UTC", "UTC", rng.Start, rng.End, rng.Start, rng.End, days.Start, days.End, int64(101)).
		WillReturnRows(pgxmock.NewRows([]string{"day", "hour", "orders", "revenue", "range_orders", "range_revenue"}).
			AddRow(day, 9, int64(1), "40.00", int64(0), "0").
			AddRow(day, 12, int64(1), "100.00", int64(1), "100.00").
			AddRow(day, 19, int64(1), "250.50", int64(1), "250.50"))

	repo := NewPGRepo(store.Handle{DB: mock, Location: time.UTC})
	buckets, err := repo.HourlyBuckets(context.Background(), 101, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(buckets) != 3 || buckets[2].Hour != 19 || buckets[2].Revenue.String() != "250.50" {
		t.Fatalf("got %+v", buckets)
	}
	if buckets[0].InRange != 0 || !buckets[0].InRangeRevenue.Equal(money.Zero) || buckets[1].InRange != 1 {
		t.Fatalf("in range: %+v", buckets)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGRepo_TopRestaurants(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	rng := juneRange()
	sql, args, _ := topQuery(rng, "UTC", TopN).ToSql()
	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WithArgs(args...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "location", "total_orders", "total_revenue"}).
			AddRow(int64(102), "Sushi Bay", "Mumbai", int64(3), "1000.00").
			AddRow(int64(101), "Tandoori Treats", "Bangalore", int64(2), "350.50"))

	repo := NewPGRepo(store.Handle{DB: mock})
	top, err := repo.TopRestaurants(context.Background(), rng, TopN)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 || top[0].Restaurant.ID != 102 {
		t.Fatalf("got %+v", top)
	}
	if top[0].AvgOrderValue.String() != "333.33" || top[1].AvgOrderValue.String() != "175.25" {
		t.Fatalf("avg=%s, %s", top[0].AvgOrderValue, top[1].AvgOrderValue)
	}
}

func TestPGRepo_ListOrders_MissingRestaurant(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	p := paging.New(1, 20, DefaultPerPage)
	sql, _, _ := filteredPageQuery(OrderFilter{}, p, "UTC").ToSql()
	at := time.Date(2025, 6, 22, 19, 5, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "restaurant_id", "order_amount", "order_time", "r_id", "r_name", "r_location"}).
			AddRow(int64(2), int64(101), "250.50", at, int64(101), "Tandoori Treats", "Bangalore").
			AddRow(int64(1), int64(999), "10.00", at, nil, nil, nil))

	repo := NewPGRepo(store.Handle{DB: mock, Location: time.UTC})
	rows, err := repo.ListOrders(context.Background(), OrderFilter{}, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d", len(rows))
	}
	if rows[0].Restaurant == nil || rows[0].Restaurant.Name != "Tandoori Treats" {
		t.Fatalf("row 0 restaurant=%+v", rows[0].Restaurant)
	}
	if rows[1].Restaurant != nil || rows[1].RestaurantID != 999 {
		t.Fatalf("row 1=%+v", rows[1])
	}
}

func TestPGRepo_CountOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	id := int64(101)
	f := OrderFilter{RestaurantID: &id}
	sql, _, _ := filteredCountQuery(f, "UTC").ToSql()
	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WithArgs(int64(101)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))
	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WillReturnError(errors.New("connection reset"))

	repo := NewPGRepo(store.Handle{DB: mock})
	n, err := repo.CountOrders(context.Background(), f)
	if err != nil || n != 42 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if _, err := repo.CountOrders(context.Background(), f); err == nil {
		t.Fatal("expected error")
	}
}
