// Command analytics-report prints the top restaurants of a date range and,
// optionally, the daily trend of one restaurant.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"github.com/MikeMC777/restaurant-analytics/internal/analytics"
	"github.com/MikeMC777/restaurant-analytics/internal/client"
	"github.com/MikeMC777/restaurant-analytics/internal/logging"
)

type options struct {
	baseURL    string
	start, end string
	restaurant int64
	user, pass string
	timeout    time.Duration
	logLevel   string
}

func main() {
	var o options
	flag.StringVar(&o.baseURL, "api", envOr("ANALYTICS_API_URL", "http://localhost:8000/api"), "API base URL")
	flag.StringVar(&o.start, "start", "", "start date, YYYY-MM-DD (required)")
	flag.StringVar(&o.end, "end", "", "end date, YYYY-MM-DD (required)")
	flag.Int64Var(&o.restaurant, "restaurant", 0, "also print the daily trend of this restaurant")
	flag.StringVar(&o.user, "user", os.Getenv("BASIC_AUTH_USER"), "basic auth user")
	flag.StringVar(&o.pass, "password", os.Getenv("BASIC_AUTH_PASSWORD"), "basic auth password")
	flag.DurationVar(&o.timeout, "timeout", 10*time.Second, "overall timeout")
	flag.StringVar(&o.logLevel, "log-level", "info", "log level")
	flag.Parse()

	logger, err := setup(o, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	c := client.New(o.baseURL)
	c.User, c.Password = o.user, o.pass
	if err := report(ctx, c, o, os.Stdout); err != nil {
		logger.Fatal().Err(err).Str("api", o.baseURL).Msg("report failed")
	}
}

// setup checks the options and builds the logger errors are reported on.
func setup(o options, w io.Writer) (zerolog.Logger, error) {
	if o.start == "" || o.end == "" {
		return zerolog.Nop(), errors.New("-start and -end are required")
	}
	logger, err := logging.New(o.logLevel, "console", w)
	if err != nil {
		return zerolog.Nop(), err
	}
	return logger.With().Str("component", "report").Logger(), nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// api is the part of *client.Client the report needs.
type api interface {
	TopRestaurants(ctx context.Context, rng analytics.RangeQuery) ([]analytics.RestaurantRevenue, error)
	RestaurantTrends(ctx context.Context, id int64, rng analytics.RangeQuery) (*analytics.TrendsReport, error)
}

func report(ctx context.Context, c api, o options, out io.Writer) error {
	rng := analytics.RangeQuery{StartDate: o.start, EndDate: o.end}

	top, err := c.TopRestaurants(ctx, rng)
	if err != nil {
		return fmt.Errorf("top restaurants: %w", err)
	}
	fmt.Fprintf(out, "Top restaurants %s .. %s\n", o.start, o.end)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tID\tRestaurant\tLocation\tOrders\tRevenue\tAvg\t")
	for i, r := range top {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\t%s\t%s\t\n",
			i+1, r.Restaurant.ID, r.Restaurant.Name, r.Restaurant.Location, r.TotalOrders, r.TotalRevenue, r.AvgOrderValue)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(top) == 0 {
		fmt.Fprintln(out, "(no orders in range)")
	}

	if o.restaurant == 0 {
		return nil
	}

	rep, err := c.RestaurantTrends(ctx, o.restaurant, rng)
	if err != nil {
		return fmt.Errorf("trends of %d: %w", o.restaurant, err)
	}
	fmt.Fprintf(out, "\n%s (%s) daily trend\n", rep.Restaurant.Name, rep.Restaurant.Location)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Date\tOrders\tRevenue\tAvg\tPeak hour\t")
	for _, d := range rep.Trends {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%02d:00\t\n", d.Date, d.OrdersCount, d.Revenue, d.AvgOrderValue, d.PeakHour)
	}
	fmt.Fprintf(tw, "total\t%d\t%s\t%s\t\t\n", rep.Summary.TotalOrders, rep.Summary.TotalRevenue, rep.Summary.AvgOrderValue)
	return tw.Flush()
}

var _ api = (*client.Client)(nil)
