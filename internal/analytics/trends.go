package analytics

import (
	"github.com/MikeMC777/restaurant-analytics/internal/money"
	"github.com/MikeMC777/restaurant-analytics/internal/params"
)

// BuildTrends folds hourly buckets (ordered by day, then hour) into one entry
// per day and the summary of the requested range.
//
// A day is reported only if it has at least one order inside the range, but
// its metrics and peak hour cover the whole calendar day. The summary counts
// only orders inside the range, so it equals the sum over the days unless the
// range starts or ends partway through a day.
func BuildTrends(buckets []HourBucket) ([]TrendDay, Summary) {
	days := []TrendDay{}
	var (
		summary  Summary
		revenue  = money.Zero
		inRange  int64
		peakSeen int64
		current  *TrendDay
	)
	summary.TotalRevenue = money.Zero

	flush := func() {
		if current == nil || inRange == 0 {
			return
		}
		current.Revenue = revenue
		current.AvgOrderValue = revenue.Avg(current.OrdersCount)
		days = append(days, *current)
	}

	for _, b := range buckets {
		date := b.Day.Format(params.DateLayout)
		if current == nil || current.Date != date {
			flush()
			current = &TrendDay{Date: date, PeakHour: b.Hour}
			revenue = money.Zero
			inRange = 0
			peakSeen = 0
		}
		current.OrdersCount += b.Orders
		revenue = revenue.Add(b.Revenue)
		inRange += b.InRange
		if b.Orders > peakSeen || (b.Orders == peakSeen && b.Hour < current.PeakHour) {
			peakSeen = b.Orders
			current.PeakHour = b.Hour
		}

		summary.TotalOrders += b.InRange
		summary.TotalRevenue = summary.TotalRevenue.Add(b.InRangeRevenue)
	}
	flush()

	summary.AvgOrderValue = summary.TotalRevenue.Avg(summary.TotalOrders)
	return days, summary
}
