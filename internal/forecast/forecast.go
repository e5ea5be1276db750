// backend-go/internal/forecast/forecast.go

// Package forecast resamples sale records into a weekly series and projects
// it forward with a seasonal model. The model sits behind the Forecaster
// interface so the reporting layer treats it as an opaque capability.
package forecast

import (
	"context"
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
)

// Forecaster projects a regularly spaced series `horizon` steps ahead.
// Implementations must honor ctx cancellation; fits can take a while.
type Forecaster interface {
	Forecast(ctx context.Context, series []domain.SeriesPoint, horizon int) ([]domain.SeriesPoint, error)
}

// WeeklyQuantitySeries sums sale quantities into week buckets ending on
// Sunday. Weeks inside the range with no sales count as zero. The first
// bucket is dropped as a partial-period artifact, matching how the report
// has always been produced.
func WeeklyQuantitySeries(sales []*domain.Sale) []domain.SeriesPoint {
	if len(sales) == 0 {
		return []domain.SeriesPoint{}
	}

	sums := make(map[time.Time]float64)
	minWeek := weekEnding(sales[0].DateSold)
	maxWeek := minWeek
	for _, sale := range sales {
		week := weekEnding(sale.DateSold)
		sums[week] += float64(sale.Quantity)
		if week.Before(minWeek) {
			minWeek = week
		}
		if week.After(maxWeek) {
			maxWeek = week
		}
	}

	var points []domain.SeriesPoint
	for w := minWeek; !w.After(maxWeek); w = w.AddDate(0, 0, 7) {
		points = append(points, domain.SeriesPoint{Date: w, Value: sums[w]})
	}

	// First bucket rarely covers a full week.
	return points[1:]
}

// weekEnding maps a date to the Sunday closing its week.
func weekEnding(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, offset)
}
