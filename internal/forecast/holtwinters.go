// backend-go/internal/forecast/holtwinters.go
package forecast

import (
	"context"
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
)

// HoltWinters is an additive triple-exponential-smoothing forecaster. With
// Period 52 over weekly data it captures annual seasonality without an
// external stats runtime.
type HoltWinters struct {
	Alpha  float64 // level smoothing
	Beta   float64 // trend smoothing
	Gamma  float64 // seasonal smoothing
	Period int
}

// NewHoltWinters returns a forecaster with smoothing factors that behave
// well on noisy retail series.
func NewHoltWinters(period int) *HoltWinters {
	return &HoltWinters{
		Alpha:  0.25,
		Beta:   0.05,
		Gamma:  0.3,
		Period: period,
	}
}

// Forecast fits the model and projects horizon steps past the end of the
// series. The series must cover at least two full seasonal periods,
// otherwise ErrInsufficientData is returned.
func (hw *HoltWinters) Forecast(ctx context.Context, series []domain.SeriesPoint, horizon int) ([]domain.SeriesPoint, error) {
	m := hw.Period
	if len(series) < 2*m {
		return nil, domain.ErrInsufficientData
	}
	if horizon <= 0 {
		return []domain.SeriesPoint{}, nil
	}

	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.Value
	}

	seasonals := initialSeasonals(values, m)
	level := values[0]
	trend := initialTrend(values, m)

	for i := 1; i < len(values); i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		val := values[i]
		idx := i % m
		lastLevel := level
		level = hw.Alpha*(val-seasonals[idx]) + (1-hw.Alpha)*(level+trend)
		trend = hw.Beta*(level-lastLevel) + (1-hw.Beta)*trend
		seasonals[idx] = hw.Gamma*(val-level) + (1-hw.Gamma)*seasonals[idx]
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	step := series[1].Date.Sub(series[0].Date)
	last := series[len(series)-1].Date
	n := len(values)

	forecast := make([]domain.SeriesPoint, horizon)
	for h := 1; h <= horizon; h++ {
		projected := level + float64(h)*trend + seasonals[(n-1+h)%m]
		forecast[h-1] = domain.SeriesPoint{
			Date:  last.Add(time.Duration(h) * step),
			Value: projected,
		}
	}
	return forecast, nil
}

// initialTrend averages the per-step change between the first two seasons.
func initialTrend(values []float64, m int) float64 {
	sum := 0.0
	for i := 0; i < m; i++ {
		sum += (values[m+i] - values[i]) / float64(m)
	}
	return sum / float64(m)
}

// initialSeasonals averages each in-season position's deviation from its
// season mean across all complete seasons.
func initialSeasonals(values []float64, m int) []float64 {
	seasons := len(values) / m
	seasonMeans := make([]float64, seasons)
	for k := 0; k < seasons; k++ {
		sum := 0.0
		for i := 0; i < m; i++ {
			sum += values[k*m+i]
		}
		seasonMeans[k] = sum / float64(m)
	}

	seasonals := make([]float64, m)
	for i := 0; i < m; i++ {
		sum := 0.0
		for k := 0; k < seasons; k++ {
			sum += values[k*m+i] - seasonMeans[k]
		}
		seasonals[i] = sum / float64(seasons)
	}
	return seasonals
}
