// backend-go/internal/report/profit.go

// Package report derives the monthly time series served by the reporting
// endpoints: profit/margin from sale records and inventory levels
// back-projected from the transaction log.
package report

import (
	"sort"
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// MonthlyProfitMargin aggregates sales into per-month profit and margin.
// Months appear in chronological order and only when they contain at least
// one sale. A month with zero revenue reports a margin of 0 rather than
// dividing by zero. Empty input yields an empty slice.
func MonthlyProfitMargin(sales []*domain.Sale) []domain.MonthlyProfit {
	type bucket struct {
		revenue decimal.Decimal
		cost    decimal.Decimal
	}

	buckets := make(map[time.Time]*bucket)
	for _, sale := range sales {
		month := truncateToMonth(sale.DateSold)
		b, ok := buckets[month]
		if !ok {
			b = &bucket{revenue: decimal.Zero, cost: decimal.Zero}
			buckets[month] = b
		}
		qty := decimal.NewFromInt(int64(sale.Quantity))
		b.revenue = b.revenue.Add(sale.SalePrice.Mul(qty))
		b.cost = b.cost.Add(sale.AcquisitionCost.Mul(qty))
	}

	months := make([]time.Time, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	result := make([]domain.MonthlyProfit, 0, len(months))
	for _, month := range months {
		b := buckets[month]
		profit := b.revenue.Sub(b.cost)
		margin := decimal.Zero
		if !b.revenue.IsZero() {
			margin = profit.Div(b.revenue).Mul(hundred)
		}
		result = append(result, domain.MonthlyProfit{
			Month:  month,
			Profit: profit,
			Margin: margin,
		})
	}
	return result
}

func truncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
