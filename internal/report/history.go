// backend-go/internal/report/history.go
package report

import (
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
)

// MonthlyInventoryLevels reconstructs historical stock levels by walking the
// transaction log backward from the current on-hand total.
//
// The walk runs newest month first, subtracting a running cumulative delta
// that includes the month being reported, so each month's level is the
// current total minus every delta from that month through the present. Gap
// months inside the range count as zero change. Output is ascending for
// charting. Empty transactions yield an empty slice.
func MonthlyInventoryLevels(lots []*domain.InventoryLot, txns []*domain.InventoryTransaction) []domain.MonthlyLevel {
	if len(txns) == 0 {
		return []domain.MonthlyLevel{}
	}

	currentTotal := 0
	for _, lot := range lots {
		currentTotal += lot.Quantity
	}

	deltas := make(map[time.Time]int)
	minMonth := truncateToMonth(txns[0].Date)
	maxMonth := minMonth
	for _, txn := range txns {
		month := truncateToMonth(txn.Date)
		deltas[month] += txn.QtyChange
		if month.Before(minMonth) {
			minMonth = month
		}
		if month.After(maxMonth) {
			maxMonth = month
		}
	}

	var months []time.Time
	for m := minMonth; !m.After(maxMonth); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}

	levels := make([]domain.MonthlyLevel, len(months))
	running := currentTotal
	for i := len(months) - 1; i >= 0; i-- {
		running -= deltas[months[i]]
		levels[i] = domain.MonthlyLevel{Month: months[i], Level: running}
	}
	return levels
}
