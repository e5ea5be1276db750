// backend-go/internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a sellable product. Lots, listings and sales reference it by ID only.
type Item struct {
	ID          int64     `json:"item_id" db:"item_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// InventoryLot is a quantity of one item held at one location, carrying the
// weighted-average unit cost of everything merged into it.
type InventoryLot struct {
	ID        int64           `json:"inventory_id" db:"inventory_id"`
	ItemID    int64           `json:"item_id" db:"item_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Location  string          `json:"location" db:"location"`
	UnitCost  decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// InventoryTransaction records one quantity change on a lot. Entries are
// append-only; they survive lot deletion and are the source of truth for
// historical stock levels.
type InventoryTransaction struct {
	ID          int64     `json:"transaction_id" db:"transaction_id"`
	ItemID      int64     `json:"item_id" db:"item_id"`
	InventoryID int64     `json:"inventory_id" db:"inventory_id"`
	QtyChange   int       `json:"qty_change" db:"qty_change"`
	Date        time.Time `json:"date" db:"date"`
}

// Listing statuses.
const (
	ListingStatusActive   = "active"
	ListingStatusSold     = "sold"
	ListingStatusInactive = "inactive"
)

// Marketplaces a listing can live on.
const (
	WebsiteEtsy   = "Etsy"
	WebsiteAmazon = "Amazon"
	WebsiteEbay   = "Ebay"
)

// Listing is an item offered on a marketplace.
type Listing struct {
	ID        int64           `json:"listing_id" db:"listing_id"`
	ItemID    int64           `json:"item_id" db:"item_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Website   string          `json:"website" db:"website"`
	URL       string          `json:"url" db:"url"`
	Status    string          `json:"status" db:"status"`
	UnitPrice decimal.Decimal `json:"unit_price" db:"unit_price"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Sale is an immutable sale record. AcquisitionCost is the item's average
// inventory unit cost snapshotted at sale time, never re-derived.
type Sale struct {
	ID              int64           `json:"sale_id" db:"sale_id"`
	ItemID          int64           `json:"item_id" db:"item_id"`
	Quantity        int             `json:"quantity" db:"quantity"`
	SalePrice       decimal.Decimal `json:"sale_price" db:"sale_price"`
	AcquisitionCost decimal.Decimal `json:"acquisition_cost" db:"acquisition_cost"`
	DateSold        time.Time       `json:"date_sold" db:"date_sold"`
}

// MonthlyProfit is one month of the profit/margin report.
type MonthlyProfit struct {
	Month  time.Time       `json:"month"`
	Profit decimal.Decimal `json:"profit"`
	Margin decimal.Decimal `json:"margin_pct"`
}

// MonthlyLevel is one month of the back-projected inventory history.
type MonthlyLevel struct {
	Month time.Time `json:"month"`
	Level int       `json:"level"`
}

// SeriesPoint is one observation of a regularly spaced time series.
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// ForecastReport pairs the observed weekly sales series with the projected
// continuation produced by the forecaster.
type ForecastReport struct {
	Observed []SeriesPoint `json:"observed"`
	Forecast []SeriesPoint `json:"forecast"`
}
