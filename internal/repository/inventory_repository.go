// backend-go/internal/repository/inventory_repository.go
package repository

import (
	"context"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
)

// InventoryRepository owns the lot and transaction-log lifecycles. AddLot and
// UpdateLot are atomic: the lot write and its transaction-log entry commit or
// roll back together.
type InventoryRepository interface {
	// AddLot nets the entry into an existing lot for the same
	// (item, location) pair, or inserts a new lot when none exists. The
	// quantity change is appended to the transaction log either way.
	AddLot(ctx context.Context, lot *domain.InventoryLot) error

	// UpdateLot persists new quantity/cost/location for an existing lot,
	// logging the quantity delta when it changed.
	UpdateLot(ctx context.Context, lot *domain.InventoryLot) error

	// DeleteLot hard-deletes the lot. Its transactions are retained;
	// historical data is never purged.
	DeleteLot(ctx context.Context, id int64) error

	GetLot(ctx context.Context, id int64) (*domain.InventoryLot, error)

	// ListLots returns all lots, or those of one item when itemID > 0.
	ListLots(ctx context.Context, itemID int64) ([]*domain.InventoryLot, error)

	// ListTransactions returns the transaction log, oldest first, optionally
	// filtered to one item.
	ListTransactions(ctx context.Context, itemID int64) ([]*domain.InventoryTransaction, error)
}
