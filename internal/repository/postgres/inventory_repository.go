// backend-go/internal/repository/postgres/inventory_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type inventoryRepository struct {
	db *DB
}

func NewInventoryRepository(db *DB) *inventoryRepository {
	return &inventoryRepository{db: db}
}

// weightedAverageCost merges a new quantity at newCost into an existing
// quantity at oldCost, rounding to cents. Callers guarantee the combined
// quantity is positive.
func weightedAverageCost(oldQty int, oldCost decimal.Decimal, newQty int, newCost decimal.Decimal) decimal.Decimal {
	oldTotal := oldCost.Mul(decimal.NewFromInt(int64(oldQty)))
	newTotal := newCost.Mul(decimal.NewFromInt(int64(newQty)))
	total := decimal.NewFromInt(int64(oldQty + newQty))
	return oldTotal.Add(newTotal).Div(total).Round(2)
}

// AddLot nets the entry into the lot already holding this (item, location)
// pair, or inserts a fresh lot. The read-modify-write and the transaction-log
// append run inside one transaction; the row lock closes the race between two
// concurrent adds against the same pair.
func (r *inventoryRepository) AddLot(ctx context.Context, lot *domain.InventoryLot) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		var existing domain.InventoryLot
		query := `
			SELECT inventory_id, item_id, quantity, location, unit_cost, created_at, updated_at
			FROM inventory
			WHERE item_id = $1 AND location = $2
			ORDER BY inventory_id
			LIMIT 1
			FOR UPDATE
		`
		err := sqlx.GetContext(ctx, tx, &existing, query, lot.ItemID, lot.Location)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			insert := `
				INSERT INTO inventory (item_id, quantity, location, unit_cost, created_at, updated_at)
				VALUES ($1, $2, $3, $4, NOW(), NOW())
				RETURNING inventory_id, created_at, updated_at
			`
			if err := tx.QueryRowxContext(ctx, insert,
				lot.ItemID, lot.Quantity, lot.Location, lot.UnitCost,
			).Scan(&lot.ID, &lot.CreatedAt, &lot.UpdatedAt); err != nil {
				return fmt.Errorf("failed to insert inventory lot: %w", err)
			}
			return appendTransaction(ctx, tx, lot.ItemID, lot.ID, lot.Quantity)

		case err != nil:
			return fmt.Errorf("failed to look up inventory lot: %w", err)
		}

		// Netting: fold the addition into the existing lot at the
		// quantity-weighted average cost.
		totalQty := existing.Quantity + lot.Quantity
		avgCost := weightedAverageCost(existing.Quantity, existing.UnitCost, lot.Quantity, lot.UnitCost)

		update := `
			UPDATE inventory
			SET quantity = $1, unit_cost = $2, updated_at = NOW()
			WHERE inventory_id = $3
		`
		if _, err := tx.ExecContext(ctx, update, totalQty, avgCost, existing.ID); err != nil {
			return fmt.Errorf("failed to net inventory lot: %w", err)
		}

		if err := appendTransaction(ctx, tx, existing.ItemID, existing.ID, lot.Quantity); err != nil {
			return err
		}

		lot.ID = existing.ID
		lot.Quantity = totalQty
		lot.UnitCost = avgCost
		return nil
	})
}

// UpdateLot applies an ad-hoc edit. The prior quantity is read under lock so
// the logged delta always matches what was actually persisted.
func (r *inventoryRepository) UpdateLot(ctx context.Context, lot *domain.InventoryLot) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		var priorQty int
		err := tx.QueryRowxContext(ctx,
			`SELECT quantity FROM inventory WHERE inventory_id = $1 FOR UPDATE`,
			lot.ID,
		).Scan(&priorQty)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to read prior quantity: %w", err)
		}

		if lot.Quantity != priorQty {
			if err := appendTransaction(ctx, tx, lot.ItemID, lot.ID, lot.Quantity-priorQty); err != nil {
				return err
			}
		}

		update := `
			UPDATE inventory
			SET item_id = $1, quantity = $2, location = $3, unit_cost = $4, updated_at = NOW()
			WHERE inventory_id = $5
		`
		if _, err := tx.ExecContext(ctx, update,
			lot.ItemID, lot.Quantity, lot.Location, lot.UnitCost, lot.ID,
		); err != nil {
			return fmt.Errorf("failed to update inventory lot: %w", err)
		}
		return nil
	})
}

func appendTransaction(ctx context.Context, tx *sqlx.Tx, itemID, inventoryID int64, qtyChange int) error {
	query := `
		INSERT INTO inventory_transactions (item_id, inventory_id, qty_change, date)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(ctx, query, itemID, inventoryID, qtyChange, time.Now()); err != nil {
		return fmt.Errorf("failed to append inventory transaction: %w", err)
	}
	return nil
}

// DeleteLot removes the lot row only. Transactions keep pointing at the
// now-missing lot on purpose.
func (r *inventoryRepository) DeleteLot(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE inventory_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory lot: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) GetLot(ctx context.Context, id int64) (*domain.InventoryLot, error) {
	query := `
		SELECT inventory_id, item_id, quantity, location, unit_cost, created_at, updated_at
		FROM inventory
		WHERE inventory_id = $1
	`
	var lot domain.InventoryLot
	if err := sqlx.GetContext(ctx, r.db, &lot, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inventory lot: %w", err)
	}
	return &lot, nil
}

func (r *inventoryRepository) ListLots(ctx context.Context, itemID int64) ([]*domain.InventoryLot, error) {
	query := `
		SELECT inventory_id, item_id, quantity, location, unit_cost, created_at, updated_at
		FROM inventory
		WHERE ($1 = 0 OR item_id = $1)
		ORDER BY inventory_id
	`
	var lots []*domain.InventoryLot
	if err := sqlx.SelectContext(ctx, r.db, &lots, query, itemID); err != nil {
		return nil, fmt.Errorf("failed to list inventory lots: %w", err)
	}
	return lots, nil
}

func (r *inventoryRepository) ListTransactions(ctx context.Context, itemID int64) ([]*domain.InventoryTransaction, error) {
	query := `
		SELECT transaction_id, item_id, inventory_id, qty_change, date
		FROM inventory_transactions
		WHERE ($1 = 0 OR item_id = $1)
		ORDER BY date, transaction_id
	`
	var txns []*domain.InventoryTransaction
	if err := sqlx.SelectContext(ctx, r.db, &txns, query, itemID); err != nil {
		return nil, fmt.Errorf("failed to list inventory transactions: %w", err)
	}
	return txns, nil
}
