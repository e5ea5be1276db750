// backend-go/internal/repository/postgres/sale_repository.go
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

type saleRepository struct {
	db *DB
}

func NewSaleRepository(db *DB) *saleRepository {
	return &saleRepository{db: db}
}

// RecordSale decrements the listing, snapshots the item's current average
// unit cost and inserts the sale row, all in one transaction. The listing row
// is locked so concurrent sales against the same listing serialize.
func (r *saleRepository) RecordSale(ctx context.Context, listingID int64, quantity int) (*domain.Sale, error) {
	var sale domain.Sale

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		var listing domain.Listing
		query := `
			SELECT listing_id, item_id, quantity, website, url, status, unit_price, created_at, updated_at
			FROM listings
			WHERE listing_id = $1
			FOR UPDATE
		`
		if err := sqlx.GetContext(ctx, tx, &listing, query, listingID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to get listing: %w", err)
		}

		if quantity > listing.Quantity {
			return domain.NewValidationError("quantity", "cannot exceed listing quantity")
		}

		status := listing.Status
		if quantity == listing.Quantity {
			status = domain.ListingStatusSold
		}

		update := `
			UPDATE listings
			SET quantity = $1, status = $2, updated_at = NOW()
			WHERE listing_id = $3
		`
		if _, err := tx.ExecContext(ctx, update, listing.Quantity-quantity, status, listingID); err != nil {
			return fmt.Errorf("failed to decrement listing: %w", err)
		}

		// Acquisition cost comes from the item's first lot. An item can be
		// sold with no tracked inventory; the cost then defaults to 0, which
		// understates cost in the profit report (documented behavior).
		acquisitionCost := decimal.Zero
		costQuery := `
			SELECT unit_cost
			FROM inventory
			WHERE item_id = $1
			ORDER BY inventory_id
			LIMIT 1
		`
		err := tx.QueryRowxContext(ctx, costQuery, listing.ItemID).Scan(&acquisitionCost)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to look up acquisition cost: %w", err)
		}

		insert := `
			INSERT INTO sales (item_id, quantity, sale_price, acquisition_cost, date_sold)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING sale_id
		`
		dateSold := time.Now()
		if err := tx.QueryRowxContext(ctx, insert,
			listing.ItemID, quantity, listing.UnitPrice, acquisitionCost, dateSold,
		).Scan(&sale.ID); err != nil {
			return fmt.Errorf("failed to insert sale: %w", err)
		}

		sale.ItemID = listing.ItemID
		sale.Quantity = quantity
		sale.SalePrice = listing.UnitPrice
		sale.AcquisitionCost = acquisitionCost
		sale.DateSold = dateSold
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

func (r *saleRepository) ListSales(ctx context.Context, itemID int64) ([]*domain.Sale, error) {
	query := `
		SELECT sale_id, item_id, quantity, sale_price, acquisition_cost, date_sold
		FROM sales
		WHERE ($1 = 0 OR item_id = $1)
		ORDER BY date_sold, sale_id
	`
	var sales []*domain.Sale
	if err := sqlx.SelectContext(ctx, r.db, &sales, query, itemID); err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
