// backend-go/internal/repository/postgres/listing_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/jmoiron/sqlx"
)

type listingRepository struct {
	db *DB
}

func NewListingRepository(db *DB) *listingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) CreateListing(ctx context.Context, listing *domain.Listing) error {
	query := `
		INSERT INTO listings (item_id, quantity, website, url, status, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING listing_id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		listing.ItemID, listing.Quantity, listing.Website, listing.URL, listing.Status, listing.UnitPrice,
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

func (r *listingRepository) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `
		SELECT listing_id, item_id, quantity, website, url, status, unit_price, created_at, updated_at
		FROM listings
		WHERE listing_id = $1
	`
	var listing domain.Listing
	if err := sqlx.GetContext(ctx, r.db, &listing, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

func (r *listingRepository) ListListings(ctx context.Context, itemID int64) ([]*domain.Listing, error) {
	query := `
		SELECT listing_id, item_id, quantity, website, url, status, unit_price, created_at, updated_at
		FROM listings
		WHERE ($1 = 0 OR item_id = $1)
		ORDER BY listing_id
	`
	var listings []*domain.Listing
	if err := sqlx.SelectContext(ctx, r.db, &listings, query, itemID); err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

func (r *listingRepository) UpdateListing(ctx context.Context, listing *domain.Listing) error {
	query := `
		UPDATE listings
		SET item_id = $1, quantity = $2, website = $3, url = $4, status = $5, unit_price = $6, updated_at = NOW()
		WHERE listing_id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		listing.ItemID, listing.Quantity, listing.Website, listing.URL, listing.Status, listing.UnitPrice, listing.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *listingRepository) DeleteListing(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE listing_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
