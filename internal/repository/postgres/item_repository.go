// backend-go/internal/repository/postgres/item_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/jmoiron/sqlx"
)

type itemRepository struct {
	db *DB
}

func NewItemRepository(db *DB) *itemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (name, description, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING item_id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, item.Name, item.Description).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func (r *itemRepository) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	query := `
		SELECT item_id, name, description, created_at, updated_at
		FROM items
		WHERE item_id = $1
	`
	var item domain.Item
	if err := sqlx.GetContext(ctx, r.db, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

func (r *itemRepository) ListItems(ctx context.Context) ([]*domain.Item, error) {
	query := `
		SELECT item_id, name, description, created_at, updated_at
		FROM items
		ORDER BY item_id
	`
	var items []*domain.Item
	if err := sqlx.SelectContext(ctx, r.db, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	query := `
		UPDATE items
		SET name = $1, description = $2, updated_at = NOW()
		WHERE item_id = $3
	`
	res, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE item_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
