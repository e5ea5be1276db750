// backend-go/internal/repository/item_repository.go
package repository

import (
	"context"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
)

type ItemRepository interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	ListItems(ctx context.Context) ([]*domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id int64) error
}
