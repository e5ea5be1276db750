// backend-go/internal/repository/listing_repository.go
package repository

import (
	"context"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
)

type ListingRepository interface {
	CreateListing(ctx context.Context, listing *domain.Listing) error
	GetListing(ctx context.Context, id int64) (*domain.Listing, error)
	ListListings(ctx context.Context, itemID int64) ([]*domain.Listing, error)
	UpdateListing(ctx context.Context, listing *domain.Listing) error
	DeleteListing(ctx context.Context, id int64) error
}
