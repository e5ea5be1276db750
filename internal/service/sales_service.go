// backend-go/internal/service/sales_service.go
package service

import (
	"context"

	"github.com/andresuchdata/sellerstock/backend-go/internal/cache"
	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// SalesService records sales against listings. The heavy lifting (listing
// decrement, cost snapshot, status flip) happens inside the repository
// transaction; this layer validates input and keeps caches honest.
type SalesService struct {
	sales   repository.SaleRepository
	reports cache.ReportCache
}

func NewSalesService(sales repository.SaleRepository, reports cache.ReportCache) *SalesService {
	return &SalesService{sales: sales, reports: reports}
}

func (s *SalesService) RecordSale(ctx context.Context, listingID int64, quantity int) (*domain.Sale, error) {
	if listingID <= 0 {
		return nil, domain.NewValidationError("listing_id", "must be provided")
	}
	if quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "must be positive")
	}

	sale, err := s.sales.RecordSale(ctx, listingID, quantity)
	if err != nil {
		return nil, err
	}

	if err := s.reports.InvalidateItem(ctx, sale.ItemID); err != nil {
		log.Warn().Err(err).Int64("item_id", sale.ItemID).Msg("failed to invalidate report cache")
	}
	return sale, nil
}

func (s *SalesService) ListSales(ctx context.Context, itemID int64) ([]*domain.Sale, error) {
	return s.sales.ListSales(ctx, itemID)
}
