// backend-go/internal/repository/sale_repository.go
package repository

import (
	"context"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
)

// SaleRepository records sales and reads them back for reporting. RecordSale
// performs the listing decrement, the acquisition-cost lookup and the sale
// insert in one transaction.
type SaleRepository interface {
	RecordSale(ctx context.Context, listingID int64, quantity int) (*domain.Sale, error)
	ListSales(ctx context.Context, itemID int64) ([]*domain.Sale, error)
}
