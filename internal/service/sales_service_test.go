package service

import (
	"context"
	"testing"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordSaleValidatesInput(t *testing.T) {
	svc := NewSalesService(&mockSaleRepo{}, &mockReportCache{})
	ctx := context.Background()

	_, err := svc.RecordSale(ctx, 0, 1)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.RecordSale(ctx, 5, 0)
	assert.True(t, domain.IsValidation(err))
}

func TestRecordSaleInvalidatesSoldItem(t *testing.T) {
	sales := &mockSaleRepo{}
	sales.On("RecordSale", mock.Anything, int64(5), 2).Return(&domain.Sale{
		ID: 11, ItemID: 1, Quantity: 2,
		SalePrice:       decimal.NewFromInt(40),
		AcquisitionCost: decimal.NewFromInt(12),
	}, nil)

	reports := &mockReportCache{}
	reports.On("InvalidateItem", mock.Anything, int64(1)).Return(nil)

	svc := NewSalesService(sales, reports)
	sale, err := svc.RecordSale(context.Background(), 5, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sale.ItemID)
	reports.AssertExpectations(t)
}

func TestRecordSaleRepositoryError(t *testing.T) {
	sales := &mockSaleRepo{}
	sales.On("RecordSale", mock.Anything, int64(5), 2).Return(nil, domain.ErrNotFound)

	reports := &mockReportCache{}
	svc := NewSalesService(sales, reports)

	_, err := svc.RecordSale(context.Background(), 5, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	reports.AssertNotCalled(t, "InvalidateItem", mock.Anything, mock.Anything)
}
