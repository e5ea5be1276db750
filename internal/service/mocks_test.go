package service

import (
	"context"

	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/shipping"
	"github.com/andresuchdata/sellerstock/backend-go/internal/storage"
	"github.com/stretchr/testify/mock"
)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) CreateItem(ctx context.Context, item *domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *mockItemRepo) ListItems(ctx context.Context) ([]*domain.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, item *domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) DeleteItem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockInventoryRepo struct{ mock.Mock }

func (m *mockInventoryRepo) AddLot(ctx context.Context, lot *domain.InventoryLot) error {
	return m.Called(ctx, lot).Error(0)
}

func (m *mockInventoryRepo) UpdateLot(ctx context.Context, lot *domain.InventoryLot) error {
	return m.Called(ctx, lot).Error(0)
}

func (m *mockInventoryRepo) DeleteLot(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockInventoryRepo) GetLot(ctx context.Context, id int64) (*domain.InventoryLot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryLot), args.Error(1)
}

func (m *mockInventoryRepo) ListLots(ctx context.Context, itemID int64) ([]*domain.InventoryLot, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]*domain.InventoryLot), args.Error(1)
}

func (m *mockInventoryRepo) ListTransactions(ctx context.Context, itemID int64) ([]*domain.InventoryTransaction, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]*domain.InventoryTransaction), args.Error(1)
}

type mockListingRepo struct{ mock.Mock }

func (m *mockListingRepo) CreateListing(ctx context.Context, listing *domain.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *mockListingRepo) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *mockListingRepo) ListListings(ctx context.Context, itemID int64) ([]*domain.Listing, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]*domain.Listing), args.Error(1)
}

func (m *mockListingRepo) UpdateListing(ctx context.Context, listing *domain.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *mockListingRepo) DeleteListing(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockSaleRepo struct{ mock.Mock }

func (m *mockSaleRepo) RecordSale(ctx context.Context, listingID int64, quantity int) (*domain.Sale, error) {
	args := m.Called(ctx, listingID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *mockSaleRepo) ListSales(ctx context.Context, itemID int64) ([]*domain.Sale, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]*domain.Sale), args.Error(1)
}

type mockReportCache struct{ mock.Mock }

func (m *mockReportCache) GetProfit(ctx context.Context, itemID int64) ([]domain.MonthlyProfit, bool, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.MonthlyProfit), args.Bool(1), args.Error(2)
}

func (m *mockReportCache) SetProfit(ctx context.Context, itemID int64, rows []domain.MonthlyProfit) error {
	return m.Called(ctx, itemID, rows).Error(0)
}

func (m *mockReportCache) GetHistory(ctx context.Context, itemID int64) ([]domain.MonthlyLevel, bool, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.MonthlyLevel), args.Bool(1), args.Error(2)
}

func (m *mockReportCache) SetHistory(ctx context.Context, itemID int64, rows []domain.MonthlyLevel) error {
	return m.Called(ctx, itemID, rows).Error(0)
}

func (m *mockReportCache) GetForecast(ctx context.Context, itemID int64, horizon int) (*domain.ForecastReport, bool, error) {
	args := m.Called(ctx, itemID, horizon)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ForecastReport), args.Bool(1), args.Error(2)
}

func (m *mockReportCache) SetForecast(ctx context.Context, itemID int64, horizon int, report *domain.ForecastReport) error {
	return m.Called(ctx, itemID, horizon, report).Error(0)
}

func (m *mockReportCache) InvalidateItem(ctx context.Context, itemID int64) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *mockReportCache) InvalidateAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockForecaster struct{ mock.Mock }

func (m *mockForecaster) Forecast(ctx context.Context, series []domain.SeriesPoint, horizon int) ([]domain.SeriesPoint, error) {
	args := m.Called(ctx, series, horizon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeriesPoint), args.Error(1)
}

type mockCarrier struct{ mock.Mock }

func (m *mockCarrier) GetRates(ctx context.Context, query shipping.RateQuery) ([]shipping.RateOption, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.RateOption), args.Error(1)
}

func (m *mockCarrier) CreateLabel(ctx context.Context, serviceType string, shipper, recipient shipping.Party, pkg shipping.Package) ([]byte, error) {
	args := m.Called(ctx, serviceType, shipper, recipient, pkg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockArchive struct{ mock.Mock }

func (m *mockArchive) PutObject(ctx context.Context, key string, data []byte) error {
	return m.Called(ctx, key, data).Error(0)
}

func (m *mockArchive) GetObject(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockArchive) ListObjects(ctx context.Context, prefix string) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).([]storage.ObjectInfo), args.Error(1)
}
