package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/cache"
	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLedger(items *mockItemRepo, inventory *mockInventoryRepo, listings *mockListingRepo) *LedgerService {
	return NewLedgerService(items, inventory, listings, cache.NewNoopReportCache())
}

func TestCreateItemRequiresName(t *testing.T) {
	svc := newLedger(&mockItemRepo{}, &mockInventoryRepo{}, &mockListingRepo{})

	err := svc.CreateItem(context.Background(), &domain.Item{Name: "   "})
	assert.True(t, domain.IsValidation(err))
}

func TestDeleteItemBlockedByInventory(t *testing.T) {
	inventory := &mockInventoryRepo{}
	inventory.On("ListLots", mock.Anything, int64(7)).
		Return([]*domain.InventoryLot{{ID: 1, ItemID: 7, Quantity: 3}}, nil)

	items := &mockItemRepo{}
	svc := newLedger(items, inventory, &mockListingRepo{})

	err := svc.DeleteItem(context.Background(), 7)
	assert.True(t, domain.IsValidation(err))
	items.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
}

func TestDeleteItemBlockedByListings(t *testing.T) {
	inventory := &mockInventoryRepo{}
	inventory.On("ListLots", mock.Anything, int64(7)).Return([]*domain.InventoryLot{}, nil)

	listings := &mockListingRepo{}
	listings.On("ListListings", mock.Anything, int64(7)).
		Return([]*domain.Listing{{ID: 4, ItemID: 7, Quantity: 1, Website: domain.WebsiteEtsy}}, nil)

	items := &mockItemRepo{}
	svc := newLedger(items, inventory, listings)

	err := svc.DeleteItem(context.Background(), 7)
	assert.True(t, domain.IsValidation(err))
	items.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
}

func TestDeleteItemWithoutInventoryOrListings(t *testing.T) {
	inventory := &mockInventoryRepo{}
	inventory.On("ListLots", mock.Anything, int64(7)).Return([]*domain.InventoryLot{}, nil)

	listings := &mockListingRepo{}
	listings.On("ListListings", mock.Anything, int64(7)).Return([]*domain.Listing{}, nil)

	items := &mockItemRepo{}
	items.On("DeleteItem", mock.Anything, int64(7)).Return(nil)

	svc := newLedger(items, inventory, listings)
	require.NoError(t, svc.DeleteItem(context.Background(), 7))
	items.AssertExpectations(t)
}

func TestAddLotValidation(t *testing.T) {
	svc := newLedger(&mockItemRepo{}, &mockInventoryRepo{}, &mockListingRepo{})
	ctx := context.Background()

	cases := []struct {
		name string
		lot  *domain.InventoryLot
	}{
		{"missing item", &domain.InventoryLot{Quantity: 1, Location: "A1"}},
		{"zero quantity", &domain.InventoryLot{ItemID: 1, Quantity: 0, Location: "A1"}},
		{"negative cost", &domain.InventoryLot{ItemID: 1, Quantity: 1, Location: "A1", UnitCost: decimal.NewFromInt(-1)}},
		{"blank location", &domain.InventoryLot{ItemID: 1, Quantity: 1, Location: " "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, domain.IsValidation(svc.AddLot(ctx, tc.lot)))
		})
	}
}

func TestAddLotUnknownItem(t *testing.T) {
	items := &mockItemRepo{}
	items.On("GetItem", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	svc := newLedger(items, &mockInventoryRepo{}, &mockListingRepo{})
	err := svc.AddLot(context.Background(), &domain.InventoryLot{
		ItemID: 99, Quantity: 5, Location: "A1", UnitCost: decimal.NewFromInt(2),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateLotInvalidatesPriorItemOnReassign(t *testing.T) {
	inventory := &mockInventoryRepo{}
	inventory.On("GetLot", mock.Anything, int64(3)).
		Return(&domain.InventoryLot{ID: 3, ItemID: 1, Quantity: 5, Location: "A1"}, nil)
	inventory.On("UpdateLot", mock.Anything, mock.Anything).Return(nil)

	reports := &mockReportCache{}
	reports.On("InvalidateItem", mock.Anything, int64(2)).Return(nil)
	reports.On("InvalidateItem", mock.Anything, int64(1)).Return(nil)

	svc := NewLedgerService(&mockItemRepo{}, inventory, &mockListingRepo{}, reports)
	err := svc.UpdateLot(context.Background(), &domain.InventoryLot{
		ID: 3, ItemID: 2, Quantity: 5, Location: "A1", UnitCost: decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	reports.AssertExpectations(t)
}

func TestUpdateLotSameItemInvalidatesOnce(t *testing.T) {
	inventory := &mockInventoryRepo{}
	inventory.On("GetLot", mock.Anything, int64(3)).
		Return(&domain.InventoryLot{ID: 3, ItemID: 2, Quantity: 5, Location: "A1"}, nil)
	inventory.On("UpdateLot", mock.Anything, mock.Anything).Return(nil)

	reports := &mockReportCache{}
	reports.On("InvalidateItem", mock.Anything, int64(2)).Return(nil)

	svc := NewLedgerService(&mockItemRepo{}, inventory, &mockListingRepo{}, reports)
	err := svc.UpdateLot(context.Background(), &domain.InventoryLot{
		ID: 3, ItemID: 2, Quantity: 8, Location: "A1", UnitCost: decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	reports.AssertNumberOfCalls(t, "InvalidateItem", 1)
}

func TestCreateListingRejectsUnknownWebsite(t *testing.T) {
	svc := newLedger(&mockItemRepo{}, &mockInventoryRepo{}, &mockListingRepo{})

	err := svc.CreateListing(context.Background(), &domain.Listing{
		ItemID: 1, Quantity: 2, Website: "Craigslist", UnitPrice: decimal.NewFromInt(5),
	})
	assert.True(t, domain.IsValidation(err))
}

func TestCreateListingDefaultsToActive(t *testing.T) {
	items := &mockItemRepo{}
	items.On("GetItem", mock.Anything, int64(1)).Return(&domain.Item{ID: 1, Name: "Mug"}, nil)

	listings := &mockListingRepo{}
	listings.On("CreateListing", mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
		return l.Status == domain.ListingStatusActive
	})).Return(nil)

	svc := newLedger(items, &mockInventoryRepo{}, listings)
	err := svc.CreateListing(context.Background(), &domain.Listing{
		ItemID: 1, Quantity: 2, Website: domain.WebsiteEtsy, UnitPrice: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	listings.AssertExpectations(t)
}

func TestExportInventoryCSV(t *testing.T) {
	inventory := &mockInventoryRepo{}
	inventory.On("ListLots", mock.Anything, int64(0)).Return([]*domain.InventoryLot{
		{
			ID: 1, ItemID: 2, Quantity: 10, Location: "Shelf A",
			UnitCost:  decimal.RequireFromString("4.50"),
			CreatedAt: time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC),
		},
	}, nil)

	svc := newLedger(&mockItemRepo{}, inventory, &mockListingRepo{})
	out, err := svc.ExportInventoryCSV(context.Background(), 0)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "inventory_id,item_id,quantity,location,unit_cost,created_at", lines[0])
	assert.Equal(t, "1,2,10,Shelf A,4.50,2024-05-01T12:00:00Z", lines[1])
}
