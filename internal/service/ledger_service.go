// backend-go/internal/service/ledger_service.go
package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/cache"
	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// LedgerService fronts the item catalog and the inventory ledger. All writes
// invalidate the affected item's cached reports.
type LedgerService struct {
	items     repository.ItemRepository
	inventory repository.InventoryRepository
	listings  repository.ListingRepository
	reports   cache.ReportCache
}

func NewLedgerService(
	items repository.ItemRepository,
	inventory repository.InventoryRepository,
	listings repository.ListingRepository,
	reports cache.ReportCache,
) *LedgerService {
	return &LedgerService{
		items:     items,
		inventory: inventory,
		listings:  listings,
		reports:   reports,
	}
}

func (s *LedgerService) CreateItem(ctx context.Context, item *domain.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	return s.items.CreateItem(ctx, item)
}

func (s *LedgerService) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	return s.items.GetItem(ctx, id)
}

func (s *LedgerService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return s.items.ListItems(ctx)
}

func (s *LedgerService) UpdateItem(ctx context.Context, item *domain.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	return s.items.UpdateItem(ctx, item)
}

// DeleteItem refuses to remove an item that still has inventory lots or
// listings; those must be deleted or sold through first. Without the listing
// check the foreign key on listings.item_id would reject the delete anyway,
// but as an opaque driver error instead of a validation failure.
func (s *LedgerService) DeleteItem(ctx context.Context, id int64) error {
	lots, err := s.inventory.ListLots(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check item inventory: %w", err)
	}
	if len(lots) > 0 {
		return domain.NewValidationError("item_id", "cannot delete item with existing inventory")
	}

	listings, err := s.listings.ListListings(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check item listings: %w", err)
	}
	if len(listings) > 0 {
		return domain.NewValidationError("item_id", "cannot delete item with existing listings")
	}

	if err := s.items.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.invalidateReports(ctx, id)
	return nil
}

func (s *LedgerService) AddLot(ctx context.Context, lot *domain.InventoryLot) error {
	if err := validateLot(lot); err != nil {
		return err
	}
	if _, err := s.items.GetItem(ctx, lot.ItemID); err != nil {
		return fmt.Errorf("failed to resolve item %d: %w", lot.ItemID, err)
	}

	if err := s.inventory.AddLot(ctx, lot); err != nil {
		return err
	}
	s.invalidateReports(ctx, lot.ItemID)
	return nil
}

func (s *LedgerService) UpdateLot(ctx context.Context, lot *domain.InventoryLot) error {
	if err := validateLot(lot); err != nil {
		return err
	}

	prior, err := s.inventory.GetLot(ctx, lot.ID)
	if err != nil {
		return err
	}

	if err := s.inventory.UpdateLot(ctx, lot); err != nil {
		return err
	}
	s.invalidateReports(ctx, lot.ItemID)
	// An edit can reassign the lot to another item; that item's cached
	// reports are stale too.
	if prior.ItemID != lot.ItemID {
		s.invalidateReports(ctx, prior.ItemID)
	}
	return nil
}

func (s *LedgerService) DeleteLot(ctx context.Context, id int64) error {
	lot, err := s.inventory.GetLot(ctx, id)
	if err != nil {
		return err
	}

	if err := s.inventory.DeleteLot(ctx, id); err != nil {
		return err
	}
	s.invalidateReports(ctx, lot.ItemID)
	return nil
}

func (s *LedgerService) GetLot(ctx context.Context, id int64) (*domain.InventoryLot, error) {
	return s.inventory.GetLot(ctx, id)
}

func (s *LedgerService) ListLots(ctx context.Context, itemID int64) ([]*domain.InventoryLot, error) {
	return s.inventory.ListLots(ctx, itemID)
}

func (s *LedgerService) ListTransactions(ctx context.Context, itemID int64) ([]*domain.InventoryTransaction, error) {
	return s.inventory.ListTransactions(ctx, itemID)
}

func (s *LedgerService) CreateListing(ctx context.Context, listing *domain.Listing) error {
	if err := validateListing(listing); err != nil {
		return err
	}
	if _, err := s.items.GetItem(ctx, listing.ItemID); err != nil {
		return fmt.Errorf("failed to resolve item %d: %w", listing.ItemID, err)
	}
	if listing.Status == "" {
		listing.Status = domain.ListingStatusActive
	}
	return s.listings.CreateListing(ctx, listing)
}

func (s *LedgerService) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	return s.listings.GetListing(ctx, id)
}

func (s *LedgerService) ListListings(ctx context.Context, itemID int64) ([]*domain.Listing, error) {
	return s.listings.ListListings(ctx, itemID)
}

func (s *LedgerService) UpdateListing(ctx context.Context, listing *domain.Listing) error {
	if err := validateListing(listing); err != nil {
		return err
	}
	return s.listings.UpdateListing(ctx, listing)
}

func (s *LedgerService) DeleteListing(ctx context.Context, id int64) error {
	return s.listings.DeleteListing(ctx, id)
}

// ExportInventoryCSV renders the current lots (optionally one item's) as CSV.
func (s *LedgerService) ExportInventoryCSV(ctx context.Context, itemID int64) ([]byte, error) {
	lots, err := s.inventory.ListLots(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"inventory_id", "item_id", "quantity", "location", "unit_cost", "created_at"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, lot := range lots {
		record := []string{
			strconv.FormatInt(lot.ID, 10),
			strconv.FormatInt(lot.ItemID, 10),
			strconv.Itoa(lot.Quantity),
			lot.Location,
			lot.UnitCost.StringFixed(2),
			lot.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *LedgerService) invalidateReports(ctx context.Context, itemID int64) {
	if err := s.reports.InvalidateItem(ctx, itemID); err != nil {
		log.Warn().Err(err).Int64("item_id", itemID).Msg("failed to invalidate report cache")
	}
}

func validateLot(lot *domain.InventoryLot) error {
	if lot.ItemID <= 0 {
		return domain.NewValidationError("item_id", "must be provided")
	}
	if lot.Quantity <= 0 {
		return domain.NewValidationError("quantity", "must be positive")
	}
	if lot.UnitCost.IsNegative() {
		return domain.NewValidationError("unit_cost", "must not be negative")
	}
	if strings.TrimSpace(lot.Location) == "" {
		return domain.NewValidationError("location", "must not be empty")
	}
	return nil
}

func validateListing(listing *domain.Listing) error {
	if listing.ItemID <= 0 {
		return domain.NewValidationError("item_id", "must be provided")
	}
	if listing.Quantity <= 0 {
		return domain.NewValidationError("quantity", "must be positive")
	}
	if listing.UnitPrice.IsNegative() {
		return domain.NewValidationError("unit_price", "must not be negative")
	}
	switch listing.Website {
	case domain.WebsiteEtsy, domain.WebsiteAmazon, domain.WebsiteEbay:
	default:
		return domain.NewValidationError("website", "must be one of Etsy, Amazon, Ebay")
	}
	switch listing.Status {
	case "", domain.ListingStatusActive, domain.ListingStatusSold, domain.ListingStatusInactive:
	default:
		return domain.NewValidationError("status", "must be one of active, sold, inactive")
	}
	return nil
}
