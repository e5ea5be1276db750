package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingRows(qty int, price string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"listing_id", "item_id", "quantity", "website", "url", "status", "unit_price", "created_at", "updated_at",
	}).AddRow(int64(3), int64(1), qty, "Etsy", "https://etsy.test/l/3", "active", price, now, now)
}

func TestRecordSaleFullQuantityFlipsSold(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM listings`).
		WithArgs(int64(3)).
		WillReturnRows(listingRows(2, "25.00"))
	mock.ExpectExec(`UPDATE listings`).
		WithArgs(0, domain.ListingStatusSold, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT unit_cost FROM inventory`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"unit_cost"}).AddRow("10.00"))
	mock.ExpectQuery(`INSERT INTO sales`).
		WithArgs(int64(1), 2, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"sale_id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	repo := NewSaleRepository(db)
	sale, err := repo.RecordSale(context.Background(), 3, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(7), sale.ID)
	assert.Equal(t, int64(1), sale.ItemID)
	assert.Equal(t, 2, sale.Quantity)
	assert.True(t, sale.SalePrice.Equal(decimal.RequireFromString("25.00")))
	assert.True(t, sale.AcquisitionCost.Equal(decimal.RequireFromString("10.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSalePartialQuantityKeepsStatus(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM listings`).
		WithArgs(int64(3)).
		WillReturnRows(listingRows(5, "25.00"))
	mock.ExpectExec(`UPDATE listings`).
		WithArgs(3, "active", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT unit_cost FROM inventory`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"unit_cost"}).AddRow("10.00"))
	mock.ExpectQuery(`INSERT INTO sales`).
		WithArgs(int64(1), 2, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"sale_id"}).AddRow(int64(8)))
	mock.ExpectCommit()

	repo := NewSaleRepository(db)
	sale, err := repo.RecordSale(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, sale.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSaleOverQuantity(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM listings`).
		WithArgs(int64(3)).
		WillReturnRows(listingRows(1, "25.00"))
	mock.ExpectRollback()

	repo := NewSaleRepository(db)
	_, err := repo.RecordSale(context.Background(), 3, 4)
	assert.True(t, domain.IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSaleMissingListing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM listings`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	repo := NewSaleRepository(db)
	_, err := repo.RecordSale(context.Background(), 99, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSaleNoInventoryDefaultsCostToZero(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM listings`).
		WithArgs(int64(3)).
		WillReturnRows(listingRows(2, "25.00"))
	mock.ExpectExec(`UPDATE listings`).
		WithArgs(0, domain.ListingStatusSold, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT unit_cost FROM inventory`).
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO sales`).
		WithArgs(int64(1), 2, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"sale_id"}).AddRow(int64(9)))
	mock.ExpectCommit()

	repo := NewSaleRepository(db)
	sale, err := repo.RecordSale(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.True(t, sale.AcquisitionCost.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
