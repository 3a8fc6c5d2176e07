package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/pagination"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL,
  buyer_id TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'draft',
  service_code TEXT NOT NULL,
  weight_grams INTEGER NOT NULL,
  length_cm INTEGER NOT NULL DEFAULT 0,
  width_cm INTEGER NOT NULL DEFAULT 0,
  height_cm INTEGER NOT NULL DEFAULT 0,
  declared_value_minor INTEGER NOT NULL DEFAULT 0,
  currency TEXT NOT NULL DEFAULT 'IDR',
  carrier_fee_minor INTEGER NOT NULL DEFAULT 0,
  local_fee_minor INTEGER NOT NULL DEFAULT 0,
  carrier_shipment_id TEXT,
  tracking_number TEXT,
  submitted_at DATETIME,
  cancelled_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(orders).Error)
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, customerID, buyerID uuid.UUID, status enums.OrderStatus, created time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		BuyerID:     buyerID,
		Status:      status,
		ServiceCode: enums.ServiceEconomyStandard,
		WeightGrams: 250,
		Currency:    enums.CurrencyIDR,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRepositoryList_pagination(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	customerID := uuid.New()
	buyerID := uuid.New()
	now := time.Now().UTC()
	older := seedOrder(t, db, customerID, buyerID, enums.OrderStatusDraft, now.Add(-time.Hour))
	newer := seedOrder(t, db, customerID, buyerID, enums.OrderStatusDraft, now)

	rows, err := repo.List(context.Background(), ListFilters{}, pagination.Params{Limit: 1})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, newer.ID, rows[0].ID)

	cursor := pagination.EncodeCursor(pagination.Cursor{CreatedAt: rows[0].CreatedAt, ID: rows[0].ID})
	second, err := repo.List(context.Background(), ListFilters{}, pagination.Params{Limit: 1, Cursor: cursor})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, older.ID, second[0].ID)
}

func TestRepositoryList_filters(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	customerA := uuid.New()
	customerB := uuid.New()
	buyerA := uuid.New()
	buyerB := uuid.New()
	now := time.Now().UTC()
	seedOrder(t, db, customerA, buyerA, enums.OrderStatusDraft, now.Add(-2*time.Minute))
	seedOrder(t, db, customerA, buyerB, enums.OrderStatusSubmitted, now.Add(-time.Minute))
	seedOrder(t, db, customerB, buyerB, enums.OrderStatusDraft, now)

	rows, err := repo.List(context.Background(), ListFilters{CustomerID: &customerA}, pagination.Params{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	status := enums.OrderStatusSubmitted
	rows, err = repo.List(context.Background(), ListFilters{Status: &status}, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, buyerB, rows[0].BuyerID)

	rows, err = repo.List(context.Background(), ListFilters{CustomerID: &customerB, BuyerID: &buyerA}, pagination.Params{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRepositoryUpdate(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := seedOrder(t, db, uuid.New(), uuid.New(), enums.OrderStatusDraft, time.Now().UTC())

	updated, err := repo.Update(context.Background(), order.ID, map[string]any{
		"status":              enums.OrderStatusSubmitted,
		"carrier_shipment_id": "shp_123",
	})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusSubmitted, updated.Status)
	require.NotNil(t, updated.CarrierShipmentID)
	assert.Equal(t, "shp_123", *updated.CarrierShipmentID)

	_, err = repo.Update(context.Background(), uuid.New(), map[string]any{"status": enums.OrderStatusShipped})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDelete(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	order := seedOrder(t, db, uuid.New(), uuid.New(), enums.OrderStatusDraft, time.Now().UTC())

	require.NoError(t, repo.Delete(context.Background(), order.ID))
	_, err := repo.FindByID(context.Background(), order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), order.ID), gorm.ErrRecordNotFound)
}
