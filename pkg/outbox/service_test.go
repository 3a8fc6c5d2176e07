package outbox

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
)

func setupOutboxTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS outbox_events (
  id TEXT PRIMARY KEY,
  event_type TEXT NOT NULL,
  aggregate_type TEXT NOT NULL,
  aggregate_id TEXT NOT NULL,
  payload TEXT NOT NULL,
  created_at DATETIME,
  published_at DATETIME,
  attempt_count INTEGER NOT NULL DEFAULT 0,
  last_error TEXT
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func fetchOnlyEvent(t *testing.T, db *gorm.DB) models.OutboxEvent {
	t.Helper()

	var rows []models.OutboxEvent
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	return rows[0]
}

func TestEmitWrapsPayloadInEnvelope(t *testing.T) {
	db := setupOutboxTestDB(t)
	svc := NewService(NewRepository(db), nil)

	orderID := uuid.New()
	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.Emit(context.Background(), tx, DomainEvent{
			EventType:     enums.OutboxEventOrderCreated,
			AggregateType: enums.OutboxAggregateOrder,
			AggregateID:   orderID,
			Version:       1,
			Data:          map[string]any{"status": "draft"},
		})
	})
	require.NoError(t, err)

	row := fetchOnlyEvent(t, db)
	assert.NotEqual(t, uuid.Nil, row.ID)
	assert.Equal(t, enums.OutboxEventOrderCreated, row.EventType)
	assert.Equal(t, orderID, row.AggregateID)
	assert.Nil(t, row.PublishedAt)

	var envelope PayloadEnvelope
	require.NoError(t, json.Unmarshal(row.Payload, &envelope))
	assert.Equal(t, 1, envelope.Version)
	assert.False(t, envelope.OccurredAt.IsZero())
	_, err = uuid.Parse(envelope.EventID)
	assert.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "draft", data["status"])
}

func TestEmitRequiresTransaction(t *testing.T) {
	svc := NewService(NewRepository(setupOutboxTestDB(t)), nil)

	err := svc.Emit(context.Background(), nil, DomainEvent{
		EventType:     enums.OutboxEventOrderCreated,
		AggregateType: enums.OutboxAggregateOrder,
		AggregateID:   uuid.New(),
	})
	require.Error(t, err)
}

func TestMarkFailedIncrementsAttemptCount(t *testing.T) {
	db := setupOutboxTestDB(t)
	repo := NewRepository(db)
	svc := NewService(repo, nil)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return svc.Emit(context.Background(), tx, DomainEvent{
			EventType:     enums.OutboxEventOrderSubmitted,
			AggregateType: enums.OutboxAggregateOrder,
			AggregateID:   uuid.New(),
		})
	}))
	id := fetchOnlyEvent(t, db).ID

	require.NoError(t, repo.MarkFailedTx(db, id, assert.AnError))
	require.NoError(t, repo.MarkFailedTx(db, id, assert.AnError))

	row := fetchOnlyEvent(t, db)
	assert.Equal(t, 2, row.AttemptCount)
	require.NotNil(t, row.LastError)
	assert.Equal(t, assert.AnError.Error(), *row.LastError)
	assert.Nil(t, row.PublishedAt)
}

func TestMarkAbandonedForcesAttemptCeiling(t *testing.T) {
	db := setupOutboxTestDB(t)
	repo := NewRepository(db)
	svc := NewService(repo, nil)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return svc.Emit(context.Background(), tx, DomainEvent{
			EventType:     enums.OutboxEventOrderCancelled,
			AggregateType: enums.OutboxAggregateOrder,
			AggregateID:   uuid.New(),
		})
	}))
	id := fetchOnlyEvent(t, db).ID

	require.NoError(t, repo.MarkAbandonedTx(db, id, assert.AnError, 10))

	row := fetchOnlyEvent(t, db)
	assert.Equal(t, 10, row.AttemptCount)
	require.NotNil(t, row.LastError)
}

func TestMarkPublishedSetsTimestamp(t *testing.T) {
	db := setupOutboxTestDB(t)
	repo := NewRepository(db)
	svc := NewService(repo, nil)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return svc.Emit(context.Background(), tx, DomainEvent{
			EventType:     enums.OutboxEventOrderShipped,
			AggregateType: enums.OutboxAggregateOrder,
			AggregateID:   uuid.New(),
		})
	}))
	id := fetchOnlyEvent(t, db).ID

	require.NoError(t, repo.MarkPublishedTx(db, id))

	row := fetchOnlyEvent(t, db)
	require.NotNil(t, row.PublishedAt)
}
