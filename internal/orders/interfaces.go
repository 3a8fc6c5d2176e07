package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/kurasi"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/outbox"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/pagination"
)

// Repository defines persistence operations for orders.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, filters ListFilters, params pagination.Params) ([]models.Order, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListFilters narrows the order listing.
type ListFilters struct {
	CustomerID *uuid.UUID
	BuyerID    *uuid.UUID
	Status     *enums.OrderStatus
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type buyerFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Buyer, error)
}

type shipmentClient interface {
	CreateShipment(ctx context.Context, params kurasi.ShipmentParams) (*kurasi.Shipment, error)
	CancelShipment(ctx context.Context, shipmentID string) error
	LabelURL(ctx context.Context, shipmentID string) (string, error)
}
