package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
)

// CreateOrderInput carries the fields for a new draft order. Dimensions are
// centimeters and default to zero when omitted.
type CreateOrderInput struct {
	CustomerID         uuid.UUID `json:"customerId" validate:"required"`
	BuyerID            uuid.UUID `json:"buyerId" validate:"required"`
	ServiceCode        string    `json:"serviceCode" validate:"required"`
	WeightGrams        int       `json:"weightGrams" validate:"required,gt=0"`
	LengthCm           int       `json:"lengthCm,omitempty" validate:"omitempty,gte=0"`
	WidthCm            int       `json:"widthCm,omitempty" validate:"omitempty,gte=0"`
	HeightCm           int       `json:"heightCm,omitempty" validate:"omitempty,gte=0"`
	DeclaredValueMinor int64     `json:"declaredValueMinor,omitempty" validate:"omitempty,gte=0"`
	Currency           string    `json:"currency,omitempty"`
}

// UpdateOrderInput carries draft-only partial updates.
type UpdateOrderInput struct {
	ServiceCode        *string `json:"serviceCode,omitempty"`
	WeightGrams        *int    `json:"weightGrams,omitempty" validate:"omitempty,gt=0"`
	LengthCm           *int    `json:"lengthCm,omitempty" validate:"omitempty,gte=0"`
	WidthCm            *int    `json:"widthCm,omitempty" validate:"omitempty,gte=0"`
	HeightCm           *int    `json:"heightCm,omitempty" validate:"omitempty,gte=0"`
	DeclaredValueMinor *int64  `json:"declaredValueMinor,omitempty" validate:"omitempty,gte=0"`
}

// OrderView is the representation returned to API clients.
type OrderView struct {
	ID                 uuid.UUID         `json:"id"`
	CustomerID         uuid.UUID         `json:"customerId"`
	BuyerID            uuid.UUID         `json:"buyerId"`
	Status             enums.OrderStatus `json:"status"`
	ServiceCode        enums.ServiceCode `json:"serviceCode"`
	WeightGrams        int               `json:"weightGrams"`
	LengthCm           int               `json:"lengthCm"`
	WidthCm            int               `json:"widthCm"`
	HeightCm           int               `json:"heightCm"`
	DeclaredValueMinor int64             `json:"declaredValueMinor"`
	Currency           enums.Currency    `json:"currency"`
	CarrierFeeMinor    int64             `json:"carrierFeeMinor"`
	LocalFeeMinor      int64             `json:"localFeeMinor"`
	CarrierShipmentID  *string           `json:"carrierShipmentId,omitempty"`
	TrackingNumber     *string           `json:"trackingNumber,omitempty"`
	SubmittedAt        *time.Time        `json:"submittedAt,omitempty"`
	CancelledAt        *time.Time        `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// FromModel maps a persisted order onto its API view.
func FromModel(o *models.Order) OrderView {
	return OrderView{
		ID:                 o.ID,
		CustomerID:         o.CustomerID,
		BuyerID:            o.BuyerID,
		Status:             o.Status,
		ServiceCode:        o.ServiceCode,
		WeightGrams:        o.WeightGrams,
		LengthCm:           o.LengthCm,
		WidthCm:            o.WidthCm,
		HeightCm:           o.HeightCm,
		DeclaredValueMinor: o.DeclaredValueMinor,
		Currency:           o.Currency,
		CarrierFeeMinor:    o.CarrierFeeMinor,
		LocalFeeMinor:      o.LocalFeeMinor,
		CarrierShipmentID:  o.CarrierShipmentID,
		TrackingNumber:     o.TrackingNumber,
		SubmittedAt:        o.SubmittedAt,
		CancelledAt:        o.CancelledAt,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// OrderList is one page of orders plus the cursor for the next page.
type OrderList struct {
	Orders     []OrderView `json:"orders"`
	NextCursor *string     `json:"nextCursor,omitempty"`
}

// OrderEvent is the outbox payload shared by all order lifecycle events.
type OrderEvent struct {
	OrderID     uuid.UUID         `json:"order_id"`
	CustomerID  uuid.UUID         `json:"customer_id"`
	BuyerID     uuid.UUID         `json:"buyer_id"`
	Status      enums.OrderStatus `json:"status"`
	ServiceCode enums.ServiceCode `json:"service_code"`
	WeightGrams int               `json:"weight_grams"`
}

// LabelView wraps the carrier's label location.
type LabelView struct {
	LabelURL string `json:"labelUrl"`
}
