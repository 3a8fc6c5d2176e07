package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
)

// Order is a shipping order for a buyer's package. Weight is grams;
// dimensions are centimeters and default to zero when the staff omits them.
type Order struct {
	ID                 uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID         uuid.UUID         `gorm:"column:customer_id;type:uuid;not null;index"`
	BuyerID            uuid.UUID         `gorm:"column:buyer_id;type:uuid;not null;index"`
	Status             enums.OrderStatus `gorm:"column:status;not null;default:'draft'"`
	ServiceCode        enums.ServiceCode `gorm:"column:service_code;size:2;not null"`
	WeightGrams        int               `gorm:"column:weight_grams;not null"`
	LengthCm           int               `gorm:"column:length_cm;not null;default:0"`
	WidthCm            int               `gorm:"column:width_cm;not null;default:0"`
	HeightCm           int               `gorm:"column:height_cm;not null;default:0"`
	DeclaredValueMinor int64             `gorm:"column:declared_value_minor;not null;default:0"`
	Currency           enums.Currency    `gorm:"column:currency;size:3;not null;default:'IDR'"`
	CarrierFeeMinor    int64             `gorm:"column:carrier_fee_minor;not null;default:0"`
	LocalFeeMinor      int64             `gorm:"column:local_fee_minor;not null;default:0"`
	CarrierShipmentID  *string           `gorm:"column:carrier_shipment_id"`
	TrackingNumber     *string           `gorm:"column:tracking_number"`
	SubmittedAt        *time.Time        `gorm:"column:submitted_at"`
	CancelledAt        *time.Time        `gorm:"column:cancelled_at"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
