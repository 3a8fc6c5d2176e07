package buyers

import (
	"time"

	"github.com/google/uuid"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
)

// CreateBuyerInput carries the fields for a new recipient.
type CreateBuyerInput struct {
	CustomerID  uuid.UUID `json:"customerId" validate:"required"`
	SRN         string    `json:"srn" validate:"required"`
	Name        string    `json:"name" validate:"required,min=2"`
	Phone       string    `json:"phone" validate:"required"`
	CountryCode string    `json:"countryCode" validate:"required,len=2"`
	Region      *string   `json:"region,omitempty"`
	Address     string    `json:"address" validate:"required"`
	PostalCode  *string   `json:"postalCode,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

// UpdateBuyerInput carries partial updates; nil fields stay untouched. SRN is
// immutable after creation.
type UpdateBuyerInput struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=2"`
	Phone      *string  `json:"phone,omitempty"`
	Region     *string  `json:"region,omitempty"`
	Address    *string  `json:"address,omitempty"`
	PostalCode *string  `json:"postalCode,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// BuyerView is the representation returned to API clients.
type BuyerView struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customerId"`
	SRN         string    `json:"srn"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	CountryCode string    `json:"countryCode"`
	Country     string    `json:"country,omitempty"`
	Region      *string   `json:"region,omitempty"`
	Address     string    `json:"address"`
	PostalCode  *string   `json:"postalCode,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromModel maps a persisted buyer onto its API view. The country display
// name is filled in by the service from the reference table.
func FromModel(b *models.Buyer) BuyerView {
	return BuyerView{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		SRN:         b.SRN,
		Name:        b.Name,
		Phone:       b.Phone,
		CountryCode: b.CountryCode,
		Region:      b.Region,
		Address:     b.Address,
		PostalCode:  b.PostalCode,
		Tags:        []string(b.Tags),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// BuyerList is one page of buyers plus the cursor for the next page.
type BuyerList struct {
	Buyers     []BuyerView `json:"buyers"`
	NextCursor *string     `json:"nextCursor,omitempty"`
}
