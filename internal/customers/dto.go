package customers

import (
	"time"

	"github.com/google/uuid"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db/models"
)

// CreateCustomerInput carries the fields for a new sender account.
type CreateCustomerInput struct {
	Name  string  `json:"name" validate:"required,min=2"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// UpdateCustomerInput carries partial updates; nil fields stay untouched.
type UpdateCustomerInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// CustomerView is the representation returned to API clients.
type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromModel maps a persisted customer onto its API view.
func FromModel(c *models.Customer) CustomerView {
	return CustomerView{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CustomerList is one page of customers plus the cursor for the next page.
type CustomerList struct {
	Customers  []CustomerView `json:"customers"`
	NextCursor *string        `json:"nextCursor,omitempty"`
}
