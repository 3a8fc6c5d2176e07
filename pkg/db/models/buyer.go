package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Buyer is an overseas recipient tied to a customer. SRN is the user-assigned
// sale record number and must stay unique across the system.
type Buyer struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID  uuid.UUID      `gorm:"column:customer_id;type:uuid;not null;index"`
	SRN         string         `gorm:"column:srn;uniqueIndex:ux_buyers_srn;not null"`
	Name        string         `gorm:"column:name;not null"`
	Phone       string         `gorm:"column:phone;not null"`
	CountryCode string         `gorm:"column:country_code;size:2;not null"`
	Region      *string        `gorm:"column:region"`
	Address     string         `gorm:"column:address;not null"`
	PostalCode  *string        `gorm:"column:postal_code"`
	Tags        pq.StringArray `gorm:"column:tags;type:text[]"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
