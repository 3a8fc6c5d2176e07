package quotes

import (
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
)

// QuoteRequest is the ephemeral, validated input to a quotation. Country is
// the destination display name; CountryCode may be omitted and is then
// derived by reverse lookup.
type QuoteRequest struct {
	Country     string
	CountryCode string
	WeightGrams int
	LengthCm    int
	WidthCm     int
	HeightCm    int
}

// ServiceQuoteLine is the unit of normalizer output. Constructed fresh per
// request, never persisted.
type ServiceQuoteLine struct {
	Code            enums.ServiceCode
	Title           string
	CarrierFeeMinor int64
	LocalFeeMinor   int64
	TotalFeeMinor   int64
	MaxWeightLabel  *string
	Available       bool
}

// QuoteMeta is the carrier-supplied billing metadata passed through on
// successful quotes.
type QuoteMeta struct {
	Currency         string   `json:"currency"`
	ChargeableWeight *float64 `json:"chargeableWeight,omitempty"`
	VolumetricWeight *float64 `json:"volumetricWeight,omitempty"`
}

// ServiceLineView is the wire shape of one combined-quote service line.
type ServiceLineView struct {
	Code      string  `json:"code"`
	Title     string  `json:"title"`
	TotalFee  int64   `json:"totalFee"`
	MaxWeight *string `json:"maxWeight"`
}

// QuoteResponse is the legacy quote envelope the front-end branches on.
// Status is always set; Meta and Services only on SUCCESS, ErrorMessage only
// on FAIL/ERROR. UpstreamStatus carries the carrier's HTTP status for the
// controller and is not serialized.
type QuoteResponse struct {
	Status         enums.QuoteStatus `json:"status"`
	Meta           *QuoteMeta        `json:"meta,omitempty"`
	Services       []ServiceLineView `json:"services,omitempty"`
	ErrorMessage   string            `json:"errorMessage,omitempty"`
	UpstreamStatus int               `json:"-"`
}

// CatalogLineView is the UI-facing variant: all four tiers are present with
// availability flags so the page can render "not available" rows.
type CatalogLineView struct {
	Code          string  `json:"code"`
	Title         string  `json:"title"`
	CarrierFee *int64 `json:"carrierFee"`
	LocalFee   int64  `json:"localFee"`
	TotalFee   *int64 `json:"totalFee"`
	// DisplayAmount renders the combined total, never the carrier's own
	// display string for the carrier fee alone.
	DisplayAmount string  `json:"displayAmount,omitempty"`
	MaxWeight     *string `json:"maxWeight"`
	Available     bool    `json:"available"`
	Cheapest      bool    `json:"cheapest"`
}

// CatalogResponse is the UI-facing quote envelope.
type CatalogResponse struct {
	Status         enums.QuoteStatus `json:"status"`
	Meta           *QuoteMeta        `json:"meta,omitempty"`
	Services       []CatalogLineView `json:"services,omitempty"`
	ErrorMessage   string            `json:"errorMessage,omitempty"`
	UpstreamStatus int               `json:"-"`
}
