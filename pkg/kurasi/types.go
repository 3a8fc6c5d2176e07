package kurasi

import (
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
)

// ServiceBlock is one tier of the carrier's rate response. Amount is nil when
// the tier cannot serve the destination/weight combination; a present block
// with a nil amount is still "not serviceable".
type ServiceBlock struct {
	Amount        *int64  `json:"amount"`
	DisplayAmount string  `json:"displayAmount"`
	MaxWeight     *string `json:"maxWeight"`
}

// RawQuote is the carrier's rate-calculator payload. Each tier block is
// optional; absent and null are preserved as distinct states by the pointer
// fields.
type RawQuote struct {
	Express          *ServiceBlock `json:"express"`
	EconomyPlus      *ServiceBlock `json:"economyPlus"`
	EconomyStandard  *ServiceBlock `json:"economyStandard"`
	PacketPremium    *ServiceBlock `json:"packetPremium"`
	Currency         string        `json:"currency"`
	ChargeableWeight *float64      `json:"chargeableWeight"`
	VolumetricWeight *float64      `json:"volumetricWeight"`
}

// Block returns the tier block for the given service code, nil when absent.
func (r *RawQuote) Block(code enums.ServiceCode) *ServiceBlock {
	if r == nil {
		return nil
	}
	switch code {
	case enums.ServiceExpress:
		return r.Express
	case enums.ServiceEconomyPlus:
		return r.EconomyPlus
	case enums.ServiceEconomyStandard:
		return r.EconomyStandard
	case enums.ServicePacketPremium:
		return r.PacketPremium
	default:
		return nil
	}
}

// QuoteParams describes one rate-calculator request. Destination is the
// carrier's expected display name, not an ISO code.
type QuoteParams struct {
	DestinationCountry string
	WeightGrams        int
	LengthCm           int
	WidthCm            int
	HeightCm           int
	OriginCountry      string
	Currency           string
}

// QuoteOutcome is the discriminated result of a rate-calculator call. Callers
// branch on Status; the error return of FetchQuote is reserved for requests
// that could not be constructed at all.
type QuoteOutcome struct {
	Status     enums.QuoteStatus
	Message    string
	HTTPStatus int
	Raw        *RawQuote
}

// ShipmentParams describes a shipment creation request.
type ShipmentParams struct {
	ServiceCode        enums.ServiceCode
	DestinationCountry string
	RecipientName      string
	RecipientPhone     string
	Address            string
	PostalCode         string
	WeightGrams        int
	LengthCm           int
	WidthCm            int
	HeightCm           int
	DeclaredValueMinor int64
	Currency           string
	Reference          string
}

// Shipment is the carrier's record of a created shipment.
type Shipment struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	ServiceCode    string `json:"serviceCode"`
	Status         string `json:"status"`
	LabelURL       string `json:"labelUrl"`
}

// ListShipmentsParams filters the bulk shipment listing.
type ListShipmentsParams struct {
	Status   string
	Page     int
	PageSize int
}
