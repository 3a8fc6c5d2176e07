package quotes

import (
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/enums"
)

// CatalogEntry maps a service code to its display title. The catalog order is
// the UI's presentation order and never changes at runtime.
type CatalogEntry struct {
	Code  enums.ServiceCode
	Title string
}

// serviceCatalog is the fixed, ordered list of the four carrier tiers. Every
// normalizer output has exactly one line per entry, in this order.
var serviceCatalog = []CatalogEntry{
	{Code: enums.ServiceExpress, Title: "Express"},
	{Code: enums.ServiceEconomyPlus, Title: "Economy Plus"},
	{Code: enums.ServiceEconomyStandard, Title: "Economy Standard"},
	{Code: enums.ServicePacketPremium, Title: "Packet Premium"},
}
