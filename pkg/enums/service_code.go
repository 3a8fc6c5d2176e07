package enums

import "fmt"

// ServiceCode identifies one of the four fixed carrier service tiers.
type ServiceCode string

const (
	ServiceExpress         ServiceCode = "EX"
	ServiceEconomyPlus     ServiceCode = "EP"
	ServiceEconomyStandard ServiceCode = "ES"
	ServicePacketPremium   ServiceCode = "PP"
)

var validServiceCodes = []ServiceCode{
	ServiceExpress,
	ServiceEconomyPlus,
	ServiceEconomyStandard,
	ServicePacketPremium,
}

// String implements fmt.Stringer.
func (s ServiceCode) String() string {
	return string(s)
}

// IsValid reports whether the service code is one of the four carrier tiers.
func (s ServiceCode) IsValid() bool {
	for _, candidate := range validServiceCodes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseServiceCode converts a raw string into a ServiceCode.
func ParseServiceCode(value string) (ServiceCode, error) {
	for _, candidate := range validServiceCodes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid service code %q", value)
}
