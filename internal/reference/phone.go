package reference

import (
	"strings"

	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
)

// NormalizePhone converts a locally formatted phone number into the
// +<calling code><subscriber> form the carrier expects. Punctuation and
// spacing are stripped, a trunk zero is dropped, and numbers that already
// carry the country's calling code keep it.
func (t *Table) NormalizePhone(raw string, countryCode string) (string, error) {
	record, ok := t.ByCode(countryCode)
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown country code "+strings.ToUpper(strings.TrimSpace(countryCode)))
	}

	digits := stripPhone(raw)
	if digits == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "phone number is required")
	}

	if strings.HasPrefix(digits, record.CallingCode) && len(digits) > len(record.CallingCode) {
		return "+" + digits, nil
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "phone number has no subscriber digits")
	}
	return "+" + record.CallingCode + digits, nil
}

func stripPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
