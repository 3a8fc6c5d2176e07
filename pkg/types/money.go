package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatIDR renders an integer amount of minor IDR units for display,
// e.g. 1550000 -> "Rp 1.550.000". Presentation only; business rules keep
// amounts as int64 minor units throughout.
func FormatIDR(minorUnits int64) string {
	d := decimal.NewFromInt(minorUnits)
	s := d.StringFixed(0)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "Rp " + b.String()
	if negative {
		out = "-" + out
	}
	return out
}
