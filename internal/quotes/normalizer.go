package quotes

import (
	"sort"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/kurasi"
)

// Normalize maps the carrier's raw tier blocks onto the fixed catalog. The
// result always has exactly four lines in catalog order; a line is available
// iff its block is present and carries a non-null amount. Unavailable lines
// are retained so the UI can render them as "not available".
func Normalize(raw *kurasi.RawQuote) []ServiceQuoteLine {
	lines := make([]ServiceQuoteLine, 0, len(serviceCatalog))
	for _, entry := range serviceCatalog {
		line := ServiceQuoteLine{
			Code:  entry.Code,
			Title: entry.Title,
		}
		if block := raw.Block(entry.Code); block != nil {
			line.MaxWeightLabel = block.MaxWeight
			if block.Amount != nil {
				line.Available = true
				line.CarrierFeeMinor = *block.Amount
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// Cheapest picks the available line with the lowest carrier amount. Ties go
// to the lexicographically smaller service code so selection stays
// deterministic regardless of input order.
func Cheapest(lines []ServiceQuoteLine) (ServiceQuoteLine, bool) {
	var best ServiceQuoteLine
	found := false
	for _, line := range lines {
		if !line.Available {
			continue
		}
		if !found {
			best = line
			found = true
			continue
		}
		if line.CarrierFeeMinor < best.CarrierFeeMinor ||
			(line.CarrierFeeMinor == best.CarrierFeeMinor && line.Code < best.Code) {
			best = line
		}
	}
	return best, found
}

// SortByTotal returns a copy sorted ascending by total fee. Equal totals are
// ordered by service code; unavailable lines sort to the end in catalog
// order.
func SortByTotal(lines []ServiceQuoteLine) []ServiceQuoteLine {
	out := make([]ServiceQuoteLine, len(lines))
	copy(out, lines)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Available != b.Available {
			return a.Available
		}
		if !a.Available {
			return false
		}
		if a.TotalFeeMinor != b.TotalFeeMinor {
			return a.TotalFeeMinor < b.TotalFeeMinor
		}
		return a.Code < b.Code
	})
	return out
}
