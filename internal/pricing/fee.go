package pricing

import (
	"sort"
	"strings"
)

// Tier is one weight breakpoint of the handling fee table. MaxWeightGrams is
// inclusive: a package is charged the fee of the smallest tier whose ceiling
// covers its weight.
type Tier struct {
	MaxWeightGrams int
	FeeMinor       int64
}

// FeeTable is the locally charged handling fee policy. AboveAllTiers applies
// when the weight exceeds every breakpoint. CountryOverrides swaps in a
// different tier list for specific ISO codes; the base tiers apply everywhere
// else.
type FeeTable struct {
	Tiers            []Tier
	AboveAllTiers    int64
	CountryOverrides map[string][]Tier
}

// DefaultFeeTable is the production handling fee policy in IDR minor units.
func DefaultFeeTable() FeeTable {
	return FeeTable{
		Tiers: []Tier{
			{MaxWeightGrams: 100, FeeMinor: 5000},
			{MaxWeightGrams: 250, FeeMinor: 7500},
			{MaxWeightGrams: 500, FeeMinor: 10000},
			{MaxWeightGrams: 1000, FeeMinor: 15000},
		},
		AboveAllTiers: 25000,
	}
}

// Calculator computes local handling fees from an injected fee table. It is
// pure: no I/O, no clock, identical inputs give identical outputs.
type Calculator struct {
	table FeeTable
}

// NewCalculator copies the table so the calculator stays immutable after
// construction. Tiers are sorted by weight ceiling.
func NewCalculator(table FeeTable) *Calculator {
	copied := FeeTable{
		Tiers:         sortedTiers(table.Tiers),
		AboveAllTiers: table.AboveAllTiers,
	}
	if len(table.CountryOverrides) > 0 {
		copied.CountryOverrides = make(map[string][]Tier, len(table.CountryOverrides))
		for code, tiers := range table.CountryOverrides {
			copied.CountryOverrides[strings.ToUpper(code)] = sortedTiers(tiers)
		}
	}
	return &Calculator{table: copied}
}

// Fee returns the handling fee in minor currency units for the given weight
// and destination. The function is total: non-positive weight maps to the
// lowest tier, weight above every breakpoint returns the above-all fee.
func (c *Calculator) Fee(weightGrams int, countryCode string) int64 {
	if weightGrams < 0 {
		weightGrams = 0
	}

	tiers := c.table.Tiers
	if override, ok := c.table.CountryOverrides[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		tiers = override
	}
	if len(tiers) == 0 {
		return c.table.AboveAllTiers
	}

	for _, tier := range tiers {
		if weightGrams <= tier.MaxWeightGrams {
			return tier.FeeMinor
		}
	}
	return c.table.AboveAllTiers
}

func sortedTiers(tiers []Tier) []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	sort.Slice(out, func(i, j int) bool {
		return out[i].MaxWeightGrams < out[j].MaxWeightGrams
	})
	return out
}
