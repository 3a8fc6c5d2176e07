package pricing

import "testing"

func TestFeeTierBoundaries(t *testing.T) {
	calc := NewCalculator(DefaultFeeTable())

	cases := []struct {
		weight int
		want   int64
	}{
		{-5, 5000},
		{0, 5000},
		{1, 5000},
		{100, 5000},
		{101, 7500},
		{250, 7500},
		{251, 10000},
		{500, 10000},
		{501, 15000},
		{1000, 15000},
		{1001, 25000},
		{50000, 25000},
	}

	for _, tc := range cases {
		if got := calc.Fee(tc.weight, "AL"); got != tc.want {
			t.Fatalf("Fee(%d) = %d, want %d", tc.weight, got, tc.want)
		}
	}
}

func TestFeeIsNonDecreasingInWeight(t *testing.T) {
	calc := NewCalculator(DefaultFeeTable())

	var prev int64 = -1
	for weight := 0; weight <= 2000; weight += 10 {
		fee := calc.Fee(weight, "US")
		if fee < prev {
			t.Fatalf("fee decreased at weight %d: %d < %d", weight, fee, prev)
		}
		prev = fee
	}
}

func TestFeeIsDeterministic(t *testing.T) {
	calc := NewCalculator(DefaultFeeTable())

	first := calc.Fee(300, "AL")
	for i := 0; i < 100; i++ {
		if got := calc.Fee(300, "AL"); got != first {
			t.Fatalf("fee changed between identical calls: %d != %d", got, first)
		}
	}
}

func TestFeeCountryOverride(t *testing.T) {
	table := DefaultFeeTable()
	table.CountryOverrides = map[string][]Tier{
		"us": {
			{MaxWeightGrams: 500, FeeMinor: 20000},
		},
	}
	calc := NewCalculator(table)

	if got := calc.Fee(300, "US"); got != 20000 {
		t.Fatalf("expected override fee 20000, got %d", got)
	}
	// Other countries keep the base table.
	if got := calc.Fee(300, "AL"); got != 10000 {
		t.Fatalf("expected base fee 10000, got %d", got)
	}
	// Above the override's only tier falls back to the shared top fee.
	if got := calc.Fee(600, "US"); got != 25000 {
		t.Fatalf("expected above-all fee 25000, got %d", got)
	}
}

func TestCalculatorCopiesAndSortsTiers(t *testing.T) {
	table := FeeTable{
		Tiers: []Tier{
			{MaxWeightGrams: 1000, FeeMinor: 15000},
			{MaxWeightGrams: 100, FeeMinor: 5000},
		},
		AboveAllTiers: 25000,
	}
	calc := NewCalculator(table)

	// Mutating the caller's slice must not affect the calculator.
	table.Tiers[0].FeeMinor = 1

	if got := calc.Fee(50, "AL"); got != 5000 {
		t.Fatalf("expected lowest tier 5000, got %d", got)
	}
	if got := calc.Fee(900, "AL"); got != 15000 {
		t.Fatalf("expected tier 15000, got %d", got)
	}
}
