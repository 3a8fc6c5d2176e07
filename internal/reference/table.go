package reference

import (
	"strings"
)

// CountryRecord is one row of the destination reference data. Records are
// immutable after Table construction.
type CountryRecord struct {
	ISOCode     string
	DisplayName string
	CallingCode string
	Zone        int
	IOSSCode    string
}

// Table is a read-only lookup over the country reference data. Build one at
// startup and share it; lookups are safe for concurrent use.
type Table struct {
	records []CountryRecord
	byCode  map[string]int
	byName  map[string]int
	regions map[string][]string
}

// NewTable builds a lookup table from the given records and region lists.
// The inputs are copied so later mutation of the arguments cannot leak in.
func NewTable(records []CountryRecord, regions map[string][]string) *Table {
	t := &Table{
		records: make([]CountryRecord, len(records)),
		byCode:  make(map[string]int, len(records)),
		byName:  make(map[string]int, len(records)),
		regions: make(map[string][]string, len(regions)),
	}
	copy(t.records, records)
	for i, rec := range t.records {
		t.byCode[strings.ToUpper(rec.ISOCode)] = i
		t.byName[normalizeName(rec.DisplayName)] = i
	}
	for code, list := range regions {
		copied := make([]string, len(list))
		copy(copied, list)
		t.regions[strings.ToUpper(code)] = copied
	}
	return t
}

// ByCode looks up a country by its 2-letter ISO code.
func (t *Table) ByCode(code string) (CountryRecord, bool) {
	idx, ok := t.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return CountryRecord{}, false
	}
	return t.records[idx], true
}

// ByName reverse-looks up a country by display name. Matching is
// case-insensitive and ignores surrounding whitespace.
func (t *Table) ByName(name string) (CountryRecord, bool) {
	idx, ok := t.byName[normalizeName(name)]
	if !ok {
		return CountryRecord{}, false
	}
	return t.records[idx], true
}

// Regions returns the required state/region list for the country, or nil when
// the destination has no region requirement.
func (t *Table) Regions(code string) []string {
	list, ok := t.regions[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// RequiresRegion reports whether buyers in the country must carry a region.
func (t *Table) RequiresRegion(code string) bool {
	_, ok := t.regions[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// All returns a copy of every record in display-name order of insertion.
func (t *Table) All() []CountryRecord {
	out := make([]CountryRecord, len(t.records))
	copy(out, t.records)
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
