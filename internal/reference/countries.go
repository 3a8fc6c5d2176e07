package reference

// defaultCountries is the production destination list. Zone is the carrier's
// numeric pricing tier; IOSSCode is only set for EU destinations.
var defaultCountries = []CountryRecord{
	{ISOCode: "AL", DisplayName: "Albania", CallingCode: "355", Zone: 4},
	{ISOCode: "AU", DisplayName: "Australia", CallingCode: "61", Zone: 2},
	{ISOCode: "AT", DisplayName: "Austria", CallingCode: "43", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "BE", DisplayName: "Belgium", CallingCode: "32", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "BN", DisplayName: "Brunei", CallingCode: "673", Zone: 1},
	{ISOCode: "CA", DisplayName: "Canada", CallingCode: "1", Zone: 3},
	{ISOCode: "CN", DisplayName: "China", CallingCode: "86", Zone: 1},
	{ISOCode: "DK", DisplayName: "Denmark", CallingCode: "45", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "FI", DisplayName: "Finland", CallingCode: "358", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "FR", DisplayName: "France", CallingCode: "33", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "DE", DisplayName: "Germany", CallingCode: "49", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "HK", DisplayName: "Hong Kong", CallingCode: "852", Zone: 1},
	{ISOCode: "IN", DisplayName: "India", CallingCode: "91", Zone: 2},
	{ISOCode: "ID", DisplayName: "Indonesia", CallingCode: "62", Zone: 0},
	{ISOCode: "IE", DisplayName: "Ireland", CallingCode: "353", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "IT", DisplayName: "Italy", CallingCode: "39", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "JP", DisplayName: "Japan", CallingCode: "81", Zone: 2},
	{ISOCode: "MY", DisplayName: "Malaysia", CallingCode: "60", Zone: 1},
	{ISOCode: "NL", DisplayName: "Netherlands", CallingCode: "31", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "NZ", DisplayName: "New Zealand", CallingCode: "64", Zone: 2},
	{ISOCode: "NO", DisplayName: "Norway", CallingCode: "47", Zone: 4},
	{ISOCode: "PH", DisplayName: "Philippines", CallingCode: "63", Zone: 1},
	{ISOCode: "PT", DisplayName: "Portugal", CallingCode: "351", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "SA", DisplayName: "Saudi Arabia", CallingCode: "966", Zone: 3},
	{ISOCode: "SG", DisplayName: "Singapore", CallingCode: "65", Zone: 1},
	{ISOCode: "KR", DisplayName: "South Korea", CallingCode: "82", Zone: 2},
	{ISOCode: "ES", DisplayName: "Spain", CallingCode: "34", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "SE", DisplayName: "Sweden", CallingCode: "46", Zone: 4, IOSSCode: "IM0001"},
	{ISOCode: "CH", DisplayName: "Switzerland", CallingCode: "41", Zone: 4},
	{ISOCode: "TW", DisplayName: "Taiwan", CallingCode: "886", Zone: 1},
	{ISOCode: "TH", DisplayName: "Thailand", CallingCode: "66", Zone: 1},
	{ISOCode: "TR", DisplayName: "Turkey", CallingCode: "90", Zone: 3},
	{ISOCode: "AE", DisplayName: "United Arab Emirates", CallingCode: "971", Zone: 3},
	{ISOCode: "GB", DisplayName: "United Kingdom", CallingCode: "44", Zone: 4},
	{ISOCode: "US", DisplayName: "United States", CallingCode: "1", Zone: 3},
	{ISOCode: "VN", DisplayName: "Vietnam", CallingCode: "84", Zone: 1},
}

// defaultRegions lists the destinations whose carrier label requires a
// state/province line. Everywhere else region stays optional.
var defaultRegions = map[string][]string{
	"AU": {
		"Australian Capital Territory", "New South Wales", "Northern Territory",
		"Queensland", "South Australia", "Tasmania", "Victoria", "Western Australia",
	},
	"CA": {
		"Alberta", "British Columbia", "Manitoba", "New Brunswick",
		"Newfoundland and Labrador", "Northwest Territories", "Nova Scotia",
		"Nunavut", "Ontario", "Prince Edward Island", "Quebec", "Saskatchewan", "Yukon",
	},
	"US": {
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
		"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
		"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana", "Maine",
		"Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
		"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
		"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
		"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
		"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
		"Washington", "West Virginia", "Wisconsin", "Wyoming",
	},
}

// DefaultTable returns the production reference table.
func DefaultTable() *Table {
	return NewTable(defaultCountries, defaultRegions)
}
