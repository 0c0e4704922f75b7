package fuel

// paddStates maps EIA PADD regions to the jurisdictions priced from them.
var paddStates = map[string][]string{
	"PADD 1": {"NY", "PA", "NJ", "MA", "MD", "DC", "VA", "NC", "SC", "GA", "FL"},
	"PADD 2": {"IL", "IN", "MI", "OH", "WI", "MN", "MO", "TN"},
	"PADD 3": {"TX", "LA", "MS", "AL", "AR"},
	"PADD 4": {"CO", "UT", "WY", "MT"},
	"PADD 5": {"CA", "WA", "OR", "NV", "AZ"},
}

// unmappedRegionStates receives prices for regions outside the PADD table.
var unmappedRegionStates = []string{"TX"}

// StatesForRegion returns the jurisdictions a region's price applies to.
func StatesForRegion(region string) []string {
	if states, ok := paddStates[region]; ok {
		return states
	}
	return unmappedRegionStates
}
