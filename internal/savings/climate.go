package savings

import (
	"sort"
	"strings"
)

// DefaultState is used whenever no state is selected or the code is unknown.
const DefaultState = "TX"

// Climate holds the per-state inputs of the savings estimate.
// SolarRadiation is annual GHI in kWh/m², ElectricityRate is the average
// commercial rate in $/kWh.
type Climate struct {
	Code                  string  `json:"code"`
	Name                  string  `json:"name"`
	CDD                   int     `json:"cdd"`
	SolarRadiation        float64 `json:"solarRadiation"`
	ElectricityRate       float64 `json:"electricityRate"`
	Zone                  string  `json:"climateZone"`
	CoolingSeasonFraction float64 `json:"coolingSeasonFraction"`
}

// climateTable covers the 50 states and DC. CDD are NOAA 30-year normals,
// solar radiation from NSRDB, rates from EIA, zones per ASHRAE 169.
var climateTable = map[string]Climate{
	"AL": {Name: "Alabama", CDD: 2100, SolarRadiation: 1400, ElectricityRate: 0.13, Zone: "3A", CoolingSeasonFraction: 0.55},
	"AK": {Name: "Alaska", CDD: 100, SolarRadiation: 850, ElectricityRate: 0.23, Zone: "7", CoolingSeasonFraction: 0.15},
	"AZ": {Name: "Arizona", CDD: 3800, SolarRadiation: 1800, ElectricityRate: 0.13, Zone: "2B", CoolingSeasonFraction: 0.65},
	"AR": {Name: "Arkansas", CDD: 2000, SolarRadiation: 1380, ElectricityRate: 0.10, Zone: "3A", CoolingSeasonFraction: 0.50},
	"CA": {Name: "California", CDD: 1200, SolarRadiation: 1600, ElectricityRate: 0.22, Zone: "3B", CoolingSeasonFraction: 0.45},
	"CO": {Name: "Colorado", CDD: 900, SolarRadiation: 1550, ElectricityRate: 0.13, Zone: "5B", CoolingSeasonFraction: 0.35},
	"CT": {Name: "Connecticut", CDD: 700, SolarRadiation: 1150, ElectricityRate: 0.21, Zone: "5A", CoolingSeasonFraction: 0.30},
	"DE": {Name: "Delaware", CDD: 1200, SolarRadiation: 1250, ElectricityRate: 0.12, Zone: "4A", CoolingSeasonFraction: 0.40},
	"DC": {Name: "Washington DC", CDD: 1500, SolarRadiation: 1250, ElectricityRate: 0.13, Zone: "4A", CoolingSeasonFraction: 0.42},
	"FL": {Name: "Florida", CDD: 3500, SolarRadiation: 1500, ElectricityRate: 0.13, Zone: "2A", CoolingSeasonFraction: 0.70},
	"GA": {Name: "Georgia", CDD: 2200, SolarRadiation: 1400, ElectricityRate: 0.12, Zone: "3A", CoolingSeasonFraction: 0.55},
	"HI": {Name: "Hawaii", CDD: 4600, SolarRadiation: 1650, ElectricityRate: 0.37, Zone: "1A", CoolingSeasonFraction: 0.85},
	"ID": {Name: "Idaho", CDD: 600, SolarRadiation: 1400, ElectricityRate: 0.10, Zone: "5B", CoolingSeasonFraction: 0.30},
	"IL": {Name: "Illinois", CDD: 1100, SolarRadiation: 1200, ElectricityRate: 0.11, Zone: "5A", CoolingSeasonFraction: 0.35},
	"IN": {Name: "Indiana", CDD: 1050, SolarRadiation: 1200, ElectricityRate: 0.12, Zone: "5A", CoolingSeasonFraction: 0.35},
	"IA": {Name: "Iowa", CDD: 900, SolarRadiation: 1250, ElectricityRate: 0.13, Zone: "5A", CoolingSeasonFraction: 0.30},
	"KS": {Name: "Kansas", CDD: 1500, SolarRadiation: 1400, ElectricityRate: 0.13, Zone: "4A", CoolingSeasonFraction: 0.40},
	"KY": {Name: "Kentucky", CDD: 1300, SolarRadiation: 1250, ElectricityRate: 0.11, Zone: "4A", CoolingSeasonFraction: 0.40},
	"LA": {Name: "Louisiana", CDD: 2700, SolarRadiation: 1400, ElectricityRate: 0.10, Zone: "2A", CoolingSeasonFraction: 0.60},
	"ME": {Name: "Maine", CDD: 400, SolarRadiation: 1100, ElectricityRate: 0.17, Zone: "6A", CoolingSeasonFraction: 0.20},
	"MD": {Name: "Maryland", CDD: 1300, SolarRadiation: 1250, ElectricityRate: 0.14, Zone: "4A", CoolingSeasonFraction: 0.40},
	"MA": {Name: "Massachusetts", CDD: 700, SolarRadiation: 1150, ElectricityRate: 0.23, Zone: "5A", CoolingSeasonFraction: 0.30},
	"MI": {Name: "Michigan", CDD: 700, SolarRadiation: 1100, ElectricityRate: 0.17, Zone: "5A", CoolingSeasonFraction: 0.28},
	"MN": {Name: "Minnesota", CDD: 700, SolarRadiation: 1200, ElectricityRate: 0.13, Zone: "6A", CoolingSeasonFraction: 0.25},
	"MS": {Name: "Mississippi", CDD: 2300, SolarRadiation: 1400, ElectricityRate: 0.11, Zone: "3A", CoolingSeasonFraction: 0.55},
	"MO": {Name: "Missouri", CDD: 1400, SolarRadiation: 1300, ElectricityRate: 0.11, Zone: "4A", CoolingSeasonFraction: 0.40},
	"MT": {Name: "Montana", CDD: 400, SolarRadiation: 1350, ElectricityRate: 0.12, Zone: "6B", CoolingSeasonFraction: 0.22},
	"NE": {Name: "Nebraska", CDD: 1100, SolarRadiation: 1350, ElectricityRate: 0.11, Zone: "5A", CoolingSeasonFraction: 0.35},
	"NV": {Name: "Nevada", CDD: 2800, SolarRadiation: 1750, ElectricityRate: 0.11, Zone: "3B", CoolingSeasonFraction: 0.55},
	"NH": {Name: "New Hampshire", CDD: 500, SolarRadiation: 1100, ElectricityRate: 0.20, Zone: "6A", CoolingSeasonFraction: 0.25},
	"NJ": {Name: "New Jersey", CDD: 1000, SolarRadiation: 1200, ElectricityRate: 0.16, Zone: "4A", CoolingSeasonFraction: 0.35},
	"NM": {Name: "New Mexico", CDD: 1800, SolarRadiation: 1750, ElectricityRate: 0.13, Zone: "4B", CoolingSeasonFraction: 0.50},
	"NY": {Name: "New York", CDD: 800, SolarRadiation: 1150, ElectricityRate: 0.19, Zone: "4A", CoolingSeasonFraction: 0.30},
	"NC": {Name: "North Carolina", CDD: 1700, SolarRadiation: 1350, ElectricityRate: 0.11, Zone: "4A", CoolingSeasonFraction: 0.45},
	"ND": {Name: "North Dakota", CDD: 600, SolarRadiation: 1250, ElectricityRate: 0.11, Zone: "6A", CoolingSeasonFraction: 0.22},
	"OH": {Name: "Ohio", CDD: 900, SolarRadiation: 1150, ElectricityRate: 0.12, Zone: "5A", CoolingSeasonFraction: 0.32},
	"OK": {Name: "Oklahoma", CDD: 2200, SolarRadiation: 1450, ElectricityRate: 0.11, Zone: "3A", CoolingSeasonFraction: 0.50},
	"OR": {Name: "Oregon", CDD: 400, SolarRadiation: 1250, ElectricityRate: 0.11, Zone: "4C", CoolingSeasonFraction: 0.25},
	"PA": {Name: "Pennsylvania", CDD: 800, SolarRadiation: 1150, ElectricityRate: 0.14, Zone: "5A", CoolingSeasonFraction: 0.30},
	"RI": {Name: "Rhode Island", CDD: 600, SolarRadiation: 1150, ElectricityRate: 0.22, Zone: "5A", CoolingSeasonFraction: 0.28},
	"SC": {Name: "South Carolina", CDD: 2000, SolarRadiation: 1400, ElectricityRate: 0.13, Zone: "3A", CoolingSeasonFraction: 0.50},
	"SD": {Name: "South Dakota", CDD: 800, SolarRadiation: 1300, ElectricityRate: 0.12, Zone: "6A", CoolingSeasonFraction: 0.28},
	"TN": {Name: "Tennessee", CDD: 1600, SolarRadiation: 1300, ElectricityRate: 0.11, Zone: "4A", CoolingSeasonFraction: 0.45},
	"TX": {Name: "Texas", CDD: 2650, SolarRadiation: 1450, ElectricityRate: 0.12, Zone: "2A", CoolingSeasonFraction: 0.60},
	"UT": {Name: "Utah", CDD: 1200, SolarRadiation: 1550, ElectricityRate: 0.11, Zone: "5B", CoolingSeasonFraction: 0.38},
	"VT": {Name: "Vermont", CDD: 400, SolarRadiation: 1100, ElectricityRate: 0.19, Zone: "6A", CoolingSeasonFraction: 0.22},
	"VA": {Name: "Virginia", CDD: 1400, SolarRadiation: 1300, ElectricityRate: 0.12, Zone: "4A", CoolingSeasonFraction: 0.42},
	"WA": {Name: "Washington", CDD: 400, SolarRadiation: 1150, ElectricityRate: 0.10, Zone: "4C", CoolingSeasonFraction: 0.22},
	"WV": {Name: "West Virginia", CDD: 900, SolarRadiation: 1200, ElectricityRate: 0.12, Zone: "5A", CoolingSeasonFraction: 0.32},
	"WI": {Name: "Wisconsin", CDD: 600, SolarRadiation: 1150, ElectricityRate: 0.14, Zone: "6A", CoolingSeasonFraction: 0.25},
	"WY": {Name: "Wyoming", CDD: 500, SolarRadiation: 1450, ElectricityRate: 0.11, Zone: "6B", CoolingSeasonFraction: 0.25},
}

// Lookup returns the climate record for a two-letter state code.
func Lookup(code string) (Climate, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	c, ok := climateTable[code]
	if !ok {
		return Climate{}, false
	}
	c.Code = code
	return c, true
}

// Default returns the Texas record.
func Default() Climate {
	c, _ := Lookup(DefaultState)
	return c
}

// LookupOrDefault falls back to Default for unknown or empty codes.
func LookupOrDefault(code string) Climate {
	if c, ok := Lookup(code); ok {
		return c
	}
	return Default()
}

// States lists every climate record ordered by state name.
func States() []Climate {
	out := make([]Climate, 0, len(climateTable))
	for code, c := range climateTable {
		c.Code = code
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
