package savings

import (
	"math"

	"github.com/Simplici0/coatquote/internal/estimate"
)

// RoofFactor is the share of solar heat gain that reaches the cooling load
// over a Texas cooling season (cooling season x R-20 heat transfer x
// building factors, rounded up from 0.105).
const RoofFactor = 0.12

const (
	referenceCoolingSeason = 0.60

	sqFtToM2         = 0.092903
	hvacSEER         = 13.0
	seerToEER        = 0.875
	wattsToBTU       = 3.412
	btuPerTon        = 12000.0
	peakWattsPerM2   = 250.0
	lowBand          = 0.85
	highBand         = 1.15
	annualRateGrowth = 0.03
)

type surface struct {
	name        string
	reflectance float64
}

var (
	blackCapsheet  = surface{name: "Black Capsheet", reflectance: 0.06}
	darkMetal      = surface{name: "Dark/Weathered Metal", reflectance: 0.25}
	existingRoof   = surface{name: "Existing Roof", reflectance: 0.15}
	whiteSilicone  = surface{name: "White Silicone Coating", reflectance: 0.88}
	whiteAcrylic   = surface{name: "White Acrylic Coating", reflectance: 0.85}
	aluminumCoated = surface{name: "Aluminum Coating", reflectance: 0.70}
)

// Result is an annual savings estimate plus its projection over each
// warranty term.
type Result struct {
	BeforeRoof        string                            `json:"beforeRoof"`
	AfterRoof         string                            `json:"afterRoof"`
	DeltaReflectance  float64                           `json:"deltaReflectance"`
	AnnualKWh         float64                           `json:"annualKwhSavings"`
	AnnualSavingsBase float64                           `json:"annualSavingsBase"`
	AnnualSavingsLow  float64                           `json:"annualSavingsLow"`
	AnnualSavingsHigh float64                           `json:"annualSavingsHigh"`
	TonsOfCooling     float64                           `json:"tonsOfCooling"`
	ElectricityRate   float64                           `json:"electricityRate"`
	Climate           Climate                           `json:"climate"`
	Projected         map[estimate.WarrantyYear]float64 `json:"projected"`
}

func before(roof estimate.RoofType) surface {
	switch roof {
	case estimate.Capsheet:
		return blackCapsheet
	case estimate.Metal:
		return darkMetal
	}
	return existingRoof
}

func after(system estimate.CoatingSystem) surface {
	switch system {
	case estimate.Acrylic:
		return whiteAcrylic
	case estimate.Aluminum:
		return aluminumCoated
	}
	return whiteSilicone
}

// ClimateRoofFactor scales RoofFactor by the state's cooling season relative
// to Texas.
func ClimateRoofFactor(c Climate) float64 {
	return RoofFactor * (c.CoolingSeasonFraction / referenceCoolingSeason)
}

// Estimate returns the cooling savings of coating a roof. The boolean is
// false when the roof has no area or the coating does not raise reflectance.
// A non-positive electricity rate falls back to the climate's average rate.
func Estimate(roofSizeSqFt float64, roof estimate.RoofType, system estimate.CoatingSystem, electricityRate float64, climate Climate) (Result, bool) {
	if roofSizeSqFt <= 0 {
		return Result{}, false
	}

	return estimateSurfaces(roofSizeSqFt, before(roof), after(system), electricityRate, climate)
}

// estimateSurfaces computes savings for a change from surface b to surface a.
func estimateSurfaces(roofSizeSqFt float64, b, a surface, electricityRate float64, climate Climate) (Result, bool) {
	delta := a.reflectance - b.reflectance
	if delta <= 0 {
		return Result{}, false
	}

	if electricityRate <= 0 {
		electricityRate = climate.ElectricityRate
	}

	areaM2 := roofSizeSqFt * sqFtToM2
	heatGainReduction := areaM2 * climate.SolarRadiation * delta * ClimateRoofFactor(climate)
	cop := hvacSEER * seerToEER / wattsToBTU
	kwh := heatGainReduction / cop

	peakWatts := areaM2 * peakWattsPerM2 * delta
	tons := peakWatts * wattsToBTU / btuPerTon

	base := kwh * electricityRate

	r := Result{
		BeforeRoof:        b.name,
		AfterRoof:         a.name,
		DeltaReflectance:  delta,
		AnnualKWh:         kwh,
		AnnualSavingsBase: base,
		AnnualSavingsLow:  base * lowBand,
		AnnualSavingsHigh: base * highBand,
		TonsOfCooling:     tons,
		ElectricityRate:   electricityRate,
		Climate:           climate,
		Projected:         make(map[estimate.WarrantyYear]float64, len(estimate.WarrantyYears)),
	}
	for _, year := range estimate.WarrantyYears {
		r.Projected[year] = CompoundSavings(base, int(year))
	}

	return r, true
}

// CompoundSavings sums annual savings over years with the electricity rate
// rising 3% a year.
func CompoundSavings(annual float64, years int) float64 {
	var total float64
	for y := 1; y <= years; y++ {
		total += annual * math.Pow(1+annualRateGrowth, float64(y-1))
	}
	return total
}
