package estimate

import (
	"fmt"
	"math"
	"sort"
)

const (
	pailGallons = 5

	acrylicLFPerBucket = 150
	defaultLFPerBucket = 80
	fabricLFPerRoll    = 300

	screwsPerSqFt          = 0.8
	acrylicScrewsPerBucket = 4375
	defaultScrewsPerBucket = 2500

	membraneSqFtPerRoll    = 1080
	adhesionPrimerGalPerSq = 0.2
	rustPrimerGalPerSq     = 0.5
)

const (
	unitBuckets              = "Buckets"
	unitRolls                = "Rolls"
	fabricAccessoryDesc      = "Reinforcement Fabric (300 LF/ea)"
	screwEncapsulationSuffix = " + Screw Encapsulation"
	acrylicBucketSizeLabel   = "3.5-gal"
	defaultBucketSizeLabel   = "2-gal"
)

// AdhesionPrimerRate and RustPrimerRate are exposed for exports that print
// the application rate next to the primer quantity.
const (
	AdhesionPrimerRate = adhesionPrimerGalPerSq
	RustPrimerRate     = rustPrimerGalPerSq
)

type goldsealTerms struct {
	rate    float64
	minimum float64
}

var goldsealByYear = map[WarrantyYear]goldsealTerms{
	Warranty10: {rate: 0.06, minimum: 900},
	Warranty15: {rate: 0.08, minimum: 1200},
	Warranty20: {rate: 0.10, minimum: 1500},
}

// Common holds the quantities shared by every warranty tier.
type Common struct {
	Squares       float64 `json:"squares"`
	AccessoryName string  `json:"accessoryName"`
	AccessoryQty  int     `json:"accessoryQty"`
	AccessoryUnit string  `json:"accessoryUnit"`
	AccessoryDesc string  `json:"accessoryDesc"`
	MembraneRolls int     `json:"membraneRolls"`
	ScrewCount    int     `json:"screwCount"`
	ScrewBuckets  int     `json:"screwBuckets"`
}

// YearEstimate holds the material quantities of one warranty tier.
type YearEstimate struct {
	BaseGal           int      `json:"baseGal"`
	Top1Gal           int      `json:"top1Gal"`
	Top2Gal           int      `json:"top2Gal"`
	Top3Gal           int      `json:"top3Gal"`
	AdhesionPrimerGal int      `json:"adhesionPrimerGal"`
	RustPrimerGal     int      `json:"rustPrimerGal"`
	GoldsealCost      float64  `json:"goldsealCost"`
	TotalGallons      int      `json:"totalGallons"`
	Rates             Coverage `json:"rates"`
}

// Result is the full output of Calculate. Years only contains the tiers the
// selected system offers.
type Result struct {
	Common Common                        `json:"common"`
	Years  map[WarrantyYear]YearEstimate `json:"years"`
}

// Available returns the tiers present in the result in ascending order.
func (r Result) Available() []WarrantyYear {
	years := make([]WarrantyYear, 0, len(r.Years))
	for y := range r.Years {
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool { return years[i] < years[j] })
	return years
}

// RoundUpToFive rounds a gallon quantity up to whole 5-gallon pails.
func RoundUpToFive(gallons float64) int {
	if gallons <= 0 {
		return 0
	}
	return int(math.Ceil(gallons/pailGallons)) * pailGallons
}

func ceilPositive(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Ceil(v))
}

// Calculate computes material quantities for every offered warranty tier.
// It never fails: missing or unsupported inputs produce zero quantities or
// omitted tiers.
func Calculate(in Input) Result {
	squares := in.Squares()
	totalFactor := in.TotalFactor()

	result := Result{
		Common: commonQuantities(in, totalFactor),
		Years:  make(map[WarrantyYear]YearEstimate, len(WarrantyYears)),
	}
	result.Common.Squares = squares

	for _, year := range WarrantyYears {
		rates, ok := CoverageFor(in.CoatingSystem, in.AcrylicSystemType, in.RoofType, year)
		if !ok {
			continue
		}
		result.Years[year] = yearQuantities(in, year, rates, squares, totalFactor)
	}

	return result
}

func commonQuantities(in Input, totalFactor float64) Common {
	var c Common

	switch in.AccessoryType {
	case Fabric:
		c.AccessoryQty = ceilPositive(in.LinearFeet / fabricLFPerRoll)
		c.AccessoryUnit = unitRolls
		c.AccessoryDesc = fabricAccessoryDesc
		c.AccessoryName = in.SelectedFabric
	default:
		lfPerBucket := defaultLFPerBucket
		sizeLabel := defaultBucketSizeLabel
		if in.CoatingSystem == Acrylic {
			lfPerBucket = acrylicLFPerBucket
			sizeLabel = acrylicBucketSizeLabel
		}

		c.AccessoryQty = ceilPositive(in.LinearFeet / float64(lfPerBucket))
		c.AccessoryUnit = unitBuckets
		c.AccessoryDesc = fmt.Sprintf("%s containers (~%d LF/ea)", sizeLabel, lfPerBucket)
		c.AccessoryName = in.SelectedButterGrade

		// Fastener heads are encapsulated with the same product, sized from roof area.
		if in.RoofType == Metal && in.RoofSizeSqFt > 0 {
			screwsPerBucket := defaultScrewsPerBucket
			if in.CoatingSystem == Acrylic {
				screwsPerBucket = acrylicScrewsPerBucket
			}
			c.ScrewCount = int(math.Ceil(in.RoofSizeSqFt * screwsPerSqFt))
			c.ScrewBuckets = ceilPositive(float64(c.ScrewCount) / float64(screwsPerBucket))
			c.AccessoryQty += c.ScrewBuckets
			c.AccessoryDesc += screwEncapsulationSuffix
		}
	}

	if in.IsReinforcedAcrylic() && in.RoofSizeSqFt > 0 {
		c.MembraneRolls = ceilPositive(in.RoofSizeSqFt * totalFactor / membraneSqFtPerRoll)
	}

	return c
}

func yearQuantities(in Input, year WarrantyYear, rates Coverage, squares, totalFactor float64) YearEstimate {
	est := YearEstimate{
		BaseGal: RoundUpToFive(squares * rates.Base * totalFactor),
		Top1Gal: RoundUpToFive(squares * rates.Top1 * totalFactor),
		Top2Gal: RoundUpToFive(squares * rates.Top2 * totalFactor),
		Top3Gal: RoundUpToFive(squares * rates.Top3 * totalFactor),
		Rates:   rates,
	}

	if !in.PassedAdhesion {
		est.AdhesionPrimerGal = ceilPositive(squares * adhesionPrimerGalPerSq * totalFactor)
	}

	if in.CoatingSystem == Silicone && in.RoofType == Metal && in.HasRust {
		est.RustPrimerGal = RoundUpToFive(squares * rustPrimerGalPerSq * totalFactor)
	}

	if in.Goldseal && in.RoofSizeSqFt > 0 {
		terms := goldsealByYear[year]
		est.GoldsealCost = math.Max(in.RoofSizeSqFt*terms.rate, terms.minimum)
	}

	est.TotalGallons = est.BaseGal + est.Top1Gal + est.Top2Gal + est.Top3Gal +
		est.AdhesionPrimerGal + est.RustPrimerGal

	return est
}
