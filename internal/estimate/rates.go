package estimate

// Coverage is the application rate of each layer in gallons per square.
// A zero rate means the layer is not part of the system.
type Coverage struct {
	Base float64 `json:"base"`
	Top1 float64 `json:"top1"`
	Top2 float64 `json:"top2"`
	Top3 float64 `json:"top3"`
}

type coverageKey struct {
	system  CoatingSystem
	acrylic AcrylicSystemType
	roof    RoofType
	year    WarrantyYear
}

// tiers holds the 10, 15 and 20 year rates. A nil entry marks a tier that is
// not offered.
type tiers [3]*Coverage

func rate(base, top1, top2, top3 float64) *Coverage {
	return &Coverage{Base: base, Top1: top1, Top2: top2, Top3: top3}
}

var (
	siliconeOverBase = tiers{rate(1.25, 2.0, 0, 0), rate(1.25, 2.5, 0, 0), rate(1.25, 3.0, 0, 0)}
	siliconeDirect   = tiers{rate(0, 1.5, 0, 0), rate(0, 2.0, 0, 0), rate(0, 2.5, 0, 0)}
	acrylicStandard  = tiers{rate(1.5, 1.5, 0, 0), rate(1.5, 2.0, 0, 0), rate(1.5, 1.5, 2.0, 0)}
)

// coverageTable lists every offered combination. Anything missing from it,
// or present with a nil tier, is not offered.
var coverageTable = buildCoverageTable(map[coverageKey]tiers{
	{system: Silicone, roof: Capsheet}:  siliconeOverBase,
	{system: Silicone, roof: Sprayfoam}: siliconeDirect,
	{system: Silicone, roof: SinglePly}: siliconeDirect,
	{system: Silicone, roof: Metal}:     siliconeDirect,

	{system: Acrylic, acrylic: Reinforced, roof: Capsheet}: {
		rate(2.0, 2.0, 1.75, 0), rate(2.0, 2.0, 1.5, 1.5), rate(2.0, 2.0, 2.0, 2.0),
	},
	{system: Acrylic, acrylic: Reinforced, roof: SinglePly}: {
		rate(2.0, 1.0, 1.5, 0), rate(2.0, 1.0, 1.5, 1.5), rate(2.0, 1.0, 2.0, 2.0),
	},
	{system: Acrylic, acrylic: Reinforced, roof: Sprayfoam}: {},
	{system: Acrylic, acrylic: Reinforced, roof: Metal}:     {},

	{system: Acrylic, acrylic: Standard, roof: Capsheet}: {
		rate(1.75, 2.0, 0, 0), rate(2.0, 2.0, 0, 0), rate(2.0, 2.0, 1.5, 0),
	},
	{system: Acrylic, acrylic: Standard, roof: Sprayfoam}: acrylicStandard,
	{system: Acrylic, acrylic: Standard, roof: SinglePly}: acrylicStandard,
	{system: Acrylic, acrylic: Standard, roof: Metal}:     acrylicStandard,

	{system: Aluminum, roof: Metal}:     {rate(0, 2.0, 0, 0), nil, nil},
	{system: Aluminum, roof: Capsheet}:  {rate(0, 2.5, 0, 0), nil, nil},
	{system: Aluminum, roof: Sprayfoam}: {},
	{system: Aluminum, roof: SinglePly}: {},
})

func buildCoverageTable(rows map[coverageKey]tiers) map[coverageKey]*Coverage {
	table := make(map[coverageKey]*Coverage, len(rows)*len(WarrantyYears))
	for key, t := range rows {
		for i, year := range WarrantyYears {
			key.year = year
			table[key] = t[i]
		}
	}
	return table
}

// CoverageFor returns the layer rates for a system, roof and warranty tier.
// The boolean is false when the combination is not offered. The acrylic
// build is ignored for non-acrylic systems; an empty build means Standard.
func CoverageFor(system CoatingSystem, acrylic AcrylicSystemType, roof RoofType, year WarrantyYear) (Coverage, bool) {
	key := coverageKey{system: system, roof: roof, year: year}
	if system == Acrylic {
		key.acrylic = acrylic
		if key.acrylic == "" {
			key.acrylic = Standard
		}
	}

	c := coverageTable[key]
	if c == nil {
		return Coverage{}, false
	}
	return *c, true
}
