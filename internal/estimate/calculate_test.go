package estimate

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func siliconeCapsheet(sqft float64) Input {
	in := DefaultInput()
	in.RoofSizeSqFt = sqft
	return in
}

func TestRoundUpToFive(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{in: -3, want: 0},
		{in: 0, want: 0},
		{in: 0.1, want: 5},
		{in: 5, want: 5},
		{in: 10, want: 10},
		{in: 12, want: 15},
		{in: 125, want: 125},
		{in: 126.01, want: 130},
	}

	for _, tt := range tests {
		if got := RoundUpToFive(tt.in); got != tt.want {
			t.Fatalf("RoundUpToFive(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCalculate_SiliconeCapsheetTenThousandSqFt(t *testing.T) {
	result := Calculate(siliconeCapsheet(10000))

	nearlyEqual(t, "squares", result.Common.Squares, 100)

	ten, ok := result.Years[Warranty10]
	if !ok {
		t.Fatalf("expected 10-year tier")
	}
	if ten.BaseGal != 125 || ten.Top1Gal != 200 || ten.Top2Gal != 0 || ten.Top3Gal != 0 {
		t.Fatalf("unexpected 10-year layers: %+v", ten)
	}
	if ten.TotalGallons != 325 {
		t.Fatalf("totalGallons(10) = %d, want 325", ten.TotalGallons)
	}

	if got := result.Years[Warranty15].Top1Gal; got != 250 {
		t.Fatalf("top1Gal(15) = %d, want 250", got)
	}
	if got := result.Years[Warranty20].Top1Gal; got != 300 {
		t.Fatalf("top1Gal(20) = %d, want 300", got)
	}
	if years := result.Available(); len(years) != 3 || years[0] != Warranty10 || years[2] != Warranty20 {
		t.Fatalf("unexpected available years: %v", years)
	}
}

func TestCalculate_WasteAndStretchRoundToPails(t *testing.T) {
	in := siliconeCapsheet(9000)
	in.WasteFactor = 0.1
	in.StretchFactor = 0.05

	ten := Calculate(in).Years[Warranty10]

	// 112.5 * 1.15 = 129.375 -> 130; 180 * 1.15 = 207 -> 210
	if ten.BaseGal != 130 {
		t.Fatalf("baseGal = %d, want 130", ten.BaseGal)
	}
	if ten.Top1Gal != 210 {
		t.Fatalf("top1Gal = %d, want 210", ten.Top1Gal)
	}
	if ten.BaseGal%5 != 0 || ten.Top1Gal%5 != 0 {
		t.Fatalf("layer gallons must be multiples of 5: %+v", ten)
	}
}

func TestCalculate_ZeroRoofSize(t *testing.T) {
	result := Calculate(siliconeCapsheet(0))

	if result.Common.Squares != 0 {
		t.Fatalf("squares = %v, want 0", result.Common.Squares)
	}
	for year, est := range result.Years {
		if est.TotalGallons != 0 {
			t.Fatalf("year %d: totalGallons = %d, want 0", year, est.TotalGallons)
		}
	}
}

func TestCalculate_AdhesionPrimerRoundsToWholeGallons(t *testing.T) {
	in := siliconeCapsheet(1000)
	in.PassedAdhesion = false

	if got := Calculate(in).Years[Warranty10].AdhesionPrimerGal; got != 2 {
		t.Fatalf("adhesionPrimerGal = %d, want 2", got)
	}

	in.RoofSizeSqFt = 1030
	if got := Calculate(in).Years[Warranty10].AdhesionPrimerGal; got != 3 {
		t.Fatalf("adhesionPrimerGal = %d, want 3", got)
	}

	in.PassedAdhesion = true
	if got := Calculate(in).Years[Warranty10].AdhesionPrimerGal; got != 0 {
		t.Fatalf("adhesionPrimerGal with passed adhesion = %d, want 0", got)
	}
}

func TestCalculate_RustPrimerOnlyForSiliconeMetal(t *testing.T) {
	in := siliconeCapsheet(10000)
	in.RoofType = Metal
	in.HasRust = true

	ten := Calculate(in).Years[Warranty10]
	if ten.RustPrimerGal != 50 {
		t.Fatalf("rustPrimerGal = %d, want 50", ten.RustPrimerGal)
	}
	if ten.TotalGallons != 150+50 {
		t.Fatalf("totalGallons = %d, want 200", ten.TotalGallons)
	}

	acrylic := SetCoatingSystem(in, Acrylic)
	acrylic.HasRust = true
	if got := Calculate(acrylic).Years[Warranty10].RustPrimerGal; got != 0 {
		t.Fatalf("acrylic rustPrimerGal = %d, want 0", got)
	}

	in.RoofType = Capsheet
	if got := Calculate(in).Years[Warranty10].RustPrimerGal; got != 0 {
		t.Fatalf("capsheet rustPrimerGal = %d, want 0", got)
	}
}

func TestCalculate_ScrewEncapsulation(t *testing.T) {
	in := siliconeCapsheet(5000)
	in.RoofType = Metal

	common := Calculate(in).Common
	if common.ScrewCount != 4000 {
		t.Fatalf("screwCount = %d, want 4000", common.ScrewCount)
	}
	if common.ScrewBuckets != 2 {
		t.Fatalf("screwBuckets = %d, want 2", common.ScrewBuckets)
	}
	if common.AccessoryQty != 2 {
		t.Fatalf("accessoryQty = %d, want 2 (no linear feet)", common.AccessoryQty)
	}
	if common.AccessoryDesc != "2-gal containers (~80 LF/ea) + Screw Encapsulation" {
		t.Fatalf("unexpected accessoryDesc %q", common.AccessoryDesc)
	}

	in.LinearFeet = 100
	if got := Calculate(in).Common.AccessoryQty; got != 2+2 {
		t.Fatalf("accessoryQty = %d, want 4", got)
	}

	acrylic := SetCoatingSystem(in, Acrylic)
	acrylic.RoofSizeSqFt = 10000
	common = Calculate(acrylic).Common
	// 8000 screws / 4375 per bucket -> 2; 100 LF / 150 -> 1
	if common.ScrewBuckets != 2 || common.AccessoryQty != 3 {
		t.Fatalf("unexpected acrylic screw quantities: %+v", common)
	}
}

func TestCalculate_FabricIgnoresScrews(t *testing.T) {
	in := siliconeCapsheet(5000)
	in.RoofType = Metal
	in.AccessoryType = Fabric
	in.LinearFeet = 301

	common := Calculate(in).Common
	if common.AccessoryQty != 2 || common.AccessoryUnit != "Rolls" {
		t.Fatalf("unexpected fabric accessory: %+v", common)
	}
	if common.ScrewBuckets != 0 || common.ScrewCount != 0 {
		t.Fatalf("fabric accessory must not add screw buckets: %+v", common)
	}
	if common.AccessoryName != in.SelectedFabric {
		t.Fatalf("accessoryName = %q, want %q", common.AccessoryName, in.SelectedFabric)
	}
}

func TestCalculate_ButterGradeBucketCoverage(t *testing.T) {
	in := siliconeCapsheet(1000)
	in.LinearFeet = 161

	common := Calculate(in).Common
	if common.AccessoryQty != 3 || common.AccessoryUnit != "Buckets" {
		t.Fatalf("silicone butter grade: %+v", common)
	}

	acrylic := SetCoatingSystem(in, Acrylic)
	common = Calculate(acrylic).Common
	if common.AccessoryQty != 2 {
		t.Fatalf("acrylic accessoryQty = %d, want 2", common.AccessoryQty)
	}
	if common.AccessoryDesc != "3.5-gal containers (~150 LF/ea)" {
		t.Fatalf("unexpected accessoryDesc %q", common.AccessoryDesc)
	}
}

func TestCalculate_ReinforcedAcrylicMembrane(t *testing.T) {
	in := SetAcrylicSystemType(SetCoatingSystem(siliconeCapsheet(10000), Acrylic), Reinforced)

	result := Calculate(in)
	// 10000 / 1080 = 9.26 -> 10
	if result.Common.MembraneRolls != 10 {
		t.Fatalf("membraneRolls = %d, want 10", result.Common.MembraneRolls)
	}

	fifteen := result.Years[Warranty15]
	if fifteen.BaseGal != 200 || fifteen.Top2Gal != 150 || fifteen.Top3Gal != 150 {
		t.Fatalf("unexpected reinforced 15-year layers: %+v", fifteen)
	}

	standard := SetAcrylicSystemType(in, Standard)
	if got := Calculate(standard).Common.MembraneRolls; got != 0 {
		t.Fatalf("standard acrylic membraneRolls = %d, want 0", got)
	}
}

func TestCalculate_ReinforcedAcrylicUnsupportedRoofs(t *testing.T) {
	for _, roof := range []RoofType{Sprayfoam, Metal} {
		in := SetCoatingSystem(siliconeCapsheet(10000), Acrylic)
		in.AcrylicSystemType = Reinforced
		in.RoofType = roof

		if result := Calculate(in); len(result.Years) != 0 {
			t.Fatalf("roof %s: expected no warranty tiers, got %v", roof, result.Available())
		}
	}
}

func TestCalculate_AluminumOnlyTenYear(t *testing.T) {
	for _, roof := range []RoofType{Metal, Capsheet} {
		in := SetCoatingSystem(siliconeCapsheet(10000), Aluminum)
		in.RoofType = roof

		result := Calculate(in)
		if years := result.Available(); len(years) != 1 || years[0] != Warranty10 {
			t.Fatalf("roof %s: available = %v, want [10]", roof, years)
		}
		if result.Years[Warranty10].BaseGal != 0 {
			t.Fatalf("roof %s: aluminum baseGal = %d, want 0", roof, result.Years[Warranty10].BaseGal)
		}
	}

	for _, roof := range []RoofType{Sprayfoam, SinglePly} {
		in := SetCoatingSystem(siliconeCapsheet(10000), Aluminum)
		in.RoofType = roof
		if result := Calculate(in); len(result.Years) != 0 {
			t.Fatalf("roof %s: expected no tiers for aluminum, got %v", roof, result.Available())
		}
	}
}

func TestCalculate_GoldsealCost(t *testing.T) {
	in := siliconeCapsheet(10000)
	in.Goldseal = true

	result := Calculate(in)
	nearlyEqual(t, "goldseal(10)", result.Years[Warranty10].GoldsealCost, 900)
	nearlyEqual(t, "goldseal(15)", result.Years[Warranty15].GoldsealCost, 1200)
	nearlyEqual(t, "goldseal(20)", result.Years[Warranty20].GoldsealCost, 1500)

	in.RoofSizeSqFt = 30000
	result = Calculate(in)
	nearlyEqual(t, "goldseal(10) large", result.Years[Warranty10].GoldsealCost, 1800)
	nearlyEqual(t, "goldseal(15) large", result.Years[Warranty15].GoldsealCost, 2400)
	nearlyEqual(t, "goldseal(20) large", result.Years[Warranty20].GoldsealCost, 3000)

	in.Goldseal = false
	if got := Calculate(in).Years[Warranty10].GoldsealCost; got != 0 {
		t.Fatalf("goldseal without purchase = %v, want 0", got)
	}
}

func TestCalculate_DoesNotMutateInput(t *testing.T) {
	in := siliconeCapsheet(2500)
	in.RoofType = Metal
	before := in

	_ = Calculate(in)

	if in != before {
		t.Fatalf("input changed: %+v -> %+v", before, in)
	}
}
