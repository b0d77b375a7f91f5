package savings

import (
	"math"
	"testing"

	"github.com/Simplici0/coatquote/internal/estimate"
)

func nearlyEqual(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestEstimate_TexasSiliconeOverCapsheet(t *testing.T) {
	r, ok := Estimate(10000, estimate.Capsheet, estimate.Silicone, 0.12, Default())
	if !ok {
		t.Fatalf("expected an estimate")
	}

	if r.BeforeRoof != "Black Capsheet" || r.AfterRoof != "White Silicone Coating" {
		t.Fatalf("unexpected surfaces: %q -> %q", r.BeforeRoof, r.AfterRoof)
	}
	nearlyEqual(t, "deltaReflectance", r.DeltaReflectance, 0.82, 1e-9)
	nearlyEqual(t, "annualKWh", r.AnnualKWh, 39760.37, 0.01)
	nearlyEqual(t, "annualSavingsBase", r.AnnualSavingsBase, 4771.24, 0.01)
	nearlyEqual(t, "annualSavingsLow", r.AnnualSavingsLow, r.AnnualSavingsBase*0.85, 1e-9)
	nearlyEqual(t, "annualSavingsHigh", r.AnnualSavingsHigh, r.AnnualSavingsBase*1.15, 1e-9)
	nearlyEqual(t, "tonsOfCooling", r.TonsOfCooling, 54.15, 0.01)
	nearlyEqual(t, "projected(10)", r.Projected[estimate.Warranty10], 54696.97, 0.01)

	if len(r.Projected) != 3 {
		t.Fatalf("expected projections for every warranty term, got %v", r.Projected)
	}
}

func TestEstimate_NoRoofNoResult(t *testing.T) {
	for _, size := range []float64{0, -10} {
		if _, ok := Estimate(size, estimate.Capsheet, estimate.Silicone, 0.12, Default()); ok {
			t.Fatalf("roof size %v: expected no estimate", size)
		}
	}
}

func TestEstimate_BeforeAndAfterSurfaces(t *testing.T) {
	tests := []struct {
		roof   estimate.RoofType
		system estimate.CoatingSystem
		before string
		after  string
		delta  float64
	}{
		{roof: estimate.Metal, system: estimate.Aluminum, before: "Dark/Weathered Metal", after: "Aluminum Coating", delta: 0.45},
		{roof: estimate.Sprayfoam, system: estimate.Acrylic, before: "Existing Roof", after: "White Acrylic Coating", delta: 0.70},
		{roof: estimate.SinglePly, system: estimate.CoatingSystem(""), before: "Existing Roof", after: "White Silicone Coating", delta: 0.73},
	}

	for _, tt := range tests {
		r, ok := Estimate(1000, tt.roof, tt.system, 0.12, Default())
		if !ok {
			t.Fatalf("%s/%s: expected an estimate", tt.roof, tt.system)
		}
		if r.BeforeRoof != tt.before || r.AfterRoof != tt.after {
			t.Fatalf("%s/%s: surfaces %q -> %q", tt.roof, tt.system, r.BeforeRoof, r.AfterRoof)
		}
		nearlyEqual(t, "deltaReflectance", r.DeltaReflectance, tt.delta, 1e-9)
	}
}

func TestEstimate_RateFallsBackToClimate(t *testing.T) {
	fl, ok := Lookup("FL")
	if !ok {
		t.Fatalf("expected Florida climate")
	}

	r, ok := Estimate(10000, estimate.Capsheet, estimate.Silicone, 0, fl)
	if !ok {
		t.Fatalf("expected an estimate")
	}
	if r.ElectricityRate != 0.13 {
		t.Fatalf("electricityRate = %v, want 0.13", r.ElectricityRate)
	}
	nearlyEqual(t, "annualKWh", r.AnnualKWh, 47986.66, 0.01)
	nearlyEqual(t, "annualSavingsBase", r.AnnualSavingsBase, 6238.27, 0.01)
}

func TestClimateRoofFactor_TexasIsReference(t *testing.T) {
	nearlyEqual(t, "roofFactor(TX)", ClimateRoofFactor(Default()), RoofFactor, 1e-12)

	ak, _ := Lookup("AK")
	nearlyEqual(t, "roofFactor(AK)", ClimateRoofFactor(ak), 0.03, 1e-9)
}

func TestCompoundSavings(t *testing.T) {
	nearlyEqual(t, "1 year", CompoundSavings(100, 1), 100, 1e-9)
	nearlyEqual(t, "2 years", CompoundSavings(100, 2), 203, 1e-9)
	nearlyEqual(t, "3 years", CompoundSavings(100, 3), 309.09, 1e-9)
	nearlyEqual(t, "0 years", CompoundSavings(100, 0), 0, 1e-9)
}

func TestEstimateSurfaces_NoGainNoResult(t *testing.T) {
	tx := Default()

	tests := []struct {
		name          string
		before, after surface
	}{
		{"equal", whiteSilicone, whiteSilicone},
		{"reversed", whiteSilicone, blackCapsheet},
		{"darker metal", aluminumCoated, darkMetal},
	}
	for _, tt := range tests {
		if r, ok := estimateSurfaces(10000, tt.before, tt.after, 0.12, tx); ok {
			t.Fatalf("%s: expected no result, got %+v", tt.name, r)
		}
	}

	if _, ok := estimateSurfaces(10000, existingRoof, aluminumCoated, 0.12, tx); !ok {
		t.Fatalf("a reflectance gain must produce a result")
	}
}
