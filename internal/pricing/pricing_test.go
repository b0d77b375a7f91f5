package pricing

import (
	"math"
	"testing"

	"github.com/Simplici0/coatquote/internal/estimate"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func tier() (estimate.Common, estimate.YearEstimate) {
	common := estimate.Common{AccessoryQty: 4, MembraneRolls: 2}
	year := estimate.YearEstimate{
		BaseGal:           125,
		Top1Gal:           200,
		Top2Gal:           50,
		Top3Gal:           10,
		AdhesionPrimerGal: 3,
		RustPrimerGal:     5,
		GoldsealCost:      900,
	}
	return common, year
}

func TestCalculate_LineTotals(t *testing.T) {
	common, year := tier()
	prices := Prices{Basecoat: 20, Topcoat: 30, AdhesionPrimer: 40, RustPrimer: 10, Accessory: 50, Membrane: 100}

	result := Calculate(common, year, prices, 0)

	nearlyEqual(t, "basecoat", result.Breakdown.Basecoat, 2500)
	nearlyEqual(t, "topcoat1", result.Breakdown.Topcoat1, 6000)
	nearlyEqual(t, "topcoat2", result.Breakdown.Topcoat2, 1500)
	nearlyEqual(t, "topcoat3", result.Breakdown.Topcoat3, 300)
	nearlyEqual(t, "adhesionPrimer", result.Breakdown.AdhesionPrimer, 120)
	nearlyEqual(t, "rustPrimer", result.Breakdown.RustPrimer, 50)
	nearlyEqual(t, "accessory", result.Breakdown.Accessory, 200)
	nearlyEqual(t, "membrane", result.Breakdown.Membrane, 200)
	nearlyEqual(t, "materials", result.Totals.Materials, 10470)
	nearlyEqual(t, "grand", result.Totals.Grand, 10470+200+200+900)
	if result.HasMargin() {
		t.Fatalf("no margin expected without a margin percentage")
	}
}

func TestCalculate_MarginOnSellingPrice(t *testing.T) {
	common := estimate.Common{}
	year := estimate.YearEstimate{Top1Gal: 100}
	prices := Prices{Topcoat: 10}

	result := Calculate(common, year, prices, 20)

	nearlyEqual(t, "grand", result.Totals.Grand, 1000)
	nearlyEqual(t, "contractorPrice", result.Totals.ContractorPrice, 1250)
	nearlyEqual(t, "margin", result.Totals.Margin, 250)
}

func TestCalculate_MarginOutOfRangeIgnored(t *testing.T) {
	common := estimate.Common{}
	year := estimate.YearEstimate{Top1Gal: 100}
	prices := Prices{Topcoat: 10}

	for _, margin := range []float64{0, -5, 100, 150} {
		result := Calculate(common, year, prices, margin)
		if result.HasMargin() || result.Totals.Margin != 0 {
			t.Fatalf("margin %v: expected no contractor price, got %+v", margin, result.Totals)
		}
		nearlyEqual(t, "grand", result.Totals.Grand, 1000)
	}
}

func TestCalculate_NoPricesOnlyGoldseal(t *testing.T) {
	common, year := tier()

	result := Calculate(common, year, Prices{}, 25)

	nearlyEqual(t, "materials", result.Totals.Materials, 0)
	nearlyEqual(t, "grand", result.Totals.Grand, 900)
	nearlyEqual(t, "contractorPrice", result.Totals.ContractorPrice, 1200)
}

func TestPrices_AnyAndCoatings(t *testing.T) {
	tests := []struct {
		name     string
		prices   Prices
		any      bool
		coatings bool
	}{
		{name: "empty", prices: Prices{}},
		{name: "accessory only", prices: Prices{Accessory: 12}, any: true},
		{name: "membrane only", prices: Prices{Membrane: 80}, any: true},
		{name: "rust primer", prices: Prices{RustPrimer: 30}, any: true, coatings: true},
		{name: "topcoat", prices: Prices{Topcoat: 45}, any: true, coatings: true},
	}

	for _, tt := range tests {
		if got := tt.prices.Any(); got != tt.any {
			t.Fatalf("%s: Any() = %v, want %v", tt.name, got, tt.any)
		}
		if got := tt.prices.Coatings(); got != tt.coatings {
			t.Fatalf("%s: Coatings() = %v, want %v", tt.name, got, tt.coatings)
		}
	}
}
