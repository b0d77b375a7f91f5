package pricing

import "github.com/Simplici0/coatquote/internal/estimate"

// Prices holds the per-unit prices entered for a quote. Coat and primer
// prices are per gallon, accessory per bucket or roll, membrane per roll.
type Prices struct {
	Basecoat       float64 `json:"basecoat"`
	Topcoat        float64 `json:"topcoat"`
	AdhesionPrimer float64 `json:"adhesionPrimer"`
	RustPrimer     float64 `json:"rustPrimer"`
	Accessory      float64 `json:"accessory"`
	Membrane       float64 `json:"membrane"`
}

// Coatings reports whether any coat or primer price is set.
func (p Prices) Coatings() bool {
	return p.Basecoat > 0 || p.Topcoat > 0 || p.AdhesionPrimer > 0 || p.RustPrimer > 0
}

// Any reports whether any price at all is set.
func (p Prices) Any() bool {
	return p.Coatings() || p.Accessory > 0 || p.Membrane > 0
}

// Breakdown contains the line total of every priced item.
type Breakdown struct {
	Basecoat       float64 `json:"basecoat"`
	Topcoat1       float64 `json:"topcoat1"`
	Topcoat2       float64 `json:"topcoat2"`
	Topcoat3       float64 `json:"topcoat3"`
	AdhesionPrimer float64 `json:"adhesionPrimer"`
	RustPrimer     float64 `json:"rustPrimer"`
	Accessory      float64 `json:"accessory"`
	Membrane       float64 `json:"membrane"`
	Goldseal       float64 `json:"goldseal"`
}

// Totals contains roll-up values of one warranty tier. ContractorPrice and
// Margin stay zero unless a profit margin applies.
type Totals struct {
	Materials       float64 `json:"materials"`
	Grand           float64 `json:"grand"`
	ContractorPrice float64 `json:"contractorPrice"`
	Margin          float64 `json:"margin"`
}

// Result groups the full pricing output of one warranty tier.
type Result struct {
	Breakdown Breakdown `json:"breakdown"`
	Totals    Totals    `json:"totals"`
}

// HasMargin reports whether a contractor price was derived.
func (r Result) HasMargin() bool {
	return r.Totals.ContractorPrice > 0
}

// MarginApplies reports whether a profit margin percentage yields a
// contractor price. Margins of 100% or more are ignored.
func MarginApplies(marginPercent float64) bool {
	return marginPercent > 0 && marginPercent < 100
}

// Calculate prices the quantities of one warranty tier. Materials covers
// coats and primers; the grand total adds accessories, membrane and the
// Goldseal warranty. A margin is applied on selling price, so the
// distributor cost is (100 - margin)% of the contractor price.
func Calculate(common estimate.Common, year estimate.YearEstimate, prices Prices, marginPercent float64) Result {
	b := Breakdown{
		Basecoat:       float64(year.BaseGal) * prices.Basecoat,
		Topcoat1:       float64(year.Top1Gal) * prices.Topcoat,
		Topcoat2:       float64(year.Top2Gal) * prices.Topcoat,
		Topcoat3:       float64(year.Top3Gal) * prices.Topcoat,
		AdhesionPrimer: float64(year.AdhesionPrimerGal) * prices.AdhesionPrimer,
		RustPrimer:     float64(year.RustPrimerGal) * prices.RustPrimer,
		Accessory:      float64(common.AccessoryQty) * prices.Accessory,
		Membrane:       float64(common.MembraneRolls) * prices.Membrane,
		Goldseal:       year.GoldsealCost,
	}

	materials := b.Basecoat + b.Topcoat1 + b.Topcoat2 + b.Topcoat3 + b.AdhesionPrimer + b.RustPrimer
	grand := materials + b.Accessory + b.Membrane + b.Goldseal

	totals := Totals{Materials: materials, Grand: grand}
	if MarginApplies(marginPercent) {
		totals.ContractorPrice = grand / (1.0 - marginPercent/100.0)
		totals.Margin = totals.ContractorPrice - grand
	}

	return Result{Breakdown: b, Totals: totals}
}
