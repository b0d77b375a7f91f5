package report

import (
	"fmt"

	"github.com/Simplici0/coatquote/internal/estimate"
	"github.com/Simplici0/coatquote/internal/pricing"
	"github.com/Simplici0/coatquote/internal/quote"
	"github.com/Simplici0/coatquote/internal/savings"
)

const (
	membraneName = "Reinforcement Membrane"
	membraneSize = `40" x 324'`
)

// Options controls the optional parts of an export.
type Options struct {
	IncludeSavings  bool
	Climate         savings.Climate
	ElectricityRate float64
}

// YearView is one warranty tier with its quantities and prices.
type YearView struct {
	Year     estimate.WarrantyYear `json:"year"`
	Estimate estimate.YearEstimate `json:"estimate"`
	Pricing  pricing.Result        `json:"pricing"`
}

// Data is everything an export renders. Years holds only offered tiers.
type Data struct {
	State   quote.State      `json:"state"`
	Common  estimate.Common  `json:"common"`
	Years   []YearView       `json:"years"`
	Primers estimate.Primers `json:"primers"`
	Savings *savings.Result  `json:"savings,omitempty"`
}

// MaterialRow is one line of the materials table: a product and one cell
// per warranty tier.
type MaterialRow struct {
	Product     string
	Description string
	Cells       []string
}

// Build runs the calculator, pricing and, when requested, the savings
// estimate for a quote state.
func Build(state quote.State, opts Options) Data {
	in := state.Inputs
	result := estimate.Calculate(in)

	data := Data{
		State:   state,
		Common:  result.Common,
		Primers: estimate.PrimersFor(estimate.BrandOf(in.SelectedTopcoat)),
	}

	for _, year := range result.Available() {
		est := result.Years[year]
		data.Years = append(data.Years, YearView{
			Year:     year,
			Estimate: est,
			Pricing:  pricing.Calculate(result.Common, est, state.Prices, state.ProfitMargin),
		})
	}

	if opts.IncludeSavings {
		climate := opts.Climate
		if climate.Code == "" {
			climate = savings.Default()
		}
		if s, ok := savings.Estimate(in.RoofSizeSqFt, in.RoofType, in.CoatingSystem, opts.ElectricityRate, climate); ok {
			data.Savings = &s
		}
	}

	return data
}

// Incomplete reports whether the quote lacks the linear feet needed for
// seam treatment.
func (d Data) Incomplete() bool {
	return d.State.Inputs.LinearFeet <= 0
}

// SystemLabel describes the coating system and roof, e.g.
// "Acrylic on Capsheet (Reinforced)".
func (d Data) SystemLabel() string {
	in := d.State.Inputs
	label := fmt.Sprintf("%s on %s", in.CoatingSystem, in.RoofType)
	if in.CoatingSystem == estimate.Acrylic {
		label += fmt.Sprintf(" (%s)", in.AcrylicSystemType)
	}
	return label
}

// MaterialRows builds the materials table shared by the PDF and
// spreadsheet exports. A product row appears when any tier needs it.
func (d Data) MaterialRows() []MaterialRow {
	in := d.State.Inputs

	layer := func(product, description string, gallons func(estimate.YearEstimate) int) *MaterialRow {
		row := MaterialRow{Product: product, Description: description}
		needed := false
		for _, y := range d.Years {
			g := gallons(y.Estimate)
			if g > 0 {
				needed = true
			}
			row.Cells = append(row.Cells, fmt.Sprintf("%d gal", g))
		}
		if !needed {
			return nil
		}
		return &row
	}

	var rows []MaterialRow
	candidates := []*MaterialRow{
		layer("Basecoat", in.SelectedBasecoat, func(e estimate.YearEstimate) int { return e.BaseGal }),
		layer("Topcoat 1", in.SelectedTopcoat, func(e estimate.YearEstimate) int { return e.Top1Gal }),
		layer("Topcoat 2", in.SelectedTopcoat, func(e estimate.YearEstimate) int { return e.Top2Gal }),
		layer("Topcoat 3", in.SelectedTopcoat, func(e estimate.YearEstimate) int { return e.Top3Gal }),
		layer("Rust Primer", d.Primers.Rust, func(e estimate.YearEstimate) int { return e.RustPrimerGal }),
		layer("Adhesion Primer", d.Primers.Adhesion, func(e estimate.YearEstimate) int { return e.AdhesionPrimerGal }),
	}
	for _, c := range candidates {
		if c != nil {
			rows = append(rows, *c)
		}
	}

	if d.Common.AccessoryQty > 0 {
		rows = append(rows, MaterialRow{
			Product:     "Accessories",
			Description: d.Common.AccessoryName,
			Cells:       d.sharedCells(fmt.Sprintf("%d %s", d.Common.AccessoryQty, d.Common.AccessoryUnit)),
		})
	}

	if d.Common.MembraneRolls > 0 {
		rows = append(rows, MaterialRow{
			Product:     membraneName,
			Description: membraneSize + " rolls",
			Cells:       d.sharedCells(fmt.Sprintf("%d rolls", d.Common.MembraneRolls)),
		})
	}

	if in.Goldseal {
		row := MaterialRow{Product: "Goldseal Warranty"}
		for _, y := range d.Years {
			row.Cells = append(row.Cells, FormatUSD(y.Estimate.GoldsealCost))
		}
		rows = append(rows, row)
	}

	return rows
}

// sharedCells puts a tier-independent quantity in the first column.
func (d Data) sharedCells(first string) []string {
	cells := make([]string, len(d.Years))
	if len(cells) > 0 {
		cells[0] = first
	}
	return cells
}
