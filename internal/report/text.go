package report

import (
	"fmt"
	"strings"

	"github.com/Simplici0/coatquote/internal/estimate"
	"github.com/Simplici0/coatquote/internal/savings"
)

const (
	disclaimerTitle = "*** IMPORTANT: ESTIMATE DISCLAIMER ***"
	disclaimerBody  = "THIS QUOTE IS PROVIDED AS A GUIDELINE AND ESTIMATE ONLY. ACTUAL MATERIAL QUANTITIES MAY VARY DEPENDING ON FACTORS INCLUDING BUT NOT LIMITED TO: APPLICATION RATES, TRUE MEASUREMENTS, AND WASTE FACTORS."
	disclaimerOwner = "THE END-USER IS SOLELY RESPONSIBLE FOR VERIFYING ALL MEASUREMENTS AND SITE CONDITIONS. FINAL APPROVAL OF QUANTITIES AND COSTS RESTS WITH THE PURCHASER."

	roundingNote      = "Note: Base, Topcoat, and Rust Primer round to 5-gal. Adhesion Primer rounds to 1-gal."
	incompleteTitle   = "*** WARNING: INCOMPLETE QUOTE ***"
	incompleteMessage = "Missing Linear Feet - required to calculate butter grade (seam sealant) quantity."

	savingsDisclaimer = "* Energy savings are estimates based on DOE/LBNL Cool Roof Calculator and ASHRAE 90.1 standards."
	savingsVariance   = "  Actual savings vary by building characteristics, HVAC efficiency, occupancy, and weather."
)

// Disclaimer is the legal text closing every export.
func Disclaimer() string {
	return disclaimerBody + " " + disclaimerOwner
}

// RenderText renders the plain-text quote summary used for e-mail.
func RenderText(d Data) string {
	in := d.State.Inputs
	prices := d.State.Prices
	var b strings.Builder

	projectName := in.ProjectName
	if projectName == "" {
		projectName = "Untitled"
	}
	fmt.Fprintf(&b, "PROJECT ESTIMATE: %s\n\n", projectName)
	fmt.Fprintf(&b, "System: %s\n", d.SystemLabel())
	fmt.Fprintf(&b, "Roof Size: %s sqft (%s Squares)\n", FormatNumber(in.RoofSizeSqFt), FormatNumber(d.Common.Squares))
	fmt.Fprintf(&b, "Calculation Factors: %s Waste, %s Stretch\n", FormatPercent(in.WasteFactor), FormatPercent(in.StretchFactor))
	b.WriteString(roundingNote + "\n")

	if in.LinearFeet > 0 || d.Common.ScrewBuckets > 0 {
		fmt.Fprintf(&b, "\nAccessories: %d %s of %s", d.Common.AccessoryQty, d.Common.AccessoryUnit, d.Common.AccessoryName)
		if prices.Accessory > 0 {
			fmt.Fprintf(&b, " @ %s each", FormatUSD(prices.Accessory))
		}
		if d.Common.ScrewBuckets > 0 {
			fmt.Fprintf(&b, " (Includes %d buckets for ~%s screws)", d.Common.ScrewBuckets, FormatInt(int64(d.Common.ScrewCount)))
		}
		b.WriteString("\n")
	}

	if in.CoatingSystem == estimate.Acrylic && d.Common.MembraneRolls > 0 {
		fmt.Fprintf(&b, "Reinforcement: %d Rolls of %s (%s)", d.Common.MembraneRolls, membraneName, membraneSize)
		if prices.Membrane > 0 {
			fmt.Fprintf(&b, " @ %s/roll", FormatUSD(prices.Membrane))
		}
		b.WriteString("\n")
	}

	if d.Incomplete() {
		b.WriteString("\n" + incompleteTitle + "\n")
		b.WriteString(incompleteMessage + "\n")
		if in.RoofType == estimate.Metal && d.Common.ScrewBuckets > 0 {
			fmt.Fprintf(&b, "(Note: Fastener encapsulation for ~%s screws IS included based on roof area.)\n", FormatInt(int64(d.Common.ScrewCount)))
		}
	}

	if !in.PassedAdhesion {
		fmt.Fprintf(&b, "\n** NOTE: Adhesion failure. Added %s (@ %s gal/sq).\n", d.Primers.Adhesion, FormatNumber(estimate.AdhesionPrimerRate))
	}
	if in.CoatingSystem == estimate.Silicone && in.RoofType == estimate.Metal && in.HasRust {
		fmt.Fprintf(&b, "** NOTE: Rust present. Added %s (@ %s gal/sq).\n", d.Primers.Rust, FormatNumber(estimate.RustPrimerRate))
	}

	for _, y := range d.Years {
		writeYearText(&b, d, y)
	}

	if d.Savings != nil {
		writeSavingsText(&b, *d.Savings)
	}

	b.WriteString("\n\n" + disclaimerTitle + "\n")
	b.WriteString(disclaimerBody + "\n\n")
	b.WriteString(disclaimerOwner)

	return b.String()
}

func writeYearText(b *strings.Builder, d Data, y YearView) {
	in := d.State.Inputs
	prices := d.State.Prices
	est := y.Estimate

	fmt.Fprintf(b, "\n\n--- %d-YEAR OPTION ---\n\n", y.Year)

	line := func(label string, gallons int, product string, rate, unitPrice, lineTotal float64) {
		if gallons <= 0 {
			return
		}
		fmt.Fprintf(b, "%s: %d gal (%s) @ %s gal/sq", label, gallons, product, FormatNumber(rate))
		if unitPrice > 0 {
			fmt.Fprintf(b, "\n  Unit Price: %s/gal | Line Total: %s", FormatUSD(unitPrice), FormatUSD(lineTotal))
		}
		b.WriteString("\n")
	}

	if in.CoatingSystem != estimate.Aluminum {
		line("Basecoat", est.BaseGal, in.SelectedBasecoat, est.Rates.Base, prices.Basecoat, y.Pricing.Breakdown.Basecoat)
	}
	line("Rust Primer", est.RustPrimerGal, d.Primers.Rust, estimate.RustPrimerRate, prices.RustPrimer, y.Pricing.Breakdown.RustPrimer)
	line("Adhesion Primer", est.AdhesionPrimerGal, d.Primers.Adhesion, estimate.AdhesionPrimerRate, prices.AdhesionPrimer, y.Pricing.Breakdown.AdhesionPrimer)
	line("Topcoat 1", est.Top1Gal, in.SelectedTopcoat, est.Rates.Top1, prices.Topcoat, y.Pricing.Breakdown.Topcoat1)
	line("Topcoat 2", est.Top2Gal, in.SelectedTopcoat, est.Rates.Top2, prices.Topcoat, y.Pricing.Breakdown.Topcoat2)
	line("Topcoat 3", est.Top3Gal, in.SelectedTopcoat, est.Rates.Top3, prices.Topcoat, y.Pricing.Breakdown.Topcoat3)

	fmt.Fprintf(b, "\nTOTAL SYSTEM: %d Gallons", est.TotalGallons)
	if prices.Coatings() {
		fmt.Fprintf(b, " = %s", FormatUSD(y.Pricing.Totals.Materials))
	}
	b.WriteString("\n")

	if est.GoldsealCost > 0 {
		fmt.Fprintf(b, "Goldseal Warranty: %s\n", FormatUSD(est.GoldsealCost))
	}

	if !prices.Any() {
		return
	}

	warrantyLabel := ""
	if in.Goldseal {
		warrantyLabel = " + Warranty"
	}
	totals := y.Pricing.Totals
	if y.Pricing.HasMargin() {
		fmt.Fprintf(b, "\nDISTRIBUTOR COST (Materials + Accessories%s): %s\n", warrantyLabel, FormatUSD(totals.Grand))
		fmt.Fprintf(b, "CONTRACTOR PRICE (%s%% margin): %s\n", FormatNumber(d.State.ProfitMargin), FormatUSD(totals.ContractorPrice))
		fmt.Fprintf(b, "MARGIN: %s\n", FormatUSD(totals.Margin))
		return
	}
	fmt.Fprintf(b, "\nGRAND TOTAL (Materials + Accessories%s): %s\n", warrantyLabel, FormatUSD(totals.Grand))
}

func writeSavingsText(b *strings.Builder, s savings.Result) {
	b.WriteString("\n\n=== ENERGY SAVINGS ESTIMATE (OPTIONAL) ===\n")
	b.WriteString("Converting to reflective white coating can reduce cooling costs:\n\n")

	b.WriteString("ESTIMATED ANNUAL SAVINGS:\n")
	fmt.Fprintf(b, "  Conservative Range: $%s - $%s/year\n", FormatRounded(s.AnnualSavingsLow), FormatRounded(s.AnnualSavingsHigh))
	fmt.Fprintf(b, "  Energy Reduction: %s kWh/year\n", FormatRounded(s.AnnualKWh))
	fmt.Fprintf(b, "  Peak Cooling Reduction: %.1f Tons of AC\n\n", s.TonsOfCooling)

	b.WriteString("LONG-TERM ROI (Warranty Periods):\n")
	for _, year := range estimate.WarrantyYears {
		fmt.Fprintf(b, "  %d-Year Savings: $%s\n", year, FormatRounded(s.Projected[year]))
	}
	b.WriteString("\n")

	b.WriteString("CALCULATION ASSUMPTIONS (Highly Conservative):\n")
	for _, line := range savingsAssumptions(s) {
		fmt.Fprintf(b, "  • %s\n", line)
	}
	b.WriteString("\n")
	b.WriteString(savingsDisclaimer + "\n")
	b.WriteString(savingsVariance + "\n")
}

// savingsAssumptions lists the inputs behind a savings estimate.
func savingsAssumptions(s savings.Result) []string {
	c := s.Climate
	return []string{
		fmt.Sprintf("Reflectivity Change: %s → %s (+%s)", s.BeforeRoof, s.AfterRoof, FormatPercent(s.DeltaReflectance)),
		fmt.Sprintf("%s Climate: %s Cooling Degree Days, %s kWh/m²/year solar radiation", c.Name, FormatInt(int64(c.CDD)), FormatRounded(c.SolarRadiation)),
		"HVAC Efficiency: SEER 13 (typical commercial)",
		fmt.Sprintf("Electricity Rate: $%s/kWh", FormatNumber(s.ElectricityRate)),
		fmt.Sprintf("Conservative Factors: Cooling season only (%s), building reality (40%%), heat transfer (35%%)", FormatPercent(c.CoolingSeasonFraction)),
		"Targets LOW END of industry range: $0.25-$0.75 per sq ft/year",
		"ROI includes 3% annual electricity rate increase",
	}
}
