package report

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/Simplici0/coatquote/internal/estimate"
)

var (
	mutedColor   = &props.Color{Red: 100, Green: 100, Blue: 100}
	warningColor = &props.Color{Red: 180, Green: 30, Blue: 30}
	headerBg     = &props.Color{Red: 41, Green: 128, Blue: 185}
	altRowBg     = &props.Color{Red: 245, Green: 247, Blue: 250}
	warningBg    = &props.Color{Red: 255, Green: 243, Blue: 205}
)

// pdfArrows covers symbols with a readable ASCII form that the core font
// encoding lacks.
var pdfArrows = strings.NewReplacer("→", "->", "←", "<-")

// pdfText folds text into Windows-1252, the encoding of the core PDF fonts.
// Accented letters outside it lose their accent; anything else becomes '?'.
func pdfText(s string) string {
	s = pdfArrows.Replace(s)

	var b strings.Builder
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteRune(r)
			continue
		}

		folded := false
		for _, d := range norm.NFKD.String(string(r)) {
			if unicode.Is(unicode.Mn, d) {
				continue
			}
			if _, ok := charmap.Windows1252.EncodeRune(d); ok {
				b.WriteRune(d)
				folded = true
			}
		}
		if !folded {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// GeneratePDF renders the estimate as a paginated PDF document.
func GeneratePDF(d Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, d)
	addPDFCustomer(m, d)
	addPDFSpecifications(m, d)
	addPDFIncompleteWarning(m, d)
	addPDFMaterialsTable(m, d)
	addPDFPricingSummary(m, d)
	addPDFSavings(m, d)
	addPDFDisclaimer(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate estimate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func sectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New(pdfText(title), props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Left,
				Top:   2,
			})),
		),
	)
}

func textLine(m core.Maroto, value string, size float64) {
	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(text.New(pdfText(value), props.Text{Size: size, Align: align.Left})),
		),
	)
}

func addPDFHeader(m core.Maroto, d Data) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(text.New(pdfText("ROOFING SYSTEM ESTIMATE"), props.Text{
				Size:  18,
				Style: fontstyle.Bold,
				Align: align.Center,
			})),
		),
	)

	if d.State.Inputs.ProjectName != "" {
		textLine(m, "Project: "+d.State.Inputs.ProjectName, 10)
	}
	if d.State.Date != "" {
		textLine(m, "Date: "+d.State.Date, 10)
	}
	m.AddRows(row.New(3))
}

func addPDFCustomer(m core.Maroto, d Data) {
	c := d.State.CustomerInfo
	fields := []struct {
		label string
		value string
	}{
		{"Name", c.Name},
		{"Company", c.Company},
		{"Address", c.Address},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Project Address", c.ProjectAddress},
	}

	var lines []string
	for _, f := range fields {
		if f.value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", f.label, f.value))
		}
	}
	if len(lines) == 0 {
		return
	}

	sectionTitle(m, "CUSTOMER INFORMATION")
	for _, l := range lines {
		textLine(m, l, 10)
	}
	m.AddRows(row.New(3))
}

func addPDFSpecifications(m core.Maroto, d Data) {
	in := d.State.Inputs

	sectionTitle(m, "SYSTEM SPECIFICATIONS")
	system := string(in.CoatingSystem)
	if in.CoatingSystem == estimate.Acrylic {
		system += fmt.Sprintf(" (%s)", in.AcrylicSystemType)
	}
	textLine(m, "Coating System: "+system, 10)
	textLine(m, "Roof Type: "+string(in.RoofType), 10)
	textLine(m, fmt.Sprintf("Roof Size: %s sq ft (%s squares)", FormatRounded(in.RoofSizeSqFt), FormatNumber(d.Common.Squares)), 10)
	if in.LinearFeet > 0 {
		textLine(m, "Linear Feet: "+FormatNumber(in.LinearFeet), 10)
	}
	textLine(m, fmt.Sprintf("Waste Factor: %s | Stretch Factor: %s", FormatPercent(in.WasteFactor), FormatPercent(in.StretchFactor)), 10)
	m.AddRows(row.New(3))
}

func addPDFIncompleteWarning(m core.Maroto, d Data) {
	if !d.Incomplete() {
		return
	}

	cell := &props.Cell{BackgroundColor: warningBg}
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New(pdfText("WARNING: INCOMPLETE QUOTE"), props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Color: warningColor,
				Left:  2,
				Top:   2,
			})).WithStyle(cell),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(pdfText(incompleteMessage), props.Text{Size: 9, Left: 2})).WithStyle(cell),
		),
	)
	if d.State.Inputs.RoofType == estimate.Metal && d.Common.ScrewBuckets > 0 {
		note := fmt.Sprintf("(Note: Fastener encapsulation for ~%s screws IS included based on roof area.)", FormatInt(int64(d.Common.ScrewCount)))
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(pdfText(note), props.Text{Size: 8, Left: 2, Color: mutedColor})).WithStyle(cell),
			),
		)
	}
	m.AddRows(row.New(4))
}

// tableWidths splits the 12-column grid between product, description and
// one column per warranty tier.
func tableWidths(years int) (product, description, year int) {
	switch years {
	case 1:
		return 3, 6, 3
	case 2:
		return 3, 5, 2
	default:
		return 3, 3, 2
	}
}

func addPDFMaterialsTable(m core.Maroto, d Data) {
	sectionTitle(m, "MATERIALS")

	if len(d.Years) == 0 {
		textLine(m, "No warranty options are offered for this coating system and roof type.", 10)
		m.AddRows(row.New(3))
		return
	}

	productW, descW, yearW := tableWidths(len(d.Years))
	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
		Top:   1.5,
	}
	headerLeft := headerText
	headerLeft.Align = align.Left
	headerLeft.Left = 1
	headerCell := &props.Cell{BackgroundColor: headerBg}

	header := []core.Col{
		col.New(productW).Add(text.New(pdfText("Product"), headerLeft)).WithStyle(headerCell),
		col.New(descW).Add(text.New(pdfText("Description"), headerLeft)).WithStyle(headerCell),
	}
	for _, y := range d.Years {
		header = append(header, col.New(yearW).Add(text.New(pdfText(fmt.Sprintf("%d-Year", y.Year)), headerText)).WithStyle(headerCell))
	}
	m.AddRows(row.New(7).Add(header...))

	bodyLeft := props.Text{Size: 8, Align: align.Left, Left: 1, Top: 1.5}
	bodyCenter := props.Text{Size: 8, Align: align.Center, Top: 1.5}

	for i, r := range d.MaterialRows() {
		var cell *props.Cell
		if i%2 == 1 {
			cell = &props.Cell{BackgroundColor: altRowBg}
		}

		cols := []core.Col{
			col.New(productW).Add(text.New(pdfText(r.Product), bodyLeft)),
			col.New(descW).Add(text.New(pdfText(r.Description), bodyLeft)),
		}
		for _, c := range r.Cells {
			cols = append(cols, col.New(yearW).Add(text.New(pdfText(c), bodyCenter)))
		}
		if cell != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cell)
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}
	m.AddRows(row.New(4))
}

func addPDFPricingSummary(m core.Maroto, d Data) {
	prices := d.State.Prices
	if !prices.Any() || len(d.Years) == 0 {
		return
	}

	sectionTitle(m, "PRICING SUMMARY")
	in := d.State.Inputs
	bold := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}

	for _, y := range d.Years {
		est := y.Estimate
		b := y.Pricing.Breakdown

		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(pdfText(fmt.Sprintf("%d-Year Option:", y.Year)), bold))))

		gal := func(label string, gallons int, unit, total float64) {
			if gallons > 0 && unit > 0 {
				textLine(m, fmt.Sprintf("  %s: %d gal x %s/gal = %s", label, gallons, FormatUSD(unit), FormatUSD(total)), 9)
			}
		}
		if in.CoatingSystem != estimate.Aluminum {
			gal("Basecoat", est.BaseGal, prices.Basecoat, b.Basecoat)
		}
		gal("Topcoat 1", est.Top1Gal, prices.Topcoat, b.Topcoat1)
		gal("Topcoat 2", est.Top2Gal, prices.Topcoat, b.Topcoat2)
		gal("Topcoat 3", est.Top3Gal, prices.Topcoat, b.Topcoat3)
		gal("Rust Primer", est.RustPrimerGal, prices.RustPrimer, b.RustPrimer)
		gal("Adhesion Primer", est.AdhesionPrimerGal, prices.AdhesionPrimer, b.AdhesionPrimer)

		if d.Common.AccessoryQty > 0 && prices.Accessory > 0 {
			textLine(m, fmt.Sprintf("  Accessories: %d %s x %s = %s", d.Common.AccessoryQty, d.Common.AccessoryUnit, FormatUSD(prices.Accessory), FormatUSD(b.Accessory)), 9)
		}
		if d.Common.MembraneRolls > 0 && prices.Membrane > 0 {
			textLine(m, fmt.Sprintf("  Membrane: %d rolls x %s = %s", d.Common.MembraneRolls, FormatUSD(prices.Membrane), FormatUSD(b.Membrane)), 9)
		}
		if est.GoldsealCost > 0 {
			textLine(m, "  Goldseal Warranty: "+FormatUSD(est.GoldsealCost), 9)
		}

		totals := y.Pricing.Totals
		if y.Pricing.HasMargin() {
			m.AddRows(
				row.New(5).Add(col.New(12).Add(text.New(pdfText("  Distributor Cost: "+FormatUSD(totals.Grand)), bold))),
				row.New(5).Add(col.New(12).Add(text.New(pdfText(fmt.Sprintf("  Contractor Price (%s%% margin): %s", FormatNumber(d.State.ProfitMargin), FormatUSD(totals.ContractorPrice))), bold))),
				row.New(5).Add(col.New(12).Add(text.New(pdfText("  Margin: "+FormatUSD(totals.Margin)), bold))),
			)
		} else {
			m.AddRows(row.New(5).Add(col.New(12).Add(text.New(pdfText("  Grand Total: "+FormatUSD(totals.Grand)), bold))))
		}
		m.AddRows(row.New(3))
	}
}

func addPDFSavings(m core.Maroto, d Data) {
	if d.Savings == nil {
		return
	}
	s := *d.Savings
	bold := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}

	sectionTitle(m, "ENERGY SAVINGS ESTIMATE (OPTIONAL)")
	textLine(m, "Converting to reflective white coating can reduce cooling costs:", 9)
	m.AddRows(row.New(2))

	m.AddRows(row.New(5).Add(col.New(12).Add(text.New(pdfText("Estimated Annual Savings:"), bold))))
	textLine(m, fmt.Sprintf("  Conservative Range: $%s - $%s/year", FormatRounded(s.AnnualSavingsLow), FormatRounded(s.AnnualSavingsHigh)), 9)
	textLine(m, fmt.Sprintf("  Energy Reduction: %s kWh/year", FormatRounded(s.AnnualKWh)), 9)
	textLine(m, fmt.Sprintf("  Peak Cooling Reduction: %.1f Tons of AC", s.TonsOfCooling), 9)
	m.AddRows(row.New(2))

	m.AddRows(row.New(5).Add(col.New(12).Add(text.New(pdfText("Long-Term ROI (Warranty Periods):"), bold))))
	for _, year := range estimate.WarrantyYears {
		textLine(m, fmt.Sprintf("  %d-Year Savings: $%s", year, FormatRounded(s.Projected[year])), 9)
	}
	m.AddRows(row.New(2))

	m.AddRows(row.New(5).Add(col.New(12).Add(text.New(pdfText("Calculation Assumptions (Highly Conservative):"), bold))))
	for _, line := range savingsAssumptions(s) {
		textLine(m, "- "+line, 8)
	}

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(text.New(pdfText(savingsDisclaimer+" "+savingsVariance[2:]), props.Text{
				Size:  7,
				Style: fontstyle.Italic,
				Align: align.Left,
				Top:   2,
				Color: mutedColor,
			})),
		),
	)
}

func addPDFDisclaimer(m core.Maroto) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New(pdfText("IMPORTANT DISCLAIMER:"), props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Align: align.Left,
				Top:   3,
			})),
		),
		row.New(16).Add(
			col.New(12).Add(text.New(pdfText(Disclaimer()), props.Text{
				Size:  8,
				Align: align.Left,
			})),
		),
	)
}
