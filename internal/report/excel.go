package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Simplici0/coatquote/internal/estimate"
)

const (
	excelSheetName = "Estimate"
	usdNumFmt      = `"$"#,##0.00`
)

// GenerateExcel renders the materials table and per-tier totals as an
// .xlsx workbook.
func GenerateExcel(d Data) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), excelSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	sheet := excelSheetName

	lastColNum := 2 + len(d.Years)
	lastCol, err := excelize.ColumnNumberToName(lastColNum)
	if err != nil {
		return nil, fmt.Errorf("resolve last column: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 40); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}
	if lastColNum > 2 {
		if err := f.SetColWidth(sheet, "C", lastCol, 16); err != nil {
			return nil, fmt.Errorf("set year col widths: %w", err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	warningStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#B41E1E", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFF3CD"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create warning style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2980B9"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	currencyFmt := usdNumFmt
	currencyStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		CustomNumFmt: &currencyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create currency style: %w", err)
	}

	in := d.State.Inputs
	row := 1

	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", "ROOFING SYSTEM ESTIMATE")
	f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle)
	row++

	info := []string{}
	if in.ProjectName != "" {
		info = append(info, "Project: "+in.ProjectName)
	}
	if d.State.Date != "" {
		info = append(info, "Date: "+d.State.Date)
	}
	if c := d.State.CustomerInfo; c.Name != "" || c.Company != "" {
		info = append(info, "Customer: "+joinNonEmpty([]string{c.Name, c.Company}, ", "))
	}
	info = append(info,
		"System: "+d.SystemLabel(),
		fmt.Sprintf("Roof Size: %s sq ft (%s squares)", FormatRounded(in.RoofSizeSqFt), FormatNumber(d.Common.Squares)),
		fmt.Sprintf("Waste Factor: %s | Stretch Factor: %s", FormatPercent(in.WasteFactor), FormatPercent(in.StretchFactor)),
	)
	for _, line := range info {
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheet, cell, sanitizeExcelCell(line))
		f.SetCellStyle(sheet, cell, cell, subtitleStyle)
		row++
	}

	if d.Incomplete() {
		start, end := fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row)
		if err := f.MergeCell(sheet, start, end); err != nil {
			return nil, fmt.Errorf("merge warning: %w", err)
		}
		f.SetCellValue(sheet, start, "WARNING: INCOMPLETE QUOTE - "+incompleteMessage)
		f.SetCellStyle(sheet, start, end, warningStyle)
		row++
	}

	row++

	headers := []string{"Product", "Description"}
	for _, y := range d.Years {
		headers = append(headers, fmt.Sprintf("%d-Year", y.Year))
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), headerStyle)
	row++

	for _, r := range d.MaterialRows() {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Product)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sanitizeExcelCell(r.Description))
		for i, v := range r.Cells {
			cell, _ := excelize.CoordinatesToCellName(i+3, row)
			f.SetCellValue(sheet, cell, v)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), bodyStyle)
		row++
	}

	row++

	if len(d.Years) > 0 {
		gallons := make([]any, len(d.Years))
		for i, y := range d.Years {
			gallons[i] = y.Estimate.TotalGallons
		}
		setSummaryRow(f, sheet, row, "Total Gallons:", gallons, summaryLabelStyle, 0)
		row++

		if d.State.Prices.Any() {
			amounts := func(pick func(YearView) float64) []any {
				out := make([]any, len(d.Years))
				for i, y := range d.Years {
					out[i] = pick(y)
				}
				return out
			}

			setSummaryRow(f, sheet, row, "Materials Total:", amounts(func(y YearView) float64 { return y.Pricing.Totals.Materials }), summaryLabelStyle, currencyStyle)
			row++

			if d.Years[0].Pricing.HasMargin() {
				setSummaryRow(f, sheet, row, "Distributor Cost:", amounts(func(y YearView) float64 { return y.Pricing.Totals.Grand }), summaryLabelStyle, currencyStyle)
				row++
				label := fmt.Sprintf("Contractor Price (%s%% margin):", FormatNumber(d.State.ProfitMargin))
				setSummaryRow(f, sheet, row, label, amounts(func(y YearView) float64 { return y.Pricing.Totals.ContractorPrice }), summaryLabelStyle, currencyStyle)
				row++
				setSummaryRow(f, sheet, row, "Margin:", amounts(func(y YearView) float64 { return y.Pricing.Totals.Margin }), summaryLabelStyle, currencyStyle)
				row++
			} else {
				setSummaryRow(f, sheet, row, "Grand Total:", amounts(func(y YearView) float64 { return y.Pricing.Totals.Grand }), summaryLabelStyle, currencyStyle)
				row++
			}
		}
	}

	if d.Savings != nil {
		s := d.Savings
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "ENERGY SAVINGS ESTIMATE (OPTIONAL)")
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), summaryLabelStyle)
		row++

		lines := [][2]string{
			{"Annual Savings (range)", fmt.Sprintf("$%s - $%s/year", FormatRounded(s.AnnualSavingsLow), FormatRounded(s.AnnualSavingsHigh))},
			{"Energy Reduction", FormatRounded(s.AnnualKWh) + " kWh/year"},
			{"Peak Cooling Reduction", fmt.Sprintf("%.1f Tons of AC", s.TonsOfCooling)},
		}
		for _, year := range estimate.WarrantyYears {
			lines = append(lines, [2]string{fmt.Sprintf("%d-Year Savings", year), "$" + FormatRounded(s.Projected[year])})
		}
		lines = append(lines, [2]string{"Climate", fmt.Sprintf("%s (%s)", s.Climate.Name, s.Climate.Zone)})

		for _, l := range lines {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), l[0])
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), l[1])
			row++
		}
	}

	row++
	start, end := fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row)
	if err := f.MergeCell(sheet, start, end); err != nil {
		return nil, fmt.Errorf("merge disclaimer: %w", err)
	}
	f.SetCellValue(sheet, start, Disclaimer())

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

func setSummaryRow(f *excelize.File, sheet string, row int, label string, values []any, labelStyle, valueStyle int) {
	labelCell := fmt.Sprintf("B%d", row)
	f.SetCellValue(sheet, labelCell, label)
	f.SetCellStyle(sheet, labelCell, labelCell, labelStyle)

	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+3, row)
		f.SetCellValue(sheet, cell, v)
		if valueStyle != 0 {
			f.SetCellStyle(sheet, cell, cell, valueStyle)
		}
	}
}

// sanitizeExcelCell prefixes values Excel would evaluate as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}

func joinNonEmpty(parts []string, sep string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
