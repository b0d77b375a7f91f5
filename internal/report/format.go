package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatUSD renders an amount as US dollars with thousands separators and
// two decimals.
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount)
}

// FormatInt renders a whole number with thousands separators.
func FormatInt(v int64) string {
	return humanize.Comma(v)
}

// FormatRounded rounds to the nearest whole number before grouping.
func FormatRounded(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// FormatNumber renders a float with as few digits as needed, e.g. 1.25 or 2.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent renders a fraction as a whole percentage, e.g. 0.1 -> "10%".
func FormatPercent(fraction float64) string {
	return strconv.Itoa(int(math.Round(fraction*100))) + "%"
}

// PDFFileName names the PDF export after the project, replacing anything
// other than ASCII letters and digits with underscores.
func PDFFileName(projectName string) string {
	if projectName == "" {
		return "Roofing_Estimate.pdf"
	}
	safe := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, projectName)
	return safe + "_Estimate.pdf"
}

// ExcelFileName names the spreadsheet export the same way as the PDF.
func ExcelFileName(projectName string) string {
	return strings.TrimSuffix(PDFFileName(projectName), ".pdf") + ".xlsx"
}
