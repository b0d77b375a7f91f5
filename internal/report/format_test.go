package report

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-45, "-$45.00"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Fatalf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumbers(t *testing.T) {
	if got := FormatNumber(1.25); got != "1.25" {
		t.Fatalf("FormatNumber(1.25) = %q", got)
	}
	if got := FormatNumber(100); got != "100" {
		t.Fatalf("FormatNumber(100) = %q", got)
	}
	if got := FormatPercent(0.1); got != "10%" {
		t.Fatalf("FormatPercent(0.1) = %q", got)
	}
	if got := FormatRounded(39760.37); got != "39,760" {
		t.Fatalf("FormatRounded(39760.37) = %q", got)
	}
	if got := FormatInt(4000); got != "4,000" {
		t.Fatalf("FormatInt(4000) = %q", got)
	}
}

func TestExportFileNames(t *testing.T) {
	if got := PDFFileName(""); got != "Roofing_Estimate.pdf" {
		t.Fatalf("PDFFileName(empty) = %q", got)
	}
	if got := PDFFileName("Plant #4 / East"); got != "Plant__4___East_Estimate.pdf" {
		t.Fatalf("PDFFileName() = %q", got)
	}
	if got := ExcelFileName("Warehouse"); got != "Warehouse_Estimate.xlsx" {
		t.Fatalf("ExcelFileName() = %q", got)
	}
}
