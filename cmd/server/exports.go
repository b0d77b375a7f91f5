package main

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/Simplici0/coatquote/internal/quote"
	"github.com/Simplici0/coatquote/internal/report"
	"github.com/Simplici0/coatquote/internal/savings"
)

const (
	contentTypePDF   = "application/pdf"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (s *server) handleClimate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, savings.States())
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	data, ok := s.buildReport(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *server) handleExportText(w http.ResponseWriter, r *http.Request) {
	data, ok := s.buildReport(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(report.RenderText(data)))
}

func (s *server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	data, ok := s.buildReport(w, r)
	if !ok {
		return
	}

	pdf, err := report.GeneratePDF(data)
	if err != nil {
		log.Printf("generate pdf: %v", err)
		http.Error(w, "failed to generate pdf", http.StatusInternalServerError)
		return
	}
	writeAttachment(w, contentTypePDF, report.PDFFileName(data.State.Inputs.ProjectName), pdf)
}

func (s *server) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	data, ok := s.buildReport(w, r)
	if !ok {
		return
	}

	xlsx, err := report.GenerateExcel(data)
	if err != nil {
		log.Printf("generate excel: %v", err)
		http.Error(w, "failed to generate spreadsheet", http.StatusInternalServerError)
		return
	}
	writeAttachment(w, contentTypeExcel, report.ExcelFileName(data.State.Inputs.ProjectName), xlsx)
}

func (s *server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	state := s.currentState()
	now := s.now()

	body, err := quote.Export(state, now)
	if err != nil {
		log.Printf("export quote: %v", err)
		http.Error(w, "failed to export quote", http.StatusInternalServerError)
		return
	}
	writeAttachment(w, "application/json", quote.ExportFileName(state.Inputs.ProjectName, now), body)
}

// buildReport computes the export data for the current state using the
// savings options in the query string.
func (s *server) buildReport(w http.ResponseWriter, r *http.Request) (report.Data, bool) {
	opts, err := s.exportOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return report.Data{}, false
	}
	return report.Build(s.currentState(), opts), true
}

// exportOptions reads savings=1, state=XX and rate=0.12. Missing values fall
// back to the configured climate state and electricity rate.
func (s *server) exportOptions(r *http.Request) (report.Options, error) {
	q := r.URL.Query()
	opts := report.Options{IncludeSavings: q.Get("savings") == "1"}
	if !opts.IncludeSavings {
		return opts, nil
	}

	code := q.Get("state")
	if code == "" {
		code = s.cfg.ClimateState
	}
	climate, ok := savings.Lookup(code)
	if !ok {
		return opts, fmt.Errorf("unknown climate state %q", code)
	}
	opts.Climate = climate

	opts.ElectricityRate = s.cfg.ElectricityRate
	if raw := q.Get("rate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return opts, fmt.Errorf("rate must be a non-negative number")
		}
		opts.ElectricityRate = rate
	}

	return opts, nil
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(body)
}
