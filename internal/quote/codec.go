package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Simplici0/coatquote/internal/estimate"
	"github.com/Simplici0/coatquote/internal/pricing"
)

// ErrInvalidQuote is returned for any quote payload that cannot replace the
// current state.
var ErrInvalidQuote = errors.New("invalid quote")

// wireQuote mirrors Quote with pointers so absent sections can be told apart
// from zero values.
type wireQuote struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"`
	Inputs       *estimate.Input `json:"inputs"`
	Prices       *pricing.Prices `json:"prices"`
	ProfitMargin *float64        `json:"profitMargin"`
	CustomerInfo *CustomerInfo   `json:"customerInfo"`
	SavedAt      string          `json:"savedAt"`
	ExportedAt   string          `json:"exportedAt"`
}

// Export serializes the state as an indented quote file stamped with
// exportedAt.
func Export(s State, now time.Time) ([]byte, error) {
	q := fromState(s)
	q.ExportedAt = FormatTimestamp(now)

	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal quote: %w", err)
	}
	return data, nil
}

// ExportFileName names an exported quote file.
func ExportFileName(projectName string, now time.Time) string {
	name := strings.TrimSpace(projectName)
	if name == "" {
		name = "untitled"
	}
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == '"' || unicode.IsControl(r) {
			return '-'
		}
		return r
	}, name)
	return fmt.Sprintf("quote-%s-%s.json", name, FormatDate(now))
}

// Decode parses and validates a single quote object.
func Decode(data []byte) (Quote, error) {
	var w wireQuote
	if err := json.Unmarshal(data, &w); err != nil {
		return Quote{}, fmt.Errorf("%w: %v", ErrInvalidQuote, err)
	}
	if w.Inputs == nil {
		return Quote{}, fmt.Errorf("%w: missing inputs", ErrInvalidQuote)
	}

	var keys struct {
		Inputs map[string]json.RawMessage `json:"inputs"`
	}
	if err := json.Unmarshal(data, &keys); err != nil {
		return Quote{}, fmt.Errorf("%w: %v", ErrInvalidQuote, err)
	}

	q := Quote{
		ID:         w.ID,
		Date:       w.Date,
		Inputs:     normalizeInputs(*w.Inputs, keys.Inputs),
		SavedAt:    w.SavedAt,
		ExportedAt: w.ExportedAt,
	}
	if w.Prices != nil {
		q.Prices = *w.Prices
	}
	if w.ProfitMargin != nil {
		q.ProfitMargin = *w.ProfitMargin
	}
	if w.CustomerInfo != nil {
		q.CustomerInfo = *w.CustomerInfo
	}

	if err := Validate(q.State()); err != nil {
		return Quote{}, err
	}
	return q, nil
}

// Import replaces *s with the quote in data. On any error *s is left as it
// was. A quote without a date is dated now.
func Import(data []byte, s *State, now time.Time) error {
	q, err := Decode(data)
	if err != nil {
		return err
	}

	next := q.State()
	if next.Date == "" {
		next.Date = FormatDate(now)
	}
	*s = next
	return nil
}

// Validate checks that a state can be calculated and priced.
func Validate(s State) error {
	in := s.Inputs

	if !in.CoatingSystem.Valid() {
		return fmt.Errorf("%w: unknown coating system %q", ErrInvalidQuote, in.CoatingSystem)
	}
	if !in.AcrylicSystemType.Valid() {
		return fmt.Errorf("%w: unknown acrylic system type %q", ErrInvalidQuote, in.AcrylicSystemType)
	}
	if !in.RoofType.Valid() {
		return fmt.Errorf("%w: unknown roof type %q", ErrInvalidQuote, in.RoofType)
	}
	if !in.AccessoryType.Valid() {
		return fmt.Errorf("%w: unknown accessory type %q", ErrInvalidQuote, in.AccessoryType)
	}

	bounded := []struct {
		field string
		value float64
		max   float64
	}{
		{"roofSizeSqFt", in.RoofSizeSqFt, estimate.MaxRoofSizeSqFt},
		{"linearFeet", in.LinearFeet, estimate.MaxLinearFeet},
		{"wasteFactor", in.WasteFactor, estimate.MaxFactor},
		{"stretchFactor", in.StretchFactor, estimate.MaxFactor},
	}
	for _, f := range bounded {
		if f.value < 0 || f.value > f.max {
			return fmt.Errorf("%w: %s must be between 0 and %g", ErrInvalidQuote, f.field, f.max)
		}
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"prices.basecoat", s.Prices.Basecoat},
		{"prices.topcoat", s.Prices.Topcoat},
		{"prices.adhesionPrimer", s.Prices.AdhesionPrimer},
		{"prices.rustPrimer", s.Prices.RustPrimer},
		{"prices.accessory", s.Prices.Accessory},
		{"prices.membrane", s.Prices.Membrane},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0", ErrInvalidQuote, f.field)
		}
	}

	if s.ProfitMargin < 0 || s.ProfitMargin >= 100 {
		return fmt.Errorf("%w: profitMargin must be between 0 and 100", ErrInvalidQuote)
	}
	return nil
}

// normalizeInputs fills fields older quote files may lack. present holds
// the keys found in the file's inputs object; product selections written
// out blank stay blank.
func normalizeInputs(in estimate.Input, present map[string]json.RawMessage) estimate.Input {
	if in.AcrylicSystemType == "" {
		in.AcrylicSystemType = estimate.Standard
	}
	if in.AccessoryType == "" {
		in.AccessoryType = estimate.ButterGrade
	}
	if !in.CoatingSystem.Valid() {
		return in
	}

	defaults := estimate.WithProductDefaults(in)
	fill := func(key string, field *string, value string) {
		if _, ok := present[key]; !ok && *field == "" {
			*field = value
		}
	}
	fill("selectedTopcoat", &in.SelectedTopcoat, defaults.SelectedTopcoat)
	fill("selectedBasecoat", &in.SelectedBasecoat, defaults.SelectedBasecoat)
	fill("selectedButterGrade", &in.SelectedButterGrade, defaults.SelectedButterGrade)
	fill("selectedFabric", &in.SelectedFabric, defaults.SelectedFabric)
	return in
}
