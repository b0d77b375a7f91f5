package seed

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Simplici0/coatquote/internal/estimate"
	"github.com/Simplici0/coatquote/internal/pricing"
	"github.com/Simplici0/coatquote/internal/quote"
	"github.com/Simplici0/coatquote/internal/store"
)

// markerKey records in kv_store that the sample quote was seeded, so a user
// who deletes it does not get it back on the next start.
const markerKey = "seed.sampleQuote"

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// SampleState is the demo quote offered on a fresh development database.
func SampleState(now time.Time) quote.State {
	s := quote.NewState(now)
	s.Inputs.ProjectName = "Sample Warehouse"
	s.Inputs.RoofSizeSqFt = 25000
	s.Inputs.LinearFeet = 1200
	s.Inputs.WasteFactor = 0.05
	s.Inputs = estimate.SetRoofType(s.Inputs, estimate.Metal)
	s.Prices = pricing.Prices{
		Basecoat:  28,
		Topcoat:   42,
		Accessory: 65,
	}
	s.ProfitMargin = 25
	s.CustomerInfo = quote.CustomerInfo{
		Name:    "Jordan Smith",
		Company: "Smith Roofing",
	}
	return s
}

// Run saves the sample quote once per database. The quote and the marker
// row are written in one transaction; later runs are no-ops.
func Run(db *sql.DB, quotes *store.Store, now time.Time) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureSampleQuote(tx, quotes, now, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureSampleQuote(tx *sql.Tx, quotes *store.Store, now time.Time, stats *Stats) error {
	result, err := tx.Exec(`INSERT OR IGNORE INTO kv_store (key, value) VALUES (?, ?)`, markerKey, quote.FormatTimestamp(now))
	if err != nil {
		return fmt.Errorf("write seed marker: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read seed marker result: %w", err)
	}
	if affected == 0 {
		return nil
	}
	stats.Inserts++

	if _, err := quotes.SaveTx(tx, SampleState(now)); err != nil {
		return fmt.Errorf("save sample quote: %w", err)
	}
	stats.Inserts++

	return nil
}
