package seed

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Simplici0/coatquote/internal/db"
	"github.com/Simplici0/coatquote/internal/migrations"
	"github.com/Simplici0/coatquote/internal/quote"
	"github.com/Simplici0/coatquote/internal/store"
)

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	quotes := store.New(database)
	now := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		stats, err := Run(database, quotes, now)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 && stats.Inserts != 2 {
			t.Fatalf("expected 2 inserts in first run, got %d", stats.Inserts)
		}
		if i > 0 && stats.Inserts != 0 {
			t.Fatalf("expected no inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	list, err := quotes.List()
	if err != nil {
		t.Fatalf("list quotes: %v", err)
	}
	if len(list) != 1 || list[0].Inputs.ProjectName != "Sample Warehouse" {
		t.Fatalf("unexpected saved quotes: %+v", list)
	}

	if err := quotes.Delete(list[0].ID); err != nil {
		t.Fatalf("delete sample: %v", err)
	}
	if _, err := Run(database, quotes, now); err != nil {
		t.Fatalf("rerun seed: %v", err)
	}
	if list, _ := quotes.List(); len(list) != 0 {
		t.Fatalf("deleted sample was seeded again: %+v", list)
	}
}

func TestSampleStateIsValid(t *testing.T) {
	s := SampleState(time.Now())
	if err := quote.Validate(s); err != nil {
		t.Fatalf("sample state invalid: %v", err)
	}
	if s.Inputs.SelectedTopcoat == "" {
		t.Fatalf("sample state has no topcoat")
	}
}

func TestRunRollsBackOnFailure(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed-rollback.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if _, err := database.Exec(`INSERT INTO kv_store (key, value) VALUES (?, ?)`, store.SavedQuotesKey, "not json"); err != nil {
		t.Fatalf("write corrupt quote list: %v", err)
	}

	quotes := store.New(database)
	if _, err := Run(database, quotes, time.Now()); err == nil {
		t.Fatalf("expected seed to fail on a corrupt quote list")
	}

	var markers int
	if err := database.QueryRow(`SELECT COUNT(*) FROM kv_store WHERE key = ?`, markerKey).Scan(&markers); err != nil {
		t.Fatalf("count markers: %v", err)
	}
	if markers != 0 {
		t.Fatalf("marker written although the sample quote was not saved")
	}
}
