package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Simplici0/coatquote/internal/db"
	"github.com/Simplici0/coatquote/internal/migrations"
	"github.com/Simplici0/coatquote/internal/quote"
)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()

	database, err := db.Open(db.MemoryPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := migrations.Up(database); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	s := New(database)
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	return s, database
}

func namedState(name string) quote.State {
	s := quote.NewState(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	s.Inputs.ProjectName = name
	s.Inputs.RoofSizeSqFt = 8000
	return s
}

func TestList_EmptyWhenNothingSaved(t *testing.T) {
	s, _ := newTestStore(t)

	quotes, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if quotes == nil || len(quotes) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", quotes)
	}
}

func TestSave_PrependsWithUniqueIDs(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.Save(namedState("first"))
	if err != nil {
		t.Fatalf("Save(first) error = %v", err)
	}
	second, err := s.Save(namedState("second"))
	if err != nil {
		t.Fatalf("Save(second) error = %v", err)
	}

	if first.ID != s.now().UnixMilli() {
		t.Fatalf("first id = %d, want clock millis", first.ID)
	}
	if second.ID != first.ID+1 {
		t.Fatalf("second id = %d, want %d", second.ID, first.ID+1)
	}
	if first.SavedAt != "2024-03-01T09:00:00.000Z" {
		t.Fatalf("savedAt = %q", first.SavedAt)
	}

	quotes, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(quotes) != 2 || quotes[0].Inputs.ProjectName != "second" || quotes[1].Inputs.ProjectName != "first" {
		t.Fatalf("unexpected order: %+v", quotes)
	}
}

func TestGet_ReturnsSavedState(t *testing.T) {
	s, _ := newTestStore(t)

	want := namedState("depot")
	want.ProfitMargin = 15
	want.CustomerInfo.Company = "Acme"
	saved, err := s.Save(want)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Get(saved.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.State() != want {
		t.Fatalf("state mismatch:\n got %+v\nwant %+v", got.State(), want)
	}

	if _, err := s.Get(saved.ID + 100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore(t)

	a, _ := s.Save(namedState("a"))
	b, _ := s.Save(namedState("b"))

	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete() error = %v, want ErrNotFound", err)
	}

	quotes, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(quotes) != 1 || quotes[0].ID != b.ID {
		t.Fatalf("unexpected quotes after delete: %+v", quotes)
	}
}

func TestList_CorruptDocument(t *testing.T) {
	s, database := newTestStore(t)

	if _, err := database.Exec(`INSERT INTO kv_store (key, value) VALUES (?, ?)`, SavedQuotesKey, "{not json"); err != nil {
		t.Fatalf("seed corrupt value: %v", err)
	}

	if _, err := s.List(); err == nil {
		t.Fatalf("expected error for corrupt saved quotes")
	}
	if _, err := s.Save(namedState("x")); err == nil {
		t.Fatalf("expected Save to refuse overwriting a corrupt list")
	}
}
