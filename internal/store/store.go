package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Simplici0/coatquote/internal/quote"
)

// SavedQuotesKey is the kv_store key holding the saved-quote list.
const SavedQuotesKey = "savedQuotes"

// ErrNotFound is returned when no saved quote has the requested id.
var ErrNotFound = errors.New("quote not found")

// Store keeps the saved-quote list as one JSON document, newest first.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New returns a Store backed by a migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// List returns every saved quote, newest first.
func (s *Store) List() ([]quote.Quote, error) {
	return readQuotes(s.db)
}

// Get returns the saved quote with the given id.
func (s *Store) Get(id int64) (quote.Quote, error) {
	quotes, err := readQuotes(s.db)
	if err != nil {
		return quote.Quote{}, err
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return quote.Quote{}, ErrNotFound
}

// Save snapshots the state and prepends it to the list. Ids are Unix
// milliseconds, bumped when two saves land in the same millisecond.
func (s *Store) Save(state quote.State) (quote.Quote, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return quote.Quote{}, fmt.Errorf("begin save transaction: %w", err)
	}

	q, err := s.SaveTx(tx, state)
	if err != nil {
		_ = tx.Rollback()
		return quote.Quote{}, err
	}

	if err := tx.Commit(); err != nil {
		return quote.Quote{}, fmt.Errorf("commit save transaction: %w", err)
	}
	return q, nil
}

// SaveTx is Save inside a transaction owned by the caller.
func (s *Store) SaveTx(tx *sql.Tx, state quote.State) (quote.Quote, error) {
	quotes, err := readQuotes(tx)
	if err != nil {
		return quote.Quote{}, err
	}

	q := quote.Snapshot(state, s.now())
	for _, existing := range quotes {
		if existing.ID >= q.ID {
			q.ID = existing.ID + 1
		}
	}

	if err := writeQuotes(tx, append([]quote.Quote{q}, quotes...)); err != nil {
		return quote.Quote{}, err
	}
	return q, nil
}

// Delete removes the saved quote with the given id.
func (s *Store) Delete(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}

	quotes, err := readQuotes(tx)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	kept := quotes[:0]
	for _, q := range quotes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(quotes) {
		_ = tx.Rollback()
		return ErrNotFound
	}

	if err := writeQuotes(tx, kept); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete transaction: %w", err)
	}
	return nil
}

type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
}

func readQuotes(q queryer) ([]quote.Quote, error) {
	var raw string
	err := q.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, SavedQuotesKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []quote.Quote{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query saved quotes: %w", err)
	}

	quotes := []quote.Quote{}
	if err := json.Unmarshal([]byte(raw), &quotes); err != nil {
		return nil, fmt.Errorf("decode saved quotes: %w", err)
	}
	return quotes, nil
}

func writeQuotes(tx *sql.Tx, quotes []quote.Quote) error {
	data, err := json.Marshal(quotes)
	if err != nil {
		return fmt.Errorf("encode saved quotes: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, SavedQuotesKey, string(data), quote.FormatTimestamp(time.Now())); err != nil {
		return fmt.Errorf("write saved quotes: %w", err)
	}
	return nil
}
