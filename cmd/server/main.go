package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/coatquote/internal/config"
	"github.com/Simplici0/coatquote/internal/db"
	"github.com/Simplici0/coatquote/internal/estimate"
	"github.com/Simplici0/coatquote/internal/migrations"
	"github.com/Simplici0/coatquote/internal/quote"
	"github.com/Simplici0/coatquote/internal/seed"
	"github.com/Simplici0/coatquote/internal/store"
)

const maxBodyBytes = 1 << 20

type server struct {
	cfg    config.Config
	quotes *store.Store
	now    func() time.Time

	mu    sync.Mutex
	state quote.State
}

type valueRequest struct {
	Value string `json:"value"`
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	srv := newServer(cfg, database)
	if cfg.IsDev() {
		stats, err := seed.Run(database, srv.quotes, time.Now())
		if err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
		if stats.Inserts > 0 {
			log.Printf("seeded sample quote (%d inserts)", stats.Inserts)
		}
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newServer(cfg config.Config, database *sql.DB) *server {
	now := time.Now
	return &server{
		cfg:    cfg,
		quotes: store.New(database),
		now:    now,
		state:  quote.NewState(now()),
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	if s.cfg.IsDev() {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog/{system}", s.handleCatalog)
		r.Get("/climate", s.handleClimate)

		r.Get("/state", s.handleGetState)
		r.Put("/state", s.handleReplaceState)
		r.Post("/state/reset", s.handleResetState)
		r.Post("/state/import", s.handleReplaceState)
		r.Post("/state/coating-system", s.handleSetCoatingSystem)
		r.Post("/state/acrylic-system-type", s.handleSetAcrylicSystemType)
		r.Post("/state/roof-type", s.handleSetRoofType)

		r.Get("/estimate", s.handleEstimate)
		r.Get("/export/text", s.handleExportText)
		r.Get("/export/pdf", s.handleExportPDF)
		r.Get("/export/xlsx", s.handleExportExcel)
		r.Get("/export/json", s.handleExportJSON)

		r.Get("/quotes", s.handleQuotesList)
		r.Post("/quotes", s.handleQuotesSave)
		r.Post("/quotes/{id}/load", s.handleQuotesLoad)
		r.Delete("/quotes/{id}", s.handleQuotesDelete)
	})

	return r
}

func (s *server) currentState() quote.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// updateState applies fn to the current state and returns the result.
func (s *server) updateState(fn func(quote.State) quote.State) quote.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	return s.state
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	system := estimate.CoatingSystem(chi.URLParam(r, "system"))
	if !system.Valid() {
		http.Error(w, "unknown coating system", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, estimate.ListProducts(system))
}

func (s *server) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.currentState())
}

// handleReplaceState swaps the current state for the quote in the request
// body. A malformed quote is rejected and the current state is kept.
func (s *server) handleReplaceState(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	var next quote.State
	if err := quote.Import(body, &next, s.now()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := s.updateState(func(quote.State) quote.State { return next })
	writeJSON(w, http.StatusOK, state)
}

func (s *server) handleResetState(w http.ResponseWriter, r *http.Request) {
	state := s.updateState(func(quote.State) quote.State { return quote.NewState(s.now()) })
	writeJSON(w, http.StatusOK, state)
}

func (s *server) handleSetCoatingSystem(w http.ResponseWriter, r *http.Request) {
	value, ok := readValue(w, r)
	if !ok {
		return
	}
	system := estimate.CoatingSystem(value)
	if !system.Valid() {
		http.Error(w, fmt.Sprintf("unknown coating system %q", value), http.StatusBadRequest)
		return
	}

	state := s.updateState(func(st quote.State) quote.State {
		st.Inputs = estimate.SetCoatingSystem(st.Inputs, system)
		return st
	})
	writeJSON(w, http.StatusOK, state)
}

func (s *server) handleSetAcrylicSystemType(w http.ResponseWriter, r *http.Request) {
	value, ok := readValue(w, r)
	if !ok {
		return
	}
	systemType := estimate.AcrylicSystemType(value)
	if !systemType.Valid() {
		http.Error(w, fmt.Sprintf("unknown acrylic system type %q", value), http.StatusBadRequest)
		return
	}

	state := s.updateState(func(st quote.State) quote.State {
		st.Inputs = estimate.SetAcrylicSystemType(st.Inputs, systemType)
		return st
	})
	writeJSON(w, http.StatusOK, state)
}

func (s *server) handleSetRoofType(w http.ResponseWriter, r *http.Request) {
	value, ok := readValue(w, r)
	if !ok {
		return
	}
	roof := estimate.RoofType(value)
	if !roof.Valid() {
		http.Error(w, fmt.Sprintf("unknown roof type %q", value), http.StatusBadRequest)
		return
	}

	state := s.updateState(func(st quote.State) quote.State {
		st.Inputs = estimate.SetRoofType(st.Inputs, roof)
		return st
	})
	writeJSON(w, http.StatusOK, state)
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.quotes.List()
	if err != nil {
		log.Printf("list quotes: %v", err)
		http.Error(w, "failed to load saved quotes", http.StatusInternalServerError)
		return
	}
	if quotes == nil {
		quotes = []quote.Quote{}
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (s *server) handleQuotesSave(w http.ResponseWriter, r *http.Request) {
	saved, err := s.quotes.Save(s.currentState())
	if err != nil {
		log.Printf("save quote: %v", err)
		http.Error(w, "failed to save quote", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *server) handleQuotesLoad(w http.ResponseWriter, r *http.Request) {
	id, ok := parseQuoteID(w, r)
	if !ok {
		return
	}

	saved, err := s.quotes.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("load quote %d: %v", id, err)
		http.Error(w, "failed to load quote", http.StatusInternalServerError)
		return
	}

	state := s.updateState(func(quote.State) quote.State { return saved.State() })
	writeJSON(w, http.StatusOK, state)
}

func (s *server) handleQuotesDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseQuoteID(w, r)
	if !ok {
		return
	}

	err := s.quotes.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("delete quote %d: %v", id, err)
		http.Error(w, "failed to delete quote", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseQuoteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid quote id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func readValue(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req valueRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return "", false
	}
	return req.Value, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json response: %v", err)
	}
}
