package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var pragmas = []string{
	"foreign_keys = ON",
	"busy_timeout = 5000",
}

// Open opens the quote database at dbPath, creating its directory when
// needed. File databases run in WAL mode. In-memory databases are limited
// to one connection so every query sees the same data.
func Open(dbPath string) (*sql.DB, error) {
	memory := isMemory(dbPath)
	if !memory {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	set := pragmas
	if memory {
		db.SetMaxOpenConns(1)
	} else {
		set = append([]string{"journal_mode = WAL"}, pragmas...)
	}

	for _, p := range set {
		if _, err := db.Exec("PRAGMA " + p); err != nil {
			db.Close()
			return nil, fmt.Errorf("set sqlite pragma %q: %w", p, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return db, nil
}

func isMemory(dbPath string) bool {
	return dbPath == MemoryPath || strings.Contains(dbPath, "mode=memory")
}
