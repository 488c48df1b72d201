// Package store persists buyer profiles and analysis records in sqlite.
// Payloads are stored as JSON blobs keyed by id; nothing here interprets
// them beyond the status column used for listing.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tmacher/homefit/internal/domain"
)

// Store wraps the sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS profiles (
  name TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS analyses (
  id TEXT PRIMARY KEY,
  address TEXT NOT NULL,
  status TEXT NOT NULL,
  payload TEXT NOT NULL,
  report TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_address ON analyses(address);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SaveProfile inserts or replaces a buyer profile under its name.
func (s *Store) SaveProfile(p *domain.BuyerProfile) error {
	if p == nil {
		return fmt.Errorf("profile is required")
	}
	name := p.Name
	if name == "" {
		name = "default"
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO profiles (name, payload, updated_at) VALUES (?, ?, ?)`,
		name, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save profile %q: %w", name, err)
	}
	return nil
}

// LoadProfile returns the profile stored under name, or nil when none is.
func (s *Store) LoadProfile(name string) (*domain.BuyerProfile, error) {
	if name == "" {
		name = "default"
	}

	var payload string
	err := s.db.QueryRow(`SELECT payload FROM profiles WHERE name = ?`, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", name, err)
	}

	var p domain.BuyerProfile
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile %q: %w", name, err)
	}
	return &p, nil
}

// SaveAnalysis inserts or replaces an analysis record. The optional report
// is the rendered presentation payload, stored alongside for display.
func (s *Store) SaveAnalysis(a *domain.Analysis, report any) error {
	if a == nil {
		return fmt.Errorf("analysis is required")
	}

	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	reportJSON := ""
	if report != nil {
		data, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		reportJSON = string(data)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO analyses (id, address, status, payload, report, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Address, string(a.Status), string(payload), reportJSON,
		a.CreatedAt.Format(time.RFC3339), a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save analysis %q: %w", a.ID, err)
	}
	return nil
}

// LoadAnalysis returns one analysis by id, or nil when it does not exist.
func (s *Store) LoadAnalysis(id string) (*domain.Analysis, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM analyses WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load analysis %q: %w", id, err)
	}

	var a domain.Analysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, fmt.Errorf("unmarshal analysis %q: %w", id, err)
	}
	return &a, nil
}

// AnalysisSummary is one row of the history listing.
type AnalysisSummary struct {
	ID        string
	Address   string
	Status    domain.AnalysisStatus
	CreatedAt string
}

// ListAnalyses returns stored analyses, newest first.
func (s *Store) ListAnalyses(limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, address, status, created_at FROM analyses ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var out []AnalysisSummary
	for rows.Next() {
		var row AnalysisSummary
		var status string
		if err := rows.Scan(&row.ID, &row.Address, &status, &row.CreatedAt); err != nil {
			return nil, err
		}
		row.Status = domain.AnalysisStatus(status)
		out = append(out, row)
	}
	return out, rows.Err()
}
