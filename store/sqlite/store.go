// Package sqlite provides a durable store backend on a single SQLite file.
//
// All four logical keys live in one documents table; every write replaces
// the full value for its key, matching the store contract.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // cgo-free sqlite driver

	"github.com/xraph/facturo"
	"github.com/xraph/facturo/client"
	"github.com/xraph/facturo/company"
	"github.com/xraph/facturo/invoice"
	"github.com/xraph/facturo/store"
	"github.com/xraph/facturo/unit"
)

// compile-time interface check
var _ store.Store = (*Store)(nil)

// Store implements store.Store on a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database file at path with WAL journaling.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping db: %w", err)
	}

	return New(db), nil
}

// New wraps an already-open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database handle for direct access.
func (s *Store) DB() *sql.DB { return s.db }

// Migrate applies any pending schema migrations.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		)`); err != nil {
		return fmt.Errorf("sqlite: create schema_migrations: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("sqlite: read schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		if _, err := s.db.ExecContext(ctx, migrations[i]); err != nil {
			return fmt.Errorf("sqlite: apply migration %d: %w", i+1, err)
		}
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO schema_migrations (version) VALUES (?)`, i+1); err != nil {
			return fmt.Errorf("sqlite: record migration %d: %w", i+1, err)
		}
	}

	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) load(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, facturo.ErrAbsent
		}
		return nil, fmt.Errorf("sqlite: load %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("sqlite: encode %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (key, value, updated_at)
		 VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		 ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("sqlite: save %s: %w", key, err)
	}
	return nil
}

// ==================== Invoice collection ====================

func (s *Store) LoadInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	raw, err := s.load(ctx, store.KeyInvoices)
	if err != nil {
		return nil, err
	}

	var invoices []*invoice.Invoice
	if err := json.Unmarshal(raw, &invoices); err != nil {
		return nil, fmt.Errorf("sqlite: decode %s: %w: %v", store.KeyInvoices, facturo.ErrCorrupt, err)
	}
	return invoices, nil
}

func (s *Store) ReplaceInvoices(ctx context.Context, invoices []*invoice.Invoice) error {
	return s.save(ctx, store.KeyInvoices, invoices)
}

// ==================== Client collection ====================

func (s *Store) LoadClients(ctx context.Context) ([]*client.Client, error) {
	raw, err := s.load(ctx, store.KeyClients)
	if err != nil {
		return nil, err
	}

	var clients []*client.Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		return nil, fmt.Errorf("sqlite: decode %s: %w: %v", store.KeyClients, facturo.ErrCorrupt, err)
	}
	return clients, nil
}

func (s *Store) ReplaceClients(ctx context.Context, clients []*client.Client) error {
	return s.save(ctx, store.KeyClients, clients)
}

// ==================== Company profile ====================

func (s *Store) LoadCompany(ctx context.Context) (*company.Profile, error) {
	raw, err := s.load(ctx, store.KeyCompany)
	if err != nil {
		return nil, err
	}

	p := new(company.Profile)
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("sqlite: decode %s: %w: %v", store.KeyCompany, facturo.ErrCorrupt, err)
	}
	return p, nil
}

func (s *Store) ReplaceCompany(ctx context.Context, p *company.Profile) error {
	return s.save(ctx, store.KeyCompany, p)
}

// ==================== Unit vocabulary ====================

func (s *Store) LoadUnits(ctx context.Context) (unit.Vocabulary, error) {
	raw, err := s.load(ctx, store.KeyUnits)
	if err != nil {
		return nil, err
	}

	var v unit.Vocabulary
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("sqlite: decode %s: %w: %v", store.KeyUnits, facturo.ErrCorrupt, err)
	}
	return v, nil
}

func (s *Store) ReplaceUnits(ctx context.Context, v unit.Vocabulary) error {
	return s.save(ctx, store.KeyUnits, v)
}
