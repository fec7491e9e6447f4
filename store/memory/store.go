// Package memory provides an in-memory store backend.
//
// Values are held as their serialized JSON form, so every Replace/Load pair
// is a genuine serialize and deserialize round trip, the same behavior a
// durable backend exhibits, minus the disk.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xraph/facturo"
	"github.com/xraph/facturo/client"
	"github.com/xraph/facturo/company"
	"github.com/xraph/facturo/invoice"
	"github.com/xraph/facturo/store"
	"github.com/xraph/facturo/unit"
)

// compile-time interface check
var _ store.Store = (*Store)(nil)

// Store is an in-memory key/value store keyed by the logical store keys.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
	closed bool
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

func (s *Store) load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, facturo.ErrStoreClosed
	}
	raw, ok := s.values[key]
	if !ok {
		return nil, facturo.ErrAbsent
	}
	return raw, nil
}

func (s *Store) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("memory: encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return facturo.ErrStoreClosed
	}
	s.values[key] = raw
	return nil
}

// ==================== Invoice collection ====================

func (s *Store) LoadInvoices(_ context.Context) ([]*invoice.Invoice, error) {
	raw, err := s.load(store.KeyInvoices)
	if err != nil {
		return nil, err
	}

	var invoices []*invoice.Invoice
	if err := json.Unmarshal(raw, &invoices); err != nil {
		return nil, fmt.Errorf("memory: decode %s: %w: %v", store.KeyInvoices, facturo.ErrCorrupt, err)
	}
	return invoices, nil
}

func (s *Store) ReplaceInvoices(_ context.Context, invoices []*invoice.Invoice) error {
	return s.save(store.KeyInvoices, invoices)
}

// ==================== Client collection ====================

func (s *Store) LoadClients(_ context.Context) ([]*client.Client, error) {
	raw, err := s.load(store.KeyClients)
	if err != nil {
		return nil, err
	}

	var clients []*client.Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		return nil, fmt.Errorf("memory: decode %s: %w: %v", store.KeyClients, facturo.ErrCorrupt, err)
	}
	return clients, nil
}

func (s *Store) ReplaceClients(_ context.Context, clients []*client.Client) error {
	return s.save(store.KeyClients, clients)
}

// ==================== Company profile ====================

func (s *Store) LoadCompany(_ context.Context) (*company.Profile, error) {
	raw, err := s.load(store.KeyCompany)
	if err != nil {
		return nil, err
	}

	p := new(company.Profile)
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("memory: decode %s: %w: %v", store.KeyCompany, facturo.ErrCorrupt, err)
	}
	return p, nil
}

func (s *Store) ReplaceCompany(_ context.Context, p *company.Profile) error {
	return s.save(store.KeyCompany, p)
}

// ==================== Unit vocabulary ====================

func (s *Store) LoadUnits(_ context.Context) (unit.Vocabulary, error) {
	raw, err := s.load(store.KeyUnits)
	if err != nil {
		return nil, err
	}

	var v unit.Vocabulary
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("memory: decode %s: %w: %v", store.KeyUnits, facturo.ErrCorrupt, err)
	}
	return v, nil
}

func (s *Store) ReplaceUnits(_ context.Context, v unit.Vocabulary) error {
	return s.save(store.KeyUnits, v)
}

// ==================== Store management ====================

func (s *Store) Migrate(_ context.Context) error {
	return nil // no schema in memory
}

func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return facturo.ErrStoreClosed
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// Corrupt overwrites a key with undecodable bytes. Test helper for the
// lenient-load path.
func (s *Store) Corrupt(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = []byte("{not json")
}
