// Package store defines the unified storage interface for all Facturo
// collections.
//
// The store is a small key/value contract: four logical keys, each holding
// the full serialized collection (or single record) as its value. Every
// write replaces the whole value; there is no incremental patch format and
// no transaction spanning keys.
package store

import (
	"context"

	"github.com/xraph/facturo/client"
	"github.com/xraph/facturo/company"
	"github.com/xraph/facturo/invoice"
	"github.com/xraph/facturo/unit"
)

// Logical keys. Backends must keep these stable: they are the on-disk
// contract.
const (
	KeyInvoices = "invoices"
	KeyClients  = "clients"
	KeyCompany  = "company"
	KeyUnits    = "units"
)

// Store is the unified storage interface. Instead of embedding the
// per-entity sub-interfaces, all methods are declared explicitly to avoid
// naming conflicts.
//
// Load methods return facturo.ErrAbsent when the key has never been
// written, and an error wrapping facturo.ErrCorrupt when the stored value
// cannot be decoded.
type Store interface {
	// Invoice collection
	LoadInvoices(ctx context.Context) ([]*invoice.Invoice, error)
	ReplaceInvoices(ctx context.Context, invoices []*invoice.Invoice) error

	// Client collection
	LoadClients(ctx context.Context) ([]*client.Client, error)
	ReplaceClients(ctx context.Context, clients []*client.Client) error

	// Company profile (single record)
	LoadCompany(ctx context.Context) (*company.Profile, error)
	ReplaceCompany(ctx context.Context, p *company.Profile) error

	// Unit vocabulary
	LoadUnits(ctx context.Context) (unit.Vocabulary, error)
	ReplaceUnits(ctx context.Context, v unit.Vocabulary) error

	// Core methods
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
