package invoice

import "context"

// Store persists the invoice collection as a single value: every write
// replaces the whole serialized collection, there is no incremental patch.
type Store interface {
	Load(ctx context.Context) ([]*Invoice, error)
	Replace(ctx context.Context, invoices []*Invoice) error
}

// ListOpts filters an invoice listing. Zero values match everything.
type ListOpts struct {
	Type   DocumentType
	Status Status
	Query  string // matches document number or client name, case-insensitive
}
