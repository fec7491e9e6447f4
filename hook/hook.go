// Package hook provides the subscription contract between the ledger and
// its observers. Views (or any other listener) implement the hook
// interfaces they care about; the ledger notifies them after each committed
// mutation. Dispatch is synchronous; the system is single-threaded and no
// hidden scheduling is involved.
package hook

import (
	"context"

	"github.com/xraph/facturo/client"
	"github.com/xraph/facturo/company"
	"github.com/xraph/facturo/id"
	"github.com/xraph/facturo/invoice"
)

// Hook is the base interface all observers must implement.
type Hook interface {
	Name() string
}

// OnCommit fires after every committed mutation, whatever the entity. This
// is the re-render signal for views that simply redraw from current state.
type OnCommit interface {
	Hook
	OnCommit(ctx context.Context) error
}

// ──────────────────────────────────────────────────
// Invoice lifecycle hooks
// ──────────────────────────────────────────────────

// OnInvoiceCreated fires when a new invoice is created.
type OnInvoiceCreated interface {
	Hook
	OnInvoiceCreated(ctx context.Context, inv *invoice.Invoice) error
}

// OnInvoiceUpdated fires when an invoice is updated.
type OnInvoiceUpdated interface {
	Hook
	OnInvoiceUpdated(ctx context.Context, inv *invoice.Invoice) error
}

// OnInvoiceDeleted fires when an invoice is deleted.
type OnInvoiceDeleted interface {
	Hook
	OnInvoiceDeleted(ctx context.Context, invID id.InvoiceID) error
}

// OnInvoiceStatusChanged fires when an invoice status label changes.
type OnInvoiceStatusChanged interface {
	Hook
	OnInvoiceStatusChanged(ctx context.Context, inv *invoice.Invoice, old invoice.Status) error
}

// ──────────────────────────────────────────────────
// Client lifecycle hooks
// ──────────────────────────────────────────────────

// OnClientCreated fires when a new client is created.
type OnClientCreated interface {
	Hook
	OnClientCreated(ctx context.Context, c *client.Client) error
}

// OnClientUpdated fires when a client is updated.
type OnClientUpdated interface {
	Hook
	OnClientUpdated(ctx context.Context, c *client.Client) error
}

// OnClientDeleted fires when a client is deleted. Invoices referencing the
// client are left untouched.
type OnClientDeleted interface {
	Hook
	OnClientDeleted(ctx context.Context, clientID id.ClientID) error
}

// ──────────────────────────────────────────────────
// Company and vocabulary hooks
// ──────────────────────────────────────────────────

// OnCompanyUpdated fires when the company profile is replaced.
type OnCompanyUpdated interface {
	Hook
	OnCompanyUpdated(ctx context.Context, p *company.Profile) error
}

// OnUnitAdded fires when a new unit label joins the vocabulary.
type OnUnitAdded interface {
	Hook
	OnUnitAdded(ctx context.Context, label string) error
}
