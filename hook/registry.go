package hook

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/xraph/facturo/client"
	"github.com/xraph/facturo/company"
	"github.com/xraph/facturo/id"
	"github.com/xraph/facturo/invoice"
)

// Registry manages registered hooks and dispatches events to them. Hook
// interfaces are type-cached at registration so dispatch does no reflection.
// A failing hook is logged and skipped; it never fails the mutation that
// triggered it.
type Registry struct {
	mu     sync.RWMutex
	hooks  []Hook
	logger *slog.Logger

	onCommit               []OnCommit
	onInvoiceCreated       []OnInvoiceCreated
	onInvoiceUpdated       []OnInvoiceUpdated
	onInvoiceDeleted       []OnInvoiceDeleted
	onInvoiceStatusChanged []OnInvoiceStatusChanged
	onClientCreated        []OnClientCreated
	onClientUpdated        []OnClientUpdated
	onClientDeleted        []OnClientDeleted
	onCompanyUpdated       []OnCompanyUpdated
	onUnitAdded            []OnUnitAdded
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{logger: slog.Default()}
}

// WithLogger sets the logger used to report failing hooks.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// Register adds a hook to the registry and caches the interfaces it
// implements. Registering two hooks with the same name is an error.
func (r *Registry) Register(h Hook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.hooks {
		if existing.Name() == h.Name() {
			return fmt.Errorf("hook: duplicate registration: %s", h.Name())
		}
	}

	r.hooks = append(r.hooks, h)

	if v, ok := h.(OnCommit); ok {
		r.onCommit = append(r.onCommit, v)
	}
	if v, ok := h.(OnInvoiceCreated); ok {
		r.onInvoiceCreated = append(r.onInvoiceCreated, v)
	}
	if v, ok := h.(OnInvoiceUpdated); ok {
		r.onInvoiceUpdated = append(r.onInvoiceUpdated, v)
	}
	if v, ok := h.(OnInvoiceDeleted); ok {
		r.onInvoiceDeleted = append(r.onInvoiceDeleted, v)
	}
	if v, ok := h.(OnInvoiceStatusChanged); ok {
		r.onInvoiceStatusChanged = append(r.onInvoiceStatusChanged, v)
	}
	if v, ok := h.(OnClientCreated); ok {
		r.onClientCreated = append(r.onClientCreated, v)
	}
	if v, ok := h.(OnClientUpdated); ok {
		r.onClientUpdated = append(r.onClientUpdated, v)
	}
	if v, ok := h.(OnClientDeleted); ok {
		r.onClientDeleted = append(r.onClientDeleted, v)
	}
	if v, ok := h.(OnCompanyUpdated); ok {
		r.onCompanyUpdated = append(r.onCompanyUpdated, v)
	}
	if v, ok := h.(OnUnitAdded); ok {
		r.onUnitAdded = append(r.onUnitAdded, v)
	}

	return nil
}

// Hooks returns the names of all registered hooks.
func (r *Registry) Hooks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.hooks))
	for i, h := range r.hooks {
		names[i] = h.Name()
	}
	return names
}

func (r *Registry) report(name, event string, err error) {
	if err != nil {
		r.logger.Error("hook failed", "hook", name, "event", event, "error", err)
	}
}

// EmitCommit notifies all OnCommit hooks of a committed mutation.
func (r *Registry) EmitCommit(ctx context.Context) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onCommit {
		r.report(h.Name(), "commit", h.OnCommit(ctx))
	}
}

// EmitInvoiceCreated notifies all OnInvoiceCreated hooks.
func (r *Registry) EmitInvoiceCreated(ctx context.Context, inv *invoice.Invoice) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onInvoiceCreated {
		r.report(h.Name(), "invoice_created", h.OnInvoiceCreated(ctx, inv))
	}
}

// EmitInvoiceUpdated notifies all OnInvoiceUpdated hooks.
func (r *Registry) EmitInvoiceUpdated(ctx context.Context, inv *invoice.Invoice) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onInvoiceUpdated {
		r.report(h.Name(), "invoice_updated", h.OnInvoiceUpdated(ctx, inv))
	}
}

// EmitInvoiceDeleted notifies all OnInvoiceDeleted hooks.
func (r *Registry) EmitInvoiceDeleted(ctx context.Context, invID id.InvoiceID) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onInvoiceDeleted {
		r.report(h.Name(), "invoice_deleted", h.OnInvoiceDeleted(ctx, invID))
	}
}

// EmitInvoiceStatusChanged notifies all OnInvoiceStatusChanged hooks.
func (r *Registry) EmitInvoiceStatusChanged(ctx context.Context, inv *invoice.Invoice, old invoice.Status) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onInvoiceStatusChanged {
		r.report(h.Name(), "invoice_status_changed", h.OnInvoiceStatusChanged(ctx, inv, old))
	}
}

// EmitClientCreated notifies all OnClientCreated hooks.
func (r *Registry) EmitClientCreated(ctx context.Context, c *client.Client) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onClientCreated {
		r.report(h.Name(), "client_created", h.OnClientCreated(ctx, c))
	}
}

// EmitClientUpdated notifies all OnClientUpdated hooks.
func (r *Registry) EmitClientUpdated(ctx context.Context, c *client.Client) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onClientUpdated {
		r.report(h.Name(), "client_updated", h.OnClientUpdated(ctx, c))
	}
}

// EmitClientDeleted notifies all OnClientDeleted hooks.
func (r *Registry) EmitClientDeleted(ctx context.Context, clientID id.ClientID) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onClientDeleted {
		r.report(h.Name(), "client_deleted", h.OnClientDeleted(ctx, clientID))
	}
}

// EmitCompanyUpdated notifies all OnCompanyUpdated hooks.
func (r *Registry) EmitCompanyUpdated(ctx context.Context, p *company.Profile) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onCompanyUpdated {
		r.report(h.Name(), "company_updated", h.OnCompanyUpdated(ctx, p))
	}
}

// EmitUnitAdded notifies all OnUnitAdded hooks.
func (r *Registry) EmitUnitAdded(ctx context.Context, label string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onUnitAdded {
		r.report(h.Name(), "unit_added", h.OnUnitAdded(ctx, label))
	}
}
