// Package facturo is an embeddable invoicing engine: clients, billing
// documents (invoices, proformas, quotes, credit notes), document numbering,
// exact totals, and document export, persisted through a pluggable store.
//
// The Ledger is the single ownership boundary for all state. Views and other
// observers subscribe through the hook package and are notified after each
// committed mutation; they never mutate state directly.
package facturo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/xraph/facturo/client"
	"github.com/xraph/facturo/company"
	"github.com/xraph/facturo/document"
	"github.com/xraph/facturo/hook"
	"github.com/xraph/facturo/id"
	"github.com/xraph/facturo/invoice"
	"github.com/xraph/facturo/store"
	"github.com/xraph/facturo/types"
	"github.com/xraph/facturo/unit"
)

// Ledger owns all application state: the invoice and client collections, the
// company profile, and the unit vocabulary. Every mutation funnels through
// its methods, is validated, applied in memory, re-serialized wholesale to
// the store, and then announced to registered hooks.
//
// A failed store write rolls the in-memory change back, so memory and store
// never drift apart past the current call.
type Ledger struct {
	mu     sync.RWMutex
	store  store.Store
	hooks  *hook.Registry
	logger *slog.Logger
	now    func() time.Time

	locale    language.Tag
	currency  string
	formatter *types.MoneyFormatter

	invoices []*invoice.Invoice
	clients  []*client.Client
	company  *company.Profile
	units    unit.Vocabulary

	// hooks passed via options, registered during New.
	pendingHooks []hook.Hook
}

// New creates a Ledger over the given store. The ledger starts from empty
// defaults; call Start to load persisted state.
func New(s store.Store, opts ...Option) (*Ledger, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidInput)
	}

	l := &Ledger{
		store:    s,
		logger:   slog.Default(),
		now:      time.Now,
		locale:   types.DefaultLocale,
		currency: types.DefaultCurrency,
		company:  company.DefaultProfile(),
		units:    unit.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.formatter = types.NewMoneyFormatter(l.locale, l.currency)

	l.hooks = hook.NewRegistry().WithLogger(l.logger)
	for _, h := range l.pendingHooks {
		if err := l.hooks.Register(h); err != nil {
			return nil, err
		}
	}
	l.pendingHooks = nil

	return l, nil
}

// RegisterHook adds an observer after construction.
func (l *Ledger) RegisterHook(h hook.Hook) error {
	return l.hooks.Register(h)
}

// Start migrates the store and loads all collections. Loading is lenient:
// an absent or unreadable value falls back to the empty default with a log
// line, never a startup failure.
func (l *Ledger) Start(ctx context.Context) error {
	if err := l.store.Migrate(ctx); err != nil {
		return fmt.Errorf("facturo: migrate store: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if invoices, err := l.store.LoadInvoices(ctx); err == nil {
		l.invoices = invoices
	} else {
		l.reportLoad("invoices", err)
		l.invoices = nil
	}

	if clients, err := l.store.LoadClients(ctx); err == nil {
		l.clients = clients
	} else {
		l.reportLoad("clients", err)
		l.clients = nil
	}

	if p, err := l.store.LoadCompany(ctx); err == nil && p != nil {
		l.company = p
	} else {
		l.reportLoad("company", err)
		l.company = company.DefaultProfile()
	}

	if units, err := l.store.LoadUnits(ctx); err == nil && len(units) > 0 {
		l.units = units
	} else {
		l.reportLoad("units", err)
		l.units = unit.Default()
	}

	l.logger.Info("ledger started",
		"invoices", len(l.invoices),
		"clients", len(l.clients),
		"units", len(l.units),
	)
	return nil
}

// reportLoad logs a fallback to defaults. Absence is normal on first run and
// logged at debug; anything else is worth a warning.
func (l *Ledger) reportLoad(key string, err error) {
	if err == nil || errors.Is(err, ErrAbsent) {
		l.logger.Debug("store value absent, starting empty", "key", key)
		return
	}
	l.logger.Warn("store value unreadable, starting empty", "key", key, "error", err)
}

// Stop closes the underlying store.
func (l *Ledger) Stop(ctx context.Context) error {
	_ = ctx
	return l.store.Close()
}

// Ping checks the underlying store.
func (l *Ledger) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}

// Formatter returns the monetary formatter shared by preview and export.
func (l *Ledger) Formatter() *types.MoneyFormatter {
	return l.formatter
}

// ==================== Invoices ====================

// CreateInvoice validates draft, assigns its identity, number, and
// timestamps, recomputes totals, and commits it. The draft is not mutated; a
// validation failure leaves all state untouched.
func (l *Ledger) CreateInvoice(ctx context.Context, draft *invoice.Invoice) (*invoice.Invoice, error) {
	if draft == nil {
		return nil, fmt.Errorf("%w: invoice is required", ErrInvalidInput)
	}

	inv := cloneInvoice(draft)
	if inv.Type == "" {
		inv.Type = invoice.TypeInvoice
	}
	if !inv.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, inv.Type)
	}
	if inv.Status == "" {
		inv.Status = invoice.StatusDraft
	}
	if !inv.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, inv.Status)
	}

	if err := validateInvoice(inv); err != nil {
		return nil, err
	}

	l.mu.Lock()

	now := l.now().UTC()
	inv.ID = id.NewInvoiceID()
	inv.Entity = types.Entity{CreatedAt: now, UpdatedAt: now}
	inv.Number = invoice.NextNumber(l.invoices, inv.Type, now.Year())
	for i := range inv.Items {
		if inv.Items[i].ID.IsNil() {
			inv.Items[i].ID = id.NewLineItemID()
		}
	}
	inv.RecomputeTotals()

	previous := l.invoices
	l.invoices = append(append([]*invoice.Invoice(nil), l.invoices...), inv)
	if err := l.store.ReplaceInvoices(ctx, l.invoices); err != nil {
		l.invoices = previous
		l.mu.Unlock()
		return nil, fmt.Errorf("facturo: persist invoices: %w", err)
	}
	result := cloneInvoice(inv)
	l.mu.Unlock()

	l.hooks.EmitInvoiceCreated(ctx, result)
	l.hooks.EmitCommit(ctx)
	l.logger.Info("invoice created", "id", inv.ID, "number", inv.Number, "type", inv.Type)
	return result, nil
}

// UpdateInvoice replaces the stored invoice with the given one, keeping its
// identity, number, and creation timestamp. The document type may change on
// edit; the already-issued number is kept even when its prefix no longer
// matches the new type. Totals are recomputed before the commit.
func (l *Ledger) UpdateInvoice(ctx context.Context, upd *invoice.Invoice) (*invoice.Invoice, error) {
	if upd == nil {
		return nil, fmt.Errorf("%w: invoice is required", ErrInvalidInput)
	}
	if upd.Type != "" && !upd.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, upd.Type)
	}
	if !upd.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, upd.Status)
	}
	if err := validateInvoice(upd); err != nil {
		return nil, err
	}

	l.mu.Lock()

	idx := l.invoiceIndex(upd.ID)
	if idx < 0 {
		l.mu.Unlock()
		return nil, ErrInvoiceNotFound
	}

	existing := l.invoices[idx]
	inv := cloneInvoice(upd)
	inv.ID = existing.ID
	inv.Number = existing.Number
	if inv.Type == "" {
		inv.Type = existing.Type
	}
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = l.now().UTC()
	for i := range inv.Items {
		if inv.Items[i].ID.IsNil() {
			inv.Items[i].ID = id.NewLineItemID()
		}
	}
	inv.RecomputeTotals()

	next := append([]*invoice.Invoice(nil), l.invoices...)
	next[idx] = inv
	if err := l.store.ReplaceInvoices(ctx, next); err != nil {
		l.mu.Unlock()
		return nil, fmt.Errorf("facturo: persist invoices: %w", err)
	}
	l.invoices = next
	result := cloneInvoice(inv)
	l.mu.Unlock()

	l.hooks.EmitInvoiceUpdated(ctx, result)
	l.hooks.EmitCommit(ctx)
	return result, nil
}

// DeleteInvoice removes an invoice. Document numbers are not renumbered, so
// the next generated number of the same type will collide with an existing
// one; that matches the numbering policy in invoice.NextNumber.
func (l *Ledger) DeleteInvoice(ctx context.Context, invID id.InvoiceID) error {
	l.mu.Lock()

	idx := l.invoiceIndex(invID)
	if idx < 0 {
		l.mu.Unlock()
		return ErrInvoiceNotFound
	}

	next := append([]*invoice.Invoice(nil), l.invoices[:idx]...)
	next = append(next, l.invoices[idx+1:]...)
	if err := l.store.ReplaceInvoices(ctx, next); err != nil {
		l.mu.Unlock()
		return fmt.Errorf("facturo: persist invoices: %w", err)
	}
	l.invoices = next
	l.mu.Unlock()

	l.hooks.EmitInvoiceDeleted(ctx, invID)
	l.hooks.EmitCommit(ctx)
	l.logger.Info("invoice deleted", "id", invID)
	return nil
}

// GetInvoice returns a copy of the invoice with the given id.
func (l *Ledger) GetInvoice(_ context.Context, invID id.InvoiceID) (*invoice.Invoice, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.invoiceIndex(invID)
	if idx < 0 {
		return nil, ErrInvoiceNotFound
	}
	return cloneInvoice(l.invoices[idx]), nil
}

// ListInvoices returns copies of the invoices matching opts, newest first.
// Query matches the document number or the referenced client's name,
// case-insensitive.
func (l *Ledger) ListInvoices(_ context.Context, opts invoice.ListOpts) []*invoice.Invoice {
	l.mu.RLock()
	defer l.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(opts.Query))

	var out []*invoice.Invoice
	for _, inv := range l.invoices {
		if opts.Type != "" && inv.Type != opts.Type {
			continue
		}
		if opts.Status != "" && inv.Status != opts.Status {
			continue
		}
		if query != "" && !l.matchesQuery(inv, query) {
			continue
		}
		out = append(out, cloneInvoice(inv))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// matchesQuery requires l.mu held.
func (l *Ledger) matchesQuery(inv *invoice.Invoice, query string) bool {
	if strings.Contains(strings.ToLower(inv.Number), query) {
		return true
	}
	if c := l.clientByID(inv.ClientID); c != nil {
		return strings.Contains(strings.ToLower(c.Name), query)
	}
	return false
}

// SetInvoiceStatus assigns a status label directly. Any status may move to
// any other; there is no transition graph.
func (l *Ledger) SetInvoiceStatus(ctx context.Context, invID id.InvoiceID, status invoice.Status) (*invoice.Invoice, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	l.mu.Lock()

	idx := l.invoiceIndex(invID)
	if idx < 0 {
		l.mu.Unlock()
		return nil, ErrInvoiceNotFound
	}

	inv := cloneInvoice(l.invoices[idx])
	old := inv.Status
	inv.Status = status
	inv.UpdatedAt = l.now().UTC()

	next := append([]*invoice.Invoice(nil), l.invoices...)
	next[idx] = inv
	if err := l.store.ReplaceInvoices(ctx, next); err != nil {
		l.mu.Unlock()
		return nil, fmt.Errorf("facturo: persist invoices: %w", err)
	}
	l.invoices = next
	result := cloneInvoice(inv)
	l.mu.Unlock()

	l.hooks.EmitInvoiceStatusChanged(ctx, result, old)
	l.hooks.EmitCommit(ctx)
	return result, nil
}

// NextDocumentNumber previews the number the next document of the given type
// would receive, without reserving it.
func (l *Ledger) NextDocumentNumber(_ context.Context, t invoice.DocumentType) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, t)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return invoice.NextNumber(l.invoices, t, l.now().Year()), nil
}

// invoiceIndex requires l.mu held.
func (l *Ledger) invoiceIndex(invID id.InvoiceID) int {
	for i, inv := range l.invoices {
		if inv.ID == invID {
			return i
		}
	}
	return -1
}

// validateInvoice applies the pre-save rules: a client must be selected, at
// least one item, and every item needs a description and a positive
// quantity and unit price. All violations are reported together.
func validateInvoice(inv *invoice.Invoice) error {
	errs := &MultiError{}

	if inv.ClientID.IsNil() {
		errs.Add(ValidationError{Field: "client_id", Message: "a client must be selected"})
	}
	if len(inv.Items) == 0 {
		errs.Add(ValidationError{Field: "items", Message: "at least one item is required"})
	}
	for i, it := range inv.Items {
		if strings.TrimSpace(it.Description) == "" {
			errs.Add(ValidationError{
				Field:   fmt.Sprintf("items[%d].description", i),
				Message: "description is required",
			})
		}
		if !it.Quantity.IsPositive() {
			errs.Add(ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be positive",
			})
		}
		if !it.UnitPrice.IsPositive() {
			errs.Add(ValidationError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "unit price must be positive",
			})
		}
		if it.TaxRate.IsNegative() {
			errs.Add(ValidationError{
				Field:   fmt.Sprintf("items[%d].tax_rate", i),
				Message: "tax rate cannot be negative",
			})
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ==================== Clients ====================

// CreateClient validates draft, assigns identity and timestamps, and
// commits it.
func (l *Ledger) CreateClient(ctx context.Context, draft *client.Client) (*client.Client, error) {
	if draft == nil {
		return nil, fmt.Errorf("%w: client is required", ErrInvalidInput)
	}
	if strings.TrimSpace(draft.Name) == "" {
		errs := &MultiError{}
		errs.Add(ValidationError{Field: "name", Message: "name is required"})
		return nil, errs
	}

	l.mu.Lock()

	c := cloneClient(draft)
	now := l.now().UTC()
	c.ID = id.NewClientID()
	c.Entity = types.Entity{CreatedAt: now, UpdatedAt: now}
	for i := range c.CustomFields {
		if c.CustomFields[i].ID.IsNil() {
			c.CustomFields[i].ID = id.NewFieldID()
		}
	}

	previous := l.clients
	l.clients = append(append([]*client.Client(nil), l.clients...), c)
	if err := l.store.ReplaceClients(ctx, l.clients); err != nil {
		l.clients = previous
		l.mu.Unlock()
		return nil, fmt.Errorf("facturo: persist clients: %w", err)
	}
	result := cloneClient(c)
	l.mu.Unlock()

	l.hooks.EmitClientCreated(ctx, result)
	l.hooks.EmitCommit(ctx)
	l.logger.Info("client created", "id", c.ID, "name", c.Name)
	return result, nil
}

// UpdateClient replaces the stored client, keeping identity and creation
// timestamp.
func (l *Ledger) UpdateClient(ctx context.Context, upd *client.Client) (*client.Client, error) {
	if upd == nil {
		return nil, fmt.Errorf("%w: client is required", ErrInvalidInput)
	}
	if strings.TrimSpace(upd.Name) == "" {
		errs := &MultiError{}
		errs.Add(ValidationError{Field: "name", Message: "name is required"})
		return nil, errs
	}

	l.mu.Lock()

	idx := l.clientIndex(upd.ID)
	if idx < 0 {
		l.mu.Unlock()
		return nil, ErrClientNotFound
	}

	existing := l.clients[idx]
	c := cloneClient(upd)
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = l.now().UTC()
	for i := range c.CustomFields {
		if c.CustomFields[i].ID.IsNil() {
			c.CustomFields[i].ID = id.NewFieldID()
		}
	}

	next := append([]*client.Client(nil), l.clients...)
	next[idx] = c
	if err := l.store.ReplaceClients(ctx, next); err != nil {
		l.mu.Unlock()
		return nil, fmt.Errorf("facturo: persist clients: %w", err)
	}
	l.clients = next
	result := cloneClient(c)
	l.mu.Unlock()

	l.hooks.EmitClientUpdated(ctx, result)
	l.hooks.EmitCommit(ctx)
	return result, nil
}

// DeleteClient removes a client. Invoices referencing it are left intact;
// they render with an unknown-client placeholder from then on.
func (l *Ledger) DeleteClient(ctx context.Context, clientID id.ClientID) error {
	l.mu.Lock()

	idx := l.clientIndex(clientID)
	if idx < 0 {
		l.mu.Unlock()
		return ErrClientNotFound
	}

	next := append([]*client.Client(nil), l.clients[:idx]...)
	next = append(next, l.clients[idx+1:]...)
	if err := l.store.ReplaceClients(ctx, next); err != nil {
		l.mu.Unlock()
		return fmt.Errorf("facturo: persist clients: %w", err)
	}
	l.clients = next
	l.mu.Unlock()

	l.hooks.EmitClientDeleted(ctx, clientID)
	l.hooks.EmitCommit(ctx)
	l.logger.Info("client deleted", "id", clientID)
	return nil
}

// GetClient returns a copy of the client with the given id.
func (l *Ledger) GetClient(_ context.Context, clientID id.ClientID) (*client.Client, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.clientIndex(clientID)
	if idx < 0 {
		return nil, ErrClientNotFound
	}
	return cloneClient(l.clients[idx]), nil
}

// ListClients returns copies of all clients, searchable by name,
// case-insensitive, in insertion order.
func (l *Ledger) ListClients(_ context.Context, query string) []*client.Client {
	l.mu.RLock()
	defer l.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))

	var out []*client.Client
	for _, c := range l.clients {
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		out = append(out, cloneClient(c))
	}
	return out
}

// clientIndex requires l.mu held.
func (l *Ledger) clientIndex(clientID id.ClientID) int {
	for i, c := range l.clients {
		if c.ID == clientID {
			return i
		}
	}
	return -1
}

// clientByID requires l.mu held. Returns nil when the id dangles.
func (l *Ledger) clientByID(clientID id.ClientID) *client.Client {
	if idx := l.clientIndex(clientID); idx >= 0 {
		return l.clients[idx]
	}
	return nil
}

// ==================== Company profile ====================

// Company returns a copy of the profile. It always exists; the default is
// empty.
func (l *Ledger) Company(_ context.Context) *company.Profile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneProfile(l.company)
}

// UpdateCompany replaces the profile wholesale.
func (l *Ledger) UpdateCompany(ctx context.Context, upd *company.Profile) (*company.Profile, error) {
	if upd == nil {
		return nil, fmt.Errorf("%w: profile is required", ErrInvalidInput)
	}

	l.mu.Lock()

	p := cloneProfile(upd)
	p.CreatedAt = l.company.CreatedAt
	p.UpdatedAt = l.now().UTC()
	for i := range p.CustomFields {
		if p.CustomFields[i].ID.IsNil() {
			p.CustomFields[i].ID = id.NewFieldID()
		}
	}

	if err := l.store.ReplaceCompany(ctx, p); err != nil {
		l.mu.Unlock()
		return nil, fmt.Errorf("facturo: persist company: %w", err)
	}
	l.company = p
	result := cloneProfile(p)
	l.mu.Unlock()

	l.hooks.EmitCompanyUpdated(ctx, result)
	l.hooks.EmitCommit(ctx)
	return result, nil
}

// ==================== Unit vocabulary ====================

// Units returns a copy of the unit label vocabulary in insertion order.
func (l *Ledger) Units(_ context.Context) unit.Vocabulary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append(unit.Vocabulary(nil), l.units...)
}

// AddUnit appends a unit label unless already present (exact match). Adding
// an existing or blank label is a no-op, not an error.
func (l *Ledger) AddUnit(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)

	l.mu.Lock()

	next, grew := l.units.Add(label)
	if !grew {
		l.mu.Unlock()
		return nil
	}

	if err := l.store.ReplaceUnits(ctx, next); err != nil {
		l.mu.Unlock()
		return fmt.Errorf("facturo: persist units: %w", err)
	}
	l.units = next
	l.mu.Unlock()

	l.hooks.EmitUnitAdded(ctx, label)
	l.hooks.EmitCommit(ctx)
	return nil
}

// ==================== Dashboard ====================

// Summary is the dashboard snapshot: document counts, settled and
// outstanding totals, and the most recent documents.
type Summary struct {
	InvoiceCount  int
	ClientCount   int
	CountByType   map[invoice.DocumentType]int
	CountByStatus map[invoice.Status]int

	// PaidTotal sums grand totals of paid documents; OutstandingTotal sums
	// sent and overdue ones.
	PaidTotal        decimal.Decimal
	OutstandingTotal decimal.Decimal

	// Recent holds up to five documents, newest first.
	Recent []*invoice.Invoice
}

// Summarize computes the dashboard snapshot from current state.
func (l *Ledger) Summarize(_ context.Context) *Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := &Summary{
		InvoiceCount:     len(l.invoices),
		ClientCount:      len(l.clients),
		CountByType:      make(map[invoice.DocumentType]int),
		CountByStatus:    make(map[invoice.Status]int),
		PaidTotal:        decimal.Zero,
		OutstandingTotal: decimal.Zero,
	}

	recent := make([]*invoice.Invoice, 0, len(l.invoices))
	for _, inv := range l.invoices {
		s.CountByType[inv.Type]++
		s.CountByStatus[inv.Status]++
		switch inv.Status {
		case invoice.StatusPaid:
			s.PaidTotal = s.PaidTotal.Add(inv.GrandTotal)
		case invoice.StatusSent, invoice.StatusOverdue:
			s.OutstandingTotal = s.OutstandingTotal.Add(inv.GrandTotal)
		}
		recent = append(recent, inv)
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	s.Recent = make([]*invoice.Invoice, len(recent))
	for i, inv := range recent {
		s.Recent[i] = cloneInvoice(inv)
	}

	return s
}

// ==================== Rendering ====================

// Snapshot resolves the render-ready document for an invoice. A dangling
// client reference yields the unknown-client placeholder, not an error. The
// same snapshot backs on-screen preview and file export.
func (l *Ledger) Snapshot(_ context.Context, invID id.InvoiceID) (*document.Document, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.invoiceIndex(invID)
	if idx < 0 {
		return nil, ErrInvoiceNotFound
	}
	inv := l.invoices[idx]

	return document.Resolve(inv, l.clientByID(inv.ClientID), l.company, l.formatter, l.currency), nil
}

// RenderInvoice resolves the invoice's snapshot and renders it through f.
func (l *Ledger) RenderInvoice(ctx context.Context, invID id.InvoiceID, f document.Formatter, w io.Writer) error {
	doc, err := l.Snapshot(ctx, invID)
	if err != nil {
		return err
	}
	return f.Render(ctx, doc, w)
}

// ExportText renders the invoice as paginated fixed-width text.
func (l *Ledger) ExportText(ctx context.Context, invID id.InvoiceID, w io.Writer) error {
	return l.RenderInvoice(ctx, invID, document.NewText(), w)
}

// ExportCSV renders the invoice's item table as CSV.
func (l *Ledger) ExportCSV(ctx context.Context, invID id.InvoiceID, w io.Writer) error {
	return l.RenderInvoice(ctx, invID, document.NewCSV(), w)
}

// ==================== Clones ====================

func cloneInvoice(inv *invoice.Invoice) *invoice.Invoice {
	out := *inv
	out.Items = append([]invoice.Item(nil), inv.Items...)
	return &out
}

func cloneClient(c *client.Client) *client.Client {
	out := *c
	out.CustomFields = append([]types.CustomField(nil), c.CustomFields...)
	return &out
}

func cloneProfile(p *company.Profile) *company.Profile {
	out := *p
	out.CustomFields = append([]types.CustomField(nil), p.CustomFields...)
	return &out
}
