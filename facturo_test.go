package facturo_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xraph/facturo"
	"github.com/xraph/facturo/client"
	"github.com/xraph/facturo/company"
	"github.com/xraph/facturo/document"
	"github.com/xraph/facturo/id"
	"github.com/xraph/facturo/invoice"
	"github.com/xraph/facturo/store"
	"github.com/xraph/facturo/store/memory"
)

var testClock = func() time.Time {
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
}

func newTestLedger(t *testing.T, opts ...facturo.Option) (*facturo.Ledger, *memory.Store) {
	t.Helper()

	st := memory.New()
	opts = append([]facturo.Option{facturo.WithClock(testClock)}, opts...)
	l, err := facturo.New(st, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return l, st
}

func mustCreateClient(t *testing.T, l *facturo.Ledger, name string) *client.Client {
	t.Helper()

	c, err := l.CreateClient(context.Background(), &client.Client{Name: name})
	if err != nil {
		t.Fatalf("CreateClient(%q) error = %v", name, err)
	}
	return c
}

func draftInvoice(clientID id.ClientID) *invoice.Invoice {
	return &invoice.Invoice{
		Type:     invoice.TypeInvoice,
		ClientID: clientID,
		Items: []invoice.Item{{
			Description: "Consulting",
			Quantity:    decimal.NewFromInt(3),
			UnitPrice:   decimal.NewFromInt(100),
			TaxRate:     decimal.NewFromInt(19),
		}},
	}
}

func mustCreateInvoice(t *testing.T, l *facturo.Ledger, draft *invoice.Invoice) *invoice.Invoice {
	t.Helper()

	inv, err := l.CreateInvoice(context.Background(), draft)
	if err != nil {
		t.Fatalf("CreateInvoice() error = %v", err)
	}
	return inv
}

func TestCreateInvoiceAssignsNumberAndTotals(t *testing.T) {
	l, _ := newTestLedger(t)
	c := mustCreateClient(t, l, "Acme SARL")

	inv := mustCreateInvoice(t, l, draftInvoice(c.ID))

	if inv.Number != "FAC-2026-0001" {
		t.Errorf("Number = %q, want FAC-2026-0001", inv.Number)
	}
	if inv.ID.IsNil() {
		t.Error("ID not assigned")
	}
	if inv.Status != invoice.StatusDraft {
		t.Errorf("Status = %q, want draft default", inv.Status)
	}
	if !inv.GrandTotal.Equal(decimal.NewFromInt(357)) {
		t.Errorf("GrandTotal = %s, want 357", inv.GrandTotal)
	}
	if inv.Items[0].ID.IsNil() {
		t.Error("item ID not assigned")
	}
	if !inv.CreatedAt.Equal(testClock()) {
		t.Errorf("CreatedAt = %s, want clock time", inv.CreatedAt)
	}
}

func TestCreateInvoiceValidation(t *testing.T) {
	l, _ := newTestLedger(t)
	c := mustCreateClient(t, l, "Acme SARL")
	ctx := context.Background()

	tests := []struct {
		name  string
		draft *invoice.Invoice
		field string
	}{
		{
			name:  "no client",
			draft: draftInvoice(id.Nil),
			field: "client_id",
		},
		{
			name: "no items",
			draft: &invoice.Invoice{
				Type:     invoice.TypeInvoice,
				ClientID: c.ID,
			},
			field: "items",
		},
		{
			name: "blank description",
			draft: func() *invoice.Invoice {
				d := draftInvoice(c.ID)
				d.Items[0].Description = "  "
				return d
			}(),
			field: "items[0].description",
		},
		{
			name: "zero unit price",
			draft: func() *invoice.Invoice {
				d := draftInvoice(c.ID)
				d.Items[0].UnitPrice = decimal.Zero
				return d
			}(),
			field: "items[0].unit_price",
		},
		{
			name: "zero quantity",
			draft: func() *invoice.Invoice {
				d := draftInvoice(c.ID)
				d.Items[0].Quantity = decimal.Zero
				return d
			}(),
			field: "items[0].quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.CreateInvoice(ctx, tt.draft)
			if err == nil {
				t.Fatal("CreateInvoice() expected error, got nil")
			}
			if !facturo.IsValidation(err) {
				t.Fatalf("error = %v, want validation error", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %s", err, tt.field)
			}
		})
	}

	// Rejections leave state unchanged.
	if got := l.ListInvoices(ctx, invoice.ListOpts{}); len(got) != 0 {
		t.Errorf("invoices after rejections = %d, want 0", len(got))
	}
}

func TestCreateInvoiceReportsAllViolations(t *testing.T) {
	l, _ := newTestLedger(t)

	draft := draftInvoice(id.Nil)
	draft.Items[0].Description = ""
	draft.Items[0].UnitPrice = decimal.Zero

	_, err := l.CreateInvoice(context.Background(), draft)
	if err == nil {
		t.Fatal("expected error")
	}

	var merr *facturo.MultiError
	if !errors.As(err, &merr) {
		t.Fatalf("error type = %T, want *MultiError", err)
	}
	if len(merr.Errors) != 3 {
		t.Errorf("violations = %d, want 3 (client, description, price)", len(merr.Errors))
	}
}

func TestNumberingSequencePerType(t *testing.T) {
	l, _ := newTestLedger(t)
	c := mustCreateClient(t, l, "Acme SARL")

	first := mustCreateInvoice(t, l, draftInvoice(c.ID))
	second := mustCreateInvoice(t, l, draftInvoice(c.ID))

	quote := draftInvoice(c.ID)
	quote.Type = invoice.TypeQuote
	third := mustCreateInvoice(t, l, quote)

	if first.Number != "FAC-2026-0001" || second.Number != "FAC-2026-0002" {
		t.Errorf("invoice numbers = %q, %q", first.Number, second.Number)
	}
	if third.Number != "DEV-2026-0001" {
		t.Errorf("quote number = %q, want DEV-2026-0001", third.Number)
	}
}

func TestNumberingCollisionAfterDelete(t *testing.T) {
	l, _ := newTestLedger(t)
	c := mustCreateClient(t, l, "Acme SARL")
	ctx := context.Background()

	var invs []*invoice.Invoice
	for i := 0; i < 3; i++ {
		invs = append(invs, mustCreateInvoice(t, l, draftInvoice(c.ID)))
	}

	next, err := l.NextDocumentNumber(ctx, invoice.TypeInvoice)
	if err != nil {
		t.Fatalf("NextDocumentNumber() error = %v", err)
	}
	if next != "FAC-2026-0004" {
		t.Errorf("next = %q, want FAC-2026-0004", next)
	}

	// Deleting the 2nd makes the count-based sequence regress: the next
	// number now duplicates the surviving FAC-2026-0003.
	if err := l.DeleteInvoice(ctx, invs[1].ID); err != nil {
		t.Fatalf("DeleteInvoice() error = %v", err)
	}

	created := mustCreateInvoice(t, l, draftInvoice(c.ID))
	if created.Number != "FAC-2026-0003" {
		t.Fatalf("number after delete = %q, want FAC-2026-0003", created.Number)
	}
	if created.Number != invs[2].Number {
		t.Error("expected the regenerated number to collide with the surviving invoice")
	}
}

func TestNextDocumentNumberDoesNotReserve(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if n, err := l.NextDocumentNumber(ctx, invoice.TypeProforma); err != nil || n != "PRO-2026-0001" {
			t.Fatalf("NextDocumentNumber() = %q, %v, want PRO-2026-0001", n, err)
		}
	}
}

func TestSetInvoiceStatusFreeAssignment(t *testing.T) {
	l, _ := newTestLedger(t)
	c := mustCreateClient(t, l, "Acme SARL")
	inv := mustCreateInvoice(t, l, draftInvoice(c.ID))
	ctx := context.Background()

	// No transition graph: any order of assignments is accepted.
	sequence := []invoice.Status{
		invoice.StatusPaid,
		invoice.StatusDraft,
		invoice.StatusOverdue,
		invoice.StatusCancelled,
		invoice.StatusSent,
	}
	for _, status := range sequence {
		updated, err := l.SetInvoiceStatus(ctx, inv.ID, status)
		if err != nil {
			t.Fatalf("SetInvoiceStatus(%s) error = %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("Status = %q, want %q", updated.Status, status)
		}
	}

	if _, err := l.SetInvoiceStatus(ctx, inv.ID, invoice.Status("archived")); !errors.Is(err, facturo.ErrUnknownStatus) {
		t.Errorf("unknown status error = %v, want ErrUnknownStatus", err)
	}
}

func TestUpdateInvoicePreservesIdentity(t *testing.T) {
	l, _ := newTestLedger(t)
	c := mustCreateClient(t, l, "Acme SARL")
	inv := mustCreateInvoice(t, l, draftInvoice(c.ID))

	upd := *inv
	upd.Items = []invoice.Item{{
		Description: "Support",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.NewFromInt(50),
		TaxRate:     decimal.Zero,
	}}
	upd.Number = "FAC-9999-9999" // must be ignored

	got, err := l.UpdateInvoice(context.Background(), &upd)
	if err != nil {
		t.Fatalf("UpdateInvoice() error = %v", err)
	}
	if got.Number != inv.Number {
		t.Errorf("Number = %q, want preserved %q", got.Number, inv.Number)
	}
	if !got.CreatedAt.Equal(inv.CreatedAt) {
		t.Error("CreatedAt not preserved")
	}
	if !got.GrandTotal.Equal(decimal.NewFromInt(50)) {
		t.Errorf("GrandTotal = %s, want 50", got.GrandTotal)
	}
}

func TestUpdateInvoiceCanChangeType(t *testing.T) {
	l, _ := newTestLedger(t)
	c := mustCreateClient(t, l, "Acme SARL")
	inv := mustCreateInvoice(t, l, draftInvoice(c.ID))
	ctx := context.Background()

	upd := *inv
	upd.Type = invoice.TypeQuote

	got, err := l.UpdateInvoice(ctx, &upd)
	if err != nil {
		t.Fatalf("UpdateInvoice() error = %v", err)
	}
	if got.Type != invoice.TypeQuote {
		t.Errorf("Type = %q, want quote", got.Type)
	}
	// The issued number stays, prefix and all.
	if got.Number != inv.Number {
		t.Errorf("Number = %q, want preserved %q", got.Number, inv.Number)
	}

	// An empty type on the update keeps the stored one.
	upd2 := *got
	upd2.Type = ""
	got2, err := l.UpdateInvoice(ctx, &upd2)
	if err != nil {
		t.Fatalf("UpdateInvoice() error = %v", err)
	}
	if got2.Type != invoice.TypeQuote {
		t.Errorf("Type = %q, want stored type kept", got2.Type)
	}

	if _, err := l.UpdateInvoice(ctx, &invoice.Invoice{
		ID:       inv.ID,
		Type:     invoice.DocumentType("receipt"),
		Status:   invoice.StatusDraft,
		ClientID: c.ID,
		Items:    inv.Items,
	}); !errors.Is(err, facturo.ErrUnknownDocumentType) {
		t.Errorf("unknown type error = %v, want ErrUnknownDocumentType", err)
	}
}

func TestListInvoicesFilters(t *testing.T) {
	l, _ := newTestLedger(t)
	acme := mustCreateClient(t, l, "Acme SARL")
	globex := mustCreateClient(t, l, "Globex SPA")
	ctx := context.Background()

	invA := mustCreateInvoice(t, l, draftInvoice(acme.ID))
	quote := draftInvoice(globex.ID)
	quote.Type = invoice.TypeQuote
	invB := mustCreateInvoice(t, l, quote)
	if _, err := l.SetInvoiceStatus(ctx, invB.ID, invoice.StatusSent); err != nil {
		t.Fatalf("SetInvoiceStatus() error = %v", err)
	}

	tests := []struct {
		name string
		opts invoice.ListOpts
		want []string
	}{
		{"all", invoice.ListOpts{}, []string{invA.Number, invB.Number}},
		{"by type", invoice.ListOpts{Type: invoice.TypeQuote}, []string{invB.Number}},
		{"by status", invoice.ListOpts{Status: invoice.StatusDraft}, []string{invA.Number}},
		{"by number", invoice.ListOpts{Query: "fac-2026"}, []string{invA.Number}},
		{"by client name", invoice.ListOpts{Query: "globex"}, []string{invB.Number}},
		{"no match", invoice.ListOpts{Query: "initech"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.ListInvoices(ctx, tt.opts)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, inv := range got {
				found := false
				for _, number := range tt.want {
					if inv.Number == number {
						found = true
					}
				}
				if !found {
					t.Errorf("result[%d] = %q, not expected", i, inv.Number)
				}
			}
		})
	}
}

func TestDeleteClientLeavesInvoiceDangling(t *testing.T) {
	l, _ := newTestLedger(t)
	c := mustCreateClient(t, l, "Acme SARL")
	inv := mustCreateInvoice(t, l, draftInvoice(c.ID))
	ctx := context.Background()

	if err := l.DeleteClient(ctx, c.ID); err != nil {
		t.Fatalf("DeleteClient() error = %v", err)
	}

	// The invoice survives.
	got, err := l.GetInvoice(ctx, inv.ID)
	if err != nil {
		t.Fatalf("GetInvoice() error = %v", err)
	}
	if got.ClientID != c.ID {
		t.Error("ClientID rewritten, want dangling reference kept")
	}

	// Rendering falls back to the placeholder instead of failing.
	doc, err := l.Snapshot(ctx, inv.ID)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(doc.Recipient.Lines) != 1 || doc.Recipient.Lines[0] != document.UnknownClient {
		t.Errorf("recipient = %v, want unknown-client placeholder", doc.Recipient.Lines)
	}
}

func TestStartLenientOnCorruptStore(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	l, err := facturo.New(st, facturo.WithClock(testClock))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := l.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	c := mustCreateClient(t, l, "Acme SARL")
	mustCreateInvoice(t, l, draftInvoice(c.ID))

	st.Corrupt(store.KeyInvoices)
	st.Corrupt(store.KeyCompany)

	l2, err := facturo.New(st, facturo.WithClock(testClock))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := l2.Start(ctx); err != nil {
		t.Fatalf("Start() on corrupt store error = %v, want lenient success", err)
	}

	if got := l2.ListInvoices(ctx, invoice.ListOpts{}); len(got) != 0 {
		t.Errorf("invoices = %d, want empty fallback", len(got))
	}
	if p := l2.Company(ctx); p.LegalName != "" {
		t.Errorf("company = %+v, want default profile", p)
	}
	// The untouched key still loads.
	if got := l2.ListClients(ctx, ""); len(got) != 1 {
		t.Errorf("clients = %d, want 1", len(got))
	}
}

func TestRoundTripThroughStore(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	l, err := facturo.New(st, facturo.WithClock(testClock))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := l.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	c := mustCreateClient(t, l, "Acme SARL")
	inv := mustCreateInvoice(t, l, draftInvoice(c.ID))
	if _, err := l.UpdateCompany(ctx, &company.Profile{LegalName: "Ma Société", BankName: "BNA"}); err != nil {
		t.Fatalf("UpdateCompany() error = %v", err)
	}
	if err := l.AddUnit(ctx, "Heure"); err != nil {
		t.Fatalf("AddUnit() error = %v", err)
	}

	// A fresh ledger on the same store sees identical state.
	l2, err := facturo.New(st, facturo.WithClock(testClock))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := l2.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	got, err := l2.GetInvoice(ctx, inv.ID)
	if err != nil {
		t.Fatalf("GetInvoice() after reload error = %v", err)
	}
	if got.Number != inv.Number || !got.GrandTotal.Equal(inv.GrandTotal) || got.ClientID != inv.ClientID {
		t.Errorf("reloaded invoice = %+v, want %+v", got, inv)
	}
	if clients := l2.ListClients(ctx, ""); len(clients) != 1 || clients[0].Name != "Acme SARL" {
		t.Errorf("reloaded clients = %+v", clients)
	}
	if p := l2.Company(ctx); p.LegalName != "Ma Société" || p.BankName != "BNA" {
		t.Errorf("reloaded company = %+v", p)
	}
	units := l2.Units(ctx)
	if len(units) != 2 || units[0] != "Unité" || units[1] != "Heure" {
		t.Errorf("reloaded units = %v", units)
	}
}

func TestAddUnitDedup(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	for _, label := range []string{"Heure", "Heure", "  Heure  ", ""} {
		if err := l.AddUnit(ctx, label); err != nil {
			t.Fatalf("AddUnit(%q) error = %v", label, err)
		}
	}

	units := l.Units(ctx)
	if len(units) != 2 {
		t.Errorf("units = %v, want [Unité Heure]", units)
	}
}

func TestSummarize(t *testing.T) {
	l, _ := newTestLedger(t)
	c := mustCreateClient(t, l, "Acme SARL")
	ctx := context.Background()

	paid := mustCreateInvoice(t, l, draftInvoice(c.ID)) // 357
	if _, err := l.SetInvoiceStatus(ctx, paid.ID, invoice.StatusPaid); err != nil {
		t.Fatal(err)
	}
	sent := mustCreateInvoice(t, l, draftInvoice(c.ID)) // 357
	if _, err := l.SetInvoiceStatus(ctx, sent.ID, invoice.StatusSent); err != nil {
		t.Fatal(err)
	}
	quote := draftInvoice(c.ID)
	quote.Type = invoice.TypeQuote
	mustCreateInvoice(t, l, quote) // draft, not outstanding

	s := l.Summarize(ctx)
	if s.InvoiceCount != 3 || s.ClientCount != 1 {
		t.Errorf("counts = %d invoices, %d clients", s.InvoiceCount, s.ClientCount)
	}
	if s.CountByType[invoice.TypeInvoice] != 2 || s.CountByType[invoice.TypeQuote] != 1 {
		t.Errorf("CountByType = %v", s.CountByType)
	}
	if !s.PaidTotal.Equal(decimal.NewFromInt(357)) {
		t.Errorf("PaidTotal = %s, want 357", s.PaidTotal)
	}
	if !s.OutstandingTotal.Equal(decimal.NewFromInt(357)) {
		t.Errorf("OutstandingTotal = %s, want 357", s.OutstandingTotal)
	}
	if len(s.Recent) != 3 {
		t.Errorf("Recent = %d, want 3", len(s.Recent))
	}
}

// recorder implements several hook interfaces and records what fired.
type recorder struct {
	events []string
}

func (r *recorder) Name() string { return "recorder" }

func (r *recorder) OnCommit(context.Context) error {
	r.events = append(r.events, "commit")
	return nil
}

func (r *recorder) OnInvoiceCreated(_ context.Context, _ *invoice.Invoice) error {
	r.events = append(r.events, "invoice_created")
	return nil
}

func (r *recorder) OnInvoiceStatusChanged(_ context.Context, _ *invoice.Invoice, _ invoice.Status) error {
	r.events = append(r.events, "status_changed")
	return nil
}

func (r *recorder) OnClientCreated(_ context.Context, _ *client.Client) error {
	r.events = append(r.events, "client_created")
	return nil
}

func TestHooksFireAfterCommit(t *testing.T) {
	rec := &recorder{}
	l, _ := newTestLedger(t, facturo.WithHook(rec))
	ctx := context.Background()

	c := mustCreateClient(t, l, "Acme SARL")
	inv := mustCreateInvoice(t, l, draftInvoice(c.ID))
	if _, err := l.SetInvoiceStatus(ctx, inv.ID, invoice.StatusSent); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"client_created", "commit",
		"invoice_created", "commit",
		"status_changed", "commit",
	}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, rec.events[i], want[i])
		}
	}
}

func TestHooksNotFiredOnRejection(t *testing.T) {
	rec := &recorder{}
	l, _ := newTestLedger(t, facturo.WithHook(rec))

	if _, err := l.CreateInvoice(context.Background(), draftInvoice(id.Nil)); err == nil {
		t.Fatal("expected validation error")
	}
	if len(rec.events) != 0 {
		t.Errorf("events = %v, want none for a rejected save", rec.events)
	}
}

func TestExportTextAndCSV(t *testing.T) {
	l, _ := newTestLedger(t)
	c := mustCreateClient(t, l, "Acme SARL")
	inv := mustCreateInvoice(t, l, draftInvoice(c.ID))
	ctx := context.Background()

	var text strings.Builder
	if err := l.ExportText(ctx, inv.ID, &text); err != nil {
		t.Fatalf("ExportText() error = %v", err)
	}
	if !strings.Contains(text.String(), inv.Number) {
		t.Error("text export missing document number")
	}
	if !strings.Contains(text.String(), "Acme SARL") {
		t.Error("text export missing client name")
	}

	var csvOut strings.Builder
	if err := l.ExportCSV(ctx, inv.ID, &csvOut); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	if !strings.Contains(csvOut.String(), "Consulting") {
		t.Error("csv export missing item description")
	}
}

func TestGetMissing(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	if _, err := l.GetInvoice(ctx, id.NewInvoiceID()); !errors.Is(err, facturo.ErrInvoiceNotFound) {
		t.Errorf("GetInvoice() error = %v, want ErrInvoiceNotFound", err)
	}
	if _, err := l.GetClient(ctx, id.NewClientID()); !errors.Is(err, facturo.ErrClientNotFound) {
		t.Errorf("GetClient() error = %v, want ErrClientNotFound", err)
	}
	if err := l.DeleteInvoice(ctx, id.NewInvoiceID()); !errors.Is(err, facturo.ErrInvoiceNotFound) {
		t.Errorf("DeleteInvoice() error = %v, want ErrInvoiceNotFound", err)
	}
}
