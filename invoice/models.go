// Package invoice defines invoice documents, their line items, and the
// derived computations that keep them consistent: line totals, invoice
// totals, and document numbering.
package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xraph/facturo/id"
	"github.com/xraph/facturo/types"
)

// DocumentType selects the kind of billing document and its numbering prefix.
type DocumentType string

const (
	TypeInvoice    DocumentType = "invoice"
	TypeProforma   DocumentType = "proforma"
	TypeQuote      DocumentType = "quote"
	TypeCreditNote DocumentType = "credit_note"
)

// numberPrefixes carries the legacy three-letter prefixes so document
// numbers issued before the rewrite stay coherent with new ones.
var numberPrefixes = map[DocumentType]string{
	TypeInvoice:    "FAC",
	TypeProforma:   "PRO",
	TypeQuote:      "DEV",
	TypeCreditNote: "AVO",
}

// Valid reports whether t is one of the four known document types.
func (t DocumentType) Valid() bool {
	_, ok := numberPrefixes[t]
	return ok
}

// Prefix returns the numbering prefix for this document type.
func (t DocumentType) Prefix() string {
	return numberPrefixes[t]
}

// Types lists all document types in display order.
func Types() []DocumentType {
	return []DocumentType{TypeInvoice, TypeProforma, TypeQuote, TypeCreditNote}
}

// Status is a flat label on an invoice. Any status may be assigned at any
// time; there is deliberately no transition graph.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusOverdue   Status = "overdue"
)

// Valid reports whether s is one of the five known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusCancelled, StatusOverdue:
		return true
	}
	return false
}

// Statuses lists all statuses in display order.
func Statuses() []Status {
	return []Status{StatusDraft, StatusSent, StatusPaid, StatusCancelled, StatusOverdue}
}

// Item is a single invoice line. LineTotal is derived from the other fields
// and is never authoritative; ComputeTotal must run after any edit.
type Item struct {
	ID          id.LineItemID   `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitLabel   string          `json:"unit_label,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"` // percent
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Net returns quantity * unit price, before tax.
func (it Item) Net() decimal.Decimal {
	return it.Quantity.Mul(it.UnitPrice)
}

// Tax returns the tax amount for this line: net * rate / 100.
func (it Item) Tax() decimal.Decimal {
	return it.Net().Mul(it.TaxRate).Div(decimal.NewFromInt(100))
}

// ComputeTotal recomputes LineTotal from the authoritative fields:
// quantity*unitPrice + quantity*unitPrice*(taxRate/100).
func (it *Item) ComputeTotal() {
	it.LineTotal = it.Net().Add(it.Tax())
}

// Invoice is a billing document. ClientID may dangle if the referenced
// client was later deleted; rendering falls back to an unknown-client
// placeholder rather than failing.
type Invoice struct {
	types.Entity
	ID       id.InvoiceID `json:"id"`
	Number   string       `json:"number"`
	Type     DocumentType `json:"type"`
	Status   Status       `json:"status"`
	ClientID id.ClientID  `json:"client_id"`
	DueDate  time.Time    `json:"due_date"`
	Items    []Item       `json:"items"`

	// Derived monetary fields, recomputed and stored atomically whenever
	// Items changes.
	Subtotal   decimal.Decimal `json:"subtotal"`
	TotalTax   decimal.Decimal `json:"total_tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`

	Notes string `json:"notes,omitempty"`
	Terms string `json:"terms,omitempty"`
}

// RecomputeTotals recomputes every line total and the three derived invoice
// fields from the current items. It is a pure function of Items: running it
// twice yields identical results.
func (inv *Invoice) RecomputeTotals() {
	subtotal := decimal.Zero
	totalTax := decimal.Zero

	for i := range inv.Items {
		inv.Items[i].ComputeTotal()
		subtotal = subtotal.Add(inv.Items[i].Net())
		totalTax = totalTax.Add(inv.Items[i].Tax())
	}

	inv.Subtotal = subtotal
	inv.TotalTax = totalTax
	inv.GrandTotal = subtotal.Add(totalTax)
}

// NextNumber assigns the human-readable number for the next document of the
// given type: {PREFIX}-{YYYY}-{NNNN}, where the sequence is the count of
// existing documents of that exact type plus one.
//
// The sequence is count-based, not a persisted counter, and ignores the year
// of existing documents. Deleting a document of a type therefore makes the
// next generated number collide with an existing one. This reproduces the
// historical numbering policy on purpose; see DESIGN.md before changing it.
func NextNumber(existing []*Invoice, t DocumentType, year int) string {
	count := 0
	for _, inv := range existing {
		if inv.Type == t {
			count++
		}
	}
	return fmt.Sprintf("%s-%d-%04d", t.Prefix(), year, count+1)
}
