// Package document turns an invoice and its related records into a
// read-only snapshot and renders it.
//
// Resolution happens once, up front: the snapshot carries every string that
// will appear in the output, already formatted. Formatters only lay the
// strings out, so the on-screen preview and the exported file can never
// diverge in content.
package document

import (
	"context"
	"io"
	"time"

	"github.com/xraph/facturo/client"
	"github.com/xraph/facturo/company"
	"github.com/xraph/facturo/invoice"
	"github.com/xraph/facturo/types"
)

// UnknownClient is the recipient placeholder printed when the invoice's
// client reference no longer resolves. A dangling reference is a rendering
// fallback, not an error.
const UnknownClient = "Client inconnu"

// titles maps each document type to its printed title.
var titles = map[invoice.DocumentType]string{
	invoice.TypeInvoice:    "FACTURE",
	invoice.TypeProforma:   "FACTURE PROFORMA",
	invoice.TypeQuote:      "DEVIS",
	invoice.TypeCreditNote: "AVOIR",
}

// Title returns the printed title for a document type.
func Title(t invoice.DocumentType) string {
	return titles[t]
}

// Party is one address block: the issuer or the recipient. Lines hold the
// name/address/contact lines in print order; Fields hold the resolved custom
// fields printed underneath.
type Party struct {
	Lines  []string
	Fields []types.FieldLine
}

// Row is one rendered line-item row. All cells are display strings; the
// monetary cells carry no currency label (the table header names it once).
type Row struct {
	Description string
	Quantity    string
	UnitPrice   string
	TaxRate     string
	LineTotal   string
}

// Document is the fully resolved, render-ready snapshot of one invoice.
type Document struct {
	Title       string
	Number      string
	CreatedDate time.Time
	DueDate     time.Time

	Issuer    Party
	Recipient Party

	Rows []Row

	Subtotal   string
	TotalTax   string
	GrandTotal string

	Notes string
	Terms string

	// Bank details footer, empty when the profile has none.
	BankName    string
	BankAccount string

	// Currency label, for table headers.
	Currency string
}

// Formatter renders a resolved document to a writer. Implementations are
// named so callers can pick an output format by string.
type Formatter interface {
	Name() string
	Render(ctx context.Context, doc *Document, w io.Writer) error
}

// Resolve builds the render-ready snapshot for inv. c is the referenced
// client, or nil when the reference dangles; the recipient block then shows
// the unknown-client placeholder. p must be non-nil (the profile always
// exists, empty by default). f formats every monetary cell.
func Resolve(inv *invoice.Invoice, c *client.Client, p *company.Profile, f *types.MoneyFormatter, currency string) *Document {
	doc := &Document{
		Title:       Title(inv.Type),
		Number:      inv.Number,
		CreatedDate: inv.CreatedAt,
		DueDate:     inv.DueDate,
		Notes:       inv.Notes,
		Terms:       inv.Terms,
		BankName:    p.BankName,
		BankAccount: p.BankAccount,
		Currency:    currency,
	}

	doc.Issuer = issuerParty(p)
	doc.Recipient = recipientParty(c)

	doc.Rows = make([]Row, len(inv.Items))
	for i, it := range inv.Items {
		doc.Rows[i] = Row{
			Description: it.Description,
			Quantity:    quantityCell(it),
			UnitPrice:   f.FormatBare(it.UnitPrice),
			TaxRate:     f.FormatPercent(it.TaxRate),
			LineTotal:   f.FormatBare(it.LineTotal),
		}
	}

	doc.Subtotal = f.Format(inv.Subtotal)
	doc.TotalTax = f.Format(inv.TotalTax)
	doc.GrandTotal = f.Format(inv.GrandTotal)

	return doc
}

// issuerParty lays out the company block: owner name above the legal name,
// then address and contact lines, then the resolved custom fields.
func issuerParty(p *company.Profile) Party {
	var party Party

	appendLine(&party, p.OwnerName)
	appendLine(&party, p.LegalName)
	appendLine(&party, p.Address)
	appendLine(&party, cityLine(p.PostalCode, p.City))
	appendLine(&party, p.Phone)
	appendLine(&party, p.Email)
	appendLine(&party, p.Website)
	if p.Capital != "" {
		appendLine(&party, "Capital social : "+p.Capital)
	}

	party.Fields = types.ResolveFields(p.CustomFields)
	return party
}

// recipientParty lays out the client block, or the placeholder when the
// client no longer exists.
func recipientParty(c *client.Client) Party {
	if c == nil {
		return Party{Lines: []string{UnknownClient}}
	}

	var party Party
	name := c.Name
	if name == "" {
		name = UnknownClient
	}
	appendLine(&party, name)
	appendLine(&party, c.Address)
	appendLine(&party, cityLine(c.PostalCode, c.City))
	appendLine(&party, c.Phone)
	appendLine(&party, c.Email)

	party.Fields = types.ResolveFields(c.CustomFields)
	return party
}

func appendLine(p *Party, line string) {
	if line != "" {
		p.Lines = append(p.Lines, line)
	}
}

func cityLine(postalCode, city string) string {
	switch {
	case postalCode == "":
		return city
	case city == "":
		return postalCode
	}
	return postalCode + " " + city
}

// quantityCell renders the quantity with its unit label when one is set.
func quantityCell(it invoice.Item) string {
	if it.UnitLabel == "" {
		return it.Quantity.String()
	}
	return it.Quantity.String() + " " + it.UnitLabel
}
