// Package facturo provides an embeddable invoicing engine for Go applications.
//
// Facturo is designed as a library, not a service. Import it directly into
// your application; it provides:
//
//   - Billing documents: invoices, proformas, quotes, and credit notes
//   - Sequential document numbering per type (FAC/PRO/DEV/AVO)
//   - Exact decimal totals with tax, recomputed on every edit
//   - Client records and a company profile with custom legal fields
//   - Document export as paginated text or CSV
//   - Pluggable persistence (in-memory and SQLite built in)
//   - Observer hooks fired after every committed mutation
//
// # Quick Start
//
// Create a ledger instance with your preferred store:
//
//	import (
//	    "github.com/xraph/facturo"
//	    "github.com/xraph/facturo/store/sqlite"
//	)
//
//	// Initialize store
//	st, err := sqlite.Open("facturo.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create the ledger
//	l, err := facturo.New(st)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Start it (runs migrations, loads persisted state)
//	if err := l.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Stop(ctx)
//
// # Core Concepts
//
// Clients are the parties documents are issued to:
//
//	c, err := l.CreateClient(ctx, &client.Client{Name: "Acme SARL"})
//
// Invoices carry line items; totals and the document number are assigned on
// create:
//
//	inv, err := l.CreateInvoice(ctx, &invoice.Invoice{
//	    Type:     invoice.TypeInvoice,
//	    ClientID: c.ID,
//	    Items: []invoice.Item{{
//	        Description: "Consulting",
//	        Quantity:    decimal.NewFromInt(3),
//	        UnitPrice:   decimal.NewFromInt(100),
//	        TaxRate:     decimal.NewFromInt(19),
//	    }},
//	})
//
// Export renders through the same resolution path as the preview:
//
//	err = l.ExportText(ctx, inv.ID, os.Stdout)
//
// Hooks observe committed mutations; register them with WithHook or
// RegisterHook. See the hook package for the available interfaces.
package facturo
