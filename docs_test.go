package facturo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/xraph/facturo"
	"github.com/xraph/facturo/client"
	"github.com/xraph/facturo/company"
	"github.com/xraph/facturo/invoice"
	"github.com/xraph/facturo/store/memory"
)

// TestDocumentationExamples verifies that the examples in the documentation
// compile and run.
func TestDocumentationExamples(t *testing.T) {
	// Quick Start example from the package documentation.
	t.Run("QuickStartExample", func(t *testing.T) {
		// Create store (memory for demo, use sqlite.Open in production)
		st := memory.New()

		// Create the ledger
		l, err := facturo.New(st,
			facturo.WithLogger(slog.Default()),
			facturo.WithCurrency("DA"),
		)
		if err != nil {
			t.Fatal(err)
		}

		// Start it (runs migrations, loads persisted state)
		ctx := context.Background()
		if err := l.Start(ctx); err != nil {
			t.Fatal(err)
		}
		defer l.Stop(ctx)

		// Describe the issuing business
		if _, err := l.UpdateCompany(ctx, &company.Profile{
			OwnerName: "Karim Benali",
			LegalName: "Benali Informatique EURL",
			City:      "Alger",
			BankName:  "BNA",
		}); err != nil {
			t.Fatal(err)
		}

		// Create a client
		c, err := l.CreateClient(ctx, &client.Client{
			Name:  "Acme SARL",
			Email: "contact@acme.example",
			City:  "Oran",
		})
		if err != nil {
			t.Fatal(err)
		}

		// Create an invoice; number and totals are assigned on create
		inv, err := l.CreateInvoice(ctx, &invoice.Invoice{
			Type:     invoice.TypeInvoice,
			ClientID: c.ID,
			Items: []invoice.Item{{
				Description: "Consulting",
				Quantity:    decimal.NewFromInt(3),
				UnitPrice:   decimal.NewFromInt(100),
				TaxRate:     decimal.NewFromInt(19),
			}},
		})
		if err != nil {
			t.Fatal(err)
		}
		if inv.Number == "" {
			t.Fatal("expected an assigned document number")
		}

		// Mark it sent, then export it
		if _, err := l.SetInvoiceStatus(ctx, inv.ID, invoice.StatusSent); err != nil {
			t.Fatal(err)
		}
		if err := l.ExportText(ctx, inv.ID, io.Discard); err != nil {
			t.Fatal(err)
		}

		// Dashboard figures
		summary := l.Summarize(ctx)
		if summary.InvoiceCount != 1 || summary.ClientCount != 1 {
			t.Fatalf("summary = %+v", summary)
		}
	})
}
