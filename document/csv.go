package document

import (
	"context"
	"encoding/csv"
	"io"
)

// CSV renders the item table of a document as comma-separated values, one
// row per line item plus a header and a trailing totals section. Intended
// for spreadsheet import; the address blocks are not included.
type CSV struct{}

// NewCSV creates a CSV formatter.
func NewCSV() *CSV { return &CSV{} }

// Name implements Formatter.
func (c *CSV) Name() string { return "csv" }

// Render writes the CSV document to w.
func (c *CSV) Render(ctx context.Context, doc *Document, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	// Every record carries five fields so the output is rectangular and
	// imports cleanly into a spreadsheet.
	records := [][]string{
		{"document", doc.Title, doc.Number, doc.CreatedDate.Format(dateLayout), ""},
		{"description", "quantite", "prix_unitaire", "tva", "total_ligne"},
	}
	for _, r := range doc.Rows {
		records = append(records, []string{r.Description, r.Quantity, r.UnitPrice, r.TaxRate, r.LineTotal})
	}
	records = append(records,
		[]string{"sous_total", "", "", "", doc.Subtotal},
		[]string{"tva_totale", "", "", "", doc.TotalTax},
		[]string{"total_ttc", "", "", "", doc.GrandTotal},
	)

	for _, record := range records {
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
