package document

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	defaultWidth        = 80
	defaultLinesPerPage = 60

	dateLayout = "02/01/2006"
)

// Text renders a document as paginated fixed-width text. The layout column
// rules are: description left-aligned, quantity and tax rate centered,
// monetary columns right-aligned.
type Text struct {
	width        int
	linesPerPage int
}

// NewText creates a text formatter with the default page geometry.
func NewText() *Text {
	return &Text{width: defaultWidth, linesPerPage: defaultLinesPerPage}
}

// Name implements Formatter.
func (t *Text) Name() string { return "text" }

// Render writes the paginated text document to w.
func (t *Text) Render(ctx context.Context, doc *Document, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := t.layout(doc)
	pages := paginate(lines, t.linesPerPage-1)

	for i, page := range pages {
		if i > 0 {
			if _, err := io.WriteString(w, "\f"); err != nil {
				return err
			}
		}
		for _, line := range page {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
		footer := fmt.Sprintf("Page %d/%d", i+1, len(pages))
		if _, err := io.WriteString(w, padLeft(footer, t.width)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (t *Text) layout(doc *Document) []string {
	var lines []string

	lines = append(lines, center(doc.Title, t.width))
	lines = append(lines, center(doc.Number, t.width))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Date : %s", doc.CreatedDate.Format(dateLayout)))
	if !doc.DueDate.IsZero() {
		lines = append(lines, fmt.Sprintf("Échéance : %s", doc.DueDate.Format(dateLayout)))
	}
	lines = append(lines, "")

	lines = append(lines, partyLines(doc.Issuer)...)
	lines = append(lines, "", "Facturé à :")
	lines = append(lines, partyLines(doc.Recipient)...)
	lines = append(lines, "")

	lines = append(lines, t.table(doc)...)
	lines = append(lines, "")

	lines = append(lines, padLeft("Sous-total : "+doc.Subtotal, t.width))
	lines = append(lines, padLeft("TVA : "+doc.TotalTax, t.width))
	lines = append(lines, padLeft("Total TTC : "+doc.GrandTotal, t.width))

	if doc.Notes != "" {
		lines = append(lines, "", "Notes :")
		lines = append(lines, wrap(doc.Notes, t.width)...)
	}
	if doc.Terms != "" {
		lines = append(lines, "", "Conditions :")
		lines = append(lines, wrap(doc.Terms, t.width)...)
	}
	if doc.BankName != "" || doc.BankAccount != "" {
		lines = append(lines, "")
		if doc.BankName != "" {
			lines = append(lines, "Banque : "+doc.BankName)
		}
		if doc.BankAccount != "" {
			lines = append(lines, "RIB : "+doc.BankAccount)
		}
	}

	return lines
}

func partyLines(p Party) []string {
	lines := append([]string(nil), p.Lines...)
	for _, f := range p.Fields {
		lines = append(lines, f.Label+" : "+f.Value)
	}
	return lines
}

// table lays out the item rows under a header, sizing each trailing column
// to its widest cell and giving the description the rest of the page width.
func (t *Text) table(doc *Document) []string {
	currency := doc.Currency
	headers := [5]string{
		"Description",
		"Qté",
		"P.U. (" + currency + ")",
		"TVA",
		"Total (" + currency + ")",
	}

	var widths [5]int
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range doc.Rows {
		cells := [5]string{r.Description, r.Quantity, r.UnitPrice, r.TaxRate, r.LineTotal}
		for i := 1; i < 5; i++ {
			if n := utf8.RuneCountInString(cells[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}

	// The description column absorbs whatever width the page has left.
	fixed := widths[1] + widths[2] + widths[3] + widths[4] + 4*2
	if desc := t.width - fixed; desc > widths[0] {
		widths[0] = desc
	}

	formatRow := func(cells [5]string) string {
		return padRight(cells[0], widths[0]) + "  " +
			center(cells[1], widths[1]) + "  " +
			padLeft(cells[2], widths[2]) + "  " +
			center(cells[3], widths[3]) + "  " +
			padLeft(cells[4], widths[4])
	}

	lines := []string{
		formatRow(headers),
		strings.Repeat("-", widths[0]+widths[1]+widths[2]+widths[3]+widths[4]+4*2),
	}
	for _, r := range doc.Rows {
		desc := wrap(r.Description, widths[0])
		lines = append(lines, formatRow([5]string{desc[0], r.Quantity, r.UnitPrice, r.TaxRate, r.LineTotal}))
		for _, cont := range desc[1:] {
			lines = append(lines, formatRow([5]string{cont, "", "", "", ""}))
		}
	}
	return lines
}

func paginate(lines []string, perPage int) [][]string {
	if perPage < 1 {
		perPage = 1
	}
	var pages [][]string
	for start := 0; start < len(lines); start += perPage {
		end := min(start+perPage, len(lines))
		pages = append(pages, lines[start:end])
	}
	if len(pages) == 0 {
		pages = [][]string{{}}
	}
	return pages
}

func padRight(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func center(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// wrap splits s into lines of at most width runes, breaking on spaces where
// possible. It always returns at least one line.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for utf8.RuneCountInString(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
