package types

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Monetary amounts are stored as exact decimals (shopspring/decimal) at full
// precision. Rounding happens only at display time: two fixed fraction digits
// with locale-specific thousands grouping, currency label appended.
//
// The defaults match the locale the application shipped with: French-style
// grouping and the "DA" (Algerian dinar) label.

// DefaultLocale is the display locale used when none is configured.
var DefaultLocale = language.French

// DefaultCurrency is the currency label used when none is configured.
const DefaultCurrency = "DA"

// MoneyFormatter renders decimal amounts for on-screen and exported documents.
// The same formatter instance must be used for both so the two never diverge.
type MoneyFormatter struct {
	printer  *message.Printer
	currency string
}

// NewMoneyFormatter creates a formatter for the given locale and currency
// label. The label is appended after the amount ("1 234,50 DA").
func NewMoneyFormatter(tag language.Tag, currency string) *MoneyFormatter {
	return &MoneyFormatter{
		printer:  message.NewPrinter(tag),
		currency: currency,
	}
}

// Format renders d with thousands grouping and exactly two fraction digits,
// followed by the currency label.
func (f *MoneyFormatter) Format(d decimal.Decimal) string {
	return f.printer.Sprintf("%v %s", f.decimal(d), f.currency)
}

// FormatBare renders d like Format but without the currency label.
func (f *MoneyFormatter) FormatBare(d decimal.Decimal) string {
	return f.printer.Sprintf("%v", f.decimal(d))
}

// FormatPercent renders a tax rate as a bare percentage ("19%").
// Rates are entered as whole-number-friendly decimals; trailing zeros are
// not padded.
func (f *MoneyFormatter) FormatPercent(d decimal.Decimal) string {
	return d.String() + "%"
}

// decimal converts through float64, which is exact up to 2^53 in display
// units. Amounts beyond that lose digits here; stored values are unaffected.
func (f *MoneyFormatter) decimal(d decimal.Decimal) number.Formatter {
	return number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)
}

// Sum adds a list of decimal values. The zero value is returned for an
// empty list.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
