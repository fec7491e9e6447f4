package types

import (
	"sort"

	"github.com/xraph/facturo/id"
)

// CustomField is a user-defined label/value pair attached to a client or to
// the company profile, used for jurisdiction-specific identifiers (tax IDs,
// registration numbers). Each field carries its own PDF visibility flag and
// display order.
type CustomField struct {
	ID        id.FieldID `json:"id"`
	Label     string     `json:"label"`
	Value     string     `json:"value"`
	ShowInPDF bool       `json:"show_in_pdf"`
	Order     int        `json:"order"`
}

// FieldLine is a resolved label/value pair ready for rendering under an
// entity's address block.
type FieldLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ResolveFields produces the ordered, filtered list of custom fields to
// print for an entity. Fields hidden from the PDF or with an empty value are
// dropped; the rest are sorted ascending by Order. Equal Order values keep
// their original insertion order.
//
// Both the on-screen preview and the exported document go through this one
// function, so the two can never diverge in content.
func ResolveFields(fields []CustomField) []FieldLine {
	kept := make([]CustomField, 0, len(fields))
	for _, f := range fields {
		if f.ShowInPDF && f.Value != "" {
			kept = append(kept, f)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Order < kept[j].Order
	})

	lines := make([]FieldLine, len(kept))
	for i, f := range kept {
		lines[i] = FieldLine{Label: f.Label, Value: f.Value}
	}
	return lines
}
