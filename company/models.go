// Package company defines the single profile record describing the issuing
// business.
package company

import "github.com/xraph/facturo/types"

// Profile describes the business issuing documents. Exactly one instance
// exists per deployment: it is created with empty defaults on first run,
// mutated in place, and never deleted.
//
// On documents the owner name prints above the legal name in the issuer
// block.
type Profile struct {
	types.Entity
	OwnerName  string `json:"owner_name,omitempty"`
	LegalName  string `json:"legal_name,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Website    string `json:"website,omitempty"`

	// Logo is an inline-encoded image (data URI), empty when unset.
	Logo string `json:"logo,omitempty"`

	// Capital is the declared share capital, free text.
	Capital string `json:"capital,omitempty"`

	// Bank details printed in the document footer when present.
	BankName    string `json:"bank_name,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`

	CustomFields []types.CustomField `json:"custom_fields,omitempty"`
}

// DefaultProfile returns the empty profile used on first run or when the
// stored record is absent or unreadable.
func DefaultProfile() *Profile {
	return &Profile{Entity: types.NewEntity()}
}
