// Package client defines the customer records invoices are issued to.
package client

import (
	"github.com/xraph/facturo/id"
	"github.com/xraph/facturo/types"
)

// Client is a customer of the issuing business. All display fields are
// optional; only the ID is required and unique. CustomFields holds
// jurisdiction-specific identifiers with independent PDF visibility and
// display order.
type Client struct {
	types.Entity
	ID           id.ClientID         `json:"id"`
	Name         string              `json:"name,omitempty"`
	Email        string              `json:"email,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	Address      string              `json:"address,omitempty"`
	City         string              `json:"city,omitempty"`
	PostalCode   string              `json:"postal_code,omitempty"`
	CustomFields []types.CustomField `json:"custom_fields,omitempty"`
}
