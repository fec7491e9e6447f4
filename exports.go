package facturo

import "github.com/xraph/facturo/types"

// Re-export common types for convenience so users don't have to import the
// types package.

// Entity is re-exported from the types package.
type Entity = types.Entity

// CustomField is re-exported from the types package.
type CustomField = types.CustomField

// FieldLine is re-exported from the types package.
type FieldLine = types.FieldLine

// MoneyFormatter is re-exported from the types package.
type MoneyFormatter = types.MoneyFormatter

// Re-export constructors and helpers.
var (
	NewEntity         = types.NewEntity
	NewMoneyFormatter = types.NewMoneyFormatter
	ResolveFields     = types.ResolveFields
	Sum               = types.Sum
)
