// Package unit holds the vocabulary of free-text unit labels offered when
// authoring line items.
package unit

// Vocabulary is an append-only, ordered set of unit labels ("Unité",
// "Heure", "Kg", ...). Labels are deduplicated by exact string match only.
type Vocabulary []string

// Default returns the vocabulary shipped on first run.
func Default() Vocabulary {
	return Vocabulary{"Unité"}
}

// Contains reports whether label is already present (exact match).
func (v Vocabulary) Contains(label string) bool {
	for _, u := range v {
		if u == label {
			return true
		}
	}
	return false
}

// Add appends label unless it is already present. The second return value
// reports whether the vocabulary grew.
func (v Vocabulary) Add(label string) (Vocabulary, bool) {
	if label == "" || v.Contains(label) {
		return v, false
	}
	return append(v, label), true
}
