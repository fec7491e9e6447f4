package unit

import "context"

// Store persists the unit vocabulary as a single value, whole-value replace
// on every write.
type Store interface {
	Load(ctx context.Context) (Vocabulary, error)
	Replace(ctx context.Context, v Vocabulary) error
}
