package company

import "context"

// Store persists the single company profile record, whole-value replace on
// every write.
type Store interface {
	Load(ctx context.Context) (*Profile, error)
	Replace(ctx context.Context, p *Profile) error
}
