package client

import "context"

// Store persists the client collection as a single value with
// whole-collection replace semantics.
type Store interface {
	Load(ctx context.Context) ([]*Client, error)
	Replace(ctx context.Context, clients []*Client) error
}
