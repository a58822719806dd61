// Package storage provides the durable key-value snapshot backends used by
// the cart and wishlist stores. Values are opaque strings; each store owns
// its keys and treats the backend as a best-effort mirror of its in-memory
// state, reloaded only at startup.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists for the key
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is a string-valued key-value store
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
