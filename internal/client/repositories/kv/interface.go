// Package kv implements the client's persistent key-value store: a SQLite
// table for real use and an in-memory map for tests.
package kv

import (
	"context"
)

// Repository is a byte-valued key-value store.
//
// Get returns (nil, nil) when the key is absent. Set overwrites. Delete and
// Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	// InTx runs fn against a view of the store whose writes become visible
	// together or not at all.
	InTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
