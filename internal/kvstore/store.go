// Package kvstore defines the opaque key-value persistence boundary
// spec.md §6 requires: the core never opens a database itself, it is
// handed a Store by the host. This package provides that interface plus
// two implementations: Memory (tests, in-process callers) and SQLite (a
// pure-Go, no-cgo adapter for cmd/netplan's scenario persistence).
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key is absent from the namespace.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the opaque persistence boundary. Namespace groups keys (this
// engine uses "scenarios" for cmd/netplan's scenario save/load); Get/Put/
// List/Delete all operate within a single namespace.
type Store interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Put(ctx context.Context, namespace, key string, value []byte) error
	List(ctx context.Context, namespace string) ([]string, error)
	Delete(ctx context.Context, namespace, key string) error
	Close() error
}
