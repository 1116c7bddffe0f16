// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrNotFound is returned by Get and Update when no document exists
	// under the given key. Drivers translate engine-specific sentinels
	// (sql.ErrNoRows, ConditionalCheckFailed) onto it.
	ErrNotFound = errors.New("document not found")

	// ErrAlreadyExists is returned by PutIfAbsent when a document already
	// exists under the given key. This is the result of losing the
	// conditional write, not a system fault.
	ErrAlreadyExists = errors.New("document already exists")
)

// Store is the persistence abstraction shared by all backends. Documents
// travel as JSON; each logical table has a single string primary key chosen
// by the caller (candidate id, voter userId).
//
// Any error that is not ErrNotFound or ErrAlreadyExists is an underlying
// storage failure and must be surfaced to the caller, never swallowed.
type Store interface {
	// Get returns the document stored under key, or ErrNotFound.
	Get(ctx context.Context, table, key string) (json.RawMessage, error)

	// Put writes the document under key, replacing any existing document.
	Put(ctx context.Context, table, key string, doc json.RawMessage) error

	// PutIfAbsent atomically writes the document only if no document
	// exists under key, returning ErrAlreadyExists otherwise. This is the
	// one correctness-critical operation: vote records rely on it for
	// duplicate prevention under concurrent writes.
	PutIfAbsent(ctx context.Context, table, key string, doc json.RawMessage) error

	// Update merges the given top-level fields into the document under key
	// and returns the updated document, or ErrNotFound if absent.
	Update(ctx context.Context, table, key string, fields map[string]any) (json.RawMessage, error)

	// Scan returns every document in the table, in no particular order.
	Scan(ctx context.Context, table string) ([]json.RawMessage, error)

	// Close releases the underlying connections.
	Close() error
}
