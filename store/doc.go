// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the document-store abstraction behind the election
services.

The election core never talks to a database engine directly; it depends on the
Store interface and receives a concrete driver at startup:

  - sqlstore: JSON documents in a SQL table (sqlite or postgres). The default,
    and what tests run against (in-memory sqlite).
  - dynamo: DynamoDB via aws-sdk-go-v2, using conditional expressions for the
    insert-if-absent and exists-guarded update semantics.

# Operations

	Get(ctx, table, key)              → doc | ErrNotFound
	Put(ctx, table, key, doc)         → upsert
	PutIfAbsent(ctx, table, key, doc) → ErrAlreadyExists if key taken (atomic)
	Update(ctx, table, key, fields)   → updated doc | ErrNotFound
	Scan(ctx, table)                  → all docs

PutIfAbsent is the load-bearing operation: the voting service keys vote records
by userId and relies on the conditional write to reject a concurrent duplicate,
rather than on a separate read-then-write.

# Errors

Drivers map engine errors onto ErrNotFound / ErrAlreadyExists and wrap
everything else, so callers can classify failures with errors.Is.
*/
package store
