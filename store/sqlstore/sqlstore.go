// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"

	"github.com/danielhkuo/campus-vote/store"
)

// validTable guards against interpolating arbitrary strings into DDL/DML.
// Table names come from configuration, not request input, but checking is cheap.
var validTable = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store keeps one SQL table per logical table, each row holding the primary
// key and the full document as JSON text. Works against sqlite
// (modernc.org/sqlite) and postgres (lib/pq); both accept $1 placeholders and
// ON CONFLICT clauses.
type Store struct {
	db *sql.DB

	mu      sync.Mutex
	created map[string]bool
}

// Open connects via database/sql and verifies the connection. The driver must
// be registered by the caller ("sqlite" or "postgres").
func Open(driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return New(db), nil
}

// New wraps an existing database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db, created: make(map[string]bool)}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ensureTable lazily creates the backing table. Safe to call repeatedly.
func (s *Store) ensureTable(ctx context.Context, table string) error {
	if !validTable.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.created[table] {
		return nil
	}

	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			k TEXT PRIMARY KEY,
			doc TEXT NOT NULL
		)
	`, table))
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	s.created[table] = true
	return nil
}

func (s *Store) Get(ctx context.Context, table, key string) (json.RawMessage, error) {
	if err := s.ensureTable(ctx, table); err != nil {
		return nil, err
	}

	var doc []byte
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT doc FROM %s WHERE k = $1
	`, table), key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", table, key, err)
	}
	return doc, nil
}

func (s *Store) Put(ctx context.Context, table, key string, doc json.RawMessage) error {
	if err := s.ensureTable(ctx, table); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (k, doc) VALUES ($1, $2)
		ON CONFLICT (k) DO UPDATE SET doc = excluded.doc
	`, table), key, string(doc))
	if err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", table, key, err)
	}
	return nil
}

func (s *Store) PutIfAbsent(ctx context.Context, table, key string, doc json.RawMessage) error {
	if err := s.ensureTable(ctx, table); err != nil {
		return err
	}

	// The conditional insert is the atomicity guarantee: the primary key
	// constraint decides the race, not a prior read.
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (k, doc) VALUES ($1, $2)
		ON CONFLICT (k) DO NOTHING
	`, table), key, string(doc))
	if err != nil {
		return fmt.Errorf("failed to insert %s/%s: %w", table, key, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for %s/%s: %w", table, key, err)
	}
	if rows == 0 {
		return store.ErrAlreadyExists
	}
	return nil
}

func (s *Store) Update(ctx context.Context, table, key string, fields map[string]any) (json.RawMessage, error) {
	if err := s.ensureTable(ctx, table); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var raw []byte
	err = tx.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT doc FROM %s WHERE k = $1
	`, table), key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s for update: %w", table, key, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s/%s: %w", table, key, err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	updated, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document %s/%s: %w", table, key, err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`
		UPDATE %s SET doc = $1 WHERE k = $2
	`, table), string(updated), key); err != nil {
		return nil, fmt.Errorf("failed to update %s/%s: %w", table, key, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit update of %s/%s: %w", table, key, err)
	}
	return updated, nil
}

func (s *Store) Scan(ctx context.Context, table string) ([]json.RawMessage, error) {
	if err := s.ensureTable(ctx, table); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT doc FROM %s
	`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", table, err)
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan row in %s: %w", table, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}
	return docs, nil
}

var _ store.Store = (*Store)(nil)
