// Package store implements the key-value catalog store on Badger.
//
// The catalog holds seeded, read-only entities plus precomputed index lists
// (ordered ids per kind). All values are JSON. A missing key is "absent", not
// an error: multi-gets skip absent entries so dangling references never fail
// a read.
package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Store wraps a Badger database instance holding the catalog.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New opens (or creates) the catalog database at path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Seed writes must survive a crash
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("catalog database opened", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing catalog database")
	}
	return s.db.Close()
}

// Get retrieves the record stored under key.
// Returns ErrNotFound when the key is absent.
func Get[T any](ctx context.Context, s *Store, key string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value T

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get key %q: %w", key, err)
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &value); err != nil {
				return fmt.Errorf("failed to unmarshal value at %q: %w", key, err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// MultiGet retrieves the records stored under keys, in key order, skipping
// absent entries. Callers therefore get len(result) <= len(keys) and must
// tolerate the difference.
func MultiGet[T any](ctx context.Context, s *Store, keys []string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make([]T, 0, len(keys))

	err := s.db.View(func(txn *badger.Txn) error {
		for _, key := range keys {
			item, err := txn.Get([]byte(key))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to get key %q: %w", key, err)
			}

			var value T
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &value)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal value at %q: %w", key, err)
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// GetIndex retrieves an index list. An absent index is an empty catalog, not
// an error.
func (s *Store) GetIndex(ctx context.Context, key string) ([]string, error) {
	ids, err := Get[[]string](ctx, s, key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

// Set stores value under key, replacing any existing record.
// Only the seeding path writes to the catalog.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Exists checks if a key exists.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// KV is one record of a batch write.
type KV struct {
	Key   string
	Value any
}

// SetAllIfAbsent writes all records in a single transaction, but only if none
// of the guard keys exist yet. Returns false without writing when a guard key
// is present. Running the guard check and the writes in one transaction is
// what makes concurrent first-time seeding effectively-once.
func (s *Store) SetAllIfAbsent(ctx context.Context, guards []string, records []KV) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	marshaled := make(map[string][]byte, len(records))
	for _, kv := range records {
		data, err := json.Marshal(kv.Value)
		if err != nil {
			return false, fmt.Errorf("failed to marshal value for %q: %w", kv.Key, err)
		}
		marshaled[kv.Key] = data
	}

	var wrote bool
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, guard := range guards {
			_, err := txn.Get([]byte(guard))
			if err == nil {
				return nil // already populated, leave everything untouched
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("failed to check guard key %q: %w", guard, err)
			}
		}

		for _, kv := range records {
			if err := txn.Set([]byte(kv.Key), marshaled[kv.Key]); err != nil {
				return fmt.Errorf("failed to set key %q: %w", kv.Key, err)
			}
		}
		wrote = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return wrote, nil
}
