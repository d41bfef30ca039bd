// Package kv implements the key-value side store: custom exercise catalog
// entries and lightweight preferences. It sits outside the relational core —
// the catalog service consumes it as an additional lookup source alongside
// the builtin catalog.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"

	"github.com/heartmarshall/mytreino-backend/internal/config"
	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

const (
	customExercisePrefix = "custom-exercise:"
	themeKey             = "pref:theme"
	restSecondsKey       = "pref:rest-seconds"
)

// DefaultTheme is returned when no theme preference has been stored.
const DefaultTheme = "system"

// Store is a Badger-backed key-value store with an explicit open/close
// lifecycle.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store.
func Open(cfg config.KVConfig) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Dir).
		WithInMemory(cfg.InMemory).
		WithLogger(nil)
	if cfg.InMemory {
		opts = opts.WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ---------------------------------------------------------------------------
// Custom exercise catalog entries
// ---------------------------------------------------------------------------

// SaveCustomExercise stores a custom catalog entry under its id.
func (s *Store) SaveCustomExercise(ex domain.CatalogExercise) error {
	raw, err := json.Marshal(ex)
	if err != nil {
		return fmt.Errorf("marshal custom exercise: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(customExercisePrefix+ex.ID), raw)
	})
	if err != nil {
		return fmt.Errorf("save custom exercise %s: %w", ex.ID, err)
	}
	return nil
}

// GetCustomExercise returns one custom catalog entry by id.
func (s *Store) GetCustomExercise(id string) (*domain.CatalogExercise, error) {
	var ex domain.CatalogExercise

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(customExercisePrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &ex)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("custom exercise %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get custom exercise %s: %w", id, err)
	}
	return &ex, nil
}

// ListCustomExercises returns every stored custom catalog entry.
// Entries that fail to decode are skipped: one corrupt value must not hide
// the rest of the custom catalog.
func (s *Store) ListCustomExercises() ([]domain.CatalogExercise, error) {
	out := []domain.CatalogExercise{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(customExercisePrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var ex domain.CatalogExercise
				if err := json.Unmarshal(val, &ex); err != nil {
					return nil // skip corrupt entry
				}
				out = append(out, ex)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list custom exercises: %w", err)
	}
	return out, nil
}

// DeleteCustomExercise removes a custom catalog entry. Deleting a missing id
// is a no-op.
func (s *Store) DeleteCustomExercise(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(customExercisePrefix + id))
	})
	if err != nil {
		return fmt.Errorf("delete custom exercise %s: %w", id, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Preferences
// ---------------------------------------------------------------------------

// Theme returns the stored theme preference, or DefaultTheme when unset.
func (s *Store) Theme() (string, error) {
	val, err := s.getString(themeKey)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return DefaultTheme, nil
		}
		return "", fmt.Errorf("get theme: %w", err)
	}
	return val, nil
}

// SetTheme stores the theme preference.
func (s *Store) SetTheme(theme string) error {
	if err := s.setString(themeKey, theme); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}

// RestSeconds returns the stored rest-timer preference, or fallback when
// unset or unparseable.
func (s *Store) RestSeconds(fallback int) (int, error) {
	val, err := s.getString(restSecondsKey)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fallback, nil
		}
		return 0, fmt.Errorf("get rest seconds: %w", err)
	}

	seconds, err := strconv.Atoi(val)
	if err != nil || seconds <= 0 {
		return fallback, nil
	}
	return seconds, nil
}

// SetRestSeconds stores the rest-timer preference.
func (s *Store) SetRestSeconds(seconds int) error {
	if seconds <= 0 {
		return domain.NewValidationError("rest_seconds", "must be positive")
	}
	if err := s.setString(restSecondsKey, strconv.Itoa(seconds)); err != nil {
		return fmt.Errorf("set rest seconds: %w", err)
	}
	return nil
}

func (s *Store) getString(key string) (string, error) {
	var out string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = string(val)
			return nil
		})
	})
	return out, err
}

func (s *Store) setString(key, val string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(val))
	})
}
