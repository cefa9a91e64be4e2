// Package store implements the JSON snapshot persistence backend: one file
// per entity type, loaded wholesale on open and rewritten wholesale on every
// mutation. There is no journal and no atomic replace; a crash mid-write can
// leave a stale or corrupt file, which is an accepted limitation of the
// deployment (one operator, one process).
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Snapshot is a keyed collection persisted as a single JSON file
type Snapshot[T any] struct {
	path string
	data map[string]T
}

// OpenSnapshot loads the whole file into memory. A missing file starts an
// empty collection.
func OpenSnapshot[T any](dir, name string) (*Snapshot[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	s := &Snapshot[T]{
		path: filepath.Join(dir, name),
		data: make(map[string]T),
	}

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return s, nil
}

// flush rewrites the entire backing file from the in-memory state
func (s *Snapshot[T]) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", s.path, err)
	}
	return nil
}

// Get returns the value stored under key
func (s *Snapshot[T]) Get(key string) (T, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Put stores the value and rewrites the backing file
func (s *Snapshot[T]) Put(key string, v T) error {
	s.data[key] = v
	return s.flush()
}

// Delete removes the key and rewrites the backing file
func (s *Snapshot[T]) Delete(key string) error {
	delete(s.data, key)
	return s.flush()
}

// Has reports whether the key exists
func (s *Snapshot[T]) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Keys returns all keys in sorted order
func (s *Snapshot[T]) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns all values ordered by key
func (s *Snapshot[T]) Values() []T {
	values := make([]T, 0, len(s.data))
	for _, k := range s.Keys() {
		values = append(values, s.data[k])
	}
	return values
}

// Len returns the number of stored entries
func (s *Snapshot[T]) Len() int {
	return len(s.data)
}

// Document is a single value persisted as its own JSON file, used for
// singleton configuration like payroll earnings and deduction settings
type Document[T any] struct {
	path string
}

// OpenDocument prepares a single-value file under dir
func OpenDocument[T any](dir, name string) (*Document[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Document[T]{path: filepath.Join(dir, name)}, nil
}

// Load reads the value; a missing file returns the provided default
func (d *Document[T]) Load(def T) (T, error) {
	raw, err := os.ReadFile(d.path)
	if os.IsNotExist(err) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("loading %s: %w", d.path, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, fmt.Errorf("decoding %s: %w", d.path, err)
	}
	return v, nil
}

// Save rewrites the value
func (d *Document[T]) Save(v T) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", d.path, err)
	}
	if err := os.WriteFile(d.path, raw, 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", d.path, err)
	}
	return nil
}
