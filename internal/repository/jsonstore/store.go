// Package jsonstore persists all help-centre content as whole JSON documents
// on disk. Writes replace the full document (last-write-wins); reads go
// through a short-lived in-memory cache.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	cacheTTL     = time.Minute
	cacheCleanup = 5 * time.Minute
)

// Store is the shared document store rooted at a data directory.
type Store struct {
	dir   string
	mu    sync.RWMutex
	cache *gocache.Cache
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{
		dir:   dir,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}, nil
}

// readDoc unmarshals the named document into v. A missing document is
// reported as os.ErrNotExist so callers can decide between empty-default and
// not-found semantics.
func (s *Store) readDoc(name string, v interface{}) error {
	if raw, ok := s.cache.Get(name); ok {
		return json.Unmarshal(raw.([]byte), v)
	}

	s.mu.RLock()
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	s.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return err
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	s.cache.SetDefault(name, data)
	return json.Unmarshal(data, v)
}

// writeDoc atomically replaces the named document: temp file in the same
// directory, write, fsync, rename. Either the old document survives intact or
// the new one is fully written.
func (s *Store) writeDoc(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "doc-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}

	s.cache.SetDefault(name, data)
	return nil
}

// readSlice reads a document holding a JSON array; a missing document yields
// an empty slice.
func readSlice[T any](s *Store, name string) ([]T, error) {
	var items []T
	if err := s.readDoc(name, &items); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
