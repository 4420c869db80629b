// Package index persists which calendar event belongs to which task key, so
// repeated exports patch events instead of searching for them.
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileName is the index file kept in the configuration directory.
const FileName = "events.json"

// EventIndex maps task keys to event IDs. It is safe for concurrent use.
type EventIndex struct {
	path     string
	mu       sync.RWMutex
	mappings map[string]string
	dirty    bool
}

// NewEventIndex opens the index at path. A missing file is an empty index.
func NewEventIndex(path string) (*EventIndex, error) {
	idx := &EventIndex{path: path, mappings: make(map[string]string)}
	if err := idx.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return idx, nil
}

// Path returns the file backing the index.
func (idx *EventIndex) Path() string { return idx.path }

// Load replaces the in-memory mappings with the file contents.
func (idx *EventIndex) Load() error {
	data, err := os.ReadFile(idx.path)
	if err != nil {
		return err
	}
	mappings := make(map[string]string)
	if err := json.Unmarshal(data, &mappings); err != nil {
		return fmt.Errorf("failed to decode event index %s: %w", idx.path, err)
	}
	idx.mu.Lock()
	idx.mappings = mappings
	idx.dirty = false
	idx.mu.Unlock()
	return nil
}

// Save writes the index if it changed since the last Load or Save.
func (idx *EventIndex) Save() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if !idx.dirty {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(idx.path), 0o700); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}
	data, err := json.MarshalIndent(idx.mappings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(idx.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write event index: %w", err)
	}
	idx.dirty = false
	return nil
}

func (idx *EventIndex) Get(key string) string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.mappings[key]
}

func (idx *EventIndex) Set(key, eventID string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.mappings[key] != eventID {
		idx.mappings[key] = eventID
		idx.dirty = true
	}
}

func (idx *EventIndex) Remove(key string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if _, exists := idx.mappings[key]; exists {
		delete(idx.mappings, key)
		idx.dirty = true
	}
}

// Keys returns the indexed task keys in sorted order.
func (idx *EventIndex) Keys() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	keys := make([]string, 0, len(idx.mappings))
	for k := range idx.mappings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
