// Package overdue remembers the finish dates of exported tasks that still have
// work remaining, so a later export can flag the ones whose deadline passed.
package overdue

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// FileName is the table file kept in the configuration directory.
const FileName = "pending_tasks.json"

// Entry is one pending task and the event it was exported to.
type Entry struct {
	Key     string    `json:"-"`
	EventID string    `json:"event_id"`
	Summary string    `json:"summary"`
	Finish  time.Time `json:"finish"`
}

// Table is keyed by task key. It is not safe for concurrent use.
type Table struct {
	Entries map[string]Entry `json:"entries"`
	path    string
	dirty   bool
}

// NewTable opens the table at path. A missing file is an empty table.
func NewTable(path string) (*Table, error) {
	t := &Table{path: path, Entries: make(map[string]Entry)}
	if err := t.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return t, nil
}

func (t *Table) Load() error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return err
	}
	var loaded Table
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to decode pending table %s: %w", t.path, err)
	}
	t.Entries = make(map[string]Entry, len(loaded.Entries))
	for k, e := range loaded.Entries {
		e.Key = k
		t.Entries[k] = e
	}
	t.dirty = false
	return nil
}

// Save writes the table if it changed since the last Load or Save.
func (t *Table) Save() error {
	if !t.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return fmt.Errorf("failed to create table directory: %w", err)
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write pending table: %w", err)
	}
	t.dirty = false
	return nil
}

// Update records a pending task with a finish date. A zero finish removes it.
func (t *Table) Update(key, eventID, summary string, finish time.Time) {
	if finish.IsZero() {
		t.Remove(key)
		return
	}
	old, exists := t.Entries[key]
	if !exists || !old.Finish.Equal(finish) || old.EventID != eventID || old.Summary != summary {
		t.Entries[key] = Entry{Key: key, EventID: eventID, Summary: summary, Finish: finish}
		t.dirty = true
	}
}

func (t *Table) Remove(key string) {
	if _, exists := t.Entries[key]; exists {
		delete(t.Entries, key)
		t.dirty = true
	}
}

// Sweep removes and returns the entries whose finish is before now, ordered
// by finish date.
func (t *Table) Sweep(now time.Time) []Entry {
	var swept []Entry
	for key, entry := range t.Entries {
		if entry.Finish.Before(now) {
			swept = append(swept, entry)
			delete(t.Entries, key)
			t.dirty = true
		}
	}
	sort.Slice(swept, func(i, j int) bool {
		if swept[i].Finish.Equal(swept[j].Finish) {
			return swept[i].Key < swept[j].Key
		}
		return swept[i].Finish.Before(swept[j].Finish)
	})
	return swept
}
