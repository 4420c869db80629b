package overdue

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestTableSweep(t *testing.T) {
	table, err := NewTable(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)

	table.Update("p/1", "e1", "Foundations", now.Add(-48*time.Hour))
	table.Update("p/2", "e2", "Deck", now.Add(48*time.Hour))
	table.Update("p/3", "e3", "Survey", now.Add(-72*time.Hour))

	swept := table.Sweep(now)
	require.Len(t, swept, 2)
	assert.Equal(t, "p/3", swept[0].Key)
	assert.Equal(t, "p/1", swept[1].Key)
	assert.Equal(t, "e1", swept[1].EventID)

	assert.Len(t, table.Entries, 1)
	assert.Empty(t, table.Sweep(now))
}

func TestTableUpdateZeroFinishRemoves(t *testing.T) {
	table, err := NewTable(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)

	table.Update("p/1", "e1", "A", now)
	table.Update("p/1", "e1", "A", time.Time{})
	assert.Empty(t, table.Entries)
}

func TestTablePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", FileName)
	table, err := NewTable(path)
	require.NoError(t, err)

	table.Update("p/1", "e1", "Foundations", now)
	require.NoError(t, table.Save())

	reopened, err := NewTable(path)
	require.NoError(t, err)
	require.Contains(t, reopened.Entries, "p/1")
	entry := reopened.Entries["p/1"]
	assert.Equal(t, "p/1", entry.Key)
	assert.Equal(t, "Foundations", entry.Summary)
	assert.True(t, now.Equal(entry.Finish))

	swept := reopened.Sweep(now.Add(time.Minute))
	require.Len(t, swept, 1)
	require.NoError(t, reopened.Save())

	again, err := NewTable(path)
	require.NoError(t, err)
	assert.Empty(t, again.Entries)
}
