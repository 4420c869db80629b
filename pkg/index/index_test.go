package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventIndexRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	idx, err := NewEventIndex(path)
	require.NoError(t, err)
	assert.Empty(t, idx.Keys())
	assert.Equal(t, path, idx.Path())

	idx.Set("Bridge/2", "evt-2")
	idx.Set("Bridge/1", "evt-1")
	require.NoError(t, idx.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := NewEventIndex(path)
	require.NoError(t, err)
	assert.Equal(t, "evt-1", reopened.Get("Bridge/1"))
	assert.Equal(t, []string{"Bridge/1", "Bridge/2"}, reopened.Keys())

	reopened.Remove("Bridge/1")
	reopened.Remove("Bridge/9")
	require.NoError(t, reopened.Save())
	require.NoError(t, idx.Load())
	assert.Equal(t, []string{"Bridge/2"}, idx.Keys())
	assert.Empty(t, idx.Get("Bridge/1"))
}

func TestEventIndexSaveSkipsWhenClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	idx, err := NewEventIndex(path)
	require.NoError(t, err)

	require.NoError(t, idx.Save())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	idx.Set("a/1", "x")
	idx.Set("a/1", "x")
	require.NoError(t, idx.Save())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestEventIndexCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewEventIndex(path)
	assert.ErrorContains(t, err, "failed to decode event index")
}
