package ics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	path, err := Write(dir, "filtered_calendar.ics", []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "filtered_calendar.ics"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteOverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := Write(dir, "out.ics", []byte("first"))
	require.NoError(t, err)
	path, err := Write(dir, "out.ics", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.ics", entries[0].Name())
}

func TestWriteFailsWhenDirIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := Write(blocker, "out.ics", []byte("data"))

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, filepath.Join(blocker, "out.ics"), werr.Path)
}
