package savefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSaverSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	s := DirSaver{Dir: dir}

	path, err := s.Save("dict.csv", []byte("first"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dict.csv"), path)

	_, err = s.Save("dict.csv", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be cleaned up")
}

func TestDirSaverStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	path, err := DirSaver{Dir: dir}.Save("../escape.csv", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.csv"), path)
}
