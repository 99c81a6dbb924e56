package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/runviz/internal/adapters/fs"
)

func writeFiles(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("data for "+name), 0o644))
		paths = append(paths, path)
	}
	return paths
}

func TestFingerprint_StableUnderReordering(t *testing.T) {
	paths := writeFiles(t, "a.json", "b.json", "c.json")
	fp := fs.NewFingerprinter()

	forward, err := fp.Fingerprint(paths)
	require.NoError(t, err)

	reversed := []string{paths[2], paths[1], paths[0]}
	backward, err := fp.Fingerprint(reversed)
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
}

func TestFingerprint_EqualForUnchangedSet(t *testing.T) {
	paths := writeFiles(t, "a.json", "b.json")
	fp := fs.NewFingerprinter()

	first, err := fp.Fingerprint(paths)
	require.NoError(t, err)
	second, err := fp.Fingerprint(paths)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFingerprint_ChangesOnSizeChange(t *testing.T) {
	paths := writeFiles(t, "a.json")
	fp := fs.NewFingerprinter()

	before, err := fp.Fingerprint(paths)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(paths[0], []byte("now much longer content"), 0o644))

	after, err := fp.Fingerprint(paths)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestFingerprint_ChangesOnMtimeChange(t *testing.T) {
	paths := writeFiles(t, "a.json")
	fp := fs.NewFingerprinter()

	before, err := fp.Fingerprint(paths)
	require.NoError(t, err)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(paths[0], later, later))

	after, err := fp.Fingerprint(paths)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestFingerprint_MissingFileIsAnError(t *testing.T) {
	fp := fs.NewFingerprinter()

	_, err := fp.Fingerprint([]string{filepath.Join(t.TempDir(), "gone.json")})
	assert.Error(t, err)
}

func TestFingerprint_EmptySet(t *testing.T) {
	fp := fs.NewFingerprinter()

	first, err := fp.Fingerprint(nil)
	require.NoError(t, err)
	second, err := fp.Fingerprint([]string{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
