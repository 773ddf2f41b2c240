//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.sarc")
	want := []byte("SARC\x00\x14\xfe\xff")
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, want, data)

	require.NoError(t, release())
	require.NoError(t, release(), "second release must be a no-op")
}

func TestMapZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.sarc")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, release, err := Map(path)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NotNil(t, release)
	require.NoError(t, release())
}

func TestMapMissingFile(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "missing.sarc"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
