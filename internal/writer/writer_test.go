package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileWriterReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.sarc")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	var sink Sink = &FileWriter{Path: path}
	require.NoError(t, sink.WriteArchive([]byte("SARC")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("SARC"), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must not be left behind")
}

func TestFileWriterPerm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sarc")
	w := &FileWriter{Path: path, Perm: 0o600}
	require.NoError(t, w.WriteArchive(nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileWriterMissingDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "missing", "out.sarc")}
	require.Error(t, w.WriteArchive([]byte("x")))
}

func TestMemWriterCopies(t *testing.T) {
	var w MemWriter
	src := []byte{1, 2, 3}
	require.NoError(t, w.WriteArchive(src))
	src[0] = 9
	require.Equal(t, []byte{1, 2, 3}, w.Buf)
}
