package sarc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/sarckit/codec"
	"github.com/joshuapare/sarckit/internal/writer"
	"github.com/joshuapare/sarckit/internal/yaz0"
	"github.com/joshuapare/sarckit/pkg/types"
)

func TestLoadSchemes(t *testing.T) {
	src := sampleArchive(t, false)
	for _, scheme := range []codec.Scheme{codec.None, codec.Yaz0, codec.Zstd} {
		t.Run(scheme.String(), func(t *testing.T) {
			out, err := src.Save(SaveOptions{Scheme: scheme, Level: 3})
			require.NoError(t, err)
			require.Equal(t, scheme, codec.Detect(out))

			got, detected, err := Load(out, ReadOptions{})
			require.NoError(t, err)
			require.Equal(t, scheme, detected)
			require.Equal(t, src.Names(), got.Names())
		})
	}
}

func TestSaveYaz0CarriesAlignment(t *testing.T) {
	src := sampleArchive(t, false)
	l, err := src.Marshal()
	require.NoError(t, err)

	out, err := src.Save(SaveOptions{Scheme: codec.Yaz0, Level: 1})
	require.NoError(t, err)
	hdr, err := yaz0.ParseHeader(out)
	require.NoError(t, err)
	require.Equal(t, l.DataAlignment, hdr.Alignment)
	require.Equal(t, uint32(len(l.Data)), hdr.Size)
}

func TestLoadCorruptWrapperFallsBack(t *testing.T) {
	data := append([]byte("Yaz0\x00\x00\x10\x00"), make([]byte, 8)...)
	_, scheme, err := Load(data, ReadOptions{})
	require.ErrorIs(t, err, types.ErrFormat)
	require.Equal(t, codec.None, scheme)
}

func TestSaveToSink(t *testing.T) {
	src := sampleArchive(t, true)
	var mem writer.MemWriter
	l, err := src.SaveTo(&mem, SaveOptions{})
	require.NoError(t, err)
	require.Equal(t, l.Data, mem.Buf)

	got, err := Parse(mem.Buf)
	require.NoError(t, err)
	require.Equal(t, src.Len(), got.Len())
	require.Len(t, l.Nodes, got.Len())
}

func TestSaveToReportsDroppedCollisions(t *testing.T) {
	src := New()
	src.SetHashMultiplier(0)
	require.NoError(t, src.Add("a/x", []byte("first")))
	require.NoError(t, src.Add("b/x", []byte("second")))

	var mem writer.MemWriter
	l, err := src.SaveTo(&mem, SaveOptions{Scheme: codec.Zstd})
	require.NoError(t, err)
	require.Equal(t, 2, src.Len())
	require.Len(t, l.Nodes, 1)
	require.Equal(t, "b/x", l.Nodes[0].Name)
	require.Equal(t, codec.Zstd, codec.Detect(mem.Buf))
}

func TestSaveFileAndOpen(t *testing.T) {
	dir := t.TempDir()
	src := sampleArchive(t, false)

	plain := filepath.Join(dir, "plain.sarc")
	_, err := src.SaveFile(plain, SaveOptions{})
	require.NoError(t, err)
	a, scheme, err := Open(plain, ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, codec.None, scheme)
	e, err := a.Lookup("Layout/lyt/Main.bflyt")
	require.NoError(t, err)
	require.Equal(t, []byte("FLYT layout"), e.Data)
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())

	packed := filepath.Join(dir, "packed.szs")
	_, err = src.SaveFile(packed, SaveOptions{Scheme: codec.Yaz0, Level: 9})
	require.NoError(t, err)
	a, scheme, err = Open(packed, ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, codec.Yaz0, scheme)
	require.Equal(t, src.Names(), a.Names())
	require.NoError(t, a.Close())
}

func TestOpenInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.sarc")
	require.NoError(t, os.WriteFile(path, []byte("not an archive at all"), 0o644))
	_, _, err := Open(path, ReadOptions{})
	require.ErrorIs(t, err, types.ErrFormat)

	_, _, err = Open(filepath.Join(t.TempDir(), "missing"), ReadOptions{})
	require.ErrorIs(t, err, os.ErrNotExist)
}
