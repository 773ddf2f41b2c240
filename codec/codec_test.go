package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	require.Equal(t, Yaz0, Detect([]byte("Yaz0\x00\x00\x00\x04\x00\x00\x00\x00\x00\x00\x00\x00")))
	require.Equal(t, Zstd, Detect([]byte{0x28, 0xB5, 0x2F, 0xFD, 0x00}))
	require.Equal(t, None, Detect([]byte("SARC")))
	require.Equal(t, None, Detect([]byte("Yaz0")))
	require.Equal(t, None, Detect(nil))
}

func TestRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("SARC\x00\x14\xFE\xFFpayload"), 300)
	for _, scheme := range []Scheme{None, Yaz0, Zstd} {
		for _, level := range []int{0, 1, 5, 9} {
			enc, err := Compress(data, scheme, 0x2000, level)
			require.NoError(t, err, "%v level %d", scheme, level)

			if scheme == None {
				require.Equal(t, data, enc)
				_, _, err := Decompress(enc)
				require.ErrorIs(t, err, ErrUnknownScheme)
				continue
			}

			require.Equal(t, scheme, Detect(enc))
			dec, got, err := Decompress(enc)
			require.NoError(t, err)
			require.Equal(t, scheme, got)
			require.Equal(t, data, dec)
		}
	}
}

func TestCompressRejectsLevel(t *testing.T) {
	_, err := Compress([]byte("x"), Zstd, 0, 10)
	require.ErrorIs(t, err, ErrLevel)
}

func TestDecompressCorruptZstd(t *testing.T) {
	_, scheme, err := Decompress([]byte{0x28, 0xB5, 0x2F, 0xFD, 0xFF, 0xFF})
	require.Error(t, err)
	require.Equal(t, Zstd, scheme)
}

func TestParseScheme(t *testing.T) {
	for in, want := range map[string]Scheme{"": None, "none": None, "YAZ0": Yaz0, "szs": Yaz0, "zstd": Zstd, " zs ": Zstd} {
		got, err := ParseScheme(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseScheme("lz4")
	require.ErrorIs(t, err, ErrUnknownScheme)
}

func TestSchemeStrings(t *testing.T) {
	require.Equal(t, "yaz0", Yaz0.String())
	require.Equal(t, ".szs", Yaz0.Extension())
	require.Equal(t, ".zs", Zstd.Extension())
	require.Equal(t, ".sarc", None.Extension())
	require.Equal(t, "scheme(7)", Scheme(7).String())
}
