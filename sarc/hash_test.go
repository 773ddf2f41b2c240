package sarc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		mult uint32
		want uint32
	}{
		{"", DefaultHashMultiplier, 0},
		{"a", DefaultHashMultiplier, 0x61},
		{"file.txt", DefaultHashMultiplier, 0xca56c2e6},
		{"Layout/Main.bflyt", DefaultHashMultiplier, 0xb65ff1dd},
		{"ab", 1, 'a' + 'b'},
		{"xa", 0, 'a'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Hash(tt.name, tt.mult))
		})
	}
}

func TestHashHashesBytesNotRunes(t *testing.T) {
	// U+00E9 is two bytes in UTF-8.
	want := uint32(0xC3)*DefaultHashMultiplier + 0xA9
	require.Equal(t, want, Hash("é", DefaultHashMultiplier))
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"a/b":         "a/b",
		"a//b":        "a/b",
		`a\b`:         "a/b",
		`a\\/\b//c`:   "a/b/c",
		"//lead":      "/lead",
		"trail///":    "trail/",
		"plain.bfres": "plain.bfres",
	}
	for in, want := range tests {
		require.Equal(t, want, NormalizeName(in), in)
	}
}

func TestDisplayName(t *testing.T) {
	require.Equal(t, "Layout/Main.bflyt", DisplayName("Layout/Main.bflyt"))
	require.Equal(t, "テスト", DisplayName("\x83\x65\x83\x58\x83\x67"))
}
