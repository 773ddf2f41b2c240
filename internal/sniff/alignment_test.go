package sniff

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func withPrefix(prefix string, n int) []byte {
	b := make([]byte, n)
	copy(b, prefix)
	return b
}

func TestAlignmentTable(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"sarc", withPrefix("SARC", 0x40), 0x2000},
		{"yaz0", withPrefix("Yaz0", 0x40), 0x80},
		{"ffnt", withPrefix("FFNT", 0x40), 0x2000},
		{"cfnt", withPrefix("CFNT", 0x40), 0x80},
		{"bfstm", withPrefix("FSTM", 0x40), 0x20},
		{"bcwav", withPrefix("CWAV", 0x40), 0x20},
		{"bntx", withPrefix("BNTX", 0x40), 0x1000},
		{"fsha", withPrefix("FSHA    ", 0x40), 0x1000},
		{"fsha short", withPrefix("FSHA", 0x10), 4},
		{"gfx2", withPrefix("Gfx2", 0x40), 0x2000},
		{"ctpk", withPrefix("CTPK", 0x40), 0x10},
		{"cgfx", withPrefix("CGFX", 0x40), 0x80},
		{"aamp", withPrefix("AAMP", 0x40), 8},
		{"byml le", withPrefix("YB", 0x40), 0x80},
		{"byml be", withPrefix("BY", 0x40), 0x80},
		{"msbt", withPrefix("MsgStdBn", 0x40), 0x80},
		{"msbp", withPrefix("MsgPrjBn", 0x40), 0x80},
		{"unknown", []byte("0123456789abcdef"), 4},
		{"empty", nil, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Alignment(tt.data, 4))
		})
	}
}

func TestAlignmentSCDL(t *testing.T) {
	b := make([]byte, 0x20)
	copy(b[0xC:], "SCDL")
	require.Equal(t, uint32(0x100), Alignment(b, 4))
}

func TestAlignmentTrailers(t *testing.T) {
	flim := make([]byte, 0x100)
	copy(flim[len(flim)-0x28:], "FLIM")
	require.Equal(t, uint32(0x2000), Alignment(flim, 4))

	clim := make([]byte, 0x28)
	copy(clim, "CLIM")
	require.Equal(t, uint32(0x80), Alignment(clim, 4))

	short := []byte("FLIM")
	require.Equal(t, uint32(4), Alignment(short, 4))
}

func TestAlignmentNeverBelowDefault(t *testing.T) {
	require.Equal(t, uint32(0x100), Alignment(withPrefix("AAMP", 0x40), 0x100))
	require.Equal(t, uint32(0x2000), Alignment(withPrefix("SARC", 0x40), 0x100))
	require.Equal(t, uint32(0x10), Alignment([]byte("plain"), 0x10))
}

func binaryResource(order binary.ByteOrder, bom []byte, shift byte, size int, declared uint32) []byte {
	b := make([]byte, size)
	copy(b, "FRES    ")
	copy(b[0xC:], bom)
	b[0xE] = shift
	order.PutUint32(b[0x1C:], declared)
	return b
}

func TestAlignmentBinaryResource(t *testing.T) {
	le := binaryResource(binary.LittleEndian, []byte{0xFF, 0xFE}, 12, 0x40, 0x40)
	require.Equal(t, uint32(0x1000), Alignment(le, 4))

	be := binaryResource(binary.BigEndian, []byte{0xFE, 0xFF}, 3, 0x40, 0x40)
	require.Equal(t, uint32(8), Alignment(be, 4))
	require.Equal(t, uint32(0x10), Alignment(be, 0x10))

	wrongSize := binaryResource(binary.LittleEndian, []byte{0xFF, 0xFE}, 12, 0x40, 0x41)
	require.Equal(t, uint32(4), Alignment(wrongSize, 4))

	badBOM := binaryResource(binary.LittleEndian, []byte{0x00, 0x00}, 12, 0x40, 0x40)
	require.Equal(t, uint32(4), Alignment(badBOM, 4))

	tooSmall := binaryResource(binary.LittleEndian, []byte{0xFF, 0xFE}, 12, 0x20, 0x20)
	require.Equal(t, uint32(4), Alignment(tooSmall, 4))

	hugeShift := binaryResource(binary.LittleEndian, []byte{0xFF, 0xFE}, 40, 0x40, 0x40)
	require.Equal(t, uint32(4), Alignment(hugeShift, 4))
}
