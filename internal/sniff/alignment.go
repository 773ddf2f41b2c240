package sniff

import (
	"bytes"
	"encoding/binary"
)

// region selects the bytes a rule compares against.
type region int

const (
	head    region = iota // data[off : off+len(sig)]
	tail                  // data[len-off : len-off+len(sig)]
)

// rule maps one or more signatures to a required alignment. Rules are tried
// in order and the first match wins.
type rule struct {
	where     region
	off       int
	sigs      []string
	alignment uint32
}

// trailerOffset is where FLIM/CLIM footers start, counted from the end.
const trailerOffset = 0x28

var alignmentRules = []rule{
	{head, 0, []string{"SARC"}, 0x2000},
	{head, 0, []string{"Yaz0"}, 0x80},
	{head, 0, []string{"FFNT"}, 0x2000},
	{head, 0, []string{"CFNT"}, 0x80},
	{head, 0, []string{"CSTM", "FSTM", "FSTP", "CWAV", "FWAV"}, 0x20},
	{head, 0, []string{"BNTX", "BNSH", "FSHA    "}, 0x1000},
	{head, 0, []string{"Gfx2"}, 0x2000},
	{tail, trailerOffset, []string{"FLIM"}, 0x2000},
	{head, 0, []string{"CTPK"}, 0x10},
	{head, 0, []string{"CGFX"}, 0x80},
	{tail, trailerOffset, []string{"CLIM"}, 0x80},
	{head, 0, []string{"AAMP"}, 8},
	{head, 0, []string{"YB", "BY", "MsgStdBn", "MsgPrjBn"}, 0x80},
	{head, 0xC, []string{"SCDL"}, 0x100},
}

func (r rule) match(data []byte) bool {
	for _, sig := range r.sigs {
		start := r.off
		if r.where == tail {
			start = len(data) - r.off
			if start < 0 {
				continue
			}
		}
		end := start + len(sig)
		if end > len(data) {
			continue
		}
		if string(data[start:end]) == sig {
			return true
		}
	}
	return false
}

// Alignment returns the power-of-two alignment data must start on, never
// less than defaultAlignment. defaultAlignment must itself be a power of two.
func Alignment(data []byte, defaultAlignment uint32) uint32 {
	var sniffed uint32
	for _, r := range alignmentRules {
		if r.match(data) {
			sniffed = r.alignment
			break
		}
	}
	if sniffed == 0 {
		sniffed = binaryResourceAlignment(data)
	}
	return max(defaultAlignment, sniffed)
}

// Newer binary resources ("bfres"-style headers) carry a BOM at 0x0C, an
// alignment exponent at 0x0E and their own file size at 0x1C.
const (
	resBOMOffset       = 0x0C
	resAlignShiftIndex = 0x0E
	resFileSizeOffset  = 0x1C
	resMinSize         = 0x20

	// maxAlignShift keeps the shifted value inside uint32.
	maxAlignShift = 31
)

// binaryResourceAlignment returns the alignment declared by a new-style
// binary resource header, or 0 when data does not carry one.
func binaryResourceAlignment(data []byte) uint32 {
	if len(data) <= resMinSize {
		return 0
	}
	var order binary.ByteOrder
	switch bom := data[resBOMOffset : resBOMOffset+2]; {
	case bytes.Equal(bom, []byte{0xFF, 0xFE}):
		order = binary.LittleEndian
	case bytes.Equal(bom, []byte{0xFE, 0xFF}):
		order = binary.BigEndian
	default:
		return 0
	}
	if uint64(order.Uint32(data[resFileSizeOffset:])) != uint64(len(data)) {
		return 0
	}
	shift := data[resAlignShiftIndex]
	if shift > maxAlignShift {
		return 0
	}
	return 1 << shift
}
