// Package yaz0 implements the Yaz0 LZ77 variant used to wrap SARC archives
// (".szs" files).
//
// Stream layout:
//
//	Offset  Size  Description
//	0x00    4     'Y' 'a' 'z' '0'
//	0x04    4     Decompressed size (big-endian)
//	0x08    4     Alignment hint for the decompressed buffer (big-endian)
//	0x0C    4     Reserved (0)
//	0x10    ...   Groups: one flag byte followed by up to eight chunks
//
// Flag bits are consumed MSB first. A set bit copies one literal byte; a
// clear bit is a back-reference. Two-byte references (NR RR) encode length
// N+2 (3..17) and distance R+1 (1..0x1000); when N is zero a third byte
// holds length-0x12 (18..0x111).
package yaz0

import (
	"errors"
	"fmt"

	"github.com/joshuapare/sarckit/internal/buf"
)

const (
	// HeaderSize is the size of the Yaz0 stream header.
	HeaderSize = 0x10

	sizeOffset      = 0x04
	alignmentOffset = 0x08

	minMatch    = 3
	maxMatch    = 0x111
	shortMaxLen = 0x11
	longLenBias = 0x12
	windowSize  = 0x1000
	opsPerGroup = 8
	maxLevel    = 9

	// maxExpansion bounds decoded bytes per encoded byte (a 3-byte reference
	// yields at most 0x111 bytes).
	maxExpansion = maxMatch/3 + 1
)

// Magic is the Yaz0 stream signature.
var Magic = []byte{'Y', 'a', 'z', '0'}

var (
	// ErrNotYaz0 indicates the input is not framed as a Yaz0 stream.
	ErrNotYaz0 = errors.New("yaz0: bad magic")
	// ErrCorrupt indicates the stream ended early or referenced data before
	// the start of the output.
	ErrCorrupt = errors.New("yaz0: corrupt stream")
	// ErrLevel indicates a compression level outside 0..9.
	ErrLevel = errors.New("yaz0: level out of range")
)

// Header is the decoded stream header.
type Header struct {
	Size      uint32
	Alignment uint32
}

// ParseHeader validates the Yaz0 header at the start of src.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < HeaderSize || string(src[:4]) != string(Magic) {
		return Header{}, ErrNotYaz0
	}
	return Header{
		Size:      buf.U32BE(src[sizeOffset:]),
		Alignment: buf.U32BE(src[alignmentOffset:]),
	}, nil
}

// IsYaz0 reports whether src starts with a Yaz0 header.
func IsYaz0(src []byte) bool {
	_, err := ParseHeader(src)
	return err == nil
}

// Decompress decodes a complete Yaz0 stream.
func Decompress(src []byte) ([]byte, error) {
	hdr, err := ParseHeader(src)
	if err != nil {
		return nil, err
	}
	if uint64(hdr.Size) > uint64(len(src)-HeaderSize)*maxExpansion+maxMatch {
		return nil, fmt.Errorf("%w: declared size %d exceeds what %d bytes can encode", ErrCorrupt, hdr.Size, len(src))
	}
	dst := make([]byte, hdr.Size)
	in := HeaderSize
	out := 0
	size := int(hdr.Size)

	for out < size {
		if in >= len(src) {
			return nil, fmt.Errorf("%w: missing flag byte at 0x%x", ErrCorrupt, in)
		}
		flags := src[in]
		in++
		for bit := 0; bit < opsPerGroup && out < size; bit++ {
			if flags&(0x80>>bit) != 0 {
				if in >= len(src) {
					return nil, fmt.Errorf("%w: missing literal at 0x%x", ErrCorrupt, in)
				}
				dst[out] = src[in]
				out++
				in++
				continue
			}

			if in+2 > len(src) {
				return nil, fmt.Errorf("%w: truncated reference at 0x%x", ErrCorrupt, in)
			}
			b1, b2 := src[in], src[in+1]
			in += 2
			dist := (int(b1&0x0F)<<8 | int(b2)) + 1
			n := int(b1 >> 4)
			if n == 0 {
				if in >= len(src) {
					return nil, fmt.Errorf("%w: truncated length at 0x%x", ErrCorrupt, in)
				}
				n = int(src[in]) + longLenBias
				in++
			} else {
				n += 2
			}
			from := out - dist
			if from < 0 {
				return nil, fmt.Errorf("%w: distance %d before start at 0x%x", ErrCorrupt, dist, out)
			}
			if out+n > size {
				n = size - out
			}
			// Overlapping copies repeat the trailing bytes; copy byte by byte.
			for i := range n {
				dst[out+i] = dst[from+i]
			}
			out += n
		}
	}
	return dst, nil
}
