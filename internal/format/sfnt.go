package format

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/sarckit/internal/buf"
)

// ParseSFNTHeader validates the 8-byte SFNT header at the start of b:
//
//	0x00  4  'S' 'F' 'N' 'T'
//	0x04  2  Header size (0x08)
//	0x06  2  Reserved
func ParseSFNTHeader(order binary.ByteOrder, b []byte) error {
	if len(b) < SFNTHeaderSize {
		return fmt.Errorf("sfnt header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[SFNTMagicOffset:SFNTMagicOffset+SignatureSize], SFNTSignature) {
		return fmt.Errorf("sfnt header: %w: %q", ErrSignatureMismatch, b[:SignatureSize])
	}
	if hs := buf.U16(order, b[SFNTHeaderSizeOffset:]); hs != SFNTHeaderSize {
		return fmt.Errorf("sfnt header: %w: 0x%x", ErrHeaderSize, hs)
	}
	return nil
}

// EncodeSFNTHeader returns the 8-byte SFNT header.
func EncodeSFNTHeader(order binary.ByteOrder) []byte {
	out := make([]byte, SFNTHeaderSize)
	copy(out[SFNTMagicOffset:], SFNTSignature)
	buf.PutU16(order, out, SFNTHeaderSizeOffset, SFNTHeaderSize)
	buf.PutU16(order, out, SFNTReservedOffset, 0)
	return out
}

// NameSize returns the padded on-disk size of a name of n bytes, including
// its NUL terminator.
func NameSize(n int) uint32 {
	return AlignUp(uint32(n)+1, NameAlignment)
}

// AppendName appends name, its NUL terminator and padding to dst.
func AppendName(dst []byte, name string) []byte {
	dst = append(dst, name...)
	dst = append(dst, 0)
	return append(dst, make([]byte, Padding(uint32(len(name)+1), NameAlignment))...)
}
