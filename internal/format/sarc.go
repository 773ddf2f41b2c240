package format

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/sarckit/internal/buf"
)

// Header captures the SARC container header.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    'S' 'A' 'R' 'C'
//	 0x04    2    Header size (0x14)
//	 0x06    2    Byte-order mark (FF FE little, FE FF big)
//	 0x08    4    Total file size
//	 0x0C    4    Absolute offset of the data region
//	 0x10    2    Version (0x0100)
//	 0x12    2    Reserved (0)
type Header struct {
	LittleEndian bool
	FileSize     uint32
	DataOffset   uint32
}

// Order returns the byte order declared by the header.
func (h Header) Order() binary.ByteOrder {
	return buf.OrderFor(h.LittleEndian)
}

// ParseHeader validates and extracts the container header from b.
// Checks run in the order magic, byte-order mark, version, header size.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < SARCHeaderSize {
		return Header{}, fmt.Errorf("sarc header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[SARCMagicOffset:SARCMagicOffset+SignatureSize], SARCSignature) {
		return Header{}, fmt.Errorf("sarc header: %w: %q", ErrSignatureMismatch, b[:SignatureSize])
	}

	bom := b[SARCBOMOffset : SARCBOMOffset+2]
	var little bool
	switch {
	case bytes.Equal(bom, BOMLittle):
		little = true
	case bytes.Equal(bom, BOMBig):
		little = false
	default:
		return Header{}, fmt.Errorf("sarc header: %w: % X", ErrByteOrder, bom)
	}
	order := buf.OrderFor(little)

	if v := buf.U16(order, b[SARCVersionOffset:]); v != Version {
		return Header{}, fmt.Errorf("sarc header: %w: 0x%04x", ErrVersion, v)
	}
	if hs := buf.U16(order, b[SARCHeaderSizeOffset:]); hs != SARCHeaderSize {
		return Header{}, fmt.Errorf("sarc header: %w: 0x%x", ErrHeaderSize, hs)
	}

	return Header{
		LittleEndian: little,
		FileSize:     buf.U32(order, b[SARCFileSizeOffset:]),
		DataOffset:   buf.U32(order, b[SARCDataOffsetOffset:]),
	}, nil
}

// EncodeHeader returns the 0x14-byte container header for h.
func EncodeHeader(h Header) []byte {
	order := h.Order()
	out := make([]byte, SARCHeaderSize)
	copy(out[SARCMagicOffset:], SARCSignature)
	buf.PutU16(order, out, SARCHeaderSizeOffset, SARCHeaderSize)
	buf.PutU16(order, out, SARCBOMOffset, ByteOrderMark)
	buf.PutU32(order, out, SARCFileSizeOffset, h.FileSize)
	buf.PutU32(order, out, SARCDataOffsetOffset, h.DataOffset)
	buf.PutU16(order, out, SARCVersionOffset, Version)
	buf.PutU16(order, out, SARCReservedOffset, 0)
	return out
}
