package format

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/sarckit/internal/buf"
)

// SFATHeader is the file allocation table header that follows the container
// header.
//
//	Offset  Size  Description
//	0x00    4     'S' 'F' 'A' 'T'
//	0x04    2     Header size (0x0C)
//	0x06    2     Node count (14 bits)
//	0x08    4     Hash multiplier
type SFATHeader struct {
	NodeCount      uint16
	HashMultiplier uint32
}

// ParseSFATHeader validates the SFAT header at the start of b.
func ParseSFATHeader(order binary.ByteOrder, b []byte) (SFATHeader, error) {
	if len(b) < SFATHeaderSize {
		return SFATHeader{}, fmt.Errorf("sfat header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[SFATMagicOffset:SFATMagicOffset+SignatureSize], SFATSignature) {
		return SFATHeader{}, fmt.Errorf("sfat header: %w: %q", ErrSignatureMismatch, b[:SignatureSize])
	}
	if hs := buf.U16(order, b[SFATHeaderSizeOffset:]); hs != SFATHeaderSize {
		return SFATHeader{}, fmt.Errorf("sfat header: %w: 0x%x", ErrHeaderSize, hs)
	}
	count := buf.U16(order, b[SFATNodeCountOffset:])
	if uint32(count)&NodeCountInvalidMask != 0 {
		return SFATHeader{}, fmt.Errorf("sfat header: %w: %d", ErrTooManyNodes, count)
	}
	return SFATHeader{
		NodeCount:      count,
		HashMultiplier: buf.U32(order, b[SFATHashMultiplierOffset:]),
	}, nil
}

// EncodeSFATHeader returns the 0x0C-byte SFAT header for h.
func EncodeSFATHeader(order binary.ByteOrder, h SFATHeader) []byte {
	out := make([]byte, SFATHeaderSize)
	copy(out[SFATMagicOffset:], SFATSignature)
	buf.PutU16(order, out, SFATHeaderSizeOffset, SFATHeaderSize)
	buf.PutU16(order, out, SFATNodeCountOffset, h.NodeCount)
	buf.PutU32(order, out, SFATHashMultiplierOffset, h.HashMultiplier)
	return out
}

// Node is a single SFAT record. DataBegin and DataEnd are relative to the
// container's data offset.
type Node struct {
	Hash      uint32
	NameID    uint32
	DataBegin uint32
	DataEnd   uint32
}

// HasFilename reports whether the flag byte of the name id is set.
func (n Node) HasFilename() bool {
	return n.NameID>>NameFlagShift != 0
}

// NameOffset returns the byte offset of the node's name relative to the
// start of the name table.
func (n Node) NameOffset() uint64 {
	return uint64(n.NameID&NameOffsetMask) * NameAlignment
}

// Name returns the node's name from b. nameTable is the absolute offset of
// the first name; the terminator must appear before limit.
func (n Node) Name(b []byte, nameTable, limit uint64) (string, error) {
	if n.NameID == 0 {
		return "", fmt.Errorf("sfat node: %w: entry has no name", ErrUnsupported)
	}
	off := nameTable + n.NameOffset()
	if off > limit || limit > uint64(len(b)) {
		return "", fmt.Errorf("sfat node: %w: name at 0x%x lies past 0x%x", ErrOffset, off, limit)
	}
	raw, ok := buf.CString(b, int(off), int(limit))
	if !ok {
		return "", fmt.Errorf("sfat node: %w: name at 0x%x is not terminated before 0x%x", ErrOffset, off, limit)
	}
	return string(raw), nil
}

// Data returns the node's payload from b, whose data section starts at
// dataOffset. The result aliases b.
func (n Node) Data(b []byte, dataOffset uint64) ([]byte, error) {
	begin := dataOffset + uint64(n.DataBegin)
	end := dataOffset + uint64(n.DataEnd)
	if begin > end || end > uint64(len(b)) {
		return nil, fmt.Errorf("sfat node: %w: data [0x%x, 0x%x) outside %d-byte input", ErrOffset, begin, end, len(b))
	}
	blob, ok := buf.Range(b, int(begin), int(end))
	if !ok {
		return nil, fmt.Errorf("sfat node: %w: data [0x%x, 0x%x)", ErrOffset, begin, end)
	}
	return blob, nil
}

// NameID packs a name-table byte offset into the on-disk name id word.
// The offset must be a multiple of NameAlignment.
func NameID(nameOffset uint32) uint32 {
	return HasFilenameFlag | (nameOffset/NameAlignment)&NameOffsetMask
}

// NodeOffset returns the absolute offset of node i.
func NodeOffset(i int) int {
	return NodeTableOffset + i*SFATNodeSize
}

// DecodeNode reads the node at the start of b.
func DecodeNode(order binary.ByteOrder, b []byte) (Node, error) {
	if len(b) < SFATNodeSize {
		return Node{}, fmt.Errorf("sfat node: %w", ErrTruncated)
	}
	return Node{
		Hash:      order.Uint32(b[NodeHashOffset:]),
		NameID:    order.Uint32(b[NodeNameIDOffset:]),
		DataBegin: order.Uint32(b[NodeDataBeginOffset:]),
		DataEnd:   order.Uint32(b[NodeDataEndOffset:]),
	}, nil
}

// AppendNode appends the 0x10-byte encoding of n to dst.
func AppendNode(order binary.ByteOrder, dst []byte, n Node) []byte {
	var rec [SFATNodeSize]byte
	buf.PutU32(order, rec[:], NodeHashOffset, n.Hash)
	buf.PutU32(order, rec[:], NodeNameIDOffset, n.NameID)
	buf.PutU32(order, rec[:], NodeDataBeginOffset, n.DataBegin)
	buf.PutU32(order, rec[:], NodeDataEndOffset, n.DataEnd)
	return append(dst, rec[:]...)
}
