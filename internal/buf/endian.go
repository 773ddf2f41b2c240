// Package buf contains helpers for endian-aware decoding and encoding.
//
// SARC archives carry their byte order in the container header, so every
// helper takes the binary.ByteOrder to use instead of hardcoding one.
package buf

import "encoding/binary"

// OrderFor returns the byte order for the given endianness flag.
func OrderFor(littleEndian bool) binary.ByteOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// U16 reads a uint16 from b using order. Returns 0 when b is too short.
func U16(order binary.ByteOrder, b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return order.Uint16(b)
}

// U32 reads a uint32 from b using order. Returns 0 when b is too short.
func U32(order binary.ByteOrder, b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return order.Uint32(b)
}

// PutU16 writes v at b[off:off+2] using order.
func PutU16(order binary.ByteOrder, b []byte, off int, v uint16) {
	order.PutUint16(b[off:off+2], v)
}

// PutU32 writes v at b[off:off+4] using order.
func PutU32(order binary.ByteOrder, b []byte, off int, v uint32) {
	order.PutUint32(b[off:off+4], v)
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
// Yaz0 headers are always big-endian regardless of the payload.
func U32BE(b []byte) uint32 {
	return U32(binary.BigEndian, b)
}
