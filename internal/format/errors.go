package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrHeaderSize indicates a header declared a size other than the fixed one.
	ErrHeaderSize = errors.New("format: unexpected header size")
	// ErrVersion indicates an unsupported container version.
	ErrVersion = errors.New("format: unsupported version")
	// ErrByteOrder indicates the byte-order mark is neither FFFE nor FEFF.
	ErrByteOrder = errors.New("format: invalid byte-order mark")
	// ErrTooManyNodes indicates a node count that does not fit in 14 bits.
	ErrTooManyNodes = errors.New("format: too many entries")
	// ErrUnsupported indicates the structure or feature is not supported.
	ErrUnsupported = errors.New("format: unsupported feature")
	// ErrOffset indicates an offset that points outside its valid region.
	ErrOffset = errors.New("format: offset out of range")
)
