package types

import (
	"errors"
	"fmt"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat         ErrKind = iota // wrong magic, header size or version
	ErrKindEndianness                    // byte-order mark is neither FFFE nor FEFF
	ErrKindUnsupported                   // valid feature we don't support (nameless entries)
	ErrKindCorruptOffset                 // name offset or data slice outside its region
	ErrKindCorruptTable                  // stored hash mismatch or duplicate names
	ErrKindTooManyEntries                // node count exceeds the 14-bit field
	ErrKindConfig                        // bad caller-supplied configuration or name
	ErrKindLimit                         // archive does not fit 32-bit offsets
	ErrKindCollision                     // two names hash to the same value
	ErrKindNotFound                      // missing entry
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindEndianness:
		return "endianness"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindCorruptOffset:
		return "corrupt offset"
	case ErrKindCorruptTable:
		return "corrupt table"
	case ErrKindTooManyEntries:
		return "too many entries"
	case ErrKindConfig:
		return "config"
	case ErrKindLimit:
		return "limit"
	case ErrKindCollision:
		return "collision"
	case ErrKindNotFound:
		return "not found"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrFormat)
// succeeds for every format failure regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrFormat indicates a wrong magic, header size or version.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "not a SARC archive"}
	// ErrEndianness indicates an invalid byte-order mark.
	ErrEndianness = &Error{Kind: ErrKindEndianness, Msg: "invalid byte-order mark"}
	// ErrUnsupported indicates a recognized but unsupported feature.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported archive feature"}
	// ErrCorruptOffset indicates an offset outside its valid region.
	ErrCorruptOffset = &Error{Kind: ErrKindCorruptOffset, Msg: "corrupt offset"}
	// ErrCorruptTable indicates an inconsistent file allocation table.
	ErrCorruptTable = &Error{Kind: ErrKindCorruptTable, Msg: "corrupt file table"}
	// ErrTooManyEntries indicates the node count exceeds 0x3FFF.
	ErrTooManyEntries = &Error{Kind: ErrKindTooManyEntries, Msg: "too many entries"}
	// ErrConfig indicates an invalid configuration value.
	ErrConfig = &Error{Kind: ErrKindConfig, Msg: "invalid configuration"}
	// ErrLimit indicates the archive exceeds format limits.
	ErrLimit = &Error{Kind: ErrKindLimit, Msg: "archive exceeds format limits"}
	// ErrCollision indicates a filename hash collision.
	ErrCollision = &Error{Kind: ErrKindCollision, Msg: "filename hash collision"}
	// ErrNotFound indicates a missing entry.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "entry not found"}
)

// Errorf builds an *Error of the given kind.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
