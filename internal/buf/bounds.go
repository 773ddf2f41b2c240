package buf

import (
	"bytes"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Range returns b[begin:end] if 0 <= begin <= end <= len(b).
func Range(b []byte, begin, end int) ([]byte, bool) {
	if begin < 0 || end < begin || end > len(b) {
		return nil, false
	}
	return b[begin:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}

// CString returns the bytes starting at off up to (not including) the first
// NUL byte found before limit. ok is false when off is out of range or no
// terminator exists in b[off:limit].
func CString(b []byte, off, limit int) ([]byte, bool) {
	if limit > len(b) {
		limit = len(b)
	}
	if off < 0 || off >= limit {
		return nil, false
	}
	n := bytes.IndexByte(b[off:limit], 0)
	if n < 0 {
		return nil, false
	}
	return b[off : off+n], true
}
