package format

// Alignment utilities for the SARC layout. Every alignment used by the
// format is a power of two, so rounding is a mask operation.

// Unsigned covers the integer widths used for offsets.
type Unsigned interface {
	~uint32 | ~uint64
}

// AlignUp returns n rounded up to the next multiple of alignment, which must
// be a non-zero power of two.
//
// Example:
//
//	AlignUp(1, 4)    = 4
//	AlignUp(4, 4)    = 4
//	AlignUp(5, 0x80) = 0x80
func AlignUp[T Unsigned](n, alignment T) T {
	return (n + alignment - 1) &^ (alignment - 1)
}

// Padding returns the number of bytes needed to bring n up to alignment.
func Padding[T Unsigned](n, alignment T) T {
	return AlignUp(n, alignment) - n
}

// IsPow2 reports whether v is a non-zero power of two.
func IsPow2[T Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}
