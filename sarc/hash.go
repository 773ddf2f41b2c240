package sarc

import "github.com/joshuapare/sarckit/internal/format"

// DefaultHashMultiplier is the multiplier used by retail archives.
const DefaultHashMultiplier = format.DefaultHashMultiplier

// Hash computes the SFAT hash of name.
//
// Algorithm: hash = 0; for each byte of the UTF-8 name: hash = hash*multiplier + byte,
// wrapping at 2^32. Names must not contain NUL bytes.
func Hash(name string, multiplier uint32) uint32 {
	var hash uint32
	for i := 0; i < len(name); i++ {
		hash = hash*multiplier + uint32(name[i])
	}
	return hash
}
