package sarc

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/joshuapare/sarckit/internal/buf"
	"github.com/joshuapare/sarckit/internal/format"
	"github.com/joshuapare/sarckit/pkg/types"
)

// CollisionPolicy decides what the writer does when two distinct names hash
// to the same value.
type CollisionPolicy int

const (
	// CollisionLastWins keeps the most recently added entry and logs a
	// warning for each dropped one.
	CollisionLastWins CollisionPolicy = iota

	// CollisionReject fails serialization with ErrKindCollision.
	CollisionReject
)

// String implements the Stringer interface for CollisionPolicy.
func (p CollisionPolicy) String() string {
	if p == CollisionReject {
		return "reject"
	}
	return "last-wins"
}

// Config controls how an archive is serialized.
type Config struct {
	// LittleEndian selects the byte order of every header and table field.
	// Default: false (big-endian, as on Wii U / 3DS).
	LittleEndian bool

	// HashMultiplier is the constant used by Hash to order entries.
	// Default: 0x65
	HashMultiplier uint32

	// DefaultAlignment is the minimum alignment of every entry's data.
	// Must be a non-zero power of two. Default: 4
	DefaultAlignment uint32

	// Collision decides how hash collisions are handled on write.
	// Default: CollisionLastWins
	Collision CollisionPolicy

	// Logger receives layout details at debug level and collision warnings.
	// Nil discards everything.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		LittleEndian:     false,
		HashMultiplier:   DefaultHashMultiplier,
		DefaultAlignment: format.DefaultAlignment,
		Collision:        CollisionLastWins,
	}
}

// Validate checks the caller-supplied values.
func (c Config) Validate() error {
	return validateAlignment(c.DefaultAlignment)
}

func validateAlignment(v uint32) error {
	if !format.IsPow2(v) {
		return types.Errorf(types.ErrKindConfig, "alignment 0x%x must be a non-zero power of two", v)
	}
	return nil
}

var discard = slog.New(slog.DiscardHandler)

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return discard
}

// ReadOptions let callers request per-call parsing behavior.
type ReadOptions struct {
	// CopyData copies every entry's bytes instead of aliasing the input
	// buffer. Without it, entries stay valid only as long as the input.
	CopyData bool

	// SkipHashCheck trusts the stored hashes instead of recomputing them
	// from the resolved names.
	SkipHashCheck bool
}

func (c Config) order() binary.ByteOrder {
	return buf.OrderFor(c.LittleEndian)
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}
