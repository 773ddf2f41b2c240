// Package codec wraps and unwraps whole SARC containers in the compression
// schemes they ship with: Yaz0 (".szs") on older titles and zstd (".zs") on
// newer ones.
//
// The SARC codec itself never compresses; callers wrap the bytes produced by
// the writer and [Decompress] is applied opportunistically before parsing.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/joshuapare/sarckit/internal/yaz0"
)

// Scheme identifies a wrapping format.
type Scheme int

const (
	// None means the payload is stored as-is.
	None Scheme = iota
	// Yaz0 is the Nintendo LZ77 variant.
	Yaz0
	// Zstd is a standard zstandard frame.
	Zstd
)

// MinLevel and MaxLevel bound the effort level accepted by Compress.
const (
	MinLevel = 0
	MaxLevel = 9
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

var (
	// ErrUnknownScheme indicates the input carries no recognised framing.
	ErrUnknownScheme = errors.New("codec: unknown compression scheme")
	// ErrLevel indicates an effort level outside MinLevel..MaxLevel.
	ErrLevel = errors.New("codec: level out of range")
)

// String implements the Stringer interface for Scheme.
func (s Scheme) String() string {
	switch s {
	case None:
		return "none"
	case Yaz0:
		return "yaz0"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// Extension returns the conventional file extension for an archive wrapped
// with s.
func (s Scheme) Extension() string {
	switch s {
	case Yaz0:
		return ".szs"
	case Zstd:
		return ".zs"
	default:
		return ".sarc"
	}
}

// ParseScheme converts a scheme name ("none", "yaz0", "zstd") to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "sarc":
		return None, nil
	case "yaz0", "szs":
		return Yaz0, nil
	case "zstd", "zs":
		return Zstd, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Detect inspects the leading magic of data.
func Detect(data []byte) Scheme {
	switch {
	case yaz0.IsYaz0(data):
		return Yaz0
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	default:
		return None
	}
}

// Decompress strips the framing found on data. It returns ErrUnknownScheme
// when data is not wrapped at all.
func Decompress(data []byte) ([]byte, Scheme, error) {
	switch s := Detect(data); s {
	case Yaz0:
		out, err := yaz0.Decompress(data)
		if err != nil {
			return nil, s, err
		}
		return out, s, nil
	case Zstd:
		out, err := zstdDecoder().DecodeAll(data, nil)
		if err != nil {
			return nil, s, fmt.Errorf("codec: zstd: %w", err)
		}
		return out, s, nil
	default:
		return nil, None, ErrUnknownScheme
	}
}

// Compress wraps data with scheme. alignment is recorded in the Yaz0 header
// as a hint for the decompressed buffer; level ranges from MinLevel (fastest)
// to MaxLevel (smallest). None returns data unchanged.
func Compress(data []byte, scheme Scheme, alignment uint32, level int) ([]byte, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, fmt.Errorf("%w: %d", ErrLevel, level)
	}
	switch scheme {
	case None:
		return data, nil
	case Yaz0:
		return yaz0.Compress(data, alignment, level)
	case Zstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstdLevel(level)), zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("codec: zstd: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownScheme, scheme)
	}
}

// zstdLevel maps the 0..9 effort scale onto the encoder presets.
func zstdLevel(level int) zstd.EncoderLevel {
	switch {
	case level <= 2:
		return zstd.SpeedFastest
	case level <= 5:
		return zstd.SpeedDefault
	case level <= 8:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

var (
	decoderOnce sync.Once
	decoder     *zstd.Decoder
)

// zstdDecoder returns a shared stateless decoder; DecodeAll is safe for
// concurrent use.
func zstdDecoder() *zstd.Decoder {
	decoderOnce.Do(func() {
		// NewReader(nil) with valid options cannot fail.
		decoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	})
	return decoder
}
