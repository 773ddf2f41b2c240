package sarc

import (
	"errors"

	"github.com/joshuapare/sarckit/internal/format"
	"github.com/joshuapare/sarckit/pkg/types"
)

// classify converts a low-level format error into a typed error.
func classify(msg string, err error) error {
	kind := types.ErrKindFormat
	switch {
	case errors.Is(err, format.ErrByteOrder):
		kind = types.ErrKindEndianness
	case errors.Is(err, format.ErrTooManyNodes):
		kind = types.ErrKindTooManyEntries
	case errors.Is(err, format.ErrUnsupported):
		kind = types.ErrKindUnsupported
	case errors.Is(err, format.ErrOffset):
		kind = types.ErrKindCorruptOffset
	}
	return types.Wrap(kind, msg, err)
}
