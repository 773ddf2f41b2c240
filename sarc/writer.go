package sarc

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"github.com/joshuapare/sarckit/internal/format"
	"github.com/joshuapare/sarckit/internal/sniff"
	"github.com/joshuapare/sarckit/pkg/types"
)

// Layout is a serialized archive together with the placement decisions
// that produced it.
type Layout struct {
	// Data is the complete container.
	Data []byte

	// DataOffset is the absolute offset of the data section.
	DataOffset uint32

	// DataAlignment is the largest alignment any entry required (at least
	// 1). Compressors that preserve alignment take it as a hint.
	DataAlignment uint32

	// Nodes lists the entries in serialization order.
	Nodes []NodeLayout
}

// NodeLayout describes where one entry landed.
type NodeLayout struct {
	Name      string
	Hash      uint32
	Alignment uint32

	// Begin and End are relative to DataOffset.
	Begin uint32
	End   uint32
}

// Bytes serializes the archive.
func (a *Archive) Bytes() ([]byte, error) {
	l, err := a.Marshal()
	if err != nil {
		return nil, err
	}
	return l.Data, nil
}

type hashedEntry struct {
	Entry
	hash uint32
}

// hashedEntries returns the entries sorted by hash with collisions resolved
// according to the configured policy.
func (a *Archive) hashedEntries() ([]hashedEntry, error) {
	log := a.cfg.logger()
	items := make([]hashedEntry, len(a.entries))
	for i, e := range a.entries {
		items[i] = hashedEntry{Entry: e, hash: Hash(e.Name, a.cfg.HashMultiplier)}
	}
	slices.SortStableFunc(items, func(x, y hashedEntry) int {
		return cmp.Compare(x.hash, y.hash)
	})

	out := items[:0]
	for _, it := range items {
		if n := len(out); n > 0 && out[n-1].hash == it.hash {
			prev := out[n-1]
			if a.cfg.Collision == CollisionReject {
				return nil, types.Errorf(types.ErrKindCollision,
					"%q and %q share hash 0x%08x", prev.Name, it.Name, it.hash)
			}
			log.Warn("hash collision, keeping newer entry",
				slog.String("dropped", prev.Name),
				slog.String("kept", it.Name),
				slog.String("hash", hex32(it.hash)))
			out[n-1] = it
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// Marshal serializes the archive and reports the resulting layout.
//
// Entries are placed in ascending hash order. Each entry's data begins on
// the alignment its content requires, never less than the default
// alignment. The data section begins on the largest such alignment.
func (a *Archive) Marshal() (*Layout, error) {
	log := a.cfg.logger()
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	items, err := a.hashedEntries()
	if err != nil {
		return nil, err
	}
	if len(items) > format.MaxNodeCount {
		return nil, types.Errorf(types.ErrKindTooManyEntries,
			"%d entries, limit is %d", len(items), format.MaxNodeCount)
	}

	order := a.cfg.order()
	nodes := make([]NodeLayout, len(items))
	var (
		cursor    uint64
		nameBytes uint64
		maxAlign  uint32 = 1
	)
	for i, it := range items {
		if nameBytes/format.NameAlignment > format.NameOffsetMask {
			return nil, types.Errorf(types.ErrKindLimit,
				"name table offset 0x%x for %q exceeds the 24-bit name id", nameBytes, it.Name)
		}
		align := sniff.Alignment(it.Data, a.cfg.DefaultAlignment)
		cursor = format.AlignUp(cursor, uint64(align))
		begin := cursor
		cursor += uint64(len(it.Data))
		if cursor > math.MaxUint32 {
			return nil, types.Errorf(types.ErrKindLimit,
				"data section exceeds 4 GiB at %q", it.Name)
		}
		nodes[i] = NodeLayout{
			Name:      it.Name,
			Hash:      it.hash,
			Alignment: align,
			Begin:     uint32(begin),
			End:       uint32(cursor),
		}
		maxAlign = max(maxAlign, align)
		nameBytes += uint64(format.NameSize(len(it.Name)))

		log.Debug("placed entry",
			slog.String("name", it.Name),
			slog.String("hash", hex32(it.hash)),
			slog.Uint64("alignment", uint64(align)),
			slog.Uint64("begin", begin),
			slog.Int("size", len(it.Data)))
	}

	tablesEnd := uint64(format.NodeOffset(len(items))) + format.SFNTHeaderSize + nameBytes
	dataOffset := format.AlignUp(format.AlignUp(tablesEnd, format.DataOffsetMinAlignment), uint64(maxAlign))
	total := dataOffset + cursor
	if total > math.MaxUint32 {
		return nil, types.Errorf(types.ErrKindLimit, "archive size 0x%x exceeds 4 GiB", total)
	}

	out := make([]byte, 0, total)
	out = append(out, format.EncodeHeader(format.Header{
		LittleEndian: a.cfg.LittleEndian,
		FileSize:     uint32(total),
		DataOffset:   uint32(dataOffset),
	})...)
	out = append(out, format.EncodeSFATHeader(order, format.SFATHeader{
		NodeCount:      uint16(len(items)),
		HashMultiplier: a.cfg.HashMultiplier,
	})...)
	var nameOff uint32
	for i, n := range nodes {
		out = format.AppendNode(order, out, format.Node{
			Hash:      n.Hash,
			NameID:    format.NameID(nameOff),
			DataBegin: n.Begin,
			DataEnd:   n.End,
		})
		nameOff += format.NameSize(len(items[i].Name))
	}
	out = append(out, format.EncodeSFNTHeader(order)...)
	for _, it := range items {
		out = format.AppendName(out, it.Name)
	}
	out = pad(out, int(dataOffset))
	for i, it := range items {
		out = pad(out, int(dataOffset)+int(nodes[i].Begin))
		out = append(out, it.Data...)
	}

	log.Debug("marshaled archive",
		slog.Int("entries", len(items)),
		slog.Uint64("data_offset", dataOffset),
		slog.Uint64("data_alignment", uint64(maxAlign)),
		slog.Uint64("size", total))

	return &Layout{
		Data:          out,
		DataOffset:    uint32(dataOffset),
		DataAlignment: maxAlign,
		Nodes:         nodes,
	}, nil
}

// pad appends zero bytes to b until it is n bytes long.
func pad(b []byte, n int) []byte {
	for len(b) < n {
		b = append(b, 0)
	}
	return b
}
