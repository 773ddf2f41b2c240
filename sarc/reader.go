package sarc

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/sarckit/internal/buf"
	"github.com/joshuapare/sarckit/internal/format"
	"github.com/joshuapare/sarckit/pkg/types"
)

// Parse decodes an unwrapped SARC container. Entry data aliases data.
func Parse(data []byte) (*Archive, error) {
	return ParseWith(data, ReadOptions{})
}

// ParseWith decodes an unwrapped SARC container using opts.
func ParseWith(data []byte, opts ReadOptions) (*Archive, error) {
	hdr, err := format.ParseHeader(data)
	if err != nil {
		return nil, classify("parse container header", err)
	}
	order := hdr.Order()

	sfat, err := format.ParseSFATHeader(order, data[format.SFATOffset:])
	if err != nil {
		return nil, classify("parse file table", err)
	}
	count := int(sfat.NodeCount)
	if !buf.Has(data, format.NodeTableOffset, count*format.SFATNodeSize) {
		return nil, types.Errorf(types.ErrKindFormat,
			"file table of %d nodes runs past end of %d-byte input", count, len(data))
	}

	sfntOff := format.NodeOffset(count)
	if err := format.ParseSFNTHeader(order, data[sfntOff:]); err != nil {
		return nil, classify("parse name table", err)
	}
	nameTable := uint64(sfntOff) + format.SFNTHeaderSize
	dataOffset := uint64(hdr.DataOffset)
	if dataOffset < nameTable {
		return nil, types.Errorf(types.ErrKindCorruptOffset,
			"data offset 0x%x precedes name table at 0x%x", dataOffset, nameTable)
	}
	if dataOffset > uint64(len(data)) {
		return nil, types.Errorf(types.ErrKindCorruptOffset,
			"data offset 0x%x past end of %d-byte input", dataOffset, len(data))
	}

	cfg := DefaultConfig()
	cfg.LittleEndian = hdr.LittleEndian
	cfg.HashMultiplier = sfat.HashMultiplier
	a, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	a.dataOffset = hdr.DataOffset
	a.entries = make([]Entry, 0, count)
	a.offsets = make(map[string]Offset, count)

	for i := range count {
		node, err := format.DecodeNode(order, data[format.NodeOffset(i):])
		if err != nil {
			return nil, classify("decode node", err)
		}
		name, err := node.Name(data, nameTable, dataOffset)
		if err != nil {
			return nil, classify(fmt.Sprintf("node %d", i), err)
		}
		blob, err := node.Data(data, dataOffset)
		if err != nil {
			return nil, classify(fmt.Sprintf("node %d (%s)", i, name), err)
		}
		if opts.CopyData {
			blob = bytes.Clone(blob)
		}

		if !opts.SkipHashCheck {
			if want := Hash(name, sfat.HashMultiplier); want != node.Hash {
				return nil, types.Errorf(types.ErrKindCorruptTable,
					"node %d (%s) hash 0x%08x, expected 0x%08x", i, name, node.Hash, want)
			}
		}
		if _, dup := a.index[name]; dup {
			return nil, types.Errorf(types.ErrKindCorruptTable, "duplicate entry name %q", name)
		}

		a.index[name] = len(a.entries)
		a.entries = append(a.entries, Entry{Name: name, Data: blob, HasFilename: node.HasFilename()})
		a.offsets[name] = Offset{Name: name, Begin: node.DataBegin, End: node.DataEnd}
	}
	return a, nil
}
