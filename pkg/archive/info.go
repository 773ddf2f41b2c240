package archive

import (
	"cmp"
	"slices"

	"github.com/opencontainers/go-digest"

	"github.com/joshuapare/sarckit/codec"
	"github.com/joshuapare/sarckit/internal/sniff"
	"github.com/joshuapare/sarckit/sarc"
)

// Stats summarizes an archive.
type Stats struct {
	Entries          int    `json:"entries"`
	Compression      string `json:"compression"`
	ByteOrder        string `json:"byte_order"`
	HashMultiplier   uint32 `json:"hash_multiplier"`
	DefaultAlignment uint32 `json:"default_alignment"`
	DataAlignment    uint32 `json:"data_alignment"`
	DataOffset       uint32 `json:"data_offset"`
	DataBytes        int64  `json:"data_bytes"`
	Largest          string `json:"largest,omitempty"`
	Folders          int    `json:"folders"`
	Nested           int    `json:"nested_archives"`
}

// Collect computes statistics for a. scheme is the framing the archive
// was loaded from. Parsed archives report the data offset stored in their
// header; DataAlignment is the largest alignment an entry needs given the
// default alignment the archive appears to use.
func Collect(a *sarc.Archive, scheme codec.Scheme) (Stats, error) {
	cfg := a.Config()
	s := Stats{
		Entries:          a.Len(),
		Compression:      scheme.String(),
		ByteOrder:        "big",
		HashMultiplier:   cfg.HashMultiplier,
		DefaultAlignment: a.GuessDefaultAlignment(),
	}
	if cfg.LittleEndian {
		s.ByteOrder = "little"
	}

	if off, ok := a.DataOffset(); ok {
		s.DataOffset = off
	} else {
		l, err := a.Marshal()
		if err != nil {
			return Stats{}, err
		}
		s.DataOffset = l.DataOffset
	}

	var largest int
	s.DataAlignment = 1
	for _, e := range a.Entries() {
		s.DataAlignment = max(s.DataAlignment, sniff.Alignment(e.Data, s.DefaultAlignment))
		s.DataBytes += int64(len(e.Data))
		if len(e.Data) > largest {
			largest, s.Largest = len(e.Data), e.Name
		}
		if sniff.IsArchive(e.Data) {
			s.Nested++
		}
	}
	tree := a.Tree()
	_ = tree.Walk(func(id sarc.NodeID, _ int) error {
		if n, _ := tree.Node(id); n.Kind == sarc.KindFolder {
			s.Folders++
		}
		return nil
	})
	return s, nil
}

// Listing describes one entry for display.
type Listing struct {
	Name      string        `json:"name"`
	Display   string        `json:"display_name,omitempty"`
	Size      int           `json:"size"`
	Hash      uint32        `json:"hash"`
	Alignment uint32        `json:"alignment"`
	Offset    uint32        `json:"offset"`
	Extension string        `json:"extension"`
	Digest    digest.Digest `json:"digest,omitempty"`
}

// List describes every entry in serialization order. Entries read from a
// container report where they were found; others report where they would
// be written. withDigest adds a sha256 content digest per entry.
func List(a *sarc.Archive, withDigest bool) ([]Listing, error) {
	l, err := a.Marshal()
	if err != nil {
		return nil, err
	}
	base, parsed := a.DataOffset()
	found := make(map[string]uint32)
	for _, off := range a.Offsets() {
		found[off.Name] = base + off.Begin
	}

	out := make([]Listing, 0, len(l.Nodes))
	for _, n := range l.Nodes {
		e, _ := a.Get(n.Name)
		item := Listing{
			Name:      n.Name,
			Size:      len(e.Data),
			Hash:      n.Hash,
			Alignment: n.Alignment,
			Offset:    l.DataOffset + n.Begin,
			Extension: sniff.Extension(e.Data),
		}
		if off, ok := found[n.Name]; parsed && ok {
			item.Offset = off
		}
		if d := sarc.DisplayName(n.Name); d != n.Name {
			item.Display = d
		}
		if withDigest {
			item.Digest = digest.FromBytes(e.Data)
		}
		out = append(out, item)
	}
	return out, nil
}

// DiffStatus is the state of an entry when comparing two archives.
type DiffStatus int

const (
	DiffUnchanged DiffStatus = iota // Entry has identical data in both
	DiffAdded                       // Entry only in the new archive
	DiffRemoved                     // Entry only in the old archive
	DiffModified                    // Entry in both with different data
)

// String implements the Stringer interface for DiffStatus.
func (s DiffStatus) String() string {
	switch s {
	case DiffAdded:
		return "added"
	case DiffRemoved:
		return "removed"
	case DiffModified:
		return "modified"
	default:
		return "unchanged"
	}
}

// MarshalText renders the status by name.
func (s DiffStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// EntryDiff is the comparison result for one name.
type EntryDiff struct {
	Name      string        `json:"name"`
	Status    DiffStatus    `json:"status"`
	OldDigest digest.Digest `json:"old_digest,omitempty"`
	NewDigest digest.Digest `json:"new_digest,omitempty"`
}

// Diff compares two archives by entry name and content digest. Results are
// sorted by name.
func Diff(older, newer *sarc.Archive) []EntryDiff {
	seen := make(map[string]*EntryDiff)
	for _, e := range older.Entries() {
		seen[e.Name] = &EntryDiff{Name: e.Name, Status: DiffRemoved, OldDigest: digest.FromBytes(e.Data)}
	}
	for _, e := range newer.Entries() {
		d := digest.FromBytes(e.Data)
		prev, ok := seen[e.Name]
		if !ok {
			seen[e.Name] = &EntryDiff{Name: e.Name, Status: DiffAdded, NewDigest: d}
			continue
		}
		prev.NewDigest = d
		prev.Status = DiffModified
		if prev.OldDigest == d {
			prev.Status = DiffUnchanged
		}
	}

	out := make([]EntryDiff, 0, len(seen))
	for _, d := range seen {
		out = append(out, *d)
	}
	slices.SortFunc(out, func(x, y EntryDiff) int { return cmp.Compare(x.Name, y.Name) })
	return out
}
