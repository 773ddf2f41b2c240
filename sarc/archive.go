package sarc

import (
	"cmp"
	"slices"

	"github.com/joshuapare/sarckit/internal/format"
	"github.com/joshuapare/sarckit/pkg/types"
)

// Entry is a single named blob in an archive.
type Entry struct {
	// Name is the normalized "/"-separated logical path.
	Name string

	// Data is the entry's payload. Entries returned by Parse alias the
	// parsed buffer unless ReadOptions.CopyData was set.
	Data []byte

	// HasFilename mirrors the flag byte of the on-disk name id. Entries
	// this package produces always carry a name.
	HasFilename bool
}

// Offset records where an entry's data was found in a parsed archive.
type Offset struct {
	Name string

	// Begin and End are relative to the container's data offset.
	Begin uint32
	End   uint32
}

// Archive is an in-memory SARC: a set of uniquely named entries plus the
// settings that govern serialization.
type Archive struct {
	cfg     Config
	entries []Entry
	index   map[string]int

	// offsets of parsed entries, keyed by name. Nil for archives built in
	// memory.
	offsets map[string]Offset

	// dataOffset is the header value of a parsed container.
	dataOffset uint32

	closer func() error
}

// New returns an empty archive using DefaultConfig.
func New() *Archive {
	a, _ := NewWithConfig(DefaultConfig())
	return a
}

// NewWithConfig returns an empty archive using cfg.
func NewWithConfig(cfg Config) (*Archive, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Archive{
		cfg:   cfg,
		index: make(map[string]int),
	}, nil
}

// Config returns a copy of the archive's configuration.
func (a *Archive) Config() Config {
	return a.cfg
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Add inserts data under name, replacing any entry with the same normalized
// name. The archive keeps data without copying it.
func (a *Archive) Add(name string, data []byte) error {
	name = NormalizeName(name)
	if err := validateName(name); err != nil {
		return err
	}
	if i, ok := a.index[name]; ok {
		a.entries[i].Data = data
		delete(a.offsets, name)
		return nil
	}
	a.index[name] = len(a.entries)
	a.entries = append(a.entries, Entry{Name: name, Data: data, HasFilename: true})
	return nil
}

// Remove deletes the entry stored under name. It reports whether an entry
// was removed.
func (a *Archive) Remove(name string) bool {
	name = NormalizeName(name)
	i, ok := a.index[name]
	if !ok {
		return false
	}
	a.entries = slices.Delete(a.entries, i, i+1)
	delete(a.index, name)
	delete(a.offsets, name)
	for j := i; j < len(a.entries); j++ {
		a.index[a.entries[j].Name] = j
	}
	return true
}

// Get returns the entry stored under name.
func (a *Archive) Get(name string) (Entry, bool) {
	i, ok := a.index[NormalizeName(name)]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// Lookup is like Get but returns a typed ErrKindNotFound error.
func (a *Archive) Lookup(name string) (Entry, error) {
	e, ok := a.Get(name)
	if !ok {
		return Entry{}, types.Errorf(types.ErrKindNotFound, "no entry named %q", name)
	}
	return e, nil
}

// Entries returns the entries in ascending hash order, which is the order
// they are serialized in. Entries with equal hashes keep insertion order.
func (a *Archive) Entries() []Entry {
	out := slices.Clone(a.entries)
	mult := a.cfg.HashMultiplier
	slices.SortStableFunc(out, func(x, y Entry) int {
		return cmp.Compare(Hash(x.Name, mult), Hash(y.Name, mult))
	})
	return out
}

// Names returns the entry names in serialization order.
func (a *Archive) Names() []string {
	entries := a.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// SetLittleEndian selects the byte order used on write.
func (a *Archive) SetLittleEndian(little bool) {
	a.cfg.LittleEndian = little
}

// SetHashMultiplier sets the multiplier used to hash and order names.
func (a *Archive) SetHashMultiplier(m uint32) {
	a.cfg.HashMultiplier = m
}

// SetDefaultAlignment sets the minimum data alignment. v must be a non-zero
// power of two; otherwise the archive is unchanged and an ErrKindConfig
// error is returned.
func (a *Archive) SetDefaultAlignment(v uint32) error {
	if err := validateAlignment(v); err != nil {
		return err
	}
	a.cfg.DefaultAlignment = v
	return nil
}

// SetCollisionPolicy sets how hash collisions are resolved on write.
func (a *Archive) SetCollisionPolicy(p CollisionPolicy) {
	a.cfg.Collision = p
}

// DataOffset returns the data offset stored in the header of the container
// the archive was parsed from. ok is false for archives built in memory.
func (a *Archive) DataOffset() (offset uint32, ok bool) {
	return a.dataOffset, a.offsets != nil
}

// Offsets returns the data ranges of parsed entries relative to the data
// offset, sorted by their position in the container. Entries added after parsing have no
// recorded offset and are omitted.
func (a *Archive) Offsets() []Offset {
	out := make([]Offset, 0, len(a.offsets))
	for _, e := range a.entries {
		if off, ok := a.offsets[e.Name]; ok {
			out = append(out, off)
		}
	}
	slices.SortFunc(out, func(x, y Offset) int {
		return cmp.Or(cmp.Compare(x.Begin, y.Begin), cmp.Compare(x.End, y.End))
	})
	return out
}

// GuessDefaultAlignment infers the default alignment a parsed archive was
// written with from the greatest common divisor of its absolute data
// offsets. It
// returns 4 when there are too few entries to tell or the result is not a
// power of two. Archives built in memory report their configured value.
func (a *Archive) GuessDefaultAlignment() uint32 {
	if a.offsets == nil {
		return a.cfg.DefaultAlignment
	}
	if len(a.offsets) <= 2 {
		return format.DefaultAlignment
	}
	var divisor uint32
	for _, off := range a.offsets {
		divisor = gcd(divisor, a.dataOffset+off.Begin)
	}
	if divisor == 0 || !format.IsPow2(divisor) {
		return format.DefaultAlignment
	}
	return divisor
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Tree projects the entry names into a folder hierarchy.
func (a *Archive) Tree() *Tree {
	return BuildTree(a.Entries())
}

// AddTree adds every file in t to the archive under its full path.
func (a *Archive) AddTree(t *Tree) error {
	for _, e := range t.Flatten() {
		if err := a.Add(e.Name, e.Data); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the mapping backing an archive returned by Open. Entry
// data must not be used afterwards. Close is a no-op for other archives.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer()
	a.closer = nil
	return err
}
