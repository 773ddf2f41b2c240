package sarc

import (
	"errors"

	"github.com/joshuapare/sarckit/codec"
	"github.com/joshuapare/sarckit/internal/mmfile"
	"github.com/joshuapare/sarckit/internal/writer"
)

// Load parses data, first removing Yaz0 or zstd framing when present. If
// the payload claims a wrapper but fails to decompress, data is parsed as
// is. The scheme that was stripped is returned alongside the archive.
func Load(data []byte, opts ReadOptions) (*Archive, codec.Scheme, error) {
	raw, scheme, err := codec.Decompress(data)
	if err != nil {
		raw, scheme = data, codec.None
	}
	a, err := ParseWith(raw, opts)
	if err != nil {
		return nil, codec.None, err
	}
	return a, scheme, nil
}

// Open maps the file at path and loads it. Unless the file was compressed
// or opts.CopyData is set, entries alias the mapping and stay valid until
// Close.
func Open(path string, opts ReadOptions) (*Archive, codec.Scheme, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, codec.None, err
	}
	a, scheme, err := Load(data, opts)
	if err != nil {
		return nil, codec.None, errors.Join(err, release())
	}
	if scheme != codec.None || opts.CopyData {
		if err := release(); err != nil {
			return nil, codec.None, err
		}
		return a, scheme, nil
	}
	a.closer = release
	return a, scheme, nil
}

// SaveOptions control the framing applied by Save.
type SaveOptions struct {
	// Scheme wraps the container. Default: codec.None.
	Scheme codec.Scheme

	// Level trades speed for size, 0 (fastest) to 9 (smallest).
	Level int
}

// Save serializes the archive and wraps it according to opts. Yaz0 output
// carries the archive's data alignment in its header.
func (a *Archive) Save(opts SaveOptions) ([]byte, error) {
	var mem writer.MemWriter
	if _, err := a.SaveTo(&mem, opts); err != nil {
		return nil, err
	}
	return mem.Buf, nil
}

// SaveTo writes the saved archive to sink and reports the layout that was
// written. Its node count is lower than Len when colliding names were
// dropped.
func (a *Archive) SaveTo(sink writer.Sink, opts SaveOptions) (*Layout, error) {
	l, err := a.Marshal()
	if err != nil {
		return nil, err
	}
	out := l.Data
	if opts.Scheme != codec.None {
		out, err = codec.Compress(l.Data, opts.Scheme, l.DataAlignment, opts.Level)
		if err != nil {
			return nil, err
		}
	}
	if err := sink.WriteArchive(out); err != nil {
		return nil, err
	}
	return l, nil
}

// SaveFile atomically writes the saved archive to path.
func (a *Archive) SaveFile(path string, opts SaveOptions) (*Layout, error) {
	return a.SaveTo(&writer.FileWriter{Path: path}, opts)
}
