package archive

import (
	"github.com/joshuapare/sarckit/sarc"
)

// PackOptions controls PackDir.
type PackOptions struct {
	// Config is used for the new archive.
	// Default: sarc.DefaultConfig()
	Config *sarc.Config

	// Prefix is prepended to every entry name, e.g. "Layout" turns
	// "a.bflyt" into "Layout/a.bflyt". Leading and trailing slashes are
	// ignored.
	Prefix string

	// OnFile is called after each file is added.
	OnFile func(name string, size int)
}

// ExtractOptions controls Extract and ExtractMany.
type ExtractOptions struct {
	// Jobs bounds how many archives ExtractMany processes at once.
	// Default: 1
	Jobs int

	// Read is passed to sarc.Load for every archive.
	Read sarc.ReadOptions

	// OnFile is called after each entry is written with its destination.
	// ExtractMany may call it from several goroutines at once.
	OnFile func(path string, size int)
}

func (o *ExtractOptions) orDefault() ExtractOptions {
	if o == nil {
		return ExtractOptions{Jobs: 1}
	}
	out := *o
	if out.Jobs < 1 {
		out.Jobs = 1
	}
	return out
}
