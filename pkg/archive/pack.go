package archive

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/joshuapare/sarckit/internal/fsio"
	"github.com/joshuapare/sarckit/sarc"
)

// PackDir builds an archive from every regular file below root. Entry
// names are paths relative to root with "/" separators, placed under
// PackOptions.Prefix when one is set.
func PackDir(fsys afero.Fs, root string, opts *PackOptions) (*sarc.Archive, error) {
	cfg := sarc.DefaultConfig()
	var (
		onFile func(string, int)
		prefix string
	)
	if opts != nil {
		if opts.Config != nil {
			cfg = *opts.Config
		}
		onFile = opts.OnFile
		prefix = strings.Trim(sarc.NormalizeName(opts.Prefix), "/")
	}

	a, err := sarc.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	for f, err := range fsio.Files(fsys, root) {
		if err != nil {
			return nil, err
		}
		name := f.Rel
		if prefix != "" {
			name = prefix + "/" + name
		}
		if err := a.Add(name, f.Data); err != nil {
			return nil, err
		}
		if onFile != nil {
			onFile(name, len(f.Data))
		}
	}
	return a, nil
}
