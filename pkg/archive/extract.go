package archive

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/sarckit/internal/fsio"
	"github.com/joshuapare/sarckit/pkg/types"
	"github.com/joshuapare/sarckit/sarc"
)

// Extract writes every entry of a below dest, one file per entry. Files are
// named by sarc.DisplayName, so legacy Shift-JIS names land as UTF-8. Entry
// names that would escape dest are rejected.
func Extract(ctx context.Context, fsys afero.Fs, a *sarc.Archive, dest string, opts *ExtractOptions) error {
	o := opts.orDefault()
	for _, e := range a.Entries() {
		if err := ctx.Err(); err != nil {
			return err
		}
		path, err := fsio.WriteFile(fsys, dest, sarc.DisplayName(e.Name), e.Data)
		if err != nil {
			return err
		}
		if o.OnFile != nil {
			o.OnFile(path, len(e.Data))
		}
	}
	return nil
}

// ExtractFile loads the archive at path and extracts it below dest.
func ExtractFile(ctx context.Context, fsys afero.Fs, path, dest string, opts *ExtractOptions) error {
	o := opts.orDefault()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return err
	}
	a, _, err := sarc.Load(data, o.Read)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return Extract(ctx, fsys, a, dest, &o)
}

// ExtractMany extracts each archive in paths into its own directory below
// dest, named after the archive without its extension. Up to opts.Jobs
// archives are processed concurrently; the first failure cancels the rest.
// Two archives sharing a stem (a.sarc and a.szs) would write into the same
// directory and are rejected before anything is extracted.
func ExtractMany(ctx context.Context, fsys afero.Fs, paths []string, dest string, opts *ExtractOptions) error {
	o := opts.orDefault()
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		stem := Stem(p)
		if prev, dup := seen[stem]; dup {
			return types.Errorf(types.ErrKindConfig,
				"%s and %s both extract to %q", prev, p, filepath.Join(dest, stem))
		}
		seen[stem] = p
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Jobs)
	for _, p := range paths {
		g.Go(func() error {
			return ExtractFile(ctx, fsys, p, filepath.Join(dest, Stem(p)), &o)
		})
	}
	return g.Wait()
}

// Stem returns the base name of path without its final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
