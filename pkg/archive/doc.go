/*
Package archive provides file-level operations on SARC archives: packing a
directory, extracting to disk, listing, statistics and diffs.

# Quick Start

Pack a directory into a Yaz0-compressed archive:

	a, err := archive.PackDir(afero.NewOsFs(), "romfs/Layout", nil)
	if err != nil {
	    log.Fatal(err)
	}
	_, err = a.SaveFile("Layout.szs", sarc.SaveOptions{Scheme: codec.Yaz0, Level: 9})

Extract several archives concurrently:

	err := archive.ExtractMany(ctx, afero.NewOsFs(), paths, "out", &archive.ExtractOptions{Jobs: 4})

All functions take an afero.Fs, so tests and callers can work entirely in
memory with afero.NewMemMapFs().
*/
package archive
