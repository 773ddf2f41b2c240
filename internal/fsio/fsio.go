// Package fsio moves archive contents between a directory tree and memory
// over an afero filesystem, so callers can target the OS or an in-memory
// filesystem alike.
package fsio

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DirPerm and FilePerm are the modes used for created directories and files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// ErrUnsafePath reports an entry name that would escape the target root.
var ErrUnsafePath = errors.New("fsio: path escapes root")

// File is a regular file found below a root.
type File struct {
	// Rel is the "/"-separated path relative to the root.
	Rel  string
	Data []byte
}

var errStop = errors.New("stop")

// Files yields every regular file below root in lexical order. Directories
// and other non-regular files are skipped. Iteration stops at the first
// error, which is yielded once.
func Files(fsys afero.Fs, root string) iter.Seq2[File, error] {
	return func(yield func(File, error) bool) {
		err := afero.Walk(fsys, root, func(p string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}
			data, err := afero.ReadFile(fsys, p)
			if err != nil {
				return err
			}
			if !yield(File{Rel: filepath.ToSlash(rel), Data: data}, nil) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield(File{}, fmt.Errorf("fsio: walk %s: %w", root, err))
		}
	}
}

// Join resolves a "/"-separated entry name below root. Leading separators
// and "." segments are dropped; ".." segments are rejected.
func Join(root, name string) (string, error) {
	var segs []string
	for _, seg := range strings.FieldsFunc(name, isSeparator) {
		switch seg {
		case ".":
			continue
		case "..":
			return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
		}
		segs = append(segs, seg)
	}
	if len(segs) == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	return filepath.Join(append([]string{root}, segs...)...), nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// WriteFile writes data to name below root, creating parent directories.
func WriteFile(fsys afero.Fs, root, name string, data []byte) (string, error) {
	dst, err := Join(root, name)
	if err != nil {
		return "", err
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), DirPerm); err != nil {
		return "", fmt.Errorf("fsio: mkdir for %s: %w", dst, err)
	}
	if err := afero.WriteFile(fsys, dst, data, FilePerm); err != nil {
		return "", fmt.Errorf("fsio: write %s: %w", dst, err)
	}
	return dst, nil
}
