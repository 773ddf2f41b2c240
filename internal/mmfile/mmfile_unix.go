//go:build unix

// Package mmfile maps archive files into memory so that parsed entries can
// alias the file's pages instead of a heap copy.
package mmfile

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// Map maps the file at path read-only and returns its contents together
// with a function that releases the mapping. Calling release more than once
// is safe.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > math.MaxInt {
		return nil, nil, fmt.Errorf("mmfile: %s too large to map (%d bytes)", path, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: map %s: %w", path, err)
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	release := sync.OnceValue(func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return err
	})
	return data, release, nil
}
