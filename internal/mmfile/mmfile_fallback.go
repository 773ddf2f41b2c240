//go:build !unix

// Package mmfile maps archive files into memory so that parsed entries can
// alias the file's pages instead of a heap copy.
package mmfile

import "os"

// Map reads the whole file on platforms without mmap support. The returned
// release function is a no-op.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
