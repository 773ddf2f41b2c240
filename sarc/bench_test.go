package sarc

import (
	"bytes"
	"fmt"
	"testing"
)

func benchArchive(b *testing.B, n, size int) *Archive {
	b.Helper()
	a := New()
	for i := range n {
		if err := a.Add(fmt.Sprintf("Model/%04d.bfres", i), bytes.Repeat([]byte{byte(i)}, size)); err != nil {
			b.Fatal(err)
		}
	}
	return a
}

func BenchmarkMarshal(b *testing.B) {
	for _, n := range []int{16, 1024} {
		b.Run(fmt.Sprintf("entries=%d", n), func(b *testing.B) {
			a := benchArchive(b, n, 512)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := a.Bytes(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	for _, n := range []int{16, 1024} {
		b.Run(fmt.Sprintf("entries=%d", n), func(b *testing.B) {
			data, err := benchArchive(b, n, 512).Bytes()
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Parse(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
