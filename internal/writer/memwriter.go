package writer

// MemWriter captures archive bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteArchive stores a copy of b, reusing Buf's storage.
func (w *MemWriter) WriteArchive(b []byte) error {
	w.Buf = append(w.Buf[:0], b...)
	return nil
}
