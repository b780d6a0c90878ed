package writer

// MemWriter captures image bytes in memory, for tests and dry runs.
type MemWriter struct {
	Buf []byte
}

// WriteImage stores a copy of the provided buffer.
func (w *MemWriter) WriteImage(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
