package png

// payloadSource is the ownership form behind a chunk payload: either a
// (start, end) view into the shared, immutable parse buffer, or a freshly
// allocated buffer owned by one chunk alone. The parse buffer is never
// written after Parse, so views stay valid while sibling chunks are
// replaced or removed.
type payloadSource struct {
	arena      []byte // shared read-only parse buffer; nil for owned payloads
	start, end int
	owned      []byte
}

func viewSource(arena []byte, start, end int) payloadSource {
	return payloadSource{arena: arena, start: start, end: end}
}

func ownedSource(b []byte) payloadSource {
	return payloadSource{owned: b}
}

// bytes returns the read-only payload view. Callers must not modify it.
func (s payloadSource) bytes() []byte {
	if s.arena != nil {
		return s.arena[s.start:s.end]
	}
	return s.owned
}
