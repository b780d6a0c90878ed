package png

import "github.com/joshuapare/pngkit/internal/format"

// Serialize emits the container as a standalone byte stream: the PNG
// signature followed by every chunk in sequence order. No re-validation is
// performed; each chunk carries the CRC established at parse or insert time,
// so an unmodified container round-trips byte-for-byte.
func (p *Container) Serialize() []byte {
	out := make([]byte, 0, p.capacity)
	out = append(out, format.Signature...)
	for i := range p.chunks {
		c := &p.chunks[i]
		out = format.AppendChunk(out, c.tag, c.payload(), c.crc)
	}
	return out
}
