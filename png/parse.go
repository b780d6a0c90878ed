package png

import (
	"bytes"

	"github.com/joshuapare/pngkit/internal/format"
)

// ParseOptions controls how Parse represents chunk payloads.
type ParseOptions struct {
	// CopyPayloads copies every payload into a buffer owned by its chunk
	// instead of keeping zero-copy views, so the caller may reuse or release
	// data as soon as Parse returns.
	CopyPayloads bool
}

// Parse validates the PNG signature and decodes the chunk sequence into a
// Container. Every chunk's stored CRC is verified during the walk; any
// structural or integrity failure aborts the whole parse, never returning a
// partially populated container.
//
// Embedded file records get their key decoded immediately so lookups need no
// decompression, but the payload stays in its compressed, serialized form
// until extraction is requested. Duplicate keys are tolerated at parse time;
// uniqueness is enforced only by Insert.
func Parse(data []byte, opts ParseOptions) (*Container, error) {
	if len(data) < format.SignatureSize || !bytes.Equal(data[:format.SignatureSize], format.Signature) {
		return nil, ErrNotPNG
	}

	p := &Container{capacity: len(data)}
	for off := format.SignatureSize; off < len(data); {
		raw, next, err := format.NextChunk(data, off)
		if err != nil {
			return nil, wrapFormatErr(err)
		}

		ch := Chunk{tag: raw.Tag, crc: raw.CRC}
		if opts.CopyPayloads {
			ch.src = ownedSource(append([]byte(nil), data[raw.DataStart:raw.DataEnd]...))
		} else {
			ch.src = viewSource(data, raw.DataStart, raw.DataEnd)
		}

		if raw.Tag == format.FileChunkTag {
			hdr, err := format.DecodeRecordHeader(ch.payload())
			if err != nil {
				return nil, wrapFormatErr(err)
			}
			ch.key = hdr.Key
		}

		p.chunks = append(p.chunks, ch)
		off = next
	}
	return p, nil
}
