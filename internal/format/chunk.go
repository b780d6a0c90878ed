package format

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/joshuapare/pngkit/internal/buf"
)

// RawChunk describes a single chunk located inside a parsed buffer. The
// payload is referenced by its byte range rather than copied, so the caller
// decides the ownership form.
//
// Chunk layout (big-endian):
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------
//	0x00    4     Payload length L
//	0x04    4     Type tag, four ASCII letters
//	0x08    L     Payload
//	0x08+L  4     CRC-32 (IEEE) computed over tag ++ payload
type RawChunk struct {
	Tag       string
	DataStart int // payload start relative to the parsed buffer
	DataEnd   int // payload end (exclusive)
	CRC       uint32
}

// NextChunk decodes the chunk starting at off and returns it plus the offset
// of the following chunk. The stored CRC is verified against the tag and
// payload bytes; a mismatch fails the decode.
func NextChunk(b []byte, off int) (RawChunk, int, error) {
	if !buf.Has(b, off, LengthFieldSize+TagSize) {
		return RawChunk{}, 0, fmt.Errorf("chunk at %d: %w", off, ErrTruncated)
	}
	length := int(buf.U32BE(b[off:]))

	tagStart := off + LengthFieldSize
	dataStart := tagStart + TagSize
	dataEnd, ok := buf.AddOverflowSafe(dataStart, length)
	if !ok || !buf.Has(b, dataStart, length+CRCFieldSize) {
		return RawChunk{}, 0, fmt.Errorf("chunk at %d: declared length %d: %w", off, length, ErrTruncated)
	}

	// The tag and payload are contiguous, so the CRC input is a single slice.
	// The checksum is verified before the tag so that a corrupted tag byte
	// reports as an integrity failure rather than an unknown chunk type.
	tag := b[tagStart:dataStart]
	stored := buf.U32BE(b[dataEnd:])
	if sum := crc32.ChecksumIEEE(b[tagStart:dataEnd]); sum != stored {
		return RawChunk{}, 0, fmt.Errorf("chunk at %d: stored %08x, computed %08x: %w",
			off, stored, sum, ErrChecksumMismatch)
	}
	if !validTag(tag) {
		return RawChunk{}, 0, fmt.Errorf("chunk at %d: tag %q: %w", off, tag, ErrBadChunkType)
	}

	return RawChunk{
		Tag:       string(tag),
		DataStart: dataStart,
		DataEnd:   dataEnd,
		CRC:       stored,
	}, dataEnd + CRCFieldSize, nil
}

// AppendChunk appends the serialized form of one chunk to dst: length, tag,
// payload, and the provided CRC. The CRC is written as-is; callers keep the
// parsed value for untouched chunks and compute a fresh one for new payloads.
func AppendChunk(dst []byte, tag string, payload []byte, crc uint32) []byte {
	dst = buf.AppendU32BE(dst, uint32(len(payload)))
	dst = append(dst, tag...)
	dst = append(dst, payload...)
	return buf.AppendU32BE(dst, crc)
}

// ChunkCRC computes the checksum stored in a chunk footer: CRC-32 (IEEE)
// over the type tag followed by the payload.
func ChunkCRC(tag string, payload []byte) uint32 {
	h := crc32.NewIEEE()
	io.WriteString(h, tag)
	h.Write(payload)
	return h.Sum32()
}

// validTag reports whether tag follows the chunk naming convention of four
// ASCII letters. Case carries the property bits and is not constrained here.
func validTag(tag []byte) bool {
	if len(tag) != TagSize {
		return false
	}
	for _, c := range tag {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
