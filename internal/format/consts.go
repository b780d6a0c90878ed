// Package format houses low-level codecs for the PNG container format. The
// goal is to keep the parsing focused, allocation-free where possible, and
// independent from the public API so higher-level packages can orchestrate
// the data in a more ergonomic form.
package format

// Signature is the eight-byte sequence at the start of every PNG stream.
// Layout:
//
//	0x00  0x89 'P' 'N' 'G' 0x0D 0x0A 0x1A 0x0A
var Signature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

const (
	// SignatureSize is the size of the PNG signature in bytes.
	SignatureSize = 8

	// LengthFieldSize is the size of the u32 payload length preceding every chunk.
	LengthFieldSize = 4

	// TagSize is the size of a chunk type tag.
	TagSize = 4

	// CRCFieldSize is the size of the u32 checksum trailing every chunk.
	CRCFieldSize = 4

	// ChunkOverhead is the number of framing bytes carried by every chunk in
	// addition to its payload.
	ChunkOverhead = LengthFieldSize + TagSize + CRCFieldSize

	// MaxChunkLength is the largest payload the u32 length field can describe.
	MaxChunkLength = 1<<32 - 1
)

// FileChunkTag is the reserved private chunk type carrying an embedded file
// record. Per-byte case encodes the chunk property bits (bit 5 of each byte):
//
//	f  ancillary    (lowercase: decoders may ignore the chunk)
//	i  private      (lowercase: not a registered public chunk)
//	L  reserved     (uppercase: reserved bit must stay 0)
//	e  safe-to-copy (lowercase: editors may carry it across rewrites)
const FileChunkTag = "fiLe"

// FitsChunk reports whether a payload of n bytes fits the chunk length field.
func FitsChunk(n int) bool {
	return n >= 0 && uint64(n) <= MaxChunkLength
}
