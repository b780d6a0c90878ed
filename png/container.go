package png

import (
	"fmt"

	"github.com/joshuapare/pngkit/internal/format"
)

// Chunk is one record of the container: a four-character type tag, the
// payload in whichever ownership form backs it, and the stored checksum.
type Chunk struct {
	tag string
	key string // decoded record key when tag == format.FileChunkTag
	src payloadSource
	crc uint32
}

func (c *Chunk) isFile() bool { return c.tag == format.FileChunkTag }

func (c *Chunk) payload() []byte { return c.src.bytes() }

// Container is a parsed PNG: the ordered chunk sequence plus a capacity hint
// used to preallocate the serialized output.
type Container struct {
	chunks   []Chunk
	capacity int
}

// Len returns the number of chunks in the container.
func (p *Container) Len() int { return len(p.chunks) }

// Keys returns the keys of all embedded file records in sequence order.
// Duplicate keys surviving from a parsed image are reported as-is.
func (p *Container) Keys() []string {
	var keys []string
	for i := range p.chunks {
		if p.chunks[i].isFile() {
			keys = append(keys, p.chunks[i].key)
		}
	}
	return keys
}

// ChunkInfo is a read-only summary of one chunk, for inspection tooling.
type ChunkInfo struct {
	Tag    string `json:"tag"`
	Length int    `json:"length"`
	CRC    uint32 `json:"crc"`
	Key    string `json:"key,omitempty"` // set for embedded file records
}

// Chunks returns a summary of every chunk in sequence order.
func (p *Container) Chunks() []ChunkInfo {
	out := make([]ChunkInfo, len(p.chunks))
	for i := range p.chunks {
		c := &p.chunks[i]
		out[i] = ChunkInfo{Tag: c.tag, Length: len(c.payload()), CRC: c.crc, Key: c.key}
	}
	return out
}

// Extract returns the decompressed contents embedded under key, or an error
// of kind ErrKindNotFound when no record matches and ErrKindCompression or
// ErrKindEncoding when the matching record is damaged.
func (p *Container) Extract(key string) ([]byte, error) {
	idx := p.findFile(key)
	if idx < 0 {
		return nil, &Error{Kind: ErrKindNotFound, Msg: fmt.Sprintf("key %q not found in image", key), Err: ErrNotFound}
	}
	_, raw, err := format.ExtractRecord(p.chunks[idx].payload())
	if err != nil {
		return nil, wrapFormatErr(err)
	}
	return raw, nil
}

// Get is the lookup-style form of Extract. The boolean is false when no
// record matches, and also when the matching record fails to decode: a
// corrupt record is indistinguishable from an absent one here.
func (p *Container) Get(key string) ([]byte, bool) {
	raw, err := p.Extract(key)
	if err != nil {
		return nil, false
	}
	return raw, true
}

// Remove deletes the first file record matching key, reporting whether a
// removal occurred. Chunks of any other type are never removed, so their
// relative order is preserved.
func (p *Container) Remove(key string) bool {
	idx := p.findFile(key)
	if idx < 0 {
		return false
	}
	p.capacity -= format.ChunkOverhead + len(p.chunks[idx].payload())
	p.chunks = append(p.chunks[:idx], p.chunks[idx+1:]...)
	return true
}

// Insert embeds data under key. An existing record with the same key fails
// the insert unless replace is true, in which case the new record takes the
// old one's position in the chunk sequence. A new key is appended after all
// existing chunks. On any error the container is left unchanged.
func (p *Container) Insert(key string, data []byte, replace bool) error {
	idx := p.findFile(key)
	if idx >= 0 && !replace {
		return &Error{Kind: ErrKindDuplicateKey, Msg: fmt.Sprintf("key %q already embedded", key)}
	}

	payload, err := format.EncodeRecord(key, data)
	if err != nil {
		return wrapFormatErr(err)
	}
	if !format.FitsChunk(len(payload)) {
		return &Error{
			Kind: ErrKindSizeLimit,
			Msg:  fmt.Sprintf("encoded record for key %q is %d bytes, exceeding the chunk length field", key, len(payload)),
		}
	}

	ch := Chunk{
		tag: format.FileChunkTag,
		key: key,
		src: ownedSource(payload),
		crc: format.ChunkCRC(format.FileChunkTag, payload),
	}
	if idx < 0 {
		p.chunks = append(p.chunks, ch)
	} else {
		p.capacity -= len(p.chunks[idx].payload())
		p.capacity += len(payload)
		p.chunks[idx] = ch
		return nil
	}
	p.capacity += format.ChunkOverhead + len(payload)
	return nil
}

// findFile returns the index of the first file chunk whose key matches, or -1.
func (p *Container) findFile(key string) int {
	for i := range p.chunks {
		if p.chunks[i].isFile() && p.chunks[i].key == key {
			return i
		}
	}
	return -1
}
