// Package buf contains helpers for endian-safe decoding routines.
package buf

import "encoding/binary"

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// PutU32BE writes a uint32 value to the buffer at the specified offset in big-endian format.
func PutU32BE(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}

// AppendU32BE appends v to b in big-endian byte order.
func AppendU32BE(b []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(b, v)
}
