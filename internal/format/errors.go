package format

import "errors"

var (
	// ErrSignatureMismatch indicates the stream does not start with the PNG signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates a declared length reads past the end of the buffer.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrChecksumMismatch indicates a chunk's stored CRC does not match its contents.
	ErrChecksumMismatch = errors.New("format: checksum mismatch")
	// ErrBadChunkType indicates a type tag outside the four-letter ASCII convention.
	ErrBadChunkType = errors.New("format: invalid chunk type")
	// ErrBadRecord indicates a malformed file record serialization.
	ErrBadRecord = errors.New("format: malformed file record")
	// ErrBadDeflate indicates a file record carried an invalid deflate stream.
	ErrBadDeflate = errors.New("format: invalid deflate stream")
)
