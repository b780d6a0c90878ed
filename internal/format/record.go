package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/joshuapare/pngkit/internal/buf"
)

// File record payload layout (big-endian), carried inside a FileChunkTag chunk:
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------
//	0x00    4     Key length K
//	0x04    K     Key bytes (UTF-8)
//	0x04+K  4     Compressed data length D
//	0x08+K  D     Deflate-compressed file contents
//
// The header decodes without touching the compressed data, so key scans stay
// O(1) per record regardless of payload size.

// RecordHeader is the cheap, decompression-free view of a file record.
type RecordHeader struct {
	Key        string
	Compressed []byte // view into the record payload, still deflated
}

// EncodeRecord compresses raw at the best deflate ratio and serializes the
// {key, compressed} record into a chunk payload.
func EncodeRecord(key string, raw []byte) ([]byte, error) {
	var cw bytes.Buffer
	zw, err := flate.NewWriter(&cw, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", key, err)
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("record %q: compress: %w", key, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("record %q: compress: %w", key, err)
	}
	compressed := cw.Bytes()

	out := make([]byte, 0, 2*LengthFieldSize+len(key)+len(compressed))
	out = buf.AppendU32BE(out, uint32(len(key)))
	out = append(out, key...)
	out = buf.AppendU32BE(out, uint32(len(compressed)))
	return append(out, compressed...), nil
}

// DecodeRecordHeader extracts the key and a view of the still-compressed data
// from a file record payload without decompressing anything.
func DecodeRecordHeader(payload []byte) (RecordHeader, error) {
	if len(payload) < LengthFieldSize {
		return RecordHeader{}, fmt.Errorf("record: key length: %w", ErrBadRecord)
	}
	keyLen := int(buf.U32BE(payload))
	key, ok := buf.Slice(payload, LengthFieldSize, keyLen)
	if !ok {
		return RecordHeader{}, fmt.Errorf("record: key of %d bytes: %w", keyLen, ErrBadRecord)
	}

	dataLenOff := LengthFieldSize + keyLen
	if !buf.Has(payload, dataLenOff, LengthFieldSize) {
		return RecordHeader{}, fmt.Errorf("record: data length: %w", ErrBadRecord)
	}
	dataLen := int(buf.U32BE(payload[dataLenOff:]))
	data, ok := buf.Slice(payload, dataLenOff+LengthFieldSize, dataLen)
	if !ok {
		return RecordHeader{}, fmt.Errorf("record: data of %d bytes: %w", dataLen, ErrBadRecord)
	}

	return RecordHeader{Key: string(key), Compressed: data}, nil
}

// ExtractRecord decodes the record header and inflates the compressed data,
// returning the key and the original file contents.
func ExtractRecord(payload []byte) (string, []byte, error) {
	hdr, err := DecodeRecordHeader(payload)
	if err != nil {
		return "", nil, err
	}
	zr := flate.NewReader(bytes.NewReader(hdr.Compressed))
	raw, err := io.ReadAll(zr)
	if err != nil {
		return "", nil, fmt.Errorf("record %q: %w", hdr.Key, ErrBadDeflate)
	}
	if err := zr.Close(); err != nil {
		return "", nil, fmt.Errorf("record %q: %w", hdr.Key, ErrBadDeflate)
	}
	return hdr.Key, raw, nil
}
