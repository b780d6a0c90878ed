package format

import (
	"encoding/binary"
	"errors"
	"strconv"
	"testing"
)

// appendTestChunk serializes a chunk with a correct CRC.
func appendTestChunk(b []byte, tag string, payload []byte) []byte {
	return AppendChunk(b, tag, payload, ChunkCRC(tag, payload))
}

func TestNextChunkValid(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	b := appendTestChunk(nil, "IDAT", payload)

	chunk, next, err := NextChunk(b, 0)
	if err != nil {
		t.Fatalf("NextChunk: %v", err)
	}
	if chunk.Tag != "IDAT" {
		t.Fatalf("tag mismatch: %q", chunk.Tag)
	}
	if chunk.DataStart != LengthFieldSize+TagSize || chunk.DataEnd != chunk.DataStart+len(payload) {
		t.Fatalf("unexpected payload range: %d..%d", chunk.DataStart, chunk.DataEnd)
	}
	if chunk.CRC != ChunkCRC("IDAT", payload) {
		t.Fatalf("crc mismatch: %08x", chunk.CRC)
	}
	if next != len(b) {
		t.Fatalf("next offset mismatch: %d", next)
	}
}

func TestNextChunkZeroLengthPayload(t *testing.T) {
	b := appendTestChunk(nil, "IEND", nil)

	chunk, next, err := NextChunk(b, 0)
	if err != nil {
		t.Fatalf("NextChunk: %v", err)
	}
	if chunk.DataStart != chunk.DataEnd {
		t.Fatalf("expected empty payload range, got %d..%d", chunk.DataStart, chunk.DataEnd)
	}
	if next != ChunkOverhead {
		t.Fatalf("next offset mismatch: %d", next)
	}
}

func TestNextChunkTruncated(t *testing.T) {
	b := appendTestChunk(nil, "IDAT", []byte{1, 2, 3})

	// Every strict prefix must fail with a truncation error.
	for cut := 1; cut < len(b); cut++ {
		if _, _, err := NextChunk(b[:len(b)-cut], 0); !errors.Is(err, ErrTruncated) {
			t.Fatalf("cut %d: expected ErrTruncated, got %v", cut, err)
		}
	}
}

func TestNextChunkDeclaredLengthPastEnd(t *testing.T) {
	b := appendTestChunk(nil, "IDAT", []byte{1, 2, 3})
	binary.BigEndian.PutUint32(b, 1000)

	if _, _, err := NextChunk(b, 0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestNextChunkChecksumMismatch(t *testing.T) {
	b := appendTestChunk(nil, "IDAT", []byte{1, 2, 3})

	// Flip one bit in the payload; the stored CRC no longer matches.
	b[LengthFieldSize+TagSize] ^= 0x01
	if _, _, err := NextChunk(b, 0); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestNextChunkBadTag(t *testing.T) {
	payload := []byte{1}
	b := AppendChunk(nil, "ID4T", payload, ChunkCRC("ID4T", payload))

	if _, _, err := NextChunk(b, 0); !errors.Is(err, ErrBadChunkType) {
		t.Fatalf("expected ErrBadChunkType, got %v", err)
	}
}

func TestFitsChunk(t *testing.T) {
	if !FitsChunk(0) || !FitsChunk(1) {
		t.Fatalf("small sizes should fit")
	}
	if FitsChunk(-1) {
		t.Fatalf("negative size should not fit")
	}
	if strconv.IntSize == 64 {
		if !FitsChunk(int(int64(MaxChunkLength))) {
			t.Fatalf("MaxChunkLength should fit")
		}
		if FitsChunk(int(int64(MaxChunkLength) + 1)) {
			t.Fatalf("MaxChunkLength+1 should not fit")
		}
	}
}

func TestChunkCRCCoversTagAndPayload(t *testing.T) {
	payload := []byte{1, 2, 3}
	if ChunkCRC("fiLe", payload) == ChunkCRC("IDAT", payload) {
		t.Fatalf("crc must depend on the tag")
	}
	if ChunkCRC("fiLe", payload) == ChunkCRC("fiLe", []byte{1, 2, 4}) {
		t.Fatalf("crc must depend on the payload")
	}
}
