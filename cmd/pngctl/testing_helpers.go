package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/pngkit/internal/format"
)

// writeFixtureImage writes a minimal valid PNG into dir and returns its path.
func writeFixtureImage(t *testing.T, dir string) string {
	t.Helper()
	img := append([]byte(nil), format.Signature...)
	for _, c := range []struct {
		tag     string
		payload []byte
	}{
		{"IHDR", []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 0, 0, 0, 0}},
		{"IDAT", []byte{0x78, 0x9c, 0x62, 0x00, 0x00}},
		{"IEND", nil},
	} {
		img = format.AppendChunk(img, c.tag, c.payload, format.ChunkCRC(c.tag, c.payload))
	}
	path := filepath.Join(dir, "fixture.png")
	if err := os.WriteFile(path, img, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
