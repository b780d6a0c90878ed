package png

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pngkit/internal/format"
)

// testChunk describes one chunk of a fixture image.
type testChunk struct {
	tag     string
	payload []byte
}

// buildImage assembles a valid PNG byte stream from chunk descriptions,
// computing each chunk's CRC.
func buildImage(chunks ...testChunk) []byte {
	out := append([]byte(nil), format.Signature...)
	for _, c := range chunks {
		out = format.AppendChunk(out, c.tag, c.payload, format.ChunkCRC(c.tag, c.payload))
	}
	return out
}

// fileRecordChunk builds a fiLe chunk for the given key and contents.
func fileRecordChunk(t *testing.T, key string, data []byte) testChunk {
	t.Helper()
	payload, err := format.EncodeRecord(key, data)
	require.NoError(t, err)
	return testChunk{tag: format.FileChunkTag, payload: payload}
}

// baseChunks is a minimal plausible host image: header, pixel data, trailer.
func baseChunks() []testChunk {
	return []testChunk{
		{tag: "IHDR", payload: []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 0, 0, 0, 0}},
		{tag: "IDAT", payload: []byte{0x78, 0x9c, 0x62, 0x00, 0x00}},
		{tag: "IEND"},
	}
}

func TestParseRejectsBadSignature(t *testing.T) {
	_, err := Parse([]byte("definitely not a png"), ParseOptions{})
	require.ErrorIs(t, err, ErrNotPNG)

	_, err = Parse(nil, ParseOptions{})
	require.ErrorIs(t, err, ErrNotPNG)

	// A correct prefix that stops short of the full signature still fails.
	_, err = Parse(format.Signature[:7], ParseOptions{})
	require.ErrorIs(t, err, ErrNotPNG)
}

func TestParseSignatureOnly(t *testing.T) {
	c, err := Parse(buildImage(), ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, 0, c.Len())
	require.Equal(t, append([]byte(nil), format.Signature...), c.Serialize())
}

func TestParseRoundTripsByteForByte(t *testing.T) {
	chunks := append(baseChunks()[:2:2],
		testChunk{tag: "tEXt", payload: []byte("Title\x00hello")},
		fileRecordChunk(t, "a.txt", []byte("embedded contents")),
		baseChunks()[2])
	img := buildImage(chunks...)

	c, err := Parse(img, ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, len(chunks), c.Len())
	require.Equal(t, img, c.Serialize())
}

func TestParseDetectsBitFlips(t *testing.T) {
	img := buildImage(baseChunks()...)

	// Flip a single bit in each chunk's tag and payload regions; every one
	// must surface as an integrity failure.
	offsets := []int{
		format.SignatureSize + format.LengthFieldSize,     // first byte of IHDR tag
		format.SignatureSize + format.LengthFieldSize + 5, // inside IHDR payload
	}
	for _, off := range offsets {
		corrupted := append([]byte(nil), img...)
		corrupted[off] ^= 0x40
		_, err := Parse(corrupted, ParseOptions{})
		require.Error(t, err, "offset %d", off)
		require.True(t, IsKind(err, ErrKindIntegrity), "offset %d: got %v", off, err)
	}
}

func TestParseRejectsLengthPastBufferEnd(t *testing.T) {
	img := buildImage(baseChunks()...)
	// Inflate the IHDR declared length far past the buffer end.
	img[format.SignatureSize+3] = 0xff

	_, err := Parse(img, ParseOptions{})
	require.True(t, IsKind(err, ErrKindBounds), "got %v", err)
}

func TestParseAbortsAtomically(t *testing.T) {
	// First chunk fine, second chunk truncated: no container comes back.
	img := buildImage(baseChunks()...)
	c, err := Parse(img[:len(img)-2], ParseOptions{})
	require.Nil(t, c)
	require.True(t, IsKind(err, ErrKindBounds), "got %v", err)
}

func TestParseRejectsMalformedFileRecord(t *testing.T) {
	// A fiLe chunk whose payload is too short to carry a record header. The
	// chunk CRC itself is valid, so this fails at the record decode step.
	img := buildImage(testChunk{tag: format.FileChunkTag, payload: []byte{0x01}})

	_, err := Parse(img, ParseOptions{})
	require.True(t, IsKind(err, ErrKindEncoding), "got %v", err)
}

func TestParseCopyPayloadsReleasesBuffer(t *testing.T) {
	img := buildImage(baseChunks()...)
	want := append([]byte(nil), img...)

	c, err := Parse(img, ParseOptions{CopyPayloads: true})
	require.NoError(t, err)

	// Clobber the source buffer; a copying parse must not notice.
	for i := range img {
		img[i] = 0xAA
	}
	require.Equal(t, want, c.Serialize())
}

func TestParseZeroCopyViewsShareBuffer(t *testing.T) {
	img := buildImage(baseChunks()...)

	c, err := Parse(img, ParseOptions{})
	require.NoError(t, err)

	// The default parse references the source buffer rather than copying it.
	payload := c.chunks[0].payload()
	require.NotEmpty(t, payload)
	require.Same(t, &img[format.SignatureSize+format.LengthFieldSize+format.TagSize], &payload[0])
}
