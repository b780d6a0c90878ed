package png

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

const textChunkTag = "tEXt"

// TextEntry is one decoded tEXt chunk: a keyword and text pair. The PNG
// specification stores both as Latin-1.
type TextEntry struct {
	Keyword string `json:"keyword"`
	Text    string `json:"text"`
}

// TextEntries decodes the standard tEXt metadata chunks in sequence order.
// Chunks missing the keyword separator are skipped rather than failing the
// whole listing.
func (p *Container) TextEntries() []TextEntry {
	var out []TextEntry
	for i := range p.chunks {
		if p.chunks[i].tag != textChunkTag {
			continue
		}
		payload := p.chunks[i].payload()
		sep := bytes.IndexByte(payload, 0)
		if sep < 0 {
			continue
		}
		keyword, err := charmap.ISO8859_1.NewDecoder().Bytes(payload[:sep])
		if err != nil {
			continue
		}
		text, err := charmap.ISO8859_1.NewDecoder().Bytes(payload[sep+1:])
		if err != nil {
			continue
		}
		out = append(out, TextEntry{Keyword: string(keyword), Text: string(text)})
	}
	return out
}
