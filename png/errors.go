package png

import (
	"errors"

	"github.com/joshuapare/pngkit/internal/format"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat       ErrKind = iota // bad signature or malformed chunk framing
	ErrKindIntegrity                   // stored CRC does not match the chunk contents
	ErrKindBounds                      // declared length reads past the buffer end
	ErrKindEncoding                    // malformed file record serialization
	ErrKindCompression                 // invalid deflate stream inside a file record
	ErrKindDuplicateKey                // insert without replace on an existing key
	ErrKindSizeLimit                   // encoded payload exceeds the chunk length field
	ErrKindNotFound                    // no embedded file record matches the key
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by the container operations.
var (
	// ErrNotPNG indicates the buffer lacks a valid PNG signature.
	ErrNotPNG = &Error{Kind: ErrKindFormat, Msg: "not a PNG stream (bad signature)"}
	// ErrNotFound indicates no embedded file record matches the requested key.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "embedded file not found"}
)

// IsKind reports whether err is (or wraps) an Error of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func wrapFormatErr(err error) error {
	switch {
	case errors.Is(err, format.ErrSignatureMismatch):
		return ErrNotPNG
	case errors.Is(err, format.ErrTruncated):
		return &Error{Kind: ErrKindBounds, Msg: "chunk reads past buffer end", Err: err}
	case errors.Is(err, format.ErrChecksumMismatch):
		return &Error{Kind: ErrKindIntegrity, Msg: "chunk checksum mismatch", Err: err}
	case errors.Is(err, format.ErrBadChunkType):
		return &Error{Kind: ErrKindFormat, Msg: "invalid chunk type tag", Err: err}
	case errors.Is(err, format.ErrBadRecord):
		return &Error{Kind: ErrKindEncoding, Msg: "malformed file record", Err: err}
	case errors.Is(err, format.ErrBadDeflate):
		return &Error{Kind: ErrKindCompression, Msg: "invalid compressed stream", Err: err}
	default:
		return &Error{Kind: ErrKindFormat, Msg: err.Error(), Err: err}
	}
}
