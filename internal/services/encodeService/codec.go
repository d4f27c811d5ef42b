package encodeservice

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// CodecKind describes what a codec consumes and produces.
type CodecKind int

const (
	// KindText codecs turn text into bytes.
	KindText CodecKind = iota
	// KindBytes codecs transform raw bytes into other bytes.
	KindBytes
	// KindCipher codecs turn text into other text.
	KindCipher
)

func (k CodecKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindCipher:
		return "cipher"
	default:
		return "unknown"
	}
}

// Codec encodes text, or raw bytes, into a byte sequence.
type Codec interface {
	// EncodeText encodes s. Codecs that only accept raw bytes return ErrBytesExpected.
	EncodeText(s string) ([]byte, error)
	// EncodeBytes encodes b as a raw byte sequence.
	EncodeBytes(b []byte) ([]byte, error)
	Kind() CodecKind
}

// textCodec wraps an x/text encoding.
type textCodec struct {
	enc encoding.Encoding
}

func (c textCodec) EncodeText(s string) ([]byte, error) {
	return c.enc.NewEncoder().Bytes([]byte(s))
}

func (c textCodec) EncodeBytes(b []byte) ([]byte, error) {
	return c.enc.NewEncoder().Bytes(b)
}

func (c textCodec) Kind() CodecKind {
	return KindText
}

// ianaName reports the IANA name of the wrapped encoding, or "" when it has none.
func (c textCodec) ianaName() string {
	name, err := ianaindex.IANA.Name(c.enc)
	if err != nil {
		return ""
	}
	return name
}

// byteCodec applies fn to raw bytes and refuses text.
type byteCodec struct {
	fn func([]byte) ([]byte, error)
}

func (c byteCodec) EncodeText(string) ([]byte, error) {
	return nil, ErrBytesExpected
}

func (c byteCodec) EncodeBytes(b []byte) ([]byte, error) {
	return c.fn(b)
}

func (c byteCodec) Kind() CodecKind {
	return KindBytes
}

// rot13Codec is registered so that lookups by name resolve, but its output is
// characters rather than bytes.
type rot13Codec struct{}

func (rot13Codec) EncodeText(string) ([]byte, error) {
	return nil, ErrTextOutput
}

func (rot13Codec) EncodeBytes([]byte) ([]byte, error) {
	return nil, ErrTextOutput
}

func (rot13Codec) Kind() CodecKind {
	return KindCipher
}
