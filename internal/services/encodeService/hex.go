package encodeservice

import (
	"encoding/hex"
	"strings"
)

const lowerHex = "0123456789abcdef"

// PercentHex renders b as "%xx" triplets of lowercase hex, one per byte.
func PercentHex(b []byte) string {
	var sb strings.Builder
	sb.Grow(3 * len(b))
	for _, c := range b {
		sb.WriteByte('%')
		sb.WriteByte(lowerHex[c>>4])
		sb.WriteByte(lowerHex[c&0x0f])
	}
	return sb.String()
}

func hexEntry() Entry {
	return Entry{
		Name:    "hex_codec",
		Aliases: []string{"hex"},
		Codec: byteCodec{fn: func(b []byte) ([]byte, error) {
			out := make([]byte, hex.EncodedLen(len(b)))
			hex.Encode(out, b)
			return out, nil
		}},
	}
}
