package encodeservice

import "encoding/base32"

func base32Entry() Entry {
	return Entry{
		Name:    "base32_codec",
		Aliases: []string{"base32", "base_32"},
		Codec: byteCodec{fn: func(b []byte) ([]byte, error) {
			out := make([]byte, base32.StdEncoding.EncodedLen(len(b)))
			base32.StdEncoding.Encode(out, b)
			return out, nil
		}},
	}
}
