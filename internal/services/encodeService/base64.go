package encodeservice

import "encoding/base64"

func base64Entry() Entry {
	return Entry{
		Name:    "base64_codec",
		Aliases: []string{"base64", "base_64"},
		Codec: byteCodec{fn: func(b []byte) ([]byte, error) {
			out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
			base64.StdEncoding.Encode(out, b)
			return out, nil
		}},
	}
}
