package codec

import (
	"encoding/base64"

	"github.com/pkg/errors"
)

// encodeBase64 returns the standard base64 encoding of raw.
func encodeBase64(raw []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(out, raw)
	return out
}

// decodeBase64 decodes standard base64. Carriage returns and newlines
// embedded in the payload are skipped.
func decodeBase64(payload []byte) ([]byte, error) {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(payload)))
	n, err := base64.StdEncoding.Decode(out, payload)
	if err != nil {
		return nil, errors.Wrap(err, "base64 decode failed")
	}
	return out[:n], nil
}
