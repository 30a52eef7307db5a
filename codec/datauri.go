package codec

import (
	"strings"

	"github.com/pkg/errors"
)

// DataURIPrefix is prepended by BytesToDataURI. The MIME type is fixed.
const DataURIPrefix = "data:image/png;base64,"

// DataURIToBytes extracts and decodes the payload of a data URI.
//
// The URI is split on every comma and the second segment is decoded. Any
// further segments are ignored, which matches how the payload was always
// extracted. Base64 never contains commas, so well-formed URIs are unaffected.
//
// Arguments:
// - uri: A string such as "data:image/png;base64,iVBORw0...".
//
// Returns:
// - The raw decoded bytes.
// - ErrMalformedInput when there is no comma, ErrDecode for bad base64.
//
// @example
// raw, err := codec.DataURIToBytes("data:image/png;base64,aGVsbG8=") // "hello"
func DataURIToBytes(uri string) ([]byte, error) {
	const op = "DataURIToBytes"

	parts := strings.Split(uri, ",")
	if len(parts) < 2 {
		return nil, newError(op, ErrMalformedInput, errors.New("no comma separating metadata from payload"))
	}

	raw, err := decodeBase64([]byte(parts[1]))
	if err != nil {
		return nil, newError(op, ErrDecode, err)
	}
	return raw, nil
}

// BytesToDataURI turns a base64 payload into a PNG data URI. The payload is
// not inspected beyond requiring ASCII. Making sure it really is PNG data is
// up to the caller.
//
// Arguments:
// - payload: Base64 bytes.
//
// Returns:
// - The data URI.
// - ErrEncoding when the payload contains a non-ASCII byte.
//
// @example
// uri, _ := codec.BytesToDataURI([]byte("aGVsbG8=")) // "data:image/png;base64,aGVsbG8="
func BytesToDataURI(payload []byte) (string, error) {
	const op = "BytesToDataURI"

	for i, b := range payload {
		if b >= 0x80 {
			return "", newError(op, ErrEncoding, errors.Errorf("non-ascii byte 0x%02x at offset %d", b, i))
		}
	}
	return DataURIPrefix + string(payload), nil
}
