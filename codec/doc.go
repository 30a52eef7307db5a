// Package codec - Conversions between image files, base64 payloads, data URIs
// and in-memory pixel arrays.
//
// Every function is synchronous and keeps no state between calls. Failures are
// returned as *Error values whose Kind is one of the exported sentinels, so
// callers can tell which stage failed:
//
//	b64, err := codec.FileToBase64("frame.png")
//	if errors.Is(err, codec.ErrIO) {
//	    // missing or unreadable file
//	}
package codec
