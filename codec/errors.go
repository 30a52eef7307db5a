package codec

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failure kinds. Match them with errors.Is.
var (
	// ErrDecode reports a malformed base64 payload.
	ErrDecode = errors.New("invalid base64 payload")
	// ErrUnsupportedFormat reports bytes that are not a decodable image.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrInvalidChannelCount reports a channel dimension outside {2, 3, 4}.
	ErrInvalidChannelCount = errors.New("invalid channel count")
	// ErrInvalidShape reports an array that is not a non-empty (h, w, c) buffer
	// of a numeric element type.
	ErrInvalidShape = errors.New("invalid array shape")
	// ErrMalformedInput reports a data URI without a comma.
	ErrMalformedInput = errors.New("malformed data uri")
	// ErrIO reports a file that cannot be opened, read, created or written.
	ErrIO = errors.New("i/o failure")
	// ErrEncode reports a decoded image or pixel buffer the PNG encoder rejects.
	ErrEncode = errors.New("image encoding failed")
	// ErrEncoding reports payload bytes that are not ASCII text.
	ErrEncoding = errors.New("payload is not ascii text")
)

// Error is the failure returned by every function in this package.
type Error struct {
	// Op is the name of the function that failed.
	Op string
	// Kind is one of the package sentinels.
	Kind error
	// Err is the underlying cause. It may be nil.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Cause returns the underlying cause for github.com/pkg/errors.Cause.
func (e *Error) Cause() error {
	if e.Err == nil {
		return e.Kind
	}
	return e.Err
}

func newError(op string, kind, cause error) error {
	return &Error{Op: op, Kind: kind, Err: cause}
}
