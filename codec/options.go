package codec

import "bytes"

// Option configures a single encoding call.
type Option func(*options)

type options struct {
	buf *bytes.Buffer
}

// WithBuffer supplies a scratch buffer for the PNG encoding step. The buffer
// is reset on entry, and the returned payload never aliases it. A buffer must
// not be shared by concurrent calls.
func WithBuffer(buf *bytes.Buffer) Option {
	return func(o *options) {
		o.buf = buf
	}
}

// applyOptions resolves options for one call. Without WithBuffer a fresh
// buffer is allocated, so nothing carries over between calls.
func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.buf == nil {
		o.buf = new(bytes.Buffer)
	}
	o.buf.Reset()
	return o
}
