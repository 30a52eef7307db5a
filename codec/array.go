package codec

import (
	"github.com/nvr-ai/go-imgcodec/images"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// NewPixelArray wraps row-major, channel-last 8-bit samples as a
// (height, width, channels) tensor. pix is used as the backing slice.
//
// @example
// arr := codec.NewPixelArray(2, 2, 3, make([]uint8, 12))
func NewPixelArray(height, width, channels int, pix []uint8) *tensor.Dense {
	return tensor.New(tensor.WithShape(height, width, channels), tensor.WithBacking(pix))
}

// ArrayToBase64 encodes a (height, width, channels) array as PNG and returns
// its base64.
//
// The PNG color type follows the channel count: 2 is gray+alpha, 3 is RGB and
// 4 is RGBA. Single-channel arrays are rejected. Elements of any numeric type
// are first narrowed to uint8 with a wrapping cast (see castUint8).
//
// Arguments:
// - array: The pixel array. Views are materialized first.
// - opts: Optional settings such as WithBuffer.
//
// Returns:
// - The base64 payload.
// - ErrInvalidChannelCount, ErrInvalidShape or ErrEncode on failure.
//
// @example
// b64, err := codec.ArrayToBase64(codec.NewPixelArray(2, 2, 3, pix))
func ArrayToBase64(array tensor.Tensor, opts ...Option) ([]byte, error) {
	const op = "ArrayToBase64"

	if array == nil {
		return nil, newError(op, ErrInvalidShape, errors.New("array is nil"))
	}
	if v, ok := array.(tensor.View); ok && v.IsMaterializable() {
		array = v.Materialize()
	}

	height, width, channels, err := checkShape(op, array.Shape())
	if err != nil {
		return nil, err
	}

	// Data panics on tensors without elements, so it is only read once the
	// extent is known to be non-empty.
	pix, err := castUint8(array.Data())
	if err != nil {
		return nil, newError(op, ErrInvalidShape, err)
	}
	if len(pix) != height*width*channels {
		return nil, newError(op, ErrInvalidShape,
			errors.Errorf("backing has %d elements, shape %v needs %d", len(pix), array.Shape(), height*width*channels))
	}

	o := applyOptions(opts)
	if err := images.EncodePNG(o.buf, width, height, channels, pix); err != nil {
		return nil, newError(op, ErrEncode, err)
	}
	return encodeBase64(o.buf.Bytes()), nil
}

// checkShape validates a channel-last (height, width, channels) shape. The
// channel count is checked before the rank.
func checkShape(op string, shape []int) (height, width, channels int, err error) {
	if len(shape) == 0 {
		return 0, 0, 0, newError(op, ErrInvalidShape, errors.New("scalar has no channel dimension"))
	}

	channels = shape[len(shape)-1]
	if channels <= 1 || channels > 4 {
		return 0, 0, 0, newError(op, ErrInvalidChannelCount,
			errors.Errorf("number of channels must be 2, 3 or 4, found %d", channels))
	}
	if len(shape) != 3 {
		return 0, 0, 0, newError(op, ErrInvalidShape, errors.Errorf("want 3 dimensions, got shape %v", shape))
	}
	height, width = shape[0], shape[1]
	if height <= 0 || width <= 0 {
		return 0, 0, 0, newError(op, ErrInvalidShape, errors.Errorf("empty image extent in shape %v", shape))
	}
	return height, width, channels, nil
}

// Base64ToArray decodes a base64 image payload into a uint8 array of shape
// (height, width, channels).
//
// The channel count is the one stored in the source and is not forced to RGBA.
// PNG gray is 1, gray+alpha 2, RGB 3 and RGBA 4. Palettes expand to RGB, or to
// RGBA when any entry is translucent. 16-bit samples keep their high byte.
//
// Arguments:
// - payload: Standard base64 of an encoded image.
//
// Returns:
// - The pixel array.
// - ErrDecode or ErrUnsupportedFormat on failure.
//
// @example
// arr, err := codec.Base64ToArray(b64)
// fmt.Println(arr.Shape()) // (2, 2, 3)
func Base64ToArray(payload []byte) (*tensor.Dense, error) {
	const op = "Base64ToArray"

	raw, err := decodeBase64(payload)
	if err != nil {
		return nil, newError(op, ErrDecode, err)
	}

	img, err := images.Decode(raw)
	if err != nil {
		return nil, newError(op, ErrUnsupportedFormat, err)
	}

	pix, channels := images.Pixels(img)
	return NewPixelArray(img.Height, img.Width, channels, pix), nil
}
