package codec

import (
	"os"

	"github.com/nvr-ai/go-imgcodec/images"
	"github.com/pkg/errors"
)

// Base64ToFile decodes a base64 image payload and writes it to path in the
// format the payload is encoded in. A PNG payload produces a PNG file, a TIFF
// payload a TIFF file, and so on. Only the first frame of a GIF is kept.
//
// Arguments:
// - payload: Standard base64 of an encoded image. Embedded newlines are allowed.
// - path: The file to create or truncate.
//
// Returns:
// - ErrDecode, ErrUnsupportedFormat or ErrIO on failure.
//
// @example
// err := codec.Base64ToFile(b64, "out.png")
func Base64ToFile(payload []byte, path string) error {
	const op = "Base64ToFile"

	raw, err := decodeBase64(payload)
	if err != nil {
		return newError(op, ErrDecode, err)
	}

	img, err := images.Decode(raw)
	if err != nil {
		return newError(op, ErrUnsupportedFormat, err)
	}
	if !img.Format.Supported() {
		return newError(op, ErrUnsupportedFormat, errors.Errorf("no encoder registered for format %q", img.Format))
	}

	file, err := os.Create(path)
	if err != nil {
		return newError(op, ErrIO, errors.Wrap(err, "failed to create output file"))
	}

	if err := images.Encode(file, img.Raster, img.Format); err != nil {
		file.Close()
		os.Remove(path)
		return newError(op, ErrIO, err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return newError(op, ErrIO, errors.Wrap(err, "failed to close output file"))
	}
	return nil
}

// FileToBase64 reads the image at path, normalizes it to RGBA and returns the
// base64 of its PNG encoding. The PNG always stores four channels, and pixels
// without alpha become fully opaque.
//
// Arguments:
// - path: The image file to read. Any registered format is accepted.
// - opts: Optional settings such as WithBuffer.
//
// Returns:
// - The base64 payload.
// - ErrIO, ErrUnsupportedFormat or ErrEncode on failure.
//
// @example
// b64, err := codec.FileToBase64("frame.jpg")
func FileToBase64(path string, opts ...Option) ([]byte, error) {
	const op = "FileToBase64"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(op, ErrIO, errors.Wrap(err, "failed to read image file"))
	}

	img, err := images.Decode(data)
	if err != nil {
		return nil, newError(op, ErrUnsupportedFormat, err)
	}

	rgba := images.ToNRGBA(img.Raster)

	o := applyOptions(opts)
	err = images.EncodePNG(o.buf, rgba.Rect.Dx(), rgba.Rect.Dy(), 4, rgba.Pix)
	if err != nil {
		return nil, newError(op, ErrEncode, err)
	}

	return encodeBase64(o.buf.Bytes()), nil
}
