// Package images - Image decoding, encoding and pixel layout utilities.
package images

import (
	"bytes"
	"image"

	"github.com/pkg/errors"
)

// Image represents a decoded image together with the format it was read as.
type Image struct {
	// The format of the image.
	Format ImageFormat `json:"format" yaml:"format"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
	// Raster holds the decoded pixels.
	Raster image.Image `json:"-" yaml:"-"`
	// Header is the parsed IHDR chunk. Only set for PNG sources.
	Header *PNGHeader `json:"header,omitempty" yaml:"header,omitempty"`
}

// Decode decodes an encoded image, detecting its format from the signature.
//
// Arguments:
// - data: The encoded image bytes.
//
// Returns:
// - The decoded Image.
// - ErrUnknownFormat if no decoder matches, an error for images without
//   pixels, or a wrapped decode error.
//
// @example
// img, err := Decode(pngBytes)
//
//	if err != nil {
//	    return err
//	}
//
// fmt.Println(img.Format, img.Width, img.Height)
func Decode(data []byte) (*Image, error) {
	raster, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnknownFormat
		}
		return nil, errors.Wrap(err, "image decoding failed")
	}
	if raster.Bounds().Empty() {
		return nil, errors.Errorf("empty %s image %dx%d", name, raster.Bounds().Dx(), raster.Bounds().Dy())
	}

	img := &Image{
		Format: ImageFormat(name),
		Width:  raster.Bounds().Dx(),
		Height: raster.Bounds().Dy(),
		Raster: raster,
	}

	if img.Format == FormatPNG {
		header, err := ReadPNGHeader(data)
		if err != nil {
			return nil, err
		}
		img.Header = header
	}

	return img, nil
}

// Channels returns the number of channels the source encoding stores.
func (i *Image) Channels() int {
	if i.Header != nil {
		if c := i.Header.Channels(); c > 0 && i.Header.ColorType != ColorTypePalette {
			return c
		}
	}
	return channelsOf(i.Raster)
}
