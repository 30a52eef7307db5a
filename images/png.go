package images

import (
	"encoding/binary"
	"io"

	"github.com/cshum/vipsgen/vips"
	"github.com/pkg/errors"
)

// pngSignature is the fixed 8-byte PNG file signature.
const pngSignature = "\x89PNG\r\n\x1a\n"

// PNG color types as stored in IHDR.
const (
	ColorTypeGray      byte = 0
	ColorTypeRGB       byte = 2
	ColorTypePalette   byte = 3
	ColorTypeGrayAlpha byte = 4
	ColorTypeRGBA      byte = 6
)

// PNGHeader is the decoded IHDR chunk of a PNG stream.
type PNGHeader struct {
	Width             uint32 `json:"width"`
	Height            uint32 `json:"height"`
	BitDepth          byte   `json:"bitDepth"`
	ColorType         byte   `json:"colorType"`
	CompressionMethod byte   `json:"compressionMethod"`
	FilterMethod      byte   `json:"filterMethod"`
	InterlaceMethod   byte   `json:"interlaceMethod"`
}

// Channels returns the samples per pixel for the header's color type, or 0
// when the color type is not defined by the PNG specification.
func (h *PNGHeader) Channels() int {
	switch h.ColorType {
	case ColorTypeGray, ColorTypePalette:
		return 1
	case ColorTypeGrayAlpha:
		return 2
	case ColorTypeRGB:
		return 3
	case ColorTypeRGBA:
		return 4
	}
	return 0
}

// ReadPNGHeader parses the IHDR chunk that must follow the PNG signature.
//
// Arguments:
// - data: The PNG stream, at least the first 33 bytes.
//
// Returns:
// - The parsed header.
// - error if the signature or the IHDR chunk is missing or truncated.
//
// @example
// header, err := ReadPNGHeader(pngBytes)
// fmt.Println(header.ColorType == ColorTypeRGBA)
func ReadPNGHeader(data []byte) (*PNGHeader, error) {
	// signature + length + type + 13 data bytes + crc
	const minLen = 8 + 4 + 4 + 13 + 4
	if len(data) < minLen {
		return nil, errors.New("png stream too short for IHDR")
	}
	if string(data[:8]) != pngSignature {
		return nil, errors.New("invalid png signature")
	}
	if binary.BigEndian.Uint32(data[8:12]) != 13 || string(data[12:16]) != "IHDR" {
		return nil, errors.New("first png chunk is not IHDR")
	}

	b := data[16:29]
	header := &PNGHeader{
		Width:             binary.BigEndian.Uint32(b[0:4]),
		Height:            binary.BigEndian.Uint32(b[4:8]),
		BitDepth:          b[8],
		ColorType:         b[9],
		CompressionMethod: b[10],
		FilterMethod:      b[11],
		InterlaceMethod:   b[12],
	}
	if header.Channels() == 0 {
		return nil, errors.Errorf("invalid png color type %d", header.ColorType)
	}
	return header, nil
}

// colorTypeFor maps a channel count to the PNG color type that stores it.
func colorTypeFor(channels int) (byte, error) {
	switch channels {
	case 1:
		return ColorTypeGray, nil
	case 2:
		return ColorTypeGrayAlpha, nil
	case 3:
		return ColorTypeRGB, nil
	case 4:
		return ColorTypeRGBA, nil
	}
	return 0, errors.Errorf("unsupported channel count %d", channels)
}

// EncodePNG writes 8-bit, row-major, channel-last pixel data as a PNG whose
// color type follows the channel count: 1 gray, 2 gray+alpha, 3 RGB, 4 RGBA.
//
// The pixels are loaded into libvips as a band-interleaved uchar image and
// saved with pngsave, which writes one PNG sample per band. Unlike image/png
// the color type never depends on the pixel values, so a fully opaque RGBA
// buffer still encodes as RGBA.
//
// Arguments:
// - w: The destination writer.
// - width: Image width in pixels.
// - height: Image height in pixels.
// - channels: Samples per pixel (1 to 4).
// - pix: Exactly width*height*channels bytes.
//
// Returns:
// - error if the dimensions are invalid, libvips fails or writing fails.
//
// @example
// var buf bytes.Buffer
// err := EncodePNG(&buf, 2, 2, 4, rgbaPix)
func EncodePNG(w io.Writer, width, height, channels int, pix []uint8) error {
	if width <= 0 || height <= 0 || int64(width) > 1<<31-1 || int64(height) > 1<<31-1 {
		return errors.Errorf("invalid image size: %dx%d", width, height)
	}
	if _, err := colorTypeFor(channels); err != nil {
		return err
	}
	if len(pix) != width*height*channels {
		return errors.Errorf("pixel buffer has %d bytes, want %d", len(pix), width*height*channels)
	}

	img, err := vips.NewImageFromMemory(pix, width, height, channels)
	if err != nil {
		return errors.Wrap(err, "failed to load pixels into libvips")
	}
	defer img.Close()

	encoded, err := img.PngsaveBuffer(&vips.PngsaveBufferOptions{})
	if err != nil || len(encoded) == 0 {
		return errors.Wrap(err, "failed to encode png")
	}

	if _, err := w.Write(encoded); err != nil {
		return errors.Wrap(err, "failed to write png stream")
	}
	return nil
}
