// Package image provides background image buffers for gogpu/glass.
//
// Buffers store straight 8-bit RGBA and are read-only once built: the glass
// kernel samples the same buffer from many goroutines and never writes to
// it, so no synchronization is required.
package image

import (
	"errors"
	"image"
	"image/draw"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// ImageBuf is an immutable RGBA pixel buffer.
//
// Thread safety: ImageBuf is safe for concurrent read access.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewImageBuf creates a zero-filled image buffer with the given dimensions.
// Returns an error if dimensions are invalid.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	stride := width * 4
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// FromRaw creates an ImageBuf from existing RGBA data without copying.
// The caller must ensure data remains valid and unmodified for the lifetime
// of the ImageBuf. Stride must be at least width*4.
func FromRaw(data []byte, width, height, stride int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width*4 {
		return nil, ErrDataTooSmall
	}
	if len(data) < stride*height {
		return nil, ErrDataTooSmall
	}

	return &ImageBuf{
		data:   data[:stride*height],
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// FromStdImage converts a standard library image to an ImageBuf.
func FromStdImage(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	// draw.Draw handles every source color model and produces the
	// contiguous RGBA layout the sampler expects.
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &ImageBuf{
		data:   rgba.Pix,
		width:  w,
		height: h,
		stride: rgba.Stride,
	}
}

// Bounds returns the width and height of the buffer.
func (b *ImageBuf) Bounds() (width, height int) {
	return b.width, b.height
}

// GetRGBA returns the pixel at (x, y). Coordinates must be in bounds.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a byte) {
	i := y*b.stride + x*4
	return b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]
}

// SetRGBA sets the pixel at (x, y). Intended for building test fixtures and
// procedural backgrounds before the buffer is shared; not safe concurrently
// with sampling.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a byte) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.stride + x*4
	b.data[i] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}
