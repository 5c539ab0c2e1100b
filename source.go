package glass

import (
	"fmt"
	"math"

	intimage "github.com/gogpu/glass/internal/image"
)

// Sampling coordinate bounds. Every background read clamps its coordinates
// to this range first, so extreme refraction or dispersion parameters can
// never sample outside the image or pick up edge artifacts.
const (
	sampleMin = 0.001
	sampleMax = 0.999
)

// Source is the only capability the kernel requires from a background
// image: bilinear, clamp-to-edge sampling at normalized coordinates.
//
// Implementations must be safe for concurrent reads; the renderer samples
// the same Source from many goroutines.
type Source interface {
	// Sample returns the color at (u, v) in [0,1]x[0,1], (0,0) top-left.
	Sample(u, v float64) RGBA
}

// imageSource adapts an internal image buffer to the Source interface.
type imageSource struct {
	buf *intimage.ImageBuf
}

// NewImageSource wraps a decoded image buffer as a kernel Source.
func NewImageSource(buf *intimage.ImageBuf) Source {
	return imageSource{buf: buf}
}

func (s imageSource) Sample(u, v float64) RGBA {
	r, g, b, a := intimage.SampleBilinear(s.buf, u, v)
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// LoadSource loads a background image from disk and wraps it as a Source.
// Supported formats: PNG, JPEG, WebP, BMP, TIFF.
func LoadSource(path string) (Source, error) {
	buf, err := intimage.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("glass: load source: %w", err)
	}
	return NewImageSource(buf), nil
}

// pixmapSource adapts a Pixmap to the Source interface.
type pixmapSource struct {
	pm *Pixmap
}

// NewPixmapSource wraps a rendered Pixmap as a kernel Source, so one pass's
// output can feed another pass's background.
func NewPixmapSource(pm *Pixmap) Source {
	return pixmapSource{pm: pm}
}

func (s pixmapSource) Sample(u, v float64) RGBA {
	w := s.pm.Width()
	h := s.pm.Height()

	// Continuous pixel coordinates with the sample point at pixel centers.
	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := s.pm.GetPixel(clampInt(x0, 0, w-1), clampInt(y0, 0, h-1))
	c10 := s.pm.GetPixel(clampInt(x0+1, 0, w-1), clampInt(y0, 0, h-1))
	c01 := s.pm.GetPixel(clampInt(x0, 0, w-1), clampInt(y0+1, 0, h-1))
	c11 := s.pm.GetPixel(clampInt(x0+1, 0, w-1), clampInt(y0+1, 0, h-1))

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

// regionSource exposes a sub-rectangle of another source as a full [0,1]
// coordinate space.
type regionSource struct {
	inner          Source
	u0, v0, u1, v1 float64
}

// NewRegionSource returns a view of the sub-rectangle [u0,u1]x[v0,v1] of
// inner, in inner's normalized coordinates. Hosts use it to feed the kernel
// the patch of background that sits underneath the glass surface.
func NewRegionSource(inner Source, u0, v0, u1, v1 float64) Source {
	return regionSource{inner: inner, u0: u0, v0: v0, u1: u1, v1: v1}
}

func (s regionSource) Sample(u, v float64) RGBA {
	return s.inner.Sample(
		s.u0+(s.u1-s.u0)*u,
		s.v0+(s.v1-s.v0)*v,
	)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
