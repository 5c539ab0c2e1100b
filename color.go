package glass

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is nominally in the range [0, 1]. Intermediate pipeline
// values may leave that range; they clamp only on conversion to 8-bit.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Scale multiplies the color components by s, leaving alpha unchanged.
func (c RGBA) Scale(s float64) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Tint multiplies the color components channel-wise, leaving alpha unchanged.
func (c RGBA) Tint(r, g, b float64) RGBA {
	return RGBA{R: c.R * r, G: c.G * g, B: c.B * b, A: c.A}
}

// AddRGB adds per-channel intensities to the color, leaving alpha unchanged.
func (c RGBA) AddRGB(r, g, b float64) RGBA {
	return RGBA{R: c.R + r, G: c.G + g, B: c.B + b, A: c.A}
}

// Luminance returns the perceived brightness of the color using the
// Rec. 601 weights (0.299, 0.587, 0.114).
func (c RGBA) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Desaturate blends the color toward its own luminance.
// amount=0 returns the color unchanged, amount=1 returns pure gray.
func (c RGBA) Desaturate(amount float64) RGBA {
	lum := c.Luminance()
	return RGBA{
		R: c.R + (lum-c.R)*amount,
		G: c.G + (lum-c.G)*amount,
		B: c.B + (lum-c.B)*amount,
		A: c.A,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
