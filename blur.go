package glass

// Blur samples a source through a small fixed kernel around uv, simulating
// the frosting of thick glass. texel is the per-axis size of one background
// texel (1/FullSize) and strength scales the tap offsets; strength 0
// collapses every tap onto uv and returns the plain sample.
//
// Two implementations exist: FiveTap, the fast kernel used on the live
// compositing path, and NineTap, a higher-quality alternative.
type Blur interface {
	Sample(src Source, uv Vec2, texel Vec2, strength float64) RGBA
}

// Five-tap kernel: the classic interpolated Gaussian weights and offsets.
const (
	fiveTapCenter  = 0.2270270270
	fiveTapNear    = 0.3162162162
	fiveTapFar     = 0.0702702703
	fiveTapNearOff = 1.3846153846
	fiveTapFarOff  = 3.2307692308
)

// Nine-tap kernel: center plus four one-texel and four two-texel taps.
const (
	nineTapCenter = 0.163
	nineTapNear   = 0.153
	nineTapFar    = 0.056
)

// FiveTap is the fast five-tap blur used by [EvaluatePixel].
var FiveTap Blur = fiveTap{}

// NineTap is the higher-quality nine-tap blur, selectable with [WithBlur].
var NineTap Blur = nineTap{}

type fiveTap struct{}

func (fiveTap) Sample(src Source, uv Vec2, texel Vec2, strength float64) RGBA {
	nearX := fiveTapNearOff * texel.X * strength
	farY := fiveTapFarOff * texel.Y * strength

	acc := weighted(sampleClamped(src, uv), fiveTapCenter)
	acc = accumulate(acc, src, uv.Add(V2(nearX, 0)), fiveTapNear)
	acc = accumulate(acc, src, uv.Add(V2(-nearX, 0)), fiveTapNear)
	acc = accumulate(acc, src, uv.Add(V2(0, farY)), fiveTapFar)
	acc = accumulate(acc, src, uv.Add(V2(0, -farY)), fiveTapFar)
	return acc
}

type nineTap struct{}

func (nineTap) Sample(src Source, uv Vec2, texel Vec2, strength float64) RGBA {
	dx := texel.X * strength
	dy := texel.Y * strength

	acc := weighted(sampleClamped(src, uv), nineTapCenter)
	acc = accumulate(acc, src, uv.Add(V2(dx, 0)), nineTapNear)
	acc = accumulate(acc, src, uv.Add(V2(-dx, 0)), nineTapNear)
	acc = accumulate(acc, src, uv.Add(V2(0, dy)), nineTapNear)
	acc = accumulate(acc, src, uv.Add(V2(0, -dy)), nineTapNear)
	acc = accumulate(acc, src, uv.Add(V2(2*dx, 0)), nineTapFar)
	acc = accumulate(acc, src, uv.Add(V2(-2*dx, 0)), nineTapFar)
	acc = accumulate(acc, src, uv.Add(V2(0, 2*dy)), nineTapFar)
	acc = accumulate(acc, src, uv.Add(V2(0, -2*dy)), nineTapFar)
	return acc
}

// sampleClamped reads the source with coordinates clamped to the valid
// sampling range.
func sampleClamped(src Source, uv Vec2) RGBA {
	c := uv.Clamp(sampleMin, sampleMax)
	return src.Sample(c.X, c.Y)
}

// accumulate adds a weighted clamped sample to acc, including alpha so the
// tap weights stay uniform across all four channels.
func accumulate(acc RGBA, src Source, uv Vec2, weight float64) RGBA {
	c := sampleClamped(src, uv)
	return RGBA{
		R: acc.R + c.R*weight,
		G: acc.G + c.G*weight,
		B: acc.B + c.B*weight,
		A: acc.A + c.A*weight,
	}
}

// weighted scales all four channels of a sample by a tap weight.
func weighted(c RGBA, w float64) RGBA {
	return RGBA{R: c.R * w, G: c.G * w, B: c.B * w, A: c.A * w}
}
