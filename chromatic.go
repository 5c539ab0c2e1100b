package glass

// Chromatic aberration offsets. Red bends least and blue bends most, as in
// real dispersion; green stays at the reference coordinate.
const (
	chromaticRedScale  = 0.8
	chromaticBlueScale = 1.2
)

// ChromaticSample re-samples the background three times, once per color
// channel, with channel-dependent offsets along dir (the unit vector from
// the surface center). The split grows with edge proximity via edgeMask and
// vanishes entirely at the center. Alpha is taken from the unshifted green
// reference sample.
func ChromaticSample(src Source, uv Vec2, dir Vec2, aberration, edgeMask float64) RGBA {
	ca := aberration * edgeMask

	r := sampleClamped(src, uv.Add(dir.Mul(ca*chromaticRedScale)))
	g := sampleClamped(src, uv)
	b := sampleClamped(src, uv.Add(dir.Mul(ca*chromaticBlueScale)))

	return RGBA{R: r.R, G: g.G, B: b.B, A: g.A}
}
