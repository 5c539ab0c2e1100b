package glass

// Params holds the seven material knobs. Each controls exactly one visual
// effect; the compositor never renormalizes them, so out-of-range values
// produce out-of-range (but well-defined) output.
type Params struct {
	// BlurStrength controls interior softness. Typical range [0, 2].
	BlurStrength float64

	// RefractionStrength controls how far the background bends near the
	// edges. Typical range [0, 0.15].
	RefractionStrength float64

	// ChromaticAberration controls the RGB split amount at the rim.
	// Typical range [0, 0.02].
	ChromaticAberration float64

	// FresnelStrength controls the rim glow brightness. Typical range [0, 1].
	FresnelStrength float64

	// SpecularStrength controls the highlight brightness. Typical range [0, 1].
	SpecularStrength float64

	// GlassOpacity is emitted verbatim as the output alpha. Typical range [0, 1].
	GlassOpacity float64

	// EdgeThickness is the width of the rim band where edge effects apply,
	// in normalized surface units. Typical range [0, 0.3].
	EdgeThickness float64
}

// DefaultParams returns a mid-range material that reads clearly over most
// backgrounds.
func DefaultParams() Params {
	return Params{
		BlurStrength:        0.8,
		RefractionStrength:  0.06,
		ChromaticAberration: 0.008,
		FresnelStrength:     0.4,
		SpecularStrength:    0.5,
		GlassOpacity:        0.85,
		EdgeThickness:       0.12,
	}
}

// Geometry defines the rounded-rectangle region the effect is confined to.
// All fields are in pixels. It is immutable for the duration of one
// evaluation; callers may change it between invocations (resize, drag).
//
// Precondition: FullSize.X > 0 and FullSize.Y > 0. Zero-sized geometry is a
// caller contract violation and is not checked.
type Geometry struct {
	// TopLeft is the surface position on screen. The kernel itself works in
	// normalized surface coordinates; hosts use TopLeft for placement.
	TopLeft Vec2

	// FullSize is the surface extent in pixels.
	FullSize Vec2

	// FullSizeUntransformed is the surface extent before any host-side
	// transform (scaling during a resize animation, for example).
	FullSizeUntransformed Vec2

	// Radius is the corner radius in pixels.
	Radius float64
}

// Fixed compositor constants: a cool glass tint, a warm specular color, the
// fresnel weight and the final desaturation amount.
const (
	tintR = 0.95
	tintG = 0.97
	tintB = 1.0

	specularR = 1.0
	specularG = 0.98
	specularB = 0.95

	fresnelWeight      = 0.15
	chromaticBlendMax  = 0.7
	desaturationAmount = 0.1
)

// EvaluatePixel runs the full compositing pipeline for one pixel and is the
// kernel entry point. uv is the normalized position within the surface,
// time the monotonically increasing animation clock. The call is a pure
// function of its arguments: repeated calls with identical inputs return
// bit-identical output, and no invocation depends on any other.
//
// The blur stage uses the fast [FiveTap] kernel; use a [Renderer] with
// [WithBlur] to select [NineTap].
func EvaluatePixel(uv Vec2, src Source, geom Geometry, params Params, time float64) RGBA {
	return evaluatePixel(uv, src, geom, params, time, FiveTap)
}

func evaluatePixel(uv Vec2, src Source, geom Geometry, params Params, time float64, blur Blur) RGBA {
	mask := EdgeMask(uv, params.EdgeThickness, geom)

	// Refraction displaces every subsequent background read.
	sampleUV := Refract(uv, mask, params.RefractionStrength, time)

	// Blur is strongest at the optical center and tapers toward the rim,
	// modeling thicker glass in the middle.
	texel := V2(1/geom.FullSize.X, 1/geom.FullSize.Y)
	blurred := blur.Sample(src, sampleUV, texel, params.BlurStrength*(1-mask*0.5))

	dir := direction(uv)
	chromatic := ChromaticSample(src, sampleUV, dir, params.ChromaticAberration, mask)

	// Interior dominated by blur, rim dominated by dispersion.
	c := blurred.Lerp(chromatic, mask*chromaticBlendMax)
	c = c.Tint(tintR, tintG, tintB)

	glow := Fresnel(uv, mask, params.FresnelStrength) * fresnelWeight
	c = c.AddRGB(glow, glow, glow)

	rimMask := EdgeMask(uv, params.EdgeThickness*0.5, geom)
	spec := Specular(uv, rimMask, params.SpecularStrength)
	c = c.AddRGB(spec*specularR, spec*specularG, spec*specularB)

	c = c.Desaturate(desaturationAmount)

	// The whole surface is uniformly translucent: alpha carries the
	// configured opacity, never coverage.
	c.A = params.GlassOpacity
	return c
}
