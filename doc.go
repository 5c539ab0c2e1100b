// Package glass renders a rounded slab of refractive glass over an
// arbitrary background image.
//
// # Overview
//
// glass is a pure-Go image-compositing kernel in the GoGPU ecosystem. For
// every pixel of a rounded-rectangle surface it computes one RGBA value that
// simulates looking through frosted glass: the background is displaced near
// the edges (refraction), softened toward the center (blur), split per color
// channel at the rim (dispersion), and finished with a rim glow and two
// specular highlights.
//
// # Quick Start
//
//	import "github.com/gogpu/glass"
//
//	src, _ := glass.LoadSource("background.png")
//	geom := glass.Geometry{
//	    FullSize: glass.V2(400, 240),
//	    Radius:   32,
//	}
//
//	r := glass.NewRenderer()
//	pm := r.Render(src, geom, glass.DefaultParams(), 0)
//	pm.SavePNG("glass.png")
//
// # Purity
//
// The kernel is a pure function of its inputs: pixel position, background,
// geometry, material parameters, and an animation clock. No state persists
// across invocations and no pixel depends on another, so the renderer
// evaluates pixels in parallel across a tile grid with no synchronization
// beyond joining the workers.
//
// Evaluating a single pixel directly:
//
//	c := glass.EvaluatePixel(glass.V2(0.5, 0.5), src, geom, params, time)
//
// # Coordinate System
//
// Pixel positions are normalized to [0,1]x[0,1] within the surface, (0,0) at
// the top-left. Background sampling coordinates are clamped to
// [0.001, 0.999] before every texture read, so arbitrarily large parameter
// values never sample outside the background.
//
// # Parameters
//
// The material is controlled by seven independent scalar knobs (see
// [Params]). Each drives exactly one visual effect and none are
// renormalized; out-of-range values produce out-of-range but well-defined
// output that clamps at display time.
package glass

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
