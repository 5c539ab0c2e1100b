package glass

import "math"

// Specular light setup: two fixed directional lights produce tight lobes on
// opposite shoulders of the glass. The secondary light is dimmer and
// sharper.
var (
	specularPrimaryDir   = V2(-0.7, -0.7).Normalize()
	specularSecondaryDir = V2(0.7, 0.7).Normalize()
)

const (
	specularPrimaryPower    = 16.0
	specularSecondaryPower  = 24.0
	specularSecondaryWeight = 0.5
)

// Fresnel computes the edge-proportional glow intensity: a cubic ramp of the
// radial distance from the surface center, gated by the edge mask and scaled
// by strength. The glow is white and concentrated at the rim.
func Fresnel(uv Vec2, edgeMask, strength float64) float64 {
	d := uv.Sub(surfaceCenter).Length() * 2
	return d * d * d * edgeMask * strength
}

// Specular computes the combined intensity of the two simulated light
// sources at uv. rimMask is the geometry mask evaluated at half the normal
// edge thickness, confining the highlights to a band tighter than the other
// edge effects.
func Specular(uv Vec2, rimMask, strength float64) float64 {
	dir := direction(uv)

	primary := math.Pow(clampPositive(dir.Dot(specularPrimaryDir)), specularPrimaryPower)
	secondary := math.Pow(clampPositive(dir.Dot(specularSecondaryDir)), specularSecondaryPower) *
		specularSecondaryWeight

	return (primary + secondary) * rimMask * strength
}

func clampPositive(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
