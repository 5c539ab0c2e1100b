package glass

import "math"

// Constants of the animated refraction wave. The wave is a slow traveling
// ripple layered on top of the edge-driven displacement, so the glass keeps
// a faint liquid motion even when nothing else changes.
const (
	waveFrequency = 8.0
	waveSpeed     = 0.5
	waveAmplitude = 0.1
)

// directionEpsilon biases the center-to-pixel vector before normalization
// so the exact center never normalizes a zero-length vector.
const directionEpsilon = 0.0001

// direction returns the unit vector from the surface center through uv.
func direction(uv Vec2) Vec2 {
	centered := uv.Sub(surfaceCenter)
	return centered.Add(V2(directionEpsilon, directionEpsilon)).Normalize()
}

// Refract displaces a sampling coordinate outward from the surface center,
// bending the background near the edges of the glass.
//
// The displacement magnitude is edgeMask * sin(edgeMask*pi/2) * strength,
// modulated by a traveling sine wave over time. The returned coordinate is
// clamped to the valid sampling range, so downstream texture reads stay in
// bounds regardless of strength.
func Refract(uv Vec2, edgeMask, strength, time float64) Vec2 {
	dir := direction(uv)
	dist := uv.Sub(surfaceCenter).Length()

	wave := math.Sin(dist*waveFrequency+time*waveSpeed)*waveAmplitude + 1
	magnitude := edgeMask * math.Sin(edgeMask*math.Pi/2) * strength * wave

	return uv.Add(dir.Mul(magnitude)).Clamp(sampleMin, sampleMax)
}
