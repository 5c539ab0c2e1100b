package glass

import "math"

// surfaceCenter is the normalized center of the surface. Every radial
// quantity in the pipeline (refraction direction, fresnel ramp, specular
// angle) is measured from this point.
var surfaceCenter = Vec2{X: 0.5, Y: 0.5}

// EdgeMask converts a normalized surface position into a "distance into the
// glass" signal using a rounded-rectangle signed distance field.
//
// The result is 0 deep inside the shape, 1 at and beyond a border inset by
// thickness, with a cubic Hermite ease between. thickness is a plain
// argument rather than always the configured edge thickness: the specular
// pass evaluates the mask at half thickness for a tighter rim.
//
// The corner radius scales with the larger surface dimension:
// geom.Radius / max(FullSize.X, FullSize.Y) * 2.
func EdgeMask(uv Vec2, thickness float64, geom Geometry) float64 {
	p := uv.Sub(surfaceCenter)
	maxDim := math.Max(geom.FullSize.X, geom.FullSize.Y)
	cornerRadius := geom.Radius / maxDim * 2

	half := 0.5 - thickness
	sdf := sdfRoundedRect(p, half, half, cornerRadius)
	return smoothstep(-thickness, 0, sdf)
}

// sdfRoundedRect computes the signed distance from a point to a rounded
// rectangle centered at the origin with half-extents (halfW, halfH) and
// corner radius r. Negative values are inside, positive outside.
func sdfRoundedRect(p Vec2, halfW, halfH, r float64) float64 {
	// Work in the first quadrant by symmetry.
	qx := math.Abs(p.X) - halfW + r
	qy := math.Abs(p.Y) - halfH + r

	// Outside the corner region the Euclidean distance to the corner circle
	// applies; inside, the larger axis distance does.
	outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inside := math.Min(math.Max(qx, qy), 0)

	return inside + outside - r
}

// smoothstep is the Hermite interpolation 3t^2 - 2t^3 of x between edge0
// and edge1, clamped to [0, 1] outside that interval.
func smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
