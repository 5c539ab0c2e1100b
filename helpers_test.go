package glass

import (
	"math"
	"sync"
)

// solidSource returns the same color for every coordinate.
type solidSource struct {
	c RGBA
}

func (s solidSource) Sample(u, v float64) RGBA {
	return s.c
}

// gradientSource maps position directly to color: R=u, G=v, B=0.5.
// Distinct colors per position make displacement visible in tests.
type gradientSource struct{}

func (gradientSource) Sample(u, v float64) RGBA {
	return RGBA{R: u, G: v, B: 0.5, A: 1}
}

// recordingSource wraps another source and records every sampled
// coordinate. Safe for concurrent use.
type recordingSource struct {
	inner Source

	mu      sync.Mutex
	samples []Vec2
}

func newRecordingSource(inner Source) *recordingSource {
	return &recordingSource{inner: inner}
}

func (s *recordingSource) Sample(u, v float64) RGBA {
	s.mu.Lock()
	s.samples = append(s.samples, V2(u, v))
	s.mu.Unlock()
	return s.inner.Sample(u, v)
}

func (s *recordingSource) recorded() []Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Vec2, len(s.samples))
	copy(out, s.samples)
	return out
}

// testGeometry is the reference surface used across tests: 200x200 pixels
// with a 20 pixel corner radius.
func testGeometry() Geometry {
	return Geometry{
		FullSize:              V2(200, 200),
		FullSizeUntransformed: V2(200, 200),
		Radius:                20,
	}
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func colorsApproxEqual(a, b RGBA, eps float64) bool {
	return approxEqual(a.R, b.R, eps) &&
		approxEqual(a.G, b.G, eps) &&
		approxEqual(a.B, b.B, eps) &&
		approxEqual(a.A, b.A, eps)
}
