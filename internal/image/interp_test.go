package image

import "testing"

// checkerboard builds a 2x2 buffer with distinct corner colors.
func checkerboard(t *testing.T) *ImageBuf {
	t.Helper()
	buf, err := NewImageBuf(2, 2)
	if err != nil {
		t.Fatalf("NewImageBuf: %v", err)
	}
	buf.SetRGBA(0, 0, 255, 0, 0, 255)
	buf.SetRGBA(1, 0, 0, 255, 0, 255)
	buf.SetRGBA(0, 1, 0, 0, 255, 255)
	buf.SetRGBA(1, 1, 255, 255, 255, 255)
	return buf
}

func TestSampleNearest(t *testing.T) {
	buf := checkerboard(t)

	tests := []struct {
		name  string
		u, v  float64
		wantR byte
		wantG byte
		wantB byte
	}{
		{"top-left quadrant", 0.2, 0.2, 255, 0, 0},
		{"top-right quadrant", 0.8, 0.2, 0, 255, 0},
		{"bottom-left quadrant", 0.2, 0.8, 0, 0, 255},
		{"bottom-right quadrant", 0.8, 0.8, 255, 255, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, _ := SampleNearest(buf, tt.u, tt.v)
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("SampleNearest(%f, %f) = (%d, %d, %d), want (%d, %d, %d)",
					tt.u, tt.v, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestSampleBilinearAtPixelCenters(t *testing.T) {
	buf := checkerboard(t)

	// Pixel centers of a 2x2 image sit at 0.25 and 0.75.
	r, g, b, a := SampleBilinear(buf, 0.25, 0.25)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("center of (0,0) = (%d, %d, %d, %d), want pure red", r, g, b, a)
	}
}

func TestSampleBilinearMidpoint(t *testing.T) {
	buf := checkerboard(t)

	// The exact middle averages all four corners: (255+0+0+255)/4 per channel.
	r, g, b, _ := SampleBilinear(buf, 0.5, 0.5)
	for name, got := range map[string]byte{"r": r, "g": g, "b": b} {
		if got < 126 || got > 128 {
			t.Errorf("midpoint %s = %d, want ~127", name, got)
		}
	}
}

func TestSampleClampsOutOfRange(t *testing.T) {
	buf := checkerboard(t)

	// Coordinates far outside [0,1] clamp to the nearest edge texel.
	r, _, _, _ := SampleBilinear(buf, -5, -5)
	if r != 255 {
		t.Errorf("clamped top-left sample r = %d, want 255", r)
	}
	rn, gn, bn, _ := SampleNearest(buf, 7, 7)
	if rn != 255 || gn != 255 || bn != 255 {
		t.Errorf("clamped bottom-right sample = (%d, %d, %d), want white", rn, gn, bn)
	}
}
