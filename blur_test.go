package glass

import (
	"testing"
)

func TestBlurWeightsSumToOne(t *testing.T) {
	// On a constant background any normalized kernel must return the
	// background color unchanged.
	src := solidSource{c: RGBA{R: 0.3, G: 0.6, B: 0.9, A: 1}}
	texel := V2(1.0/200, 1.0/200)

	tests := []struct {
		name string
		blur Blur
	}{
		{"five tap", FiveTap},
		{"nine tap", NineTap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.blur.Sample(src, V2(0.5, 0.5), texel, 1.5)
			if !colorsApproxEqual(got, src.c, 1e-3) {
				t.Errorf("blur of constant source = %+v, want %+v", got, src.c)
			}
		})
	}
}

func TestBlurZeroStrengthIsPlainSample(t *testing.T) {
	src := gradientSource{}
	uv := V2(0.37, 0.62)
	texel := V2(1.0/400, 1.0/300)
	want := src.Sample(uv.X, uv.Y)

	for _, blur := range []Blur{FiveTap, NineTap} {
		got := blur.Sample(src, uv, texel, 0)
		if !colorsApproxEqual(got, want, 1e-3) {
			t.Errorf("zero-strength blur = %+v, want %+v", got, want)
		}
	}
}

func TestBlurTapsStayInSampleRange(t *testing.T) {
	// Taps near a corner with a large strength must still clamp.
	rec := newRecordingSource(gradientSource{})
	texel := V2(1.0/50, 1.0/50)

	for _, blur := range []Blur{FiveTap, NineTap} {
		blur.Sample(rec, V2(0.999, 0.999), texel, 2.0)
		blur.Sample(rec, V2(0.001, 0.001), texel, 2.0)
	}

	for _, s := range rec.recorded() {
		if s.X < sampleMin || s.X > sampleMax || s.Y < sampleMin || s.Y > sampleMax {
			t.Fatalf("blur tap at %v outside [%f, %f]", s, sampleMin, sampleMax)
		}
	}
}

func TestFiveTapTapCount(t *testing.T) {
	rec := newRecordingSource(solidSource{c: White})
	FiveTap.Sample(rec, V2(0.5, 0.5), V2(0.01, 0.01), 1)
	if got := len(rec.recorded()); got != 5 {
		t.Errorf("five-tap kernel made %d samples, want 5", got)
	}
}

func TestNineTapTapCount(t *testing.T) {
	rec := newRecordingSource(solidSource{c: White})
	NineTap.Sample(rec, V2(0.5, 0.5), V2(0.01, 0.01), 1)
	if got := len(rec.recorded()); got != 9 {
		t.Errorf("nine-tap kernel made %d samples, want 9", got)
	}
}

func TestBlurSoftensGradientStep(t *testing.T) {
	// A hard horizontal step must average toward the midpoint under blur.
	step := stepSource{}
	texel := V2(1.0/40, 1.0/40)

	plain := step.Sample(0.5, 0.5)
	blurred := FiveTap.Sample(step, V2(0.5, 0.5), texel, 2.0)

	if blurred.R >= plain.R {
		t.Errorf("blur did not pull the step edge down: plain=%f blurred=%f",
			plain.R, blurred.R)
	}
}

// stepSource is white for u >= 0.5 and black below.
type stepSource struct{}

func (stepSource) Sample(u, v float64) RGBA {
	if u >= 0.5 {
		return White
	}
	return Black
}
