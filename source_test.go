package glass

import (
	"testing"

	intimage "github.com/gogpu/glass/internal/image"
)

func TestImageSourceSampling(t *testing.T) {
	buf, err := intimage.NewImageBuf(2, 2)
	if err != nil {
		t.Fatalf("NewImageBuf: %v", err)
	}
	buf.SetRGBA(0, 0, 255, 0, 0, 255)
	buf.SetRGBA(1, 0, 0, 255, 0, 255)
	buf.SetRGBA(0, 1, 0, 0, 255, 255)
	buf.SetRGBA(1, 1, 255, 255, 255, 255)

	src := NewImageSource(buf)

	// Sampling at a pixel center returns that pixel exactly.
	got := src.Sample(0.25, 0.25)
	if !colorsApproxEqual(got, RGB(1, 0, 0), 1e-9) {
		t.Errorf("sample at top-left center = %+v, want red", got)
	}

	// The exact middle blends all four corners equally.
	mid := src.Sample(0.5, 0.5)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !colorsApproxEqual(mid, want, 1.0/255) {
		t.Errorf("sample at middle = %+v, want %+v", mid, want)
	}
}

func TestImageSourceClampsToEdge(t *testing.T) {
	buf, err := intimage.NewImageBuf(2, 2)
	if err != nil {
		t.Fatalf("NewImageBuf: %v", err)
	}
	buf.SetRGBA(0, 0, 10, 20, 30, 255)
	buf.SetRGBA(1, 0, 10, 20, 30, 255)
	buf.SetRGBA(0, 1, 10, 20, 30, 255)
	buf.SetRGBA(1, 1, 10, 20, 30, 255)

	src := NewImageSource(buf)

	// Far out-of-range coordinates still land on the edge texels.
	for _, uv := range []Vec2{V2(-3, 0.5), V2(5, 0.5), V2(0.5, -1), V2(0.5, 2)} {
		got := src.Sample(uv.X, uv.Y)
		want := RGBA{R: 10.0 / 255, G: 20.0 / 255, B: 30.0 / 255, A: 1}
		if !colorsApproxEqual(got, want, 1e-9) {
			t.Errorf("clamped sample at %v = %+v, want %+v", uv, got, want)
		}
	}
}

func TestLoadSourceMissingFile(t *testing.T) {
	if _, err := LoadSource("definitely-missing.png"); err == nil {
		t.Error("LoadSource on a missing file returned nil error")
	}
}

func TestPixmapSource(t *testing.T) {
	pm := NewPixmap(2, 1)
	pm.SetPixel(0, 0, Black)
	pm.SetPixel(1, 0, White)

	src := NewPixmapSource(pm)

	left := src.Sample(0.25, 0.5)
	if !colorsApproxEqual(left, Black, 1e-9) {
		t.Errorf("left center = %+v, want black", left)
	}

	mid := src.Sample(0.5, 0.5)
	if !approxEqual(mid.R, 0.5, 1.0/255) {
		t.Errorf("midpoint = %+v, want 50%% gray", mid)
	}
}

func TestRegionSource(t *testing.T) {
	src := gradientSource{}

	// The right half of the gradient: u remaps from [0,1] to [0.5,1].
	region := NewRegionSource(src, 0.5, 0, 1, 1)

	got := region.Sample(0, 0.5)
	if !approxEqual(got.R, 0.5, 1e-12) {
		t.Errorf("region left edge R = %f, want 0.5", got.R)
	}
	got = region.Sample(1, 0.5)
	if !approxEqual(got.R, 1, 1e-12) {
		t.Errorf("region right edge R = %f, want 1", got.R)
	}
	if got = region.Sample(0.5, 0.25); !approxEqual(got.G, 0.25, 1e-12) {
		t.Errorf("region passes v through unscaled: G = %f, want 0.25", got.G)
	}
}

func TestPixmapSourceUsableByKernel(t *testing.T) {
	// One pass's output can serve as the next pass's background.
	pm := NewPixmap(32, 32)
	pm.Clear(RGBA{R: 0.4, G: 0.5, B: 0.6, A: 1})

	out := Render(NewPixmapSource(pm), Geometry{FullSize: V2(32, 32), Radius: 4},
		DefaultParams(), 0)
	if out.Width() != 32 || out.Height() != 32 {
		t.Fatalf("render over pixmap source: %dx%d", out.Width(), out.Height())
	}
}
