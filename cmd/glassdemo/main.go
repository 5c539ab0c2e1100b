// Command glassdemo renders a glass panel over a background image and
// writes the composited result as PNG. With -frames it emits a numbered
// sequence advancing the animation clock, suitable for assembling into a
// video.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mazznoer/csscolorparser"

	"github.com/gogpu/glass"
)

func main() {
	var (
		width  = flag.Int("width", 800, "canvas width")
		height = flag.Int("height", 600, "canvas height")
		bg     = flag.String("bg", "", "background image (PNG/JPEG/WebP/BMP/TIFF); generated gradient if empty")
		bgTint = flag.String("bgcolor", "#355d8a", "CSS color of the generated gradient background")
		output = flag.String("output", "glass.png", "output file; frame index is appended when -frames > 1")

		panelW = flag.Float64("panel-width", 0.6, "panel width as a fraction of the canvas")
		panelH = flag.Float64("panel-height", 0.4, "panel height as a fraction of the canvas")
		radius = flag.Float64("radius", 32, "panel corner radius in pixels")

		presetPath = flag.String("preset", "", "TOML material preset file")
		nineTap    = flag.Bool("nine-tap", false, "use the higher-quality nine-tap blur")
		frames     = flag.Int("frames", 1, "number of frames to render")
		fps        = flag.Float64("fps", 30, "animation clock rate for -frames")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)

	blur := flag.Float64("blur", 0.8, "blur strength [0..2]")
	refraction := flag.Float64("refraction", 0.06, "refraction strength [0..0.15]")
	chromatic := flag.Float64("chromatic", 0.008, "chromatic aberration [0..0.02]")
	fresnel := flag.Float64("fresnel", 0.4, "fresnel glow strength [0..1]")
	specular := flag.Float64("specular", 0.5, "specular highlight strength [0..1]")
	opacity := flag.Float64("opacity", 0.85, "glass opacity [0..1]")
	edge := flag.Float64("edge", 0.12, "edge thickness [0..0.3]")

	flag.Parse()

	if *verbose {
		glass.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	params := glass.Params{
		BlurStrength:        *blur,
		RefractionStrength:  *refraction,
		ChromaticAberration: *chromatic,
		FresnelStrength:     *fresnel,
		SpecularStrength:    *specular,
		GlassOpacity:        *opacity,
		EdgeThickness:       *edge,
	}
	if *presetPath != "" {
		p, err := loadPreset(*presetPath)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
		params = p
	}

	canvas, err := buildBackground(*bg, *bgTint, *width, *height)
	if err != nil {
		log.Fatalf("Failed to prepare background: %v", err)
	}

	// Center the panel on the canvas.
	pw := *panelW * float64(canvas.Width())
	ph := *panelH * float64(canvas.Height())
	geom := glass.Geometry{
		TopLeft:               glass.V2((float64(canvas.Width())-pw)/2, (float64(canvas.Height())-ph)/2),
		FullSize:              glass.V2(pw, ph),
		FullSizeUntransformed: glass.V2(pw, ph),
		Radius:                *radius,
	}

	var opts []glass.RendererOption
	if *nineTap {
		opts = append(opts, glass.WithBlur(glass.NineTap))
	}
	r := glass.NewRenderer(opts...)
	defer r.Close()

	// The kernel sees only the patch of background under the panel.
	src := glass.NewRegionSource(glass.NewPixmapSource(canvas),
		geom.TopLeft.X/float64(canvas.Width()),
		geom.TopLeft.Y/float64(canvas.Height()),
		(geom.TopLeft.X+pw)/float64(canvas.Width()),
		(geom.TopLeft.Y+ph)/float64(canvas.Height()))

	for i := 0; i < *frames; i++ {
		clock := float64(i) / *fps
		panel := r.Render(src, geom, params, clock)

		frame := clonePixmap(canvas)
		compositeOver(frame, panel, int(geom.TopLeft.X), int(geom.TopLeft.Y))

		path := *output
		if *frames > 1 {
			path = fmt.Sprintf("%s.%04d.png", *output, i)
		}
		if err := frame.SavePNG(path); err != nil {
			log.Fatalf("Failed to save %s: %v", path, err)
		}
	}

	log.Printf("Rendered %d frame(s) at %dx%d to %s\n", *frames, canvas.Width(), canvas.Height(), *output)
}

// buildBackground loads the background image, or generates a vertical
// gradient of the given CSS color when no image is configured.
func buildBackground(path, tint string, width, height int) (*glass.Pixmap, error) {
	if path != "" {
		buf, err := glass.LoadSource(path)
		if err != nil {
			return nil, err
		}
		return resampleToCanvas(buf, width, height), nil
	}

	c, err := csscolorparser.Parse(tint)
	if err != nil {
		return nil, fmt.Errorf("parse -bgcolor: %w", err)
	}

	pm := glass.NewPixmap(width, height)
	for y := 0; y < height; y++ {
		// Darken toward the bottom for a simple studio backdrop.
		shade := 1 - 0.6*float64(y)/float64(height)
		row := glass.RGBA{R: c.R * shade, G: c.G * shade, B: c.B * shade, A: 1}
		for x := 0; x < width; x++ {
			pm.SetPixel(x, y, row)
		}
	}
	return pm, nil
}

// resampleToCanvas stretches a source over the full canvas size.
func resampleToCanvas(src glass.Source, width, height int) *glass.Pixmap {
	pm := glass.NewPixmap(width, height)
	for y := 0; y < height; y++ {
		v := (float64(y) + 0.5) / float64(height)
		for x := 0; x < width; x++ {
			u := (float64(x) + 0.5) / float64(width)
			pm.SetPixel(x, y, src.Sample(u, v))
		}
	}
	return pm
}

func clonePixmap(pm *glass.Pixmap) *glass.Pixmap {
	out := glass.NewPixmap(pm.Width(), pm.Height())
	copy(out.Data(), pm.Data())
	return out
}

// compositeOver source-over blends the panel onto the canvas at (ox, oy).
func compositeOver(dst, panel *glass.Pixmap, ox, oy int) {
	for y := 0; y < panel.Height(); y++ {
		for x := 0; x < panel.Width(); x++ {
			src := panel.GetPixel(x, y)
			bg := dst.GetPixel(ox+x, oy+y)

			a := src.A
			out := glass.RGBA{
				R: src.R*a + bg.R*(1-a),
				G: src.G*a + bg.G*(1-a),
				B: src.B*a + bg.B*(1-a),
				A: 1,
			}
			dst.SetPixel(ox+x, oy+y, out)
		}
	}
}
