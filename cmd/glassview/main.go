// Command glassview is an interactive viewer for the glass material.
// Drag the panel with the mouse, tweak the material with the keyboard,
// and watch the refraction wave animate in real time.
//
// Keys:
//
//	1..7        select a parameter (blur, refraction, chromatic,
//	            fresnel, specular, opacity, edge)
//	up / down   adjust the selected parameter
//	B           toggle five/nine-tap blur
//	R           reset to defaults
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/glass"
)

const (
	screenWidth  = 960
	screenHeight = 640

	panelWidth  = 420
	panelHeight = 280
	panelRadius = 36
)

type paramSlot struct {
	name string
	get  func(*glass.Params) *float64
	step float64
	max  float64
}

var paramSlots = []paramSlot{
	{"blur", func(p *glass.Params) *float64 { return &p.BlurStrength }, 0.05, 2},
	{"refraction", func(p *glass.Params) *float64 { return &p.RefractionStrength }, 0.005, 0.15},
	{"chromatic", func(p *glass.Params) *float64 { return &p.ChromaticAberration }, 0.001, 0.02},
	{"fresnel", func(p *glass.Params) *float64 { return &p.FresnelStrength }, 0.05, 1},
	{"specular", func(p *glass.Params) *float64 { return &p.SpecularStrength }, 0.05, 1},
	{"opacity", func(p *glass.Params) *float64 { return &p.GlassOpacity }, 0.05, 1},
	{"edge", func(p *glass.Params) *float64 { return &p.EdgeThickness }, 0.01, 0.3},
}

type viewer struct {
	background *glass.Pixmap
	bgImage    *eb.Image
	panelImage *eb.Image

	renderer *glass.Renderer
	nineTap  bool
	params   glass.Params
	selected int

	panelX, panelY float64
	dragging       bool
	dragDX, dragDY float64

	start time.Time
}

func newViewer(bg *glass.Pixmap) *viewer {
	v := &viewer{
		background: bg,
		bgImage:    eb.NewImageFromImage(bg.ToImage()),
		panelImage: eb.NewImage(panelWidth, panelHeight),
		renderer:   glass.NewRenderer(),
		params:     glass.DefaultParams(),
		panelX:     (screenWidth - panelWidth) / 2,
		panelY:     (screenHeight - panelHeight) / 2,
		start:      time.Now(),
	}
	return v
}

func (v *viewer) Update() error {
	v.handleMouse()
	v.handleKeys()
	return nil
}

func (v *viewer) handleMouse() {
	mx, my := eb.CursorPosition()
	if ebi.IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		fx, fy := float64(mx), float64(my)
		if fx >= v.panelX && fx < v.panelX+panelWidth && fy >= v.panelY && fy < v.panelY+panelHeight {
			v.dragging = true
			v.dragDX = fx - v.panelX
			v.dragDY = fy - v.panelY
		}
	}
	if !eb.IsMouseButtonPressed(eb.MouseButtonLeft) {
		v.dragging = false
	}
	if v.dragging {
		v.panelX = clamp(float64(mx)-v.dragDX, 0, screenWidth-panelWidth)
		v.panelY = clamp(float64(my)-v.dragDY, 0, screenHeight-panelHeight)
	}
}

func (v *viewer) handleKeys() {
	for i := 0; i < len(paramSlots); i++ {
		if ebi.IsKeyJustPressed(eb.KeyDigit1 + eb.Key(i)) {
			v.selected = i
		}
	}

	slot := paramSlots[v.selected]
	value := slot.get(&v.params)
	if ebi.IsKeyJustPressed(eb.KeyUp) || repeatHeld(eb.KeyUp) {
		*value = clamp(*value+slot.step, 0, slot.max)
	}
	if ebi.IsKeyJustPressed(eb.KeyDown) || repeatHeld(eb.KeyDown) {
		*value = clamp(*value-slot.step, 0, slot.max)
	}

	if ebi.IsKeyJustPressed(eb.KeyB) {
		v.nineTap = !v.nineTap
		v.renderer.Close()
		if v.nineTap {
			v.renderer = glass.NewRenderer(glass.WithBlur(glass.NineTap))
		} else {
			v.renderer = glass.NewRenderer()
		}
	}
	if ebi.IsKeyJustPressed(eb.KeyR) {
		v.params = glass.DefaultParams()
	}
}

// repeatHeld reports a held key at a steady repeat rate so arrow keys
// slew parameters instead of stepping once per press.
func repeatHeld(key eb.Key) bool {
	d := ebi.KeyPressDuration(key)
	return d > 20 && d%4 == 0
}

func (v *viewer) Draw(screen *eb.Image) {
	screen.DrawImage(v.bgImage, nil)

	geom := glass.Geometry{
		TopLeft:               glass.V2(v.panelX, v.panelY),
		FullSize:              glass.V2(panelWidth, panelHeight),
		FullSizeUntransformed: glass.V2(panelWidth, panelHeight),
		Radius:                panelRadius,
	}
	src := glass.NewRegionSource(glass.NewPixmapSource(v.background),
		v.panelX/screenWidth,
		v.panelY/screenHeight,
		(v.panelX+panelWidth)/screenWidth,
		(v.panelY+panelHeight)/screenHeight)

	clock := time.Since(v.start).Seconds()
	panel := v.renderer.Render(src, geom, v.params, clock)
	v.panelImage.WritePixels(premultiply(panel))

	op := &eb.DrawImageOptions{}
	op.GeoM.Translate(v.panelX, v.panelY)
	screen.DrawImage(v.panelImage, op)

	blurName := "five-tap"
	if v.nineTap {
		blurName = "nine-tap"
	}
	slot := paramSlots[v.selected]
	ebu.DebugPrint(screen, fmt.Sprintf(
		"TPS %.0f  blur: %s (B)\n[%d] %s = %.3f (up/down, 1-7 select, R reset)",
		eb.ActualTPS(), blurName, v.selected+1, slot.name, *slot.get(&v.params)))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// premultiply converts the straight-alpha panel bytes to the
// premultiplied form WritePixels expects.
func premultiply(pm *glass.Pixmap) []byte {
	data := pm.Data()
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += 4 {
		a := uint32(data[i+3])
		out[i] = byte(uint32(data[i]) * a / 255)
		out[i+1] = byte(uint32(data[i+1]) * a / 255)
		out[i+2] = byte(uint32(data[i+2]) * a / 255)
		out[i+3] = byte(a)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	bgPath := flag.String("bg", "", "background image; checker pattern if empty")
	flag.Parse()

	bg, err := loadBackground(*bgPath)
	if err != nil {
		log.Fatalf("Failed to load background: %v", err)
	}

	eb.SetWindowSize(screenWidth, screenHeight)
	eb.SetWindowTitle("glassview")

	if err := eb.RunGame(newViewer(bg)); err != nil {
		log.Fatal(err)
	}
}

func loadBackground(path string) (*glass.Pixmap, error) {
	pm := glass.NewPixmap(screenWidth, screenHeight)

	if path == "" {
		// Bold checker so the refraction and blur are easy to see.
		for y := 0; y < screenHeight; y++ {
			for x := 0; x < screenWidth; x++ {
				c := glass.RGBA{R: 0.16, G: 0.32, B: 0.52, A: 1}
				if (x/48+y/48)%2 == 0 {
					c = glass.RGBA{R: 0.85, G: 0.62, B: 0.25, A: 1}
				}
				pm.SetPixel(x, y, c)
			}
		}
		return pm, nil
	}

	src, err := glass.LoadSource(path)
	if err != nil {
		return nil, err
	}
	for y := 0; y < screenHeight; y++ {
		v := (float64(y) + 0.5) / screenHeight
		for x := 0; x < screenWidth; x++ {
			u := (float64(x) + 0.5) / screenWidth
			pm.SetPixel(x, y, src.Sample(u, v))
		}
	}
	return pm, nil
}
