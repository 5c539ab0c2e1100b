package glass

import (
	"github.com/gogpu/glass/internal/parallel"
)

// Renderer evaluates the glass kernel over a destination pixel grid.
//
// Rendering is an explicit parallel-for: the grid is split into tiles, one
// work item per tile, executed on a worker pool. Tiles write to disjoint
// pixels and the kernel reads nothing but its arguments, so no work item
// depends on any other.
//
// A Renderer owns its worker pool; call Close when done. Renderer is safe
// for concurrent use.
type Renderer struct {
	blur Blur
	pool *parallel.WorkerPool
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{
		blur: o.blur,
		pool: parallel.NewWorkerPool(o.workers),
	}
}

// Render evaluates the kernel over a pixmap sized to geom.FullSize and
// returns it. time is the animation clock in seconds.
func (r *Renderer) Render(src Source, geom Geometry, params Params, time float64) *Pixmap {
	pm := NewPixmap(int(geom.FullSize.X), int(geom.FullSize.Y))
	r.RenderInto(pm, src, geom, params, time)
	return pm
}

// RenderInto evaluates the kernel for every pixel of dst. The pixel grid is
// mapped onto the surface through pixel centers: pixel (x, y) evaluates at
// uv = ((x+0.5)/w, (y+0.5)/h).
func (r *Renderer) RenderInto(dst *Pixmap, src Source, geom Geometry, params Params, time float64) {
	w := dst.Width()
	h := dst.Height()
	tiles := parallel.Tiles(w, h)
	if tiles == nil {
		return
	}

	Logger().Debug("glass: render pass",
		"width", w, "height", h,
		"tiles", len(tiles), "workers", r.pool.Workers())

	invW := 1 / float64(w)
	invH := 1 / float64(h)

	work := make([]func(), len(tiles))
	for i, t := range tiles {
		tile := t
		work[i] = func() {
			for y := tile.Y0; y < tile.Y1; y++ {
				v := (float64(y) + 0.5) * invH
				for x := tile.X0; x < tile.X1; x++ {
					u := (float64(x) + 0.5) * invW
					c := evaluatePixel(V2(u, v), src, geom, params, time, r.blur)
					dst.SetPixel(x, y, c)
				}
			}
		}
	}

	r.pool.ExecuteAll(work)
}

// Close releases the renderer's worker pool.
// Close is safe to call multiple times.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Render is a one-shot convenience: it creates a renderer, renders a single
// frame, and releases the workers. Hosts rendering repeatedly (animation,
// interactive drag) should keep a Renderer instead.
func Render(src Source, geom Geometry, params Params, time float64, opts ...RendererOption) *Pixmap {
	r := NewRenderer(opts...)
	defer r.Close()
	return r.Render(src, geom, params, time)
}
