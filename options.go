package glass

// RendererOption configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default: five-tap blur, one worker per CPU
//	r := glass.NewRenderer()
//
//	// Higher-quality blur on four workers
//	r := glass.NewRenderer(glass.WithBlur(glass.NineTap), glass.WithWorkers(4))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	blur    Blur
	workers int
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		blur:    FiveTap,
		workers: 0, // GOMAXPROCS
	}
}

// WithBlur selects the blur implementation used by the renderer.
// [FiveTap] is the fast live-compositing kernel and the default;
// [NineTap] is the higher-quality alternative.
func WithBlur(b Blur) RendererOption {
	return func(o *rendererOptions) {
		if b != nil {
			o.blur = b
		}
	}
}

// WithWorkers sets the number of worker goroutines used for rendering.
// Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}
