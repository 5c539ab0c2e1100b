// Package parallel provides tile-based parallel execution for gogpu/glass.
//
// The destination pixel grid is divided into 64x64 tiles that are evaluated
// independently: the glass kernel is pure per pixel, so tiles share nothing
// but the read-only background. One work item per tile keeps scheduling
// overhead low while leaving enough items for work stealing to balance the
// uneven cost of rim tiles.
package parallel

// TileSize is the edge length of a tile in pixels. 64 keeps a tile's output
// (16KB in RGBA) within L1 cache while still producing enough work items
// for good distribution.
const TileSize = 64

// Tile is a rectangular region of the destination grid, half-open on the
// max edges: pixels [X0,X1) x [Y0,Y1).
type Tile struct {
	X0, Y0, X1, Y1 int
}

// Width returns the tile width in pixels.
func (t Tile) Width() int { return t.X1 - t.X0 }

// Height returns the tile height in pixels.
func (t Tile) Height() int { return t.Y1 - t.Y0 }

// Tiles splits a width x height pixel grid into tiles in row-major order.
// Edge tiles are smaller when the grid is not evenly divisible by TileSize.
// Returns nil for empty grids.
func Tiles(width, height int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}

	tilesX := (width + TileSize - 1) / TileSize
	tilesY := (height + TileSize - 1) / TileSize

	tiles := make([]Tile, 0, tilesX*tilesY)
	for y := 0; y < height; y += TileSize {
		for x := 0; x < width; x += TileSize {
			x1 := x + TileSize
			if x1 > width {
				x1 = width
			}
			y1 := y + TileSize
			if y1 > height {
				y1 = height
			}
			tiles = append(tiles, Tile{X0: x, Y0: y, X1: x1, Y1: y1})
		}
	}
	return tiles
}
