// Package core holds the host-neutral pieces shared by the game and its
// hosts: the cell screen, input frames, runtime settings and the mapping
// between world units and terminal cells. It imports nothing outside the
// standard library.
package core

// Viewport maps a world measured in units onto a grid of terminal cells.
// The grid starts Top rows down the screen, leaving room for a HUD.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
	Top            int
}

// NewViewport returns a viewport of at least one cell in each direction.
func NewViewport(worldW, worldH float64, cols, rows, top int) Viewport {
	return Viewport{
		WorldW: worldW,
		WorldH: worldH,
		Cols:   max(cols, 1),
		Rows:   max(rows, 1),
		Top:    top,
	}
}

// ToWorld returns the world position of the center of cell (cx, cy).
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	x := (float64(cx) + 0.5) * v.WorldW / float64(v.Cols)
	y := (float64(cy-v.Top) + 0.5) * v.WorldH / float64(v.Rows)
	return x, y
}

// ToCell returns the cell covering world position (x, y), clamped to the grid.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := int(x * float64(v.Cols) / v.WorldW)
	cy := int(y*float64(v.Rows)/v.WorldH) + v.Top
	return Clamp(cx, 0, v.Cols-1), Clamp(cy, v.Top, v.Top+v.Rows-1)
}

// Contains reports whether cell (cx, cy) lies on the grid.
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= 0 && cx < v.Cols && cy >= v.Top && cy < v.Top+v.Rows
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
