// Package edgeindex implements the bijections between a grid cell's
// four sides and the flat edge index space [0, E), and the inverse
// (cell, side) <-> flat-index maps described in spec.md §4.1 and §6.
//
// Every edge is one side of a grid cell. Horizontal edges (z=0) occupy
// the prefix [0, H·(W+1)); vertical edges (z=1) occupy the suffix.
// No allocation, pure arithmetic — safe to call from parallel readers.
package edgeindex

// Side names a cell's four edges in the order cell_to_edges returns
// them: Top, Right, Bottom, Left.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// CellToEdges returns the four flat edge indices of cell (x,y) — top,
// right, bottom, left — per the canonical formula in spec.md §6:
//
//	horizontal_top(x,y)    = x·H + y
//	horizontal_bottom(x,y) = (x+1)·H + y
//	vertical_left(x,y)     = H·(W+1) + x·(H+1) + y
//	vertical_right(x,y)    = H·(W+1) + x·(H+1) + y + 1
//
// Callers are responsible for ensuring (x,y) addresses a valid cell
// (0 <= x < W-1, 0 <= y < H-1); CellToEdges itself does no bounds
// checking since it is always invoked from a loop already bounded that
// way (see contour.Extract).
func CellToEdges(width, height, x, y int) (top, right, bottom, left int) {
	top = x*height + y
	bottom = (x+1)*height + y
	firstVertical := height * (width + 1)
	left = firstVertical + x*(height+1) + y
	right = left + 1
	return top, right, bottom, left
}

// Edge1DTo3D is the inverse of the flat layout: it returns the (x, y, z)
// triple for a flat edge index, with z=0 for horizontal and z=1 for
// vertical edges. The caller must supply an edge in [0, E) for the
// given dimensions; out-of-range input is not checked and yields
// coordinates outside the grid, since the forward map, Edge3DTo1D, is
// the only operation that signals absence (spec.md §4.1).
func Edge1DTo3D(width, height, edge int) (x, y, z int) {
	maxHorizontal := height * (width + 1)
	if edge < maxHorizontal {
		return edge / height, edge % height, 0
	}
	rest := edge - maxHorizontal
	return rest / (height + 1), rest % (height + 1), 1
}

// Edge3DTo1D is the forward map with bounds checking: it returns -1 for
// out-of-range (x, y, z), including the vertical slot (W-1, H, 1) whose
// index would be E itself, otherwise the flat edge index in [0, E).
// This is the only edgeindex operation that may signal absence.
func Edge3DTo1D(width, height, x, y, z int) int {
	switch z {
	case 0:
		if x < 0 || x > width || y < 0 || y >= height {
			return -1
		}
		return x*height + y
	case 1:
		if x < 0 || x >= width || y < 0 || y > height {
			return -1
		}
		idx := height*(width+1) + x*(height+1) + y
		if idx >= height*(width+1)+width*(height+1)-1 {
			return -1
		}
		return idx
	default:
		return -1
	}
}
