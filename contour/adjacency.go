package contour

import (
	"github.com/yanrabe/isocontour/edgeindex"
	"github.com/yanrabe/isocontour/graph"
)

// computeAdjacency fills g.Next/g.Prev from the marching-squares case
// table (spec.md §4.3(c)). It always runs single-threaded: every cell
// writes into the Next/Prev slots of its own four edges only, but the
// saddle cases (5, 10) need the cell's scalar average, so there is no
// benefit to parallelizing a pass this cheap relative to the
// synchronization it would need with point computation's row split.
func computeAdjacency(f *Field, b *binaryGrid, g *graph.Graph) {
	for x := 0; x < f.Width-1; x++ {
		for y := 0; y < f.Height-1; y++ {
			top, right, bottom, left := edgeindex.CellToEdges(f.Width, f.Height, x, y)
			config := b.cellConfig(x, y)

			switch config {
			case 0, 15:
				// No contour edge through this cell; all four slots
				// stay at their NewGraph default (NoEdge/NoCycle).

			case 1:
				link(g, top, left)
			case 2:
				link(g, right, top)
			case 3:
				link(g, right, left)
			case 4:
				link(g, bottom, right)
			case 5:
				if cellAverage(f, x, y) > 0 {
					link(g, top, right)
					link(g, bottom, left)
				} else {
					link(g, top, left)
					link(g, bottom, right)
				}
			case 6:
				link(g, bottom, top)
			case 7:
				link(g, bottom, left)
			case 8:
				link(g, left, bottom)
			case 9:
				link(g, top, bottom)
			case 10:
				if cellAverage(f, x, y) < 0 {
					link(g, left, top)
					link(g, right, bottom)
				} else {
					link(g, left, bottom)
					link(g, right, top)
				}
			case 11:
				link(g, right, bottom)
			case 12:
				link(g, left, right)
			case 13:
				link(g, top, right)
			case 14:
				link(g, left, top)
			}
		}
	}
}

// link sets next_edge[from] = to and prev_edge[to] = from.
func link(g *graph.Graph, from, to graph.EdgeID) {
	g.Next[from] = to
	g.Prev[to] = from
}

// cellAverage is the mean of the four corner scalar values of cell
// (x,y), used to disambiguate the saddle configurations 5 and 10.
func cellAverage(f *Field, x, y int) float64 {
	return (f.At(x, y) + f.At(x, y+1) + f.At(x+1, y+1) + f.At(x+1, y)) / 4
}
