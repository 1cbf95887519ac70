package contour

import (
	"sync"

	"github.com/yanrabe/isocontour/edgeindex"
	"github.com/yanrabe/isocontour/geom"
	"github.com/yanrabe/isocontour/graph"
)

// cartesian maps an integer grid-corner index to the isotropic
// Cartesian domain: dividing by max(W,H) keeps the larger dimension
// normalized to 1 (spec.md §3's "Cartesian coordinates"). Do not
// change the denominator — spec.md §9 calls this out explicitly.
func cartesian(width, height, x, y int) geom.Vec2 {
	scale := float64(width)
	if float64(height) > scale {
		scale = float64(height)
	}
	return geom.Vec2{X: float64(x) / scale, Y: float64(y) / scale}
}

// computePoints populates g.Points for every edge with a sign change,
// per spec.md §4.3(b). For every interior cell (x < W-1, y < H-1) it
// examines the cell's right and bottom shared edges; each interior
// edge is owned by exactly one cell in row-major order, so splitting
// the (W-1)-wide column range across opts.Workers goroutines writes
// only disjoint Points slots.
func computePoints(f *Field, b *binaryGrid, g *graph.Graph, opts Options) {
	if f.Width < 2 || f.Height < 2 {
		return
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	cols := f.Width - 1
	if workers > cols {
		workers = cols
	}

	var wg sync.WaitGroup
	chunk := (cols + workers - 1) / workers
	for start := 0; start < cols; start += chunk {
		end := start + chunk
		if end > cols {
			end = cols
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for x := start; x < end; x++ {
				for y := 0; y < f.Height-1; y++ {
					computeCellPoints(f, b, g, x, y)
				}
			}
		}(start, end)
	}
	wg.Wait()
}

// computeCellPoints populates the right- and bottom-edge crossing
// points of cell (x,y), if any.
func computeCellPoints(f *Field, b *binaryGrid, g *graph.Graph, x, y int) {
	_, right, bottom, _ := edgeindex.CellToEdges(f.Width, f.Height, x, y)

	if b.at(x, y+1) != b.at(x+1, y+1) {
		p0 := cartesian(f.Width, f.Height, x, y+1)
		p1 := cartesian(f.Width, f.Height, x+1, y+1)
		if pt, err := geom.LerpZero(p0, p1, f.At(x, y+1), f.At(x+1, y+1)); err == nil {
			g.Points[right] = graph.Point{X: pt.X, Y: pt.Y}
		}
	}

	if b.at(x+1, y+1) != b.at(x+1, y) {
		p0 := cartesian(f.Width, f.Height, x+1, y+1)
		p1 := cartesian(f.Width, f.Height, x+1, y)
		if pt, err := geom.LerpZero(p0, p1, f.At(x+1, y+1), f.At(x+1, y)); err == nil {
			g.Points[bottom] = graph.Point{X: pt.X, Y: pt.Y}
		}
	}
}
