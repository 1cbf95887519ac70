package edgeindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yanrabe/isocontour/edgeindex"
	"github.com/yanrabe/isocontour/graph"
)

// TestRoundTrip_1Dto3Dto1D verifies R1: edge_1d_to_3d(edge_3d_to_1d(x,y,z))
// == (x,y,z) for every valid (x,y,z) across a handful of grid shapes.
func TestRoundTrip_1Dto3Dto1D(t *testing.T) {
	shapes := [][2]int{{4, 3}, {8, 8}, {1, 1}, {2, 5}}
	for _, shape := range shapes {
		w, h := shape[0], shape[1]
		for z := 0; z < 2; z++ {
			maxX, maxY := w, h
			if z == 0 {
				maxX, maxY = w, h-1
			} else {
				maxX, maxY = w-1, h
			}
			for x := 0; x <= maxX; x++ {
				for y := 0; y <= maxY; y++ {
					edge := edgeindex.Edge3DTo1D(w, h, x, y, z)
					if edge < 0 {
						continue
					}
					gotX, gotY, gotZ := edgeindex.Edge1DTo3D(w, h, edge)
					assert.Equal(t, [3]int{x, y, z}, [3]int{gotX, gotY, gotZ},
						"shape=%v edge=%d", shape, edge)
				}
			}
		}
	}
}

// TestEdge3DTo1D_OutOfRange checks that every direction of
// out-of-bounds input is rejected with -1.
func TestEdge3DTo1D_OutOfRange(t *testing.T) {
	w, h := 4, 3
	cases := []struct {
		x, y, z int
	}{
		{-1, 0, 0}, {w + 1, 0, 0}, {0, -1, 0}, {0, h, 0},
		{-1, 0, 1}, {w, 0, 1}, {0, -1, 1}, {0, h + 1, 1},
		{0, 0, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, -1, edgeindex.Edge3DTo1D(w, h, tc.x, tc.y, tc.z))
	}
}

// TestCellToEdges_MatchesCanonicalFormula checks the four returned
// indices against spec.md §6's formula directly.
func TestCellToEdges_MatchesCanonicalFormula(t *testing.T) {
	w, h := 5, 4
	for x := 0; x < w-1; x++ {
		for y := 0; y < h-1; y++ {
			top, right, bottom, left := edgeindex.CellToEdges(w, h, x, y)
			assert.Equal(t, x*h+y, top)
			assert.Equal(t, (x+1)*h+y, bottom)
			assert.Equal(t, h*(w+1)+x*(h+1)+y, left)
			assert.Equal(t, h*(w+1)+x*(h+1)+y+1, right)
		}
	}
}

// TestCellToEdges_WithinEdgeCount verifies every edge a cell reports
// falls inside the graph's allocated edge range.
func TestCellToEdges_WithinEdgeCount(t *testing.T) {
	w, h := 6, 5
	e := graph.EdgeCount(w, h)
	for x := 0; x < w-1; x++ {
		for y := 0; y < h-1; y++ {
			top, right, bottom, left := edgeindex.CellToEdges(w, h, x, y)
			for _, idx := range [4]int{top, right, bottom, left} {
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, e)
			}
		}
	}
}
