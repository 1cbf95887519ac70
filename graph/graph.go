package graph

import "math"

// unsetPoint marks a points[i] slot that no cell ever populated (a
// boundary edge, or an edge with no zero crossing).
var unsetPoint = Point{X: math.NaN(), Y: math.NaN()}

// IsSet reports whether p was populated by contour extraction.
func (p Point) IsSet() bool {
	return !math.IsNaN(p.X)
}

// Graph is the shared state produced by contour extraction and mutated
// by the stitching engine. The zero value is invalid; use NewGraph.
//
// Width and Height are the originating grid's sample-point counts
// (spec.md §3); EdgeCount() derives E from them. Points, Next, Prev,
// and CycleIndex are sized once to E and never resized. Cycles is
// logically a set: Merge tombstones slots instead of compacting,
// matching spec.md §4.5's "not re-compacted during stitching".
//
// Graph does not lock itself: per spec.md §5, the stitching engine is
// the sole mutator for the duration of its run, and the read-only
// kernels of extraction only ever write to disjoint slots of the same
// arrays, so no synchronization is needed inside Graph itself.
type Graph struct {
	Width, Height int

	Points     []Point
	Next       []EdgeID
	Prev       []EdgeID
	CycleIndex []CycleID
	Cycles     []Cycle
}

// EdgeCount returns E = H·(W+1) + W·(H+1) − 1, the flat edge-index range.
func EdgeCount(width, height int) int {
	return height*(width+1) + width*(height+1) - 1
}

// NewGraph allocates a Graph for a width×height grid with every edge
// slot unset (Next/Prev/CycleIndex = NoEdge/NoCycle, Points = unset).
// Returns ErrInvalidDimensions if width or height is not positive.
func NewGraph(width, height int) (*Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	e := EdgeCount(width, height)
	g := &Graph{
		Width:      width,
		Height:     height,
		Points:     make([]Point, e),
		Next:       make([]EdgeID, e),
		Prev:       make([]EdgeID, e),
		CycleIndex: make([]CycleID, e),
	}
	for i := range g.Points {
		g.Points[i] = unsetPoint
		g.Next[i] = NoEdge
		g.Prev[i] = NoEdge
		g.CycleIndex[i] = NoCycle
	}

	return g, nil
}

// EdgeCount returns the number of edge slots (E) in g.
func (g *Graph) EdgeCount() int {
	return len(g.Next)
}

// AliveCycles reports how many non-tombstone catalog entries remain.
func (g *Graph) AliveCycles() int {
	n := 0
	for _, c := range g.Cycles {
		if !c.IsTombstone() {
			n++
		}
	}
	return n
}
