// Package cycle implements cycle discovery (flood-walking next_edge
// pointers to label cycles and record their lengths, spec.md §4.4) and
// the cycle catalog's lookup/merge operations (spec.md §4.5).
package cycle

import (
	"github.com/yanrabe/isocontour/edgeindex"
	"github.com/yanrabe/isocontour/graph"
)

// slot names a cell's edge in CellToEdges order: top, right, bottom, left.
type slot int

const (
	slotTop slot = iota
	slotRight
	slotBottom
	slotLeft
)

// seedSlotFor maps a cell's single directed (from, to) slot pair to
// the slot that must be used as the flood seed, per spec.md §4.4:
// "if case ∈ {1,2,6,9,13,14} use the top-edge slot; if case ∈
// {3,4,11,12} use the right-edge slot; otherwise use the bottom-edge
// slot." Each of the 12 unambiguous marching-squares configurations
// has a unique (from, to) slot pair (12 configs, 12 possible ordered
// pairs among 4 slots), so the pair alone determines the seed without
// needing the numeric configuration or the binary grid.
var seedSlotFor = map[[2]slot]slot{
	{slotTop, slotLeft}: slotTop,    // case 1
	{slotRight, slotTop}: slotTop,   // case 2
	{slotBottom, slotTop}: slotTop,  // case 6
	{slotTop, slotBottom}: slotTop,  // case 9
	{slotTop, slotRight}: slotTop,   // case 13
	{slotLeft, slotTop}: slotTop,    // case 14
	{slotRight, slotLeft}: slotRight,   // case 3
	{slotBottom, slotRight}: slotRight, // case 4
	{slotRight, slotBottom}: slotRight, // case 11
	{slotLeft, slotRight}: slotRight,   // case 12
	{slotBottom, slotLeft}: slotBottom, // case 7
	{slotLeft, slotBottom}: slotBottom, // case 8
}

// Discover walks the grid in row-major order and, for every cell whose
// configuration produces a single unambiguous contour edge (i.e. not 0,
// 15, 5, or 10) and whose edges are not yet labeled, floods a new cycle
// from a seed edge of that cell. Cases 5 and 10 are never used as
// seeds — per spec.md §4.4 their cells may host two independent
// curves, entered instead from a neighboring cell's flood.
//
// Discover assumes g.Next/g.Prev were already populated by
// contour.Extract and that g.Cycles starts empty; it populates
// g.CycleIndex and g.Cycles in place.
func Discover(g *graph.Graph, width, height int) {
	for x := 0; x < width-1; x++ {
		for y := 0; y < height-1; y++ {
			top, right, bottom, left := edgeindex.CellToEdges(width, height, x, y)
			edges := [4]graph.EdgeID{top, right, bottom, left}

			seedSlot, ambiguous, empty := classify(g, edges)
			if empty || ambiguous {
				continue
			}
			if isInACycle(g, edges) {
				continue
			}

			flood(g, edges[seedSlot], len(g.Cycles))
		}
	}
}

// classify identifies the cell's own in-cell arc(s): a from-slot whose
// Next points at another of the cell's four edges. After full
// adjacency every contour edge carries a Next pointer regardless of
// which cell it belongs to (each crossing edge is entered by exactly
// one cell elsewhere in the grid), so counting "Next != NoEdge" across
// the cell's edges cannot distinguish a single arc from a saddle — an
// edge's Next landing on one of *this cell's own* four edges is what
// actually identifies the arc that passes through this cell. A
// single-arc cell has exactly one such from-slot; a saddle (case 5/10)
// has two; an empty cell (case 0/15) has none.
func classify(g *graph.Graph, edges [4]graph.EdgeID) (seed slot, ambiguous, empty bool) {
	var pairs [][2]slot
	for s, e := range edges {
		to, ok := slotIn(edges, g.Next[e])
		if ok {
			pairs = append(pairs, [2]slot{slot(s), to})
		}
	}

	switch len(pairs) {
	case 0:
		return 0, false, true
	case 1:
		return seedSlotFor[pairs[0]], false, false
	default:
		// 2 in-cell arcs: a genuine saddle (case 5/10).
		return 0, true, false
	}
}

// slotIn reports which of the cell's four edge slots equals target, if any.
func slotIn(edges [4]graph.EdgeID, target graph.EdgeID) (slot, bool) {
	if target == graph.NoEdge {
		return 0, false
	}
	for s, e := range edges {
		if e == target {
			return slot(s), true
		}
	}
	return 0, false
}

// isInACycle reports whether any of the cell's four edges already
// carries a cycle label.
func isInACycle(g *graph.Graph, edges [4]graph.EdgeID) bool {
	for _, e := range edges {
		if g.CycleIndex[e] != graph.NoCycle {
			return true
		}
	}
	return false
}

// flood follows next_edge from seed back to itself, labeling every
// visited edge with cycleID and counting the walk length, then records
// the catalog entry {seed, length} (spec.md §4.4's flood routine).
func flood(g *graph.Graph, seed graph.EdgeID, cycleID graph.CycleID) {
	g.CycleIndex[seed] = cycleID
	length := 1
	for edge := g.Next[seed]; edge != seed; edge = g.Next[edge] {
		g.CycleIndex[edge] = cycleID
		length++
	}
	g.Cycles = append(g.Cycles, graph.Cycle{Start: seed, Length: length})
}
