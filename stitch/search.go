package stitch

import (
	"math"

	"github.com/yanrabe/isocontour/edgeindex"
	"github.com/yanrabe/isocontour/geom"
	"github.com/yanrabe/isocontour/graph"
)

// findCandidate searches every edge i of the minimal cycle's 5×5×2
// neighborhood (widened to CandidateRadius) for the cheapest edge j
// belonging to a different, non-tombstone cycle, keeping the best
// candidate across the whole cycle. Only if that full pass finds no
// candidate for any edge of the cycle does it fall back to a full scan
// over every edge of the graph, run again for every edge of the cycle
// (spec.md §4.5, matching the reference's classic all-edges scan over
// the whole cycle rather than a single edge). Ties break toward the
// smallest i, then the smallest j, making the result a pure function
// of the graph's current state (spec.md §5).
func findCandidate(g *graph.Graph, minimalCycle graph.CycleID, opts Options) (candidate, error) {
	best := candidate{i: graph.NoEdge, j: graph.NoEdge, cost: math.Inf(1)}
	foundLocal := false

	start := g.Cycles[minimalCycle].Start
	for edge := start; ; {
		if localBest, found := searchNeighborhood(g, edge, opts.CandidateRadius); found {
			foundLocal = true
			if better(localBest, best) {
				best = localBest
			}
		}
		edge = g.Next[edge]
		if edge == start {
			break
		}
	}

	if !foundLocal {
		for edge := start; ; {
			if fallbackBest, found := searchFull(g, edge); found && better(fallbackBest, best) {
				best = fallbackBest
			}
			edge = g.Next[edge]
			if edge == start {
				break
			}
		}
	}

	if best.i == graph.NoEdge {
		return candidate{}, graph.ErrNoCandidate
	}
	return best, nil
}

// better reports whether a strictly improves on b under the
// determinism tie-break: lower cost wins; equal cost defers to the
// smaller (i, j) pair.
func better(a, b candidate) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.i != b.i {
		return a.i < b.i
	}
	return a.j < b.j
}

// searchNeighborhood scans the 5×5×2 (or radius-widened) window around
// i's 3D edge coordinate for the cheapest cross-cycle partner.
func searchNeighborhood(g *graph.Graph, i graph.EdgeID, radius int) (candidate, bool) {
	iCycle := g.CycleIndex[i]
	x, y, _ := edgeindex.Edge1DTo3D(g.Width, g.Height, i)

	best := candidate{i: i, j: graph.NoEdge, cost: math.Inf(1)}
	found := false

	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for z := 0; z <= 1; z++ {
				j := edgeindex.Edge3DTo1D(g.Width, g.Height, x+dx, y+dy, z)
				if !crossCycleCandidate(g, i, iCycle, j) {
					continue
				}
				cost := spliceCostOf(g, i, j)
				if cost < best.cost || (cost == best.cost && j < best.j) {
					best = candidate{i: i, j: j, cost: cost}
					found = true
				}
			}
		}
	}

	return best, found
}

// searchFull scans every edge in the graph for the cheapest cross-cycle
// partner of i, used when the localized search finds nothing (spec.md
// §4.5's fallback).
func searchFull(g *graph.Graph, i graph.EdgeID) (candidate, bool) {
	iCycle := g.CycleIndex[i]
	best := candidate{i: i, j: graph.NoEdge, cost: math.Inf(1)}
	found := false

	for j := 0; j < g.EdgeCount(); j++ {
		if !crossCycleCandidate(g, i, iCycle, j) {
			continue
		}
		cost := spliceCostOf(g, i, j)
		if cost < best.cost || (cost == best.cost && j < best.j) {
			best = candidate{i: i, j: j, cost: cost}
			found = true
		}
	}

	return best, found
}

// crossCycleCandidate reports whether j is a usable splice partner for
// i: j must exist, carry a cycle label, and belong to a different,
// non-tombstone cycle than i.
func crossCycleCandidate(g *graph.Graph, i graph.EdgeID, iCycle graph.CycleID, j graph.EdgeID) bool {
	if j == graph.NoEdge || j == i {
		return false
	}
	jCycle := g.CycleIndex[j]
	if jCycle == graph.NoCycle || jCycle == iCycle {
		return false
	}
	return !g.Cycles[jCycle].IsTombstone()
}

// spliceCostOf computes geom.SpliceCost for directed edges i=(iA->iB)
// and j=(jA->jB) using the graph's own point coordinates.
func spliceCostOf(g *graph.Graph, i, j graph.EdgeID) float64 {
	iA, iB := point(g, i), point(g, g.Next[i])
	jA, jB := point(g, j), point(g, g.Next[j])
	return geom.SpliceCost(iA, iB, jA, jB)
}

func point(g *graph.Graph, e graph.EdgeID) geom.Vec2 {
	p := g.Points[e]
	return geom.Vec2{X: p.X, Y: p.Y}
}
