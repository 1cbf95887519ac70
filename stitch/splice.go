package stitch

import (
	"github.com/yanrabe/isocontour/cycle"
	"github.com/yanrabe/isocontour/geom"
	"github.com/yanrabe/isocontour/graph"
)

// splice rewrites the four next/prev pointers at candidate c, relabels
// the merged cycle, and folds c's two catalog entries into one (spec.md
// §4.5). The crossed rewrite allocates nothing; the straight rewrite
// allocates one slice holding the reversed cycle's edges.
func splice(g *graph.Graph, c candidate, topo Topology) {
	i, j := c.i, c.j
	iB := g.Next[i]
	jB := g.Next[j]

	iCycle, jCycle := g.CycleIndex[i], g.CycleIndex[j]

	useCrossed := topo == TopologyCrossed || geom.CheaperJoin(point(g, i), point(g, iB), point(g, j), point(g, jB))

	if useCrossed {
		rewireCrossed(g, i, iB, j, jB)
	} else {
		reverseCycle(g, jCycle)
		rewireStraight(g, i, iB, j, jB)
	}

	relabel(g, i, iCycle)
	cycle.Merge(g.Cycles, iCycle, jCycle)
}

// rewireCrossed performs the four-pointer splice: i's segment (i->iB)
// and j's segment (j->jB) are cut and cross-connected, i->jB and
// j->iB, closing both arcs into one cycle. splice uses it under
// TopologyCrossed, and under TopologyCheapest whenever the crossed join
// is the cheaper one; the straight join goes through reverseCycle and
// rewireStraight instead (spec.md §4.5).
func rewireCrossed(g *graph.Graph, i, iB, j, jB graph.EdgeID) {
	g.Next[i] = jB
	g.Prev[jB] = i
	g.Next[j] = iB
	g.Prev[iB] = j
}

// rewireStraight performs the splice that realizes the "straight" join
// (iA-jA, iB-jB): it assumes cycle j's direction was just reversed via
// reverseCycle, so that walking forward from j now eventually reaches
// jB as the last edge before closing back on j. i's segment is cut
// before iB and spliced directly onto j, and jB is redirected onto iB,
// closing the merged ring (spec.md §9's alternate topology).
func rewireStraight(g *graph.Graph, i, iB, j, jB graph.EdgeID) {
	g.Next[i] = j
	g.Prev[j] = i
	g.Next[jB] = iB
	g.Prev[iB] = jB
}

// reverseCycle swaps Next and Prev for every edge of cycleID, walking
// the cycle via its pre-reversal Next pointers first so the walk isn't
// disturbed by its own mutation.
func reverseCycle(g *graph.Graph, cycleID graph.CycleID) {
	start := g.Cycles[cycleID].Start
	edges := make([]graph.EdgeID, 0, g.Cycles[cycleID].Length)
	for e := start; ; e = g.Next[e] {
		edges = append(edges, e)
		if g.Next[e] == start {
			break
		}
	}
	for _, e := range edges {
		g.Next[e], g.Prev[e] = g.Prev[e], g.Next[e]
	}
}

// relabel walks the merged cycle starting at seed and stamps every
// edge with cycleID, per spec.md §4.5's "relabel the merged cycle"
// step. Called after splice's pointer rewrite, so the walk already
// traverses the full merged ring.
func relabel(g *graph.Graph, seed graph.EdgeID, cycleID graph.CycleID) {
	g.CycleIndex[seed] = cycleID
	for e := g.Next[seed]; e != seed; e = g.Next[e] {
		g.CycleIndex[e] = cycleID
	}
}
