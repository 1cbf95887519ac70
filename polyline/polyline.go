// Package polyline emits renderable point sequences from a stitched
// graph: one self-closing polyline per surviving cycle (spec.md §4.7).
package polyline

import "github.com/yanrabe/isocontour/graph"

// Polyline is one cycle's point sequence, in traversal order, with the
// closing point equal to the first (spec.md §4.7's self-closing
// guarantee): Points[0] == Points[len(Points)-1].
type Polyline struct {
	Points []graph.Point
}

// Emit walks every non-tombstone cycle's recorded start edge exactly
// Length times, appending each edge's own point, then closes the loop
// by repeating the first point. The result has one Polyline per
// surviving cycle, in catalog order (tombstones are skipped, so the
// output may be shorter than len(g.Cycles)).
func Emit(g *graph.Graph) []Polyline {
	var out []Polyline
	for _, c := range g.Cycles {
		if c.IsTombstone() {
			continue
		}
		out = append(out, emitCycle(g, c))
	}
	return out
}

func emitCycle(g *graph.Graph, c graph.Cycle) Polyline {
	points := make([]graph.Point, 0, c.Length+1)
	edge := c.Start
	for i := 0; i < c.Length; i++ {
		points = append(points, g.Points[edge])
		edge = g.Next[edge]
	}
	points = append(points, points[0])
	return Polyline{Points: points}
}
