package stitch

import (
	"github.com/yanrabe/isocontour/cycle"
	"github.com/yanrabe/isocontour/graph"
)

// StitchAll repeatedly merges the smallest surviving cycle into
// whichever other cycle offers the cheapest splice, until a single
// cycle remains (P4), or returns an error the first time a merge step
// cannot proceed (spec.md §4.5, §7). g must already carry a populated
// Cycles catalog (cycle.Discover's output); StitchAll mutates g in
// place and returns nil on success.
func StitchAll(g *graph.Graph, opts Options) error {
	for g.AliveCycles() > 1 {
		smallest := cycle.FindSmallest(g.Cycles)

		c, err := findCandidate(g, smallest, opts)
		if err != nil {
			return err
		}
		if g.CycleIndex[c.i] == g.CycleIndex[c.j] {
			return graph.ErrInvalidGeometry
		}

		splice(g, c, opts.Topology)
	}
	return nil
}
