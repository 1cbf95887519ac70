// Package stitch implements the iterative cycle-stitching engine: it
// repeatedly picks the smallest surviving cycle, finds the cheapest
// cross-cycle edge pair to splice, rewrites the four next/prev pointers
// at the splice site, relabels the merged cycle, and folds the catalog
// entries, until a single cycle remains (spec.md §4.5).
package stitch

import "github.com/yanrabe/isocontour/graph"

// defaultCandidateRadius bounds the 5×5×2 localized neighborhood search
// around the minimal cycle's walking edge: the search visits every
// (dx, dy) offset in [-radius, radius] across both edge orientations
// before falling back to a full scan (spec.md §4.5, §9).
const defaultCandidateRadius = 2

// Options configures a stitching run. The zero value is invalid; use
// DefaultOptions.
type Options struct {
	// CandidateRadius is the half-width of the localized neighborhood
	// search, in grid cells. 2 reproduces the reference 5×5 window.
	CandidateRadius int

	// Topology selects which splice rewrite is used when the
	// "straight" join is at least as cheap as the "crossed" one — both
	// close the cycle, but the edge-level graph each produces differs
	// (spec.md §9's open question). TopologyCrossed matches the
	// reference implementation; TopologyCheapest always follows
	// geom.CheaperJoin's verdict, which favors the straight join on ties.
	Topology Topology
}

// Topology names a splice-rewrite policy.
type Topology int

const (
	// TopologyCrossed always performs the cross rewrite described in
	// spec.md §4.5's splice step, regardless of which join is cheaper.
	TopologyCrossed Topology = iota
	// TopologyCheapest performs whichever rewrite (straight or
	// crossed) geom.CheaperJoin reports as cheaper for the chosen pair.
	TopologyCheapest
)

// DefaultOptions returns the reference configuration: a radius-2
// neighborhood search and the crossed splice topology.
func DefaultOptions() Options {
	return Options{CandidateRadius: defaultCandidateRadius, Topology: TopologyCrossed}
}

// candidate is an edge pair under consideration for splicing, together
// with its splice cost.
type candidate struct {
	i, j graph.EdgeID
	cost float64
}
