package contour

import (
	"errors"

	"github.com/yanrabe/isocontour/graph"
)

// ErrFieldShape indicates a Field whose Values slice does not match
// Width*Height.
var ErrFieldShape = errors.New("contour: field values length does not match width*height")

// Extract runs the three extraction phases of spec.md §4.3 over f and
// returns a fully populated graph.Graph: binarization, then the
// parallel point-interpolation and sequential adjacency passes. The
// returned graph's Cycles field is left empty; use cycle.Discover to
// populate the catalog.
//
// Extract is a pure function of f: the same field always yields
// bit-identical Points/Next/Prev/CycleIndex, independent of opts.Workers
// (spec.md §5's ordering guarantee), since the parallel phases only
// ever write disjoint output slots.
func Extract(f *Field, opts Options) (*graph.Graph, error) {
	if len(f.Values) != f.Width*f.Height {
		return nil, ErrFieldShape
	}

	g, err := graph.NewGraph(f.Width, f.Height)
	if err != nil {
		return nil, err
	}

	b := binarize(f, opts)
	computePoints(f, b, g, opts)
	computeAdjacency(f, b, g)

	return g, nil
}
