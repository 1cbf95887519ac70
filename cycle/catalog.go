package cycle

import "github.com/yanrabe/isocontour/graph"

// FindSmallest returns the id of the non-tombstone catalog entry with
// the smallest length, breaking ties by the smallest id (spec.md
// §4.5). It never returns a tombstone; callers must ensure at least
// one non-tombstone entry exists (true whenever g.AliveCycles() > 0).
func FindSmallest(cycles []graph.Cycle) graph.CycleID {
	best := graph.NoCycle
	for id, c := range cycles {
		if c.IsTombstone() {
			continue
		}
		if best == graph.NoCycle || c.Length < cycles[best].Length {
			best = id
		}
	}
	return best
}

// Merge folds cycle b's length into cycle a and tombstones b, keeping
// a's Start unchanged (spec.md §4.5). Callers (stitch) are responsible
// for guaranteeing a's Start still lies on the merged cycle before
// calling Merge.
func Merge(cycles []graph.Cycle, a, b graph.CycleID) {
	cycles[a].Length += cycles[b].Length
	cycles[b] = graph.Cycle{}
}
