package graph

import "fmt"

// CheckInvariants verifies P1–P3 (spec.md §8) against the current
// state of g: pairing of Next/Prev, consistent labeling, and that every
// non-tombstone cycle's recorded length matches a closed walk from its
// start edge whose edges all carry that cycle's id (P2/P4's per-cycle
// half). It does not verify global P4 (exactly one surviving cycle)
// since that only holds once stitching has completed — callers check
// that separately via AliveCycles.
//
// Intended for tests, not the hot path: O(E + sum of cycle lengths).
func (g *Graph) CheckInvariants() error {
	for i, next := range g.Next {
		if next == NoEdge {
			if g.CycleIndex[i] != NoCycle {
				return fmt.Errorf("graph: edge %d has no next but cycle_index %d (P3)", i, g.CycleIndex[i])
			}
			continue
		}
		if g.CycleIndex[i] == NoCycle {
			return fmt.Errorf("graph: edge %d has next %d but no cycle_index (P3)", i, next)
		}
		if g.Prev[next] != i {
			return fmt.Errorf("graph: prev[next[%d]]=%d, want %d (P1)", i, g.Prev[next], i)
		}
		if g.Prev[i] == NoEdge {
			return fmt.Errorf("graph: edge %d has next %d but no prev (P1)", i, next)
		}
		if g.Next[g.Prev[i]] != i {
			return fmt.Errorf("graph: next[prev[%d]]=%d, want %d (P1)", i, g.Next[g.Prev[i]], i)
		}
	}

	for k, c := range g.Cycles {
		if c.IsTombstone() {
			continue
		}
		edge := c.Start
		for step := 0; step < c.Length; step++ {
			if g.CycleIndex[edge] != k {
				return fmt.Errorf("graph: cycle %d edge %d has cycle_index %d (P2)", k, edge, g.CycleIndex[edge])
			}
			edge = g.Next[edge]
		}
		if edge != c.Start {
			return fmt.Errorf("graph: cycle %d does not close after %d steps (P2)", k, c.Length)
		}
	}

	return nil
}
