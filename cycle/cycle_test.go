package cycle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanrabe/isocontour/contour"
	"github.com/yanrabe/isocontour/cycle"
	"github.com/yanrabe/isocontour/graph"
)

func circleField(width, height int, cx, cy, r float64) *contour.Field {
	scale := float64(width)
	if float64(height) > scale {
		scale = float64(height)
	}
	vals := make([]float64, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			fx, fy := float64(x)/scale, float64(y)/scale
			vals[x*height+y] = (fx-cx)*(fx-cx) + (fy-cy)*(fy-cy) - r*r
		}
	}
	return &contour.Field{Width: width, Height: height, Values: vals}
}

func twoCirclesField(width, height int) *contour.Field {
	vals := make([]float64, width*height)
	scale := float64(width)
	if float64(height) > scale {
		scale = float64(height)
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			fx, fy := float64(x)/scale, float64(y)/scale
			a := (fx-0.3)*(fx-0.3) + (fy-0.5)*(fy-0.5) - 0.1*0.1
			b := (fx-0.7)*(fx-0.7) + (fy-0.5)*(fy-0.5) - 0.1*0.1
			vals[x*height+y] = math.Min(a, b)
		}
	}
	return &contour.Field{Width: width, Height: height, Values: vals}
}

// TestDiscover_SingleCircle is spec.md §8 scenario 1: exactly one
// cycle, and its recorded length matches a full walk of next_edge.
func TestDiscover_SingleCircle(t *testing.T) {
	f := circleField(32, 32, 0.5, 0.5, 0.2)
	g, err := contour.Extract(f, contour.DefaultOptions())
	require.NoError(t, err)

	cycle.Discover(g, f.Width, f.Height)

	require.NoError(t, g.CheckInvariants())
	assert.Equal(t, 1, g.AliveCycles())

	// P4-shaped check: the single cycle's length covers every labeled edge.
	labeled := 0
	for _, c := range g.CycleIndex {
		if c != graph.NoCycle {
			labeled++
		}
	}
	assert.Equal(t, labeled, g.Cycles[0].Length)
}

// TestDiscover_TwoCircles is spec.md §8 scenario 2: two disjoint
// circles must discover exactly two cycles.
func TestDiscover_TwoCircles(t *testing.T) {
	f := twoCirclesField(64, 64)
	g, err := contour.Extract(f, contour.DefaultOptions())
	require.NoError(t, err)

	cycle.Discover(g, f.Width, f.Height)

	require.NoError(t, g.CheckInvariants())
	assert.Equal(t, 2, g.AliveCycles())
}

// TestDiscover_AllNegative is spec.md §8 scenario 4: zero cycles.
func TestDiscover_AllNegative(t *testing.T) {
	vals := make([]float64, 10*10)
	for i := range vals {
		vals[i] = -1
	}
	f := &contour.Field{Width: 10, Height: 10, Values: vals}
	g, err := contour.Extract(f, contour.DefaultOptions())
	require.NoError(t, err)

	cycle.Discover(g, f.Width, f.Height)
	assert.Equal(t, 0, g.AliveCycles())
	assert.Empty(t, g.Cycles)
}

// TestDiscover_SaddleTwoArcsNoSharedEdges is spec.md §8 scenario 3: a
// saddle cell's two arcs each close independently and share no edge.
func TestDiscover_SaddleTwoArcsNoSharedEdges(t *testing.T) {
	// A 4x4 field with a saddle at the center cell (1,1): diagonally
	// opposite positive corners at (1,1) and (2,2), negative at (1,2)
	// and (2,1), embedded in an otherwise negative field so the outer
	// boundary doesn't also produce contours.
	w, h := 4, 4
	vals := make([]float64, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			vals[x*h+y] = -1
		}
	}
	vals[1*h+1] = 1 // (1,1)
	vals[2*h+2] = 1 // (2,2)
	f := &contour.Field{Width: w, Height: h, Values: vals}

	g, err := contour.Extract(f, contour.DefaultOptions())
	require.NoError(t, err)
	cycle.Discover(g, f.Width, f.Height)

	require.NoError(t, g.CheckInvariants())
	assert.Equal(t, 2, g.AliveCycles())

	seen := map[int]bool{}
	for _, c := range g.Cycles {
		if c.IsTombstone() {
			continue
		}
		edge := c.Start
		for i := 0; i < c.Length; i++ {
			assert.False(t, seen[edge], "edge %d shared between cycles", edge)
			seen[edge] = true
			edge = g.Next[edge]
		}
	}
}

// TestFindSmallest_TieBreaksByID checks that equal-length cycles
// resolve to the lowest id, and that tombstones are skipped.
func TestFindSmallest_TieBreaksByID(t *testing.T) {
	cycles := []graph.Cycle{
		{Start: 0, Length: 0}, // tombstone
		{Start: 1, Length: 5},
		{Start: 2, Length: 5},
		{Start: 3, Length: 2},
	}
	assert.Equal(t, 3, cycle.FindSmallest(cycles))

	cycles[3] = graph.Cycle{} // tombstone it
	assert.Equal(t, 1, cycle.FindSmallest(cycles))
}

// TestMerge_TombstonesAndAccumulates checks Merge's bookkeeping.
func TestMerge_TombstonesAndAccumulates(t *testing.T) {
	cycles := []graph.Cycle{
		{Start: 10, Length: 3},
		{Start: 20, Length: 4},
	}
	cycle.Merge(cycles, 0, 1)
	assert.Equal(t, graph.Cycle{Start: 10, Length: 7}, cycles[0])
	assert.True(t, cycles[1].IsTombstone())
}
