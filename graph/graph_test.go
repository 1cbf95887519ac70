package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanrabe/isocontour/graph"
)

// TestNewGraph_Dimensions verifies rejection of non-positive dimensions
// and the edge-count formula for a handful of small grids.
func TestNewGraph_Dimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		wantEdges     int
		wantErr       error
	}{
		{"ZeroWidth", 0, 4, 0, graph.ErrInvalidDimensions},
		{"ZeroHeight", 4, 0, 0, graph.ErrInvalidDimensions},
		{"Negative", -1, 4, 0, graph.ErrInvalidDimensions},
		{"2x2", 2, 2, 2*3 + 2*3 - 1, nil},
		{"3x4", 3, 4, 4*4 + 3*5 - 1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graph.NewGraph(tc.width, tc.height)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantEdges, g.EdgeCount())
			assert.Equal(t, tc.wantEdges, len(g.Points))
			assert.Equal(t, tc.wantEdges, len(g.Next))
			assert.Equal(t, tc.wantEdges, len(g.Prev))
			assert.Equal(t, tc.wantEdges, len(g.CycleIndex))
		})
	}
}

// TestNewGraph_SlotsUnset checks that every slot starts unset: Next/Prev
// are NoEdge, CycleIndex is NoCycle, and Points are unset.
func TestNewGraph_SlotsUnset(t *testing.T) {
	g, err := graph.NewGraph(4, 3)
	require.NoError(t, err)

	for i := 0; i < g.EdgeCount(); i++ {
		assert.Equal(t, graph.NoEdge, g.Next[i])
		assert.Equal(t, graph.NoEdge, g.Prev[i])
		assert.Equal(t, graph.NoCycle, g.CycleIndex[i])
		assert.False(t, g.Points[i].IsSet())
	}
	assert.Equal(t, 0, g.AliveCycles())
}

// TestCheckInvariants_EmptyGraph verifies an empty, freshly built graph
// trivially satisfies P1–P3.
func TestCheckInvariants_EmptyGraph(t *testing.T) {
	g, err := graph.NewGraph(5, 5)
	require.NoError(t, err)
	assert.NoError(t, g.CheckInvariants())
}

// TestCheckInvariants_SingleTriangleCycle builds a minimal 3-edge cycle by
// hand and checks it passes P1–P2.
func TestCheckInvariants_SingleTriangleCycle(t *testing.T) {
	g, err := graph.NewGraph(2, 2)
	require.NoError(t, err)

	// Wire edges 0 -> 1 -> 2 -> 0 as a single cycle.
	g.Next[0], g.Prev[1] = 1, 0
	g.Next[1], g.Prev[2] = 2, 1
	g.Next[2], g.Prev[0] = 0, 2
	g.CycleIndex[0], g.CycleIndex[1], g.CycleIndex[2] = 0, 0, 0
	g.Cycles = []graph.Cycle{{Start: 0, Length: 3}}

	assert.NoError(t, g.CheckInvariants())
	assert.Equal(t, 1, g.AliveCycles())
}

// TestCheckInvariants_BrokenPairing ensures a corrupted Prev pointer is
// caught by CheckInvariants (P1).
func TestCheckInvariants_BrokenPairing(t *testing.T) {
	g, err := graph.NewGraph(2, 2)
	require.NoError(t, err)

	g.Next[0] = 1
	g.Prev[1] = 0
	g.CycleIndex[0] = 0
	g.CycleIndex[1] = 0
	// Next[1] left at NoEdge with CycleIndex set -> violates P3.

	assert.Error(t, g.CheckInvariants())
}

// TestCycle_IsTombstone confirms the zero-length sentinel left behind by
// a merge reads as a tombstone.
func TestCycle_IsTombstone(t *testing.T) {
	assert.True(t, graph.Cycle{Start: 0, Length: 0}.IsTombstone())
	assert.False(t, graph.Cycle{Start: 0, Length: 1}.IsTombstone())
}
