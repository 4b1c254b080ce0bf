package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellgraph/core"
)

func TestAddNode_AssignsDenseIDs(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.AddNode(core.Point{0, 0, 0}))
	assert.Equal(t, 1, g.AddNode(core.Point{1, 0, 0}))
	assert.Equal(t, 2, g.AddNode(core.Point{2, 0, 0}))
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, []int{0, 1, 2}, g.NodeIDs())
}

func TestPosition_RoundTripAndMissing(t *testing.T) {
	g := core.NewGraph()
	want := core.Point{1.5, -2.0, 3.25}
	id := g.AddNode(want)

	got, err := g.Position(id)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = g.Position(7)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Position(-1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestNewGraphFrom_OneNodePerPoint(t *testing.T) {
	ps := core.PointSet{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}
	g := core.NewGraphFrom(ps)
	require.Equal(t, ps.Len(), g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	for i, p := range ps {
		got, err := g.Position(i)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestAddEdge_RejectsSelfLoopAndMissingNodes(t *testing.T) {
	g := core.NewGraphFrom(core.PointSet{{0, 0, 0}, {1, 0, 0}})

	assert.ErrorIs(t, g.AddEdge(0, 0), core.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge(0, 5), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge(-1, 1), core.ErrNodeNotFound)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_SetSemantics(t *testing.T) {
	g := core.NewGraphFrom(core.PointSet{{0, 0, 0}, {1, 0, 0}})

	require.NoError(t, g.AddEdge(0, 1))
	// duplicate inserts from either endpoint are silent no-ops
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0), "undirected edge must be visible from both endpoints")
}

func TestNeighborIDs_SortedAndIndependent(t *testing.T) {
	g := core.NewGraphFrom(core.PointSet{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}})
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(1, 2))

	nbrs, err := g.NeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, nbrs)

	// mutating the returned slice must not affect the graph
	nbrs[0] = 99
	again, err := g.NeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, again)

	_, err = g.NeighborIDs(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestDegreeAndEdges_Deterministic(t *testing.T) {
	g := core.NewGraphFrom(core.PointSet{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(2, 1))

	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	assert.Equal(t, [][2]int{{0, 2}, {1, 2}}, g.Edges())
}

func TestClone_DeepCopy(t *testing.T) {
	g := core.NewGraphFrom(core.PointSet{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	require.NoError(t, g.AddEdge(0, 1))

	c := g.Clone()
	require.Equal(t, g.NodeCount(), c.NodeCount())
	require.Equal(t, g.EdgeCount(), c.EdgeCount())

	// grow the clone; the original must not observe it
	c.AddNode(core.Point{9, 9, 9})
	require.NoError(t, c.AddEdge(1, 2))

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge(1, 2))
	assert.True(t, c.HasEdge(1, 2))
}

func TestPoint_Distances(t *testing.T) {
	p := core.Point{0, 0, 0}
	q := core.Point{3, 4, 0}
	assert.InDelta(t, 25.0, p.SquaredDistanceTo(q), 1e-12)
	assert.InDelta(t, 5.0, p.DistanceTo(q), 1e-12)
	assert.InDelta(t, 5.0, q.DistanceTo(p), 1e-12)
	assert.Zero(t, p.DistanceTo(p))
}
