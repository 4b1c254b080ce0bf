package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellgraph/core"
	"github.com/katalvlaran/cellgraph/metrics"
)

// lineGraph builds a path 0-1-…-(n-1) with unit spacing.
func lineGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(core.Point{float64(i), 0, 0})
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	return g
}

// twoTriangles builds two disjoint 3-cliques on nodes {0,1,2} and {3,4,5}.
func twoTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		g.AddNode(core.Point{float64(i), 0, 0})
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestCompute_InvalidInput(t *testing.T) {
	_, err := metrics.Compute(nil)
	assert.ErrorIs(t, err, metrics.ErrGraphNil)

	_, err = metrics.Compute(core.NewGraph())
	assert.ErrorIs(t, err, metrics.ErrEmptyGraph)
}

// TestCompute_PathOfFive pins the reference scenario: a connected 5-node
// path has radius 2, diameter 4, mean eccentricity (2+3+4+3+2)/5 = 2.8,
// mean degree (1+2+2+2+1)/5 = 1.6, and no triangles at all.
func TestCompute_PathOfFive(t *testing.T) {
	rec, err := metrics.Compute(lineGraph(t, 5))
	require.NoError(t, err)

	assert.True(t, rec.Connected)
	assert.Zero(t, rec.AverageClustering)
	assert.InDelta(t, 1.6, rec.MeanDegree, 1e-12)

	require.True(t, rec.MeanEccentricity.Defined)
	assert.InDelta(t, 2.8, rec.MeanEccentricity.Float64, 1e-12)
	require.True(t, rec.Radius.Defined)
	assert.InDelta(t, 2.0, rec.Radius.Float64, 1e-12)
	require.True(t, rec.Diameter.Defined)
	assert.InDelta(t, 4.0, rec.Diameter.Float64, 1e-12)
}

// TestCompute_TwoTriangles pins the disconnected scenario: clustering and
// degree stay defined, the distance metrics carry the undefined marker, and
// the warning hook fires exactly once.
func TestCompute_TwoTriangles(t *testing.T) {
	fired := 0
	var gotReached, gotTotal int
	rec, err := metrics.Compute(twoTriangles(t), metrics.WithOnDisconnected(func(reached, total int) {
		fired++
		gotReached, gotTotal = reached, total
	}))
	require.NoError(t, err)

	assert.False(t, rec.Connected)
	assert.InDelta(t, 1.0, rec.AverageClustering, 1e-12)
	assert.InDelta(t, 2.0, rec.MeanDegree, 1e-12)

	assert.False(t, rec.MeanEccentricity.Defined)
	assert.False(t, rec.Radius.Defined)
	assert.False(t, rec.Diameter.Defined)

	assert.Equal(t, 1, fired, "warning hook must fire exactly once")
	assert.Equal(t, 3, gotReached)
	assert.Equal(t, 6, gotTotal)
}

func TestCompute_SingleNodeConvention(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(core.Point{})

	rec, err := metrics.Compute(g)
	require.NoError(t, err)

	assert.True(t, rec.Connected)
	assert.Zero(t, rec.AverageClustering)
	assert.Zero(t, rec.MeanDegree)
	require.True(t, rec.Radius.Defined)
	assert.Zero(t, rec.Radius.Float64)
	require.True(t, rec.Diameter.Defined)
	assert.Zero(t, rec.Diameter.Float64)
	require.True(t, rec.MeanEccentricity.Defined)
	assert.Zero(t, rec.MeanEccentricity.Float64)
}

func TestCompute_TriangleClustering(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddNode(core.Point{float64(i), 0, 0})
	}
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))

	rec, err := metrics.Compute(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rec.AverageClustering, 1e-12)
	assert.InDelta(t, 2.0, rec.MeanDegree, 1e-12)
	assert.InDelta(t, 1.0, rec.Diameter.Float64, 1e-12)
	assert.InDelta(t, 1.0, rec.Radius.Float64, 1e-12)
}

// TestCompute_RadiusAtMostDiameter spot-checks the ordering invariant on a
// few connected shapes.
func TestCompute_RadiusAtMostDiameter(t *testing.T) {
	shapes := map[string]*core.Graph{
		"path7": lineGraph(t, 7),
		"path2": lineGraph(t, 2),
	}

	// a 6-cycle: every eccentricity is 3
	cycle := lineGraph(t, 6)
	require.NoError(t, cycle.AddEdge(5, 0))
	shapes["cycle6"] = cycle

	for name, g := range shapes {
		rec, err := metrics.Compute(g)
		require.NoError(t, err, name)
		require.True(t, rec.Connected, name)
		assert.LessOrEqual(t, rec.Radius.Float64, rec.Diameter.Float64, name)
	}

	rec, err := metrics.Compute(shapes["cycle6"])
	require.NoError(t, err)
	assert.InDelta(t, 3.0, rec.Radius.Float64, 1e-12)
	assert.InDelta(t, 3.0, rec.Diameter.Float64, 1e-12)
	assert.InDelta(t, 3.0, rec.MeanEccentricity.Float64, 1e-12)
}

func TestRecord_AsMapShape(t *testing.T) {
	rec, err := metrics.Compute(twoTriangles(t))
	require.NoError(t, err)

	m := rec.AsMap()
	require.Len(t, m, 5, "exactly the five named metrics")

	assert.True(t, m[metrics.MetricAverageClustering].Defined)
	assert.True(t, m[metrics.MetricAvgDegree].Defined)
	assert.False(t, m[metrics.MetricEccentricityMean].Defined)
	assert.False(t, m[metrics.MetricRadius].Defined)
	assert.False(t, m[metrics.MetricDiameter].Defined)
	assert.InDelta(t, 2.0, m[metrics.MetricAvgDegree].Float64, 1e-12)
}
