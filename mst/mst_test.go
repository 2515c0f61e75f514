package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ostankov/graphion/core"
	"github.com/ostankov/graphion/mst"
	"github.com/ostankov/graphion/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDiamond constructs the documented reference graph:
// vertices {A,B,C,D}, undirected weighted edges
// (A,B,1), (B,C,2), (A,C,4), (C,D,1).
// Its unique MST is [(A,B,1), (C,D,1), (B,C,2)] with total weight 4.
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(core.WithWeighted())
	for _, v := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("C", "D", 1))

	return g
}

// buildRandomConnected creates a connected weighted graph with n vertices
// and extra random edges on top of a guaranteed chain, seeded for
// reproducibility.
func buildRandomConnected(t *testing.T, n, extra int, seed int64) *core.Graph {
	t.Helper()
	g := core.New(core.WithWeighted())
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}

	r := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(
			fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), 1+int64(r.Intn(10))))
	}
	for i := 0; i < extra; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue // keep loops out of the fixture; loop handling has its own test
		}
		require.NoError(t, g.AddEdge(
			fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), 1+int64(r.Intn(100))))
	}

	return g
}

func TestKruskal_Diamond(t *testing.T) {
	g := buildDiamond(t)

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Weight)
	require.Len(t, res.Edges, 3)
	assert.True(t, res.Spans(g.VertexCount()))

	// Selection order is fixed: the two weight-1 edges in insertion order,
	// then B—C(2). A—C(4) closes a cycle and is rejected.
	assert.Equal(t, core.Edge{From: "A", To: "B", Weight: 1}, res.Edges[0])
	assert.Equal(t, core.Edge{From: "C", To: "D", Weight: 1}, res.Edges[1])
	assert.Equal(t, core.Edge{From: "B", To: "C", Weight: 2}, res.Edges[2])
}

func TestPrim_Diamond(t *testing.T) {
	g := buildDiamond(t)

	res, err := mst.Prim(g, mst.WithRoot("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Weight)
	assert.Len(t, res.Edges, 3)
	assert.True(t, res.Spans(g.VertexCount()))
}

func TestKruskal_NilAndDirected(t *testing.T) {
	_, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrGraphNil)

	_, err = mst.Kruskal(core.New(core.WithDirected(), core.WithWeighted()))
	assert.ErrorIs(t, err, mst.ErrNotUndirected)
}

func TestPrim_NilDirectedEmpty(t *testing.T) {
	_, err := mst.Prim(nil)
	assert.ErrorIs(t, err, mst.ErrGraphNil)

	_, err = mst.Prim(core.New(core.WithDirected(), core.WithWeighted()))
	assert.ErrorIs(t, err, mst.ErrNotUndirected)

	// An empty vertex set leaves Prim with nothing to grow from.
	_, err = mst.Prim(core.New(core.WithWeighted()))
	assert.ErrorIs(t, err, mst.ErrEmptyGraph)
}

func TestPrim_UnknownRoot(t *testing.T) {
	g := buildDiamond(t)
	_, err := mst.Prim(g, mst.WithRoot("Z"))
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestKruskal_TrivialGraphs(t *testing.T) {
	// Zero vertices: empty result, weight 0, no error.
	res, err := mst.Kruskal(core.New(core.WithWeighted()))
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.Weight)

	// One vertex: same.
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddVertex("X"))
	res, err = mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.Weight)
}

func TestPrim_SingleVertex(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddVertex("X"))

	res, err := mst.Prim(g)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.Weight)
	assert.True(t, res.Spans(1))
}

func TestKruskal_DisconnectedYieldsForest(t *testing.T) {
	// Two components: A—B—C (chain) and D—E.
	g := core.New(core.WithWeighted())
	for _, v := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 9)) // cycle edge, must be dropped
	require.NoError(t, g.AddEdge("D", "E", 5))

	res, err := mst.Kruskal(g)
	require.NoError(t, err)

	// |V| - #components = 5 - 2 = 3 edges, weight summed over both trees.
	assert.Len(t, res.Edges, 3)
	assert.Equal(t, int64(8), res.Weight)
	assert.False(t, res.Spans(g.VertexCount()))
	assert.Equal(t, 2, res.Trees(g.VertexCount()))
}

func TestPrim_DisconnectedCoversRootComponentOnly(t *testing.T) {
	g := core.New(core.WithWeighted())
	for _, v := range []string{"A", "B", "D", "E"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("D", "E", 5))

	res, err := mst.Prim(g, mst.WithRoot("A"))
	require.NoError(t, err)

	// Only A's component is reached; partial coverage is visible in the
	// result rather than reported as an error.
	assert.Len(t, res.Edges, 1)
	assert.Equal(t, int64(1), res.Weight)
	assert.False(t, res.Spans(g.VertexCount()))
}

func TestMST_SelfLoopsNeverSelected(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "A", 0)) // tempting weight, still a loop
	require.NoError(t, g.AddEdge("A", "B", 3))

	resK, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, resK.Edges, 1)
	assert.Equal(t, "B", resK.Edges[0].To)

	resP, err := mst.Prim(g, mst.WithRoot("A"))
	require.NoError(t, err)
	require.Len(t, resP.Edges, 1)
	assert.Equal(t, int64(3), resP.Weight)
}

func TestMST_ParallelEdgesLightestWins(t *testing.T) {
	g := core.New(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "B", 1))

	resK, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, resK.Edges, 1)
	assert.Equal(t, int64(1), resK.Weight)

	resP, err := mst.Prim(g)
	require.NoError(t, err)
	require.Len(t, resP.Edges, 1)
	assert.Equal(t, int64(1), resP.Weight)
}

func TestKruskal_TieBreakByInsertionOrder(t *testing.T) {
	// Triangle with three equal-weight edges: exactly one must be dropped,
	// and the stable sort guarantees the two earliest-inserted survive.
	g := core.New(core.WithWeighted())
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("A", "B", 7))
	require.NoError(t, g.AddEdge("B", "C", 7))
	require.NoError(t, g.AddEdge("C", "A", 7))

	res, err := mst.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, res.Edges, 2)
	assert.Equal(t, core.Edge{From: "A", To: "B", Weight: 7}, res.Edges[0])
	assert.Equal(t, core.Edge{From: "B", To: "C", Weight: 7}, res.Edges[1])
}

// TestMST_KruskalPrimAgreeOnWeight checks the uniqueness of the MST weight:
// whatever edges each algorithm picks, the totals must match on a connected
// graph.
func TestMST_KruskalPrimAgreeOnWeight(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := buildRandomConnected(t, 30, 60, seed)

		resK, err := mst.Kruskal(g)
		require.NoError(t, err)
		resP, err := mst.Prim(g)
		require.NoError(t, err)

		assert.Equal(t, resK.Weight, resP.Weight, "seed %d", seed)
		assert.Len(t, resK.Edges, g.VertexCount()-1, "seed %d", seed)
		assert.Len(t, resP.Edges, g.VertexCount()-1, "seed %d", seed)
	}
}

// TestKruskal_ResultIsAcyclicAndSpanning replays the accepted edges through
// a fresh disjoint-set: every edge must merge two components (acyclic), and
// afterwards the component count must equal the number of trees.
func TestKruskal_ResultIsAcyclicAndSpanning(t *testing.T) {
	g := buildRandomConnected(t, 25, 50, 99)

	res, err := mst.Kruskal(g)
	require.NoError(t, err)

	check := unionfind.New(g.Vertices()...)
	for _, e := range res.Edges {
		assert.True(t, check.Union(e.From, e.To), "edge %v closes a cycle", e)
	}
	assert.Equal(t, res.Trees(g.VertexCount()), check.Count())
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildDiamond(t)

	resK, err := mst.Compute(g)
	require.NoError(t, err)
	resP, err := mst.Compute(g, mst.WithAlgorithm(mst.AlgorithmPrim), mst.WithRoot("D"))
	require.NoError(t, err)
	assert.Equal(t, resK.Weight, resP.Weight)

	_, err = mst.Compute(g, mst.WithAlgorithm("boruvka"))
	assert.ErrorIs(t, err, mst.ErrUnknownAlgorithm)
}

func TestPrim_DeterministicSelection(t *testing.T) {
	g := buildRandomConnected(t, 20, 40, 7)

	first, err := mst.Prim(g)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := mst.Prim(g)
		require.NoError(t, err)
		assert.Equal(t, first.Edges, again.Edges)
	}
}
