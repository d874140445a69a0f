package graphstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbraet/perionav/geom"
	"github.com/jbraet/perionav/graphstore"
)

func fwdOnly(distance float64) *graphstore.Edge {
	return graphstore.NewEdge(distance,
		graphstore.DirectedInfo{Accessible: true, SpeedMPS: 10},
		graphstore.DirectedInfo{Accessible: false},
	)
}

func bothWays(distance float64) *graphstore.Edge {
	return graphstore.NewEdge(distance,
		graphstore.DirectedInfo{Accessible: true, SpeedMPS: 10},
		graphstore.DirectedInfo{Accessible: true, SpeedMPS: 8},
	)
}

func TestNewEdge_NegativeDistancePanics(t *testing.T) {
	assert.Panics(t, func() {
		graphstore.NewEdge(-1, graphstore.DirectedInfo{Accessible: true}, graphstore.DirectedInfo{})
	})
}

func TestNewEdge_NegativeSpeedPanics(t *testing.T) {
	assert.Panics(t, func() {
		graphstore.NewEdge(1, graphstore.DirectedInfo{Accessible: true, SpeedMPS: -1}, graphstore.DirectedInfo{})
	})
}

func TestAddEdge_OutOfRangeIndexPanics(t *testing.T) {
	g := graphstore.New(2)
	g.AddNode(geom.Node{})
	g.AddNode(geom.Node{})

	assert.Panics(t, func() {
		g.AddEdge(0, 5, fwdOnly(1))
	})
}

func TestForwardOnlyEdge_OneDirection(t *testing.T) {
	g := graphstore.New(2)
	a := g.AddNode(geom.Node{})
	b := g.AddNode(geom.Node{})
	g.AddEdge(a, b, fwdOnly(1))

	var fwd []int
	g.ForEachNeighbor(a, false, func(adj int) { fwd = append(fwd, adj) })
	assert.Equal(t, []int{b}, fwd)

	var none []int
	g.ForEachNeighbor(b, false, func(adj int) { none = append(none, adj) })
	assert.Empty(t, none)

	var pred []int
	g.ForEachNeighbor(b, true, func(adj int) { pred = append(pred, adj) })
	assert.Equal(t, []int{a}, pred)
}

func TestBidirectionalEdge_BothDirections(t *testing.T) {
	g := graphstore.New(2)
	a := g.AddNode(geom.Node{})
	b := g.AddNode(geom.Node{})
	g.AddEdge(a, b, bothWays(5))

	info, ok := g.DirectedEdgeInfo(a, b, false)
	require.True(t, ok)
	assert.Equal(t, 10.0, info.Info.SpeedMPS)
	assert.Equal(t, a, info.BaseNode)
	assert.Equal(t, b, info.AdjNode)

	info, ok = g.DirectedEdgeInfo(b, a, false)
	require.True(t, ok)
	assert.Equal(t, 8.0, info.Info.SpeedMPS)

	// Reverse lookup from b toward predecessor a describes the real a→b step.
	info, ok = g.DirectedEdgeInfo(b, a, true)
	require.True(t, ok)
	assert.Equal(t, a, info.BaseNode)
	assert.Equal(t, b, info.AdjNode)
	assert.Equal(t, 10.0, info.Info.SpeedMPS)
}

func TestDirectedEdgeInfo_Absent(t *testing.T) {
	g := graphstore.New(2)
	a := g.AddNode(geom.Node{})
	b := g.AddNode(geom.Node{})

	_, ok := g.DirectedEdgeInfo(a, b, false)
	assert.False(t, ok)
}

func TestNrNodesNrEdges(t *testing.T) {
	g := graphstore.New(3)
	a := g.AddNode(geom.Node{})
	b := g.AddNode(geom.Node{})
	c := g.AddNode(geom.Node{})
	g.AddEdge(a, b, fwdOnly(1))
	g.AddEdge(b, c, bothWays(1))

	assert.Equal(t, 3, g.NrNodes())
	assert.Equal(t, 3, g.NrEdges()) // a->b, b->c, c->b
}

// scenario matches spec §8 scenario 6: a partially-connected 8-node graph
// used to exercise KeepNodes against a known subset.
func buildKeepNodesScenario(t *testing.T) *graphstore.Graph {
	t.Helper()
	g := graphstore.New(8)
	for i := 0; i < 8; i++ {
		g.AddNode(geom.Node{ID: int64(i)})
	}
	g.AddEdge(0, 1, fwdOnly(1))
	g.AddEdge(1, 2, fwdOnly(1))
	g.AddEdge(2, 0, fwdOnly(1))
	g.AddEdge(3, 1, fwdOnly(1))
	g.AddEdge(3, 2, fwdOnly(1))
	g.AddEdge(3, 4, bothWays(1))
	g.AddEdge(4, 5, fwdOnly(1))
	g.AddEdge(5, 2, fwdOnly(1))
	g.AddEdge(5, 6, bothWays(1))
	g.AddEdge(7, 4, fwdOnly(1))
	g.AddEdge(7, 6, fwdOnly(1))
	return g
}

func TestKeepNodes_ReindexesAndDrops(t *testing.T) {
	g := graphstore.New(8)
	for i := 0; i < 8; i++ {
		g.AddNode(geom.Node{ID: int64(i)})
	}
	g.AddEdge(0, 1, fwdOnly(1))
	g.AddEdge(1, 2, fwdOnly(1))
	g.AddEdge(2, 0, fwdOnly(1))
	g.AddEdge(3, 1, fwdOnly(1))
	g.AddEdge(3, 2, fwdOnly(1))

	g.KeepNodes(map[int]struct{}{0: {}, 1: {}, 2: {}})

	require.Equal(t, 3, g.NrNodes())

	var adj []int
	g.ForEachNeighbor(0, false, func(a int) { adj = append(adj, a) })
	assert.Equal(t, []int{1}, adj)

	adj = nil
	g.ForEachNeighbor(1, false, func(a int) { adj = append(adj, a) })
	assert.Equal(t, []int{2}, adj)

	adj = nil
	g.ForEachNeighbor(2, false, func(a int) { adj = append(adj, a) })
	assert.Equal(t, []int{0}, adj)

	adj = nil
	g.ForEachNeighbor(0, true, func(a int) { adj = append(adj, a) })
	assert.Equal(t, []int{2}, adj)
}

func TestKeepNodes_Idempotent(t *testing.T) {
	g := buildKeepNodesScenario(t)
	keep := map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}}
	g.KeepNodes(keep)
	require.Equal(t, 4, g.NrNodes())

	firstEdges := g.NrEdges()

	// Re-applying KeepNodes with the now-surviving node set must be a no-op.
	all := make(map[int]struct{}, g.NrNodes())
	for i := 0; i < g.NrNodes(); i++ {
		all[i] = struct{}{}
	}
	g.KeepNodes(all)

	assert.Equal(t, 4, g.NrNodes())
	assert.Equal(t, firstEdges, g.NrEdges())
}

func TestKeepNodes_NoAdjacencyReferencesDroppedNode(t *testing.T) {
	g := buildKeepNodesScenario(t)
	keep := map[int]struct{}{0: {}, 1: {}, 2: {}}
	g.KeepNodes(keep)

	for i := 0; i < g.NrNodes(); i++ {
		g.ForEachNeighbor(i, false, func(adj int) {
			assert.True(t, adj >= 0 && adj < g.NrNodes(), "adjacency referenced out-of-range node %d", adj)
		})
		g.ForEachNeighbor(i, true, func(adj int) {
			assert.True(t, adj >= 0 && adj < g.NrNodes(), "adjacency referenced out-of-range node %d", adj)
		})
	}
}

// TestKeepNodes_InducedSubgraphPreservesReachability checks that
// KeepNodes doesn't just reindex and drop references, but leaves every
// kept edge's endpoints reachable exactly as they were before pruning —
// an induced subgraph, not an arbitrary edge subset.
func TestKeepNodes_InducedSubgraphPreservesReachability(t *testing.T) {
	g := buildKeepNodesScenario(t)

	before := make(map[[2]int64]bool)
	for i := 0; i < g.NrNodes(); i++ {
		iNode, _ := g.Node(i)
		g.ForEachNeighbor(i, false, func(adj int) {
			adjNode, _ := g.Node(adj)
			before[[2]int64{iNode.ID, adjNode.ID}] = true
		})
	}

	keep := map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}}
	keptIDs := map[int64]bool{0: true, 1: true, 2: true, 3: true}
	g.KeepNodes(keep)

	after := make(map[[2]int64]bool)
	for i := 0; i < g.NrNodes(); i++ {
		iNode, _ := g.Node(i)
		g.ForEachNeighbor(i, false, func(adj int) {
			adjNode, _ := g.Node(adj)
			after[[2]int64{iNode.ID, adjNode.ID}] = true
		})
	}

	expected := make(map[[2]int64]bool)
	for pair, ok := range before {
		if ok && keptIDs[pair[0]] && keptIDs[pair[1]] {
			expected[pair] = true
		}
	}
	assert.Equal(t, expected, after)
}
