package fixture

import (
	"github.com/jbraet/perionav/geom"
	"github.com/jbraet/perionav/graphstore"
)

func bidir(distance float64) *graphstore.Edge {
	info := graphstore.DirectedInfo{Accessible: true, SpeedMPS: 1}
	return graphstore.NewEdge(distance, info, info)
}

func oneway(distance float64) *graphstore.Edge {
	return graphstore.NewEdge(distance,
		graphstore.DirectedInfo{Accessible: true, SpeedMPS: 1},
		graphstore.DirectedInfo{Accessible: false},
	)
}

func withNodes(n int) *graphstore.Graph {
	g := graphstore.New(n)
	for i := 0; i < n; i++ {
		g.AddNode(geom.Node{ID: int64(i)})
	}
	return g
}

// Line returns the 2-node line graph from spec §8 scenario 1:
// nodes {0,1}, one bidirectional edge of distance 1.
func Line() *graphstore.Graph {
	g := withNodes(2)
	g.AddEdge(0, 1, bidir(1))
	return g
}

// Square returns the 4-node cycle from spec §8 scenario 2:
// 0-1-2-3-0, each edge bidirectional with distance 1.
func Square() *graphstore.Graph {
	g := withNodes(4)
	g.AddEdge(0, 1, bidir(1))
	g.AddEdge(1, 2, bidir(1))
	g.AddEdge(2, 3, bidir(1))
	g.AddEdge(3, 0, bidir(1))
	return g
}

// TwoIslands returns the disconnected 4-node graph from spec §8 scenario 3:
// two separate bidirectional edges, (0,1) and (2,3), each distance 1.
func TwoIslands() *graphstore.Graph {
	g := withNodes(4)
	g.AddEdge(0, 1, bidir(1))
	g.AddEdge(2, 3, bidir(1))
	return g
}

// K3 returns the 3-node complete graph from spec §8 scenario 4:
// all three edges bidirectional, distance 1.
func K3() *graphstore.Graph {
	g := withNodes(3)
	g.AddEdge(0, 1, bidir(1))
	g.AddEdge(0, 2, bidir(1))
	g.AddEdge(1, 2, bidir(1))
	return g
}

// Complex7 returns the 7-node graph from spec §8 scenario 5. route(3,6)
// must return weight 8.0 along path [3,1,4,0,6].
func Complex7() *graphstore.Graph {
	g := withNodes(7)
	g.AddEdge(0, 1, bidir(4))
	g.AddEdge(0, 4, bidir(2))
	g.AddEdge(0, 6, bidir(3))
	g.AddEdge(1, 4, bidir(1))
	g.AddEdge(1, 3, bidir(2))
	g.AddEdge(1, 2, bidir(3))
	g.AddEdge(2, 6, bidir(4))
	g.AddEdge(5, 4, bidir(4))
	g.AddEdge(5, 6, bidir(4))
	g.AddEdge(3, 4, bidir(5))
	return g
}

// PartiallyConnectedSCC returns the 8-node graph from spec §8 scenario 6:
// all edges one-way except the two marked bidirectional (3,4) and (5,6).
// Its strongly-connected components have sizes {1,2,2,3}.
func PartiallyConnectedSCC() *graphstore.Graph {
	g := withNodes(8)
	g.AddEdge(0, 1, oneway(1))
	g.AddEdge(1, 2, oneway(1))
	g.AddEdge(2, 0, oneway(1))
	g.AddEdge(3, 1, oneway(1))
	g.AddEdge(3, 2, oneway(1))
	g.AddEdge(3, 4, bidir(1))
	g.AddEdge(4, 5, oneway(1))
	g.AddEdge(5, 2, oneway(1))
	g.AddEdge(5, 6, bidir(1))
	g.AddEdge(7, 4, oneway(1))
	g.AddEdge(7, 6, oneway(1))
	return g
}
