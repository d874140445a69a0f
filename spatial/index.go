package spatial

import (
	"github.com/kyroy/kdtree"
	"github.com/kyroy/kdtree/points"

	"github.com/jbraet/perionav/geom"
	"github.com/jbraet/perionav/graphstore"
)

// Index is a 2-D k-d tree over a graph's node coordinates, each point
// carrying the node's index as its payload so a nearest lookup resolves
// straight back to a graphstore node index.
type Index struct {
	tree  *kdtree.KDTree
	empty bool
}

// Build indexes every node in g by (Lat, Lon). Call it once, after the
// graph has been pruned to its routable subgraph and frozen — mutating
// the graph after building would leave the tree pointing at stale indices.
func Build(g *graphstore.Graph) *Index {
	n := g.NrNodes()
	pts := make([]kdtree.Point, 0, n)
	for i := 0; i < n; i++ {
		node, _ := g.Node(i)
		pts = append(pts, &points.Point2D{X: node.Lat, Y: node.Lon, Data: i})
	}
	return &Index{tree: kdtree.New(pts), empty: n == 0}
}

// Nearest returns the node index closest to p, or false if the index was
// built from an empty graph.
func (ix *Index) Nearest(p geom.LatLon) (int, bool) {
	if ix.empty {
		return 0, false
	}
	nearest := ix.tree.KNN(&points.Point2D{X: p.Lat, Y: p.Lon}, 1)
	if len(nearest) == 0 {
		return 0, false
	}
	return nearest[0].(*points.Point2D).Data.(int), true
}
