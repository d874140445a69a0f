package routepath

import (
	"fmt"
	"strings"

	"github.com/jbraet/perionav/graphstore"
)

// Path is an ordered, contiguous sequence of directed edges: for every
// consecutive pair, edges[i].AdjNode must equal edges[i+1].BaseNode. This
// mirrors original_source's path.rs, whose every mutating method re-checks
// the same invariant.
type Path struct {
	edges []graphstore.DirectedEdge
}

// New builds a Path from edges, panicking if they aren't contiguous.
func New(edges []graphstore.DirectedEdge) *Path {
	checkEdgesValid(edges, -1, false)
	return &Path{edges: append([]graphstore.DirectedEdge(nil), edges...)}
}

// AddEdge appends a single edge, panicking if it doesn't continue the path.
func (p *Path) AddEdge(e graphstore.DirectedEdge) {
	if n := len(p.edges); n > 0 {
		last := p.edges[n-1].AdjNode
		if e.BaseNode != last {
			panic(fmt.Sprintf("routepath: edges aren't connected: last node %d doesn't match next base node %d", last, e.BaseNode))
		}
	}
	p.edges = append(p.edges, e)
}

// AddEdges appends a contiguous run of edges, panicking if the run itself
// isn't internally contiguous or doesn't continue the existing path.
func (p *Path) AddEdges(edges []graphstore.DirectedEdge) {
	lastNode := -1
	hasLast := false
	if n := len(p.edges); n > 0 {
		lastNode = p.edges[n-1].AdjNode
		hasLast = true
	}
	checkEdgesValid(edges, lastNode, hasLast)
	p.edges = append(p.edges, edges...)
}

func checkEdgesValid(edges []graphstore.DirectedEdge, lastNode int, hasLast bool) {
	for _, e := range edges {
		if hasLast && e.BaseNode != lastNode {
			panic(fmt.Sprintf("routepath: edges aren't connected: last node %d doesn't match next base node %d", lastNode, e.BaseNode))
		}
		lastNode = e.AdjNode
		hasLast = true
	}
}

// Nodes returns the node indices visited, base node first through the
// final adjacent node.
func (p *Path) Nodes() []int {
	if len(p.edges) == 0 {
		return nil
	}
	nodes := make([]int, 0, len(p.edges)+1)
	nodes = append(nodes, p.edges[0].BaseNode)
	for _, e := range p.edges {
		nodes = append(nodes, e.AdjNode)
	}
	return nodes
}

// WKT renders the path as a WKT LINESTRING, looking up each visited node's
// coordinates in g. Coordinates are lon then lat, WKT's axis order,
// formatted to 6 decimal places.
func (p *Path) WKT(g *graphstore.Graph) string {
	nodes := p.Nodes()
	coords := make([]string, 0, len(nodes))
	for _, idx := range nodes {
		n, ok := g.Node(idx)
		if !ok {
			panic(fmt.Sprintf("routepath: node index %d out of range", idx))
		}
		coords = append(coords, fmt.Sprintf("%.6f %.6f", n.Lon, n.Lat))
	}
	return fmt.Sprintf("LINESTRING(%s)", strings.Join(coords, ","))
}
