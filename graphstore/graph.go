package graphstore

import (
	"fmt"
	"sort"

	"github.com/jbraet/perionav/geom"
)

// adjEntry is one adjacency slot: a shared *Edge plus a flag saying
// whether traversing through this slot should read the edge's Backward
// direction instead of its Forward direction. Both fwd and rev ultimately
// point at the same small set of flags; see AddEdge.
type adjEntry struct {
	edge        *Edge
	useBackward bool
}

// Graph is the directed graph store described in spec §3/§4.1: a dense
// node array plus forward/reverse adjacency keyed by node index.
//
// Graph is built by a single writer (AddNode/AddEdge/KeepNodes); once
// construction is done it is read-only and safe to share across
// goroutines. Nothing in this type enforces that boundary at runtime —
// see doc.go — the caller's build-then-freeze discipline is the contract.
type Graph struct {
	nodes []geom.Node
	fwd   []map[int]adjEntry
	rev   []map[int]adjEntry
}

// New returns an empty Graph, presized for nrNodes insertions to avoid
// repeated slice growth; nrNodes is a hint, not a hard limit.
func New(nrNodes int) *Graph {
	if nrNodes < 0 {
		nrNodes = 0
	}
	return &Graph{
		nodes: make([]geom.Node, 0, nrNodes),
		fwd:   make([]map[int]adjEntry, 0, nrNodes),
		rev:   make([]map[int]adjEntry, 0, nrNodes),
	}
}

// AddNode appends n and returns its dense index.
func (g *Graph) AddNode(n geom.Node) int {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.fwd = append(g.fwd, nil)
	g.rev = append(g.rev, nil)
	return idx
}

// AddEdge records e between base and adj. base and adj must already be
// valid node indices — passing an out-of-range index is a programming
// error and panics, per spec §4.1's failure semantics.
//
// A forward-accessible edge (e.Forward.Accessible) is inserted so that
// traveling base→adj is possible; a backward-accessible edge is inserted
// symmetrically for adj→base. Re-adding the same ordered (base, adj) pair
// overwrites the previous entry for that direction.
func (g *Graph) AddEdge(base, adj int, e *Edge) {
	g.mustValidIndex(base)
	g.mustValidIndex(adj)

	if e.Forward.Accessible {
		g.insert(g.fwd, base, adj, adjEntry{edge: e, useBackward: false})
		g.insert(g.rev, adj, base, adjEntry{edge: e, useBackward: false})
	}
	if e.Backward.Accessible {
		g.insert(g.fwd, adj, base, adjEntry{edge: e, useBackward: true})
		g.insert(g.rev, base, adj, adjEntry{edge: e, useBackward: true})
	}
}

func (g *Graph) insert(adjacency []map[int]adjEntry, from, to int, entry adjEntry) {
	if adjacency[from] == nil {
		adjacency[from] = make(map[int]adjEntry)
	}
	adjacency[from][to] = entry
}

func (g *Graph) mustValidIndex(i int) {
	if i < 0 || i >= len(g.nodes) {
		panic(fmt.Sprintf("graphstore: node index %d out of range [0, %d)", i, len(g.nodes)))
	}
}

// ForEachNeighbor invokes f for every neighbor of base. With reverse
// false, neighbors are successors (edges base can traverse forward);
// with reverse true, neighbors are predecessors. Iteration order is
// unspecified but stable for a given Graph state, per spec §4.1.
func (g *Graph) ForEachNeighbor(base int, reverse bool, f func(adj int)) {
	adjacency := g.fwd
	if reverse {
		adjacency = g.rev
	}
	if base < 0 || base >= len(adjacency) {
		return
	}
	adjs := make([]int, 0, len(adjacency[base]))
	for adj := range adjacency[base] {
		adjs = append(adjs, adj)
	}
	sort.Ints(adjs)
	for _, adj := range adjs {
		f(adj)
	}
}

// DirectedEdgeInfo returns the directed view of the edge actually
// traveled when moving from base toward adj (reverse false), or the edge
// actually traveled when moving from adj toward base (reverse true,
// i.e. the physical direction opposite the lookup's own base/adj
// naming — this is what bidirectional search's backward half needs: it
// discovers adj as a predecessor of base and wants the cost of the real
// adj→base step). ok is false when no such edge exists.
func (g *Graph) DirectedEdgeInfo(base, adj int, reverse bool) (DirectedEdge, bool) {
	if !reverse {
		entry, ok := g.lookup(g.fwd, base, adj)
		if !ok {
			return DirectedEdge{}, false
		}
		return DirectedEdge{BaseNode: base, AdjNode: adj, Info: g.direction(entry), Distance: entry.edge.Distance}, true
	}

	entry, ok := g.lookup(g.rev, base, adj)
	if !ok {
		return DirectedEdge{}, false
	}
	return DirectedEdge{BaseNode: adj, AdjNode: base, Info: g.direction(entry), Distance: entry.edge.Distance}, true
}

func (g *Graph) lookup(adjacency []map[int]adjEntry, from, to int) (adjEntry, bool) {
	if from < 0 || from >= len(adjacency) || adjacency[from] == nil {
		return adjEntry{}, false
	}
	entry, ok := adjacency[from][to]
	return entry, ok
}

func (g *Graph) direction(entry adjEntry) DirectedInfo {
	if entry.useBackward {
		return entry.edge.Backward
	}
	return entry.edge.Forward
}

// Node returns the node at index i, or false if i is out of range.
func (g *Graph) Node(i int) (geom.Node, bool) {
	if i < 0 || i >= len(g.nodes) {
		return geom.Node{}, false
	}
	return g.nodes[i], true
}

// NrNodes returns the number of nodes currently in the graph.
func (g *Graph) NrNodes() int { return len(g.nodes) }

// NrEdges returns the sum of forward fan-outs across all nodes.
func (g *Graph) NrEdges() int {
	n := 0
	for _, m := range g.fwd {
		n += len(m)
	}
	return n
}

// KeepNodes retains exactly the nodes whose current index is in keep,
// reindexing them to a contiguous [0, len(keep)) range in ascending order
// of their old index, and rewrites every adjacency entry to the new
// index space, dropping entries whose endpoint left keep.
//
// After KeepNodes, NrNodes() == len(keep) and no adjacency entry
// references a dropped node. Applying KeepNodes a second time with the
// surviving node set (now {0, ..., len(keep)-1}) is a no-op, per spec §8.
func (g *Graph) KeepNodes(keep map[int]struct{}) {
	oldToNew := make(map[int]int, len(keep))
	newNodes := make([]geom.Node, 0, len(keep))
	for oldIdx, n := range g.nodes {
		if _, ok := keep[oldIdx]; !ok {
			continue
		}
		oldToNew[oldIdx] = len(newNodes)
		newNodes = append(newNodes, n)
	}

	newFwd := make([]map[int]adjEntry, len(newNodes))
	newRev := make([]map[int]adjEntry, len(newNodes))
	for oldIdx, newIdx := range oldToNew {
		newFwd[newIdx] = remapAdjacency(g.fwd, oldIdx, oldToNew)
		newRev[newIdx] = remapAdjacency(g.rev, oldIdx, oldToNew)
	}

	g.nodes = newNodes
	g.fwd = newFwd
	g.rev = newRev
}

func remapAdjacency(adjacency []map[int]adjEntry, oldIdx int, oldToNew map[int]int) map[int]adjEntry {
	if oldIdx >= len(adjacency) || adjacency[oldIdx] == nil {
		return nil
	}
	remapped := make(map[int]adjEntry, len(adjacency[oldIdx]))
	for oldAdj, entry := range adjacency[oldIdx] {
		if newAdj, ok := oldToNew[oldAdj]; ok {
			remapped[newAdj] = entry
		}
	}
	if len(remapped) == 0 {
		return nil
	}
	return remapped
}

// Freeze documents the build→freeze lifecycle boundary spec §5 requires:
// it performs no action, but calling it marks in code the point after
// which a Graph must not be mutated again. Router.New calls it once,
// after KeepNodes, before handing the Graph to the spatial index.
func (g *Graph) Freeze() {}
