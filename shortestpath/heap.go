package shortestpath

import "github.com/jbraet/perionav/graphstore"

// heapEntry is one node in a query's arena: a settled-or-candidate weight
// to reach node, the physical distance accumulated to get there, and a
// parent link expressed as an arena index (-1 for the root) rather than a
// shared pointer — the whole arena is discarded together once the query
// returns, so there is nothing to reference-count.
type heapEntry struct {
	weight   float64
	distance float64
	node     int
	parent   int
	edge     graphstore.DirectedEdge
	deleted  bool // only meaningful for the tombstone variant
}

// indexHeap is a container/heap.Interface over indices into an arena,
// ordered by ascending weight — the same index-heap idiom the teacher's
// own Dijkstra uses (graph/algorithms/dijkstra.go's nodePQ), adapted to
// order arena slots instead of holding values directly.
type indexHeap struct {
	arena *[]heapEntry
	order []int
}

func (h indexHeap) Len() int { return len(h.order) }
func (h indexHeap) Less(i, j int) bool {
	return (*h.arena)[h.order[i]].weight < (*h.arena)[h.order[j]].weight
}
func (h indexHeap) Swap(i, j int) { h.order[i], h.order[j] = h.order[j], h.order[i] }
func (h *indexHeap) Push(x interface{}) {
	h.order = append(h.order, x.(int))
}
func (h *indexHeap) Pop() interface{} {
	old := h.order
	n := len(old)
	it := old[n-1]
	h.order = old[:n-1]
	return it
}

// buildPath walks idx's parent chain in the given arena, collecting the
// edge stored at each step. reverseOrder flips the walk-order (child to
// root) into chronological (root to child) order — forward-search arenas
// need the flip, backward-search arenas are already chronological by
// construction; see bidirectional.go.
func buildPath(arena []heapEntry, idx int, reverseOrder bool) []graphstore.DirectedEdge {
	var edges []graphstore.DirectedEdge
	for cur := idx; arena[cur].parent != -1; cur = arena[cur].parent {
		edges = append(edges, arena[cur].edge)
	}
	if reverseOrder {
		for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
			edges[i], edges[j] = edges[j], edges[i]
		}
	}
	return edges
}
