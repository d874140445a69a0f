package shortestpath

import (
	"container/heap"

	"github.com/jbraet/perionav/graphstore"
	"github.com/jbraet/perionav/routepath"
	"github.com/jbraet/perionav/weight"
)

// Dijkstra computes the shortest weighted path from start to end using
// lazy deletion: stale heap entries for an already-settled node are
// simply skipped on pop rather than removed from the heap up front.
func Dijkstra(g *graphstore.Graph, wc weight.Calculator, start, end int, opts ...Option) (*Result, bool) {
	mustValidIndex(g, start)
	mustValidIndex(g, end)
	cfg := newConfig(opts)

	if start == end {
		return zeroResult(cfg), true
	}

	arena := []heapEntry{{weight: 0, distance: 0, node: start, parent: -1}}
	h := &indexHeap{arena: &arena, order: []int{0}}
	heap.Init(h)

	settled := make(map[int]bool)
	best := map[int]float64{start: 0}
	endIdx := -1

	for h.Len() > 0 {
		top := heap.Pop(h).(int)
		e := arena[top]
		if settled[e.node] {
			continue
		}
		settled[e.node] = true
		if e.node == end {
			endIdx = top
			break
		}

		g.ForEachNeighbor(e.node, false, func(adj int) {
			if settled[adj] {
				return
			}
			de, ok := g.DirectedEdgeInfo(e.node, adj, false)
			if !ok {
				return
			}
			w := wc.Weight(de)
			mustNotNaN(w)

			candidate := e.weight + w
			if bestSoFar, ok := best[adj]; !ok || candidate < bestSoFar {
				best[adj] = candidate
				arena = append(arena, heapEntry{
					weight: candidate, distance: e.distance + de.Distance,
					node: adj, parent: top, edge: de,
				})
				heap.Push(h, len(arena)-1)
			}
		})
	}

	if endIdx == -1 {
		return nil, false
	}

	result := &Result{Distance: arena[endIdx].distance, Weight: arena[endIdx].weight}
	if cfg.withPath {
		result.Path = routepath.New(buildPath(arena, endIdx, true))
	}
	return result, true
}

func zeroResult(cfg config) *Result {
	r := &Result{Distance: 0, Weight: 0}
	if cfg.withPath {
		r.Path = routepath.New(nil)
	}
	return r
}
