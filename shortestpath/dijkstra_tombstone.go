package shortestpath

import (
	"container/heap"

	"github.com/jbraet/perionav/graphstore"
	"github.com/jbraet/perionav/routepath"
	"github.com/jbraet/perionav/weight"
)

// DijkstraTombstone computes the same result as Dijkstra using eager
// deletion instead: a node has at most one live arena entry at a time,
// and relaxation marks the superseded entry deleted rather than letting
// a better candidate merely outrank it in best-weight bookkeeping. It is
// usually slower than Dijkstra (tombstoning costs a map write on every
// improvement) and exists as a reference implementation to cross-check
// Dijkstra and Bidirectional against.
func DijkstraTombstone(g *graphstore.Graph, wc weight.Calculator, start, end int, opts ...Option) (*Result, bool) {
	mustValidIndex(g, start)
	mustValidIndex(g, end)
	cfg := newConfig(opts)

	if start == end {
		return zeroResult(cfg), true
	}

	arena := []heapEntry{{weight: 0, distance: 0, node: start, parent: -1}}
	h := &indexHeap{arena: &arena, order: []int{0}}
	heap.Init(h)

	live := map[int]int{start: 0}
	endIdx := -1

	for h.Len() > 0 {
		top := heap.Pop(h).(int)
		if arena[top].deleted {
			continue
		}
		e := arena[top]
		if e.node == end {
			endIdx = top
			break
		}

		g.ForEachNeighbor(e.node, false, func(adj int) {
			de, ok := g.DirectedEdgeInfo(e.node, adj, false)
			if !ok {
				return
			}
			w := wc.Weight(de)
			mustNotNaN(w)
			candidate := e.weight + w

			liveIdx, exists := live[adj]
			if exists && candidate >= arena[liveIdx].weight {
				return
			}
			if exists {
				arena[liveIdx].deleted = true
			}
			arena = append(arena, heapEntry{
				weight: candidate, distance: e.distance + de.Distance,
				node: adj, parent: top, edge: de,
			})
			idx := len(arena) - 1
			live[adj] = idx
			heap.Push(h, idx)
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
