package shortestpath

import (
	"container/heap"
	"math"

	"github.com/jbraet/perionav/graphstore"
	"github.com/jbraet/perionav/routepath"
	"github.com/jbraet/perionav/weight"
)

// direction holds one side's search state: its own arena, heap, a map
// from node to the arena index of its best-known entry, a settled set, and the index of
// the entry last popped off its heap (used for the termination check and
// as the "current" entry while relaxing).
type direction struct {
	arena   []heapEntry
	h       *indexHeap
	dist    map[int]int
	settled map[int]bool
	topIdx  int
	endNode int
	reverse bool
}

func newDirection(startNode, endNode int, reverse bool) *direction {
	d := &direction{
		dist:    map[int]int{startNode: 0},
		settled: make(map[int]bool),
		endNode: endNode,
		reverse: reverse,
		arena:   []heapEntry{{weight: 0, distance: 0, node: startNode, parent: -1}},
	}
	d.h = &indexHeap{arena: &d.arena, order: []int{0}}
	heap.Init(d.h)
	return d
}

func (d *direction) topWeight() float64 {
	return d.arena[d.topIdx].weight
}

type meetPoint struct {
	weight   float64
	distance float64
	fwdIdx   int
	bwdIdx   int
}

// Bidirectional runs a forward search from start and a backward search
// from end (over reverse adjacency) simultaneously, stopping once no
// further relaxation on either side could beat the best meeting
// candidate found so far, per spec §4.4's termination rule
// forwardTop.weight + backwardTop.weight >= best.weight.
func Bidirectional(g *graphstore.Graph, wc weight.Calculator, start, end int, opts ...Option) (*Result, bool) {
	mustValidIndex(g, start)
	mustValidIndex(g, end)
	cfg := newConfig(opts)

	if start == end {
		return zeroResult(cfg), true
	}

	fwd := newDirection(start, end, false)
	bwd := newDirection(end, start, true)
	best := meetPoint{weight: math.Inf(1), fwdIdx: -1, bwdIdx: -1}

	finishedFwd, finishedBwd := false, false
	for !finishedFwd && !finishedBwd && fwd.topWeight()+bwd.topWeight() < best.weight {
		finishedFwd = fillEdges(g, wc, fwd, bwd, &best)
		finishedBwd = fillEdges(g, wc, bwd, fwd, &best)
	}

	if math.IsInf(best.weight, 1) {
		return nil, false
	}

	result := &Result{Distance: best.distance, Weight: best.weight}
	if cfg.withPath {
		result.Path = extractPath(g, fwd, bwd, best, start, end)
	}
	return result, true
}

// fillEdges pops at most one real (non-stale) entry off d's heap and
// relaxes its outgoing edges, updating best with any new meeting
// candidate through a neighbor already settled on the other side. It
// returns true once d's own search has reached its end node or run out
// of heap — mirroring bidirdijkstra.rs's single-iteration-then-return
// shape rather than looping until one real pop happens internally.
func fillEdges(g *graphstore.Graph, wc weight.Calculator, d, other *direction, best *meetPoint) bool {
	for d.h.Len() > 0 && !d.settled[d.endNode] {
		top := heap.Pop(d.h).(int)
		e := d.arena[top]
		if d.settled[e.node] {
			continue
		}
		d.settled[e.node] = true
		d.topIdx = top
		if e.node == d.endNode {
			return true
		}

		g.ForEachNeighbor(e.node, d.reverse, func(adj int) {
			if d.settled[adj] {
				return
			}
			de, ok := g.DirectedEdgeInfo(e.node, adj, d.reverse)
			if !ok {
				return
			}
			w := wc.Weight(de)
			mustNotNaN(w)

			candidateWeight := e.weight + w
			candidateDistance := e.distance + de.Distance

			if bestSoFar, ok := d.dist[adj]; !ok || candidateWeight < d.arena[bestSoFar].weight {
				d.arena = append(d.arena, heapEntry{
					weight: candidateWeight, distance: candidateDistance,
					node: adj, parent: top, edge: de,
				})
				idx := len(d.arena) - 1
				d.dist[adj] = idx
				heap.Push(d.h, idx)
			}

			if otherIdx, ok := other.dist[adj]; ok && other.settled[adj] {
				total := candidateWeight + other.arena[otherIdx].weight
				if total < best.weight {
					best.weight = total
					best.distance = candidateDistance + other.arena[otherIdx].distance
					if !d.reverse {
						best.fwdIdx, best.bwdIdx = top, otherIdx
					} else {
						best.fwdIdx, best.bwdIdx = otherIdx, top
					}
				}
			}
		})
		return false
	}
	return true
}

func extractPath(g *graphstore.Graph, fwd, bwd *direction, best meetPoint, start, end int) *routepath.Path {
	fwdEdges, fwdLastNode := []graphstore.DirectedEdge(nil), start
	if best.fwdIdx != -1 {
		fwdEdges = buildPath(fwd.arena, best.fwdIdx, true)
		fwdLastNode = fwd.arena[best.fwdIdx].node
	}

	bwdEdges, bwdFirstNode := []graphstore.DirectedEdge(nil), end
	if best.bwdIdx != -1 {
		bwdEdges = buildPath(bwd.arena, best.bwdIdx, false)
		bwdFirstNode = bwd.arena[best.bwdIdx].node
	}

	path := routepath.New(fwdEdges)
	if fwdLastNode != bwdFirstNode {
		if de, ok := g.DirectedEdgeInfo(fwdLastNode, bwdFirstNode, false); ok {
			path.AddEdge(de)
		}
	}
	path.AddEdges(bwdEdges)
	return path
}
