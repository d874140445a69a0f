package components

import "github.com/jbraet/perionav/graphstore"

// Kosaraju implements Kosaraju's algorithm: an iterative forward DFS that
// records vertices in post-order, then a second pass over that order in
// reverse, using reverse adjacency to gather one component per
// not-yet-assigned root.
//
// The original source this engine was distilled from left Kosaraju
// unimplemented (a TODO stub returning an empty partition); this is a
// fresh implementation of the textbook two-pass algorithm spec §4.3
// describes, following the same iterative-explicit-stack technique
// PathBased and Tarjan already use in this package.
type Kosaraju struct{}

type kosarajuPhase int

const (
	kosarajuVisitForward kosarajuPhase = iota
	kosarajuPostOrder
)

type kosarajuFrame struct {
	node  int
	phase kosarajuPhase
}

// Components returns the strongly-connected partition of g.
func (Kosaraju) Components(g *graphstore.Graph) []map[int]struct{} {
	n := g.NrNodes()
	visited := make([]bool, n)
	order := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		work := []kosarajuFrame{{node: start, phase: kosarajuVisitForward}}
		for len(work) > 0 {
			f := work[len(work)-1]
			work = work[:len(work)-1]

			switch f.phase {
			case kosarajuVisitForward:
				if visited[f.node] {
					continue
				}
				visited[f.node] = true
				work = append(work, kosarajuFrame{node: f.node, phase: kosarajuPostOrder})

				var neighbors []int
				g.ForEachNeighbor(f.node, false, func(adj int) {
					neighbors = append(neighbors, adj)
				})
				for _, adj := range neighbors {
					if !visited[adj] {
						work = append(work, kosarajuFrame{node: adj, phase: kosarajuVisitForward})
					}
				}

			case kosarajuPostOrder:
				order = append(order, f.node)
			}
		}
	}

	assigned := make([]bool, n)
	var components []map[int]struct{}

	for i := len(order) - 1; i >= 0; i-- {
		root := order[i]
		if assigned[root] {
			continue
		}

		component := make(map[int]struct{})
		assigned[root] = true
		expand := []int{root}
		for len(expand) > 0 {
			v := expand[len(expand)-1]
			expand = expand[:len(expand)-1]
			component[v] = struct{}{}

			var predecessors []int
			g.ForEachNeighbor(v, true, func(adj int) {
				predecessors = append(predecessors, adj)
			})
			for _, adj := range predecessors {
				if !assigned[adj] {
					assigned[adj] = true
					expand = append(expand, adj)
				}
			}
		}

		components = append(components, component)
	}

	return components
}
