package components

import "github.com/jbraet/perionav/graphstore"

// Tarjan implements Tarjan's strongly-connected-components algorithm
// iteratively. The recursive formulation's four logical phases —
// discover a vertex, handle one neighbor, fold a child's low-link back
// in after it returns, and pop a completed component — become four
// tagged stack-frame kinds below rather than one flag reused for
// everything, per spec §4.3/§9's iteration requirement.
type Tarjan struct{}

type tarjanNode struct {
	index   int
	lowLink int
	onStack bool
}

type tarjanFrameKind int

const (
	tarjanFindComponent tarjanFrameKind = iota
	tarjanHandleNeighbor
	tarjanUpdateLowLink
	tarjanBuildComponent
)

type tarjanFrame struct {
	kind tarjanFrameKind
	node int
	adj  int
}

// Components returns the strongly-connected partition of g.
func (Tarjan) Components(g *graphstore.Graph) []map[int]struct{} {
	n := g.NrNodes()
	nodes := make([]*tarjanNode, n)
	var vertexStack []int
	index := 0
	var components []map[int]struct{}

	discover := func(v int) {
		if nodes[v] == nil {
			nodes[v] = &tarjanNode{index: index, lowLink: index, onStack: true}
			index++
			vertexStack = append(vertexStack, v)
		}
	}

	strongConnect := func(start int) {
		work := []tarjanFrame{{kind: tarjanFindComponent, node: start}}

		for len(work) > 0 {
			f := work[len(work)-1]
			work = work[:len(work)-1]

			switch f.kind {
			case tarjanFindComponent:
				discover(f.node)
				work = append(work, tarjanFrame{kind: tarjanBuildComponent, node: f.node})

				var neighbors []int
				g.ForEachNeighbor(f.node, false, func(adj int) {
					neighbors = append(neighbors, adj)
				})
				for _, adj := range neighbors {
					work = append(work, tarjanFrame{kind: tarjanHandleNeighbor, node: f.node, adj: adj})
				}

			case tarjanHandleNeighbor:
				if w := nodes[f.adj]; w != nil {
					if w.onStack {
						v := nodes[f.node]
						if w.index < v.lowLink {
							v.lowLink = w.index
						}
					}
				} else {
					// Push UpdateLowLink first so it runs after the
					// recursive FindComponent on adj has fully unwound.
					work = append(work, tarjanFrame{kind: tarjanUpdateLowLink, node: f.node, adj: f.adj})
					work = append(work, tarjanFrame{kind: tarjanFindComponent, node: f.adj})
				}

			case tarjanUpdateLowLink:
				wLow := nodes[f.adj].lowLink
				v := nodes[f.node]
				if wLow < v.lowLink {
					v.lowLink = wLow
				}

			case tarjanBuildComponent:
				v := nodes[f.node]
				if v.lowLink == v.index {
					component := make(map[int]struct{})
					for len(vertexStack) > 0 {
						w := vertexStack[len(vertexStack)-1]
						vertexStack = vertexStack[:len(vertexStack)-1]
						nodes[w].onStack = false
						component[w] = struct{}{}
						if w == f.node {
							break
						}
					}
					components = append(components, component)
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if nodes[i] == nil {
			strongConnect(i)
		}
	}

	return components
}
