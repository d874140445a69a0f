package components

import "github.com/jbraet/perionav/graphstore"

// PathBased implements the path-based strong component algorithm
// (https://en.wikipedia.org/wiki/Path-based_strong_component_algorithm),
// iteratively: an explicit work stack carries, per vertex, whether it is
// being entered for the first time or revisited after all of its
// children have been explored — the {Enter, Exit} phases of the
// recursive formulation, encoded as a boolean on the stack frame rather
// than a separate flag per vertex.
type PathBased struct{}

type pathBasedFrame struct {
	node           int
	visitNeighbors bool // true = Enter, false = Exit
}

// Components returns the strongly-connected partition of g.
func (PathBased) Components(g *graphstore.Graph) []map[int]struct{} {
	n := g.NrNodes()
	preorderNumber := 0
	preorderAssigned := make([]bool, n)
	preorderNumbers := make([]int, n)
	isInComponent := make([]bool, n)
	var components []map[int]struct{}

	for start := 0; start < n; start++ {
		if isInComponent[start] {
			continue
		}

		// S (current component candidates, in DFS preorder) and P
		// (candidate component roots).
		var sStack, pStack []int
		work := []pathBasedFrame{{node: start, visitNeighbors: true}}

		for len(work) > 0 {
			f := work[len(work)-1]
			work = work[:len(work)-1]
			current := f.node

			if f.visitNeighbors && !preorderAssigned[current] {
				preorderAssigned[current] = true
				preorderNumbers[current] = preorderNumber
				preorderNumber++

				sStack = append(sStack, current)
				pStack = append(pStack, current)

				work = append(work, pathBasedFrame{node: current, visitNeighbors: false})

				var neighbors []int
				g.ForEachNeighbor(current, false, func(adj int) {
					neighbors = append(neighbors, adj)
				})
				for _, adj := range neighbors {
					if preorderAssigned[adj] {
						if !isInComponent[adj] {
							adjPreorder := preorderNumbers[adj]
							for len(pStack) > 0 && preorderNumbers[pStack[len(pStack)-1]] > adjPreorder {
								pStack = pStack[:len(pStack)-1]
							}
						}
					} else {
						work = append(work, pathBasedFrame{node: adj, visitNeighbors: true})
					}
				}
			} else if len(pStack) > 0 && pStack[len(pStack)-1] == current {
				component := make(map[int]struct{})
				for len(sStack) > 0 {
					v := sStack[len(sStack)-1]
					sStack = sStack[:len(sStack)-1]
					component[v] = struct{}{}
					isInComponent[v] = true
					if v == current {
						break
					}
				}
				components = append(components, component)
				pStack = pStack[:len(pStack)-1]
			}
		}
	}

	return components
}
