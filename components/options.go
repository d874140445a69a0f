package components

import "github.com/jbraet/perionav/graphstore"

// Algorithm computes the strongly-connected-component partition of a
// graph: disjoint node-index sets whose union is exactly [0, NrNodes()).
type Algorithm interface {
	Components(g *graphstore.Graph) []map[int]struct{}
}

// Largest returns the set with the most members, ties broken by the
// smallest minimum node index it contains — a concrete, deterministic
// resolution of spec §4.6's "ties broken by any deterministic rule".
// Largest(nil) returns an empty, non-nil set.
func Largest(parts []map[int]struct{}) map[int]struct{} {
	if len(parts) == 0 {
		return map[int]struct{}{}
	}

	best := parts[0]
	bestMin := minIndex(best)
	for _, p := range parts[1:] {
		pMin := minIndex(p)
		if len(p) > len(best) || (len(p) == len(best) && pMin < bestMin) {
			best = p
			bestMin = pMin
		}
	}
	return best
}

func minIndex(s map[int]struct{}) int {
	min := 0
	first := true
	for k := range s {
		if first || k < min {
			min = k
			first = false
		}
	}
	return min
}
