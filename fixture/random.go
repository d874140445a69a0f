package fixture

import (
	"math/rand"

	"github.com/jbraet/perionav/geom"
	"github.com/jbraet/perionav/graphstore"
)

// RandomGraph returns a graph of n nodes and approximately m random
// directed edges, deterministic for a given seed. Nodes are scattered
// over a small lat/lon box so spatial.Build has something realistic to
// index. Edges may be one-way or bidirectional and carry a random
// positive distance and speed, so both weight.Distance and
// weight.TravelTime produce varied, non-degenerate results.
//
// This is intentionally plain math/rand rather than a pulled-in
// dependency: generating m (node, node) pairs and two floats per edge is
// a dozen lines, and gonum (already wired in for this module's test-side
// numeric tolerance checks) has no graph-generation helper that fits a
// directed, partially-connected routing graph — see DESIGN.md.
func RandomGraph(n, m int, seed int64) *graphstore.Graph {
	rng := rand.New(rand.NewSource(seed))

	g := graphstore.New(n)
	for i := 0; i < n; i++ {
		lat := 50.0 + rng.Float64()
		lon := 3.0 + rng.Float64()
		g.AddNode(geom.Node{ID: int64(i), Lat: lat, Lon: lon})
	}

	for e := 0; e < m; e++ {
		base := rng.Intn(n)
		adj := rng.Intn(n)
		if base == adj {
			continue
		}
		distance := 1 + rng.Float64()*1000
		speed := 1 + rng.Float64()*30
		bidirectional := rng.Float64() < 0.5

		forward := graphstore.DirectedInfo{Accessible: true, SpeedMPS: speed}
		backward := graphstore.DirectedInfo{Accessible: bidirectional, SpeedMPS: speed}
		g.AddEdge(base, adj, graphstore.NewEdge(distance, forward, backward))
	}

	return g
}
