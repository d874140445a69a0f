package shortestpath

import (
	"fmt"
	"math"

	"github.com/jbraet/perionav/graphstore"
)

func mustValidIndex(g *graphstore.Graph, idx int) {
	if idx < 0 || idx >= g.NrNodes() {
		panic(fmt.Sprintf("shortestpath: node index %d out of range [0, %d)", idx, g.NrNodes()))
	}
}

func mustNotNaN(w float64) {
	if math.IsNaN(w) {
		panic("shortestpath: weight calculator returned NaN")
	}
}
