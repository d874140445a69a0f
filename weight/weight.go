// Package weight maps a directed edge view to a scalar traversal cost.
//
// Calculator is the pluggable seam shortestpath's search loops take so
// the same graph can be routed by physical distance or by travel time
// without touching the search code. Both implementations here are
// zero-size value types so passing a weight.Calculator around costs
// nothing beyond an interface word.
package weight

import (
	"math"

	"github.com/jbraet/perionav/graphstore"
)

// Calculator computes the traversal cost of a single directed edge.
type Calculator interface {
	Weight(e graphstore.DirectedEdge) float64
}

// Distance weighs every edge by its physical length in meters.
type Distance struct{}

// Weight returns e.Distance.
func (Distance) Weight(e graphstore.DirectedEdge) float64 {
	return e.Distance
}

// TravelTime weighs every edge by distance/speed, in seconds. An edge
// whose directional speed is 0 is reported as +Inf — effectively
// unusable, per spec §4.2 — rather than dividing by zero.
type TravelTime struct{}

// Weight returns e.Distance / e.Info.SpeedMPS, or +Inf when the speed is
// non-positive.
func (TravelTime) Weight(e graphstore.DirectedEdge) float64 {
	if e.Info.SpeedMPS > 0 {
		return e.Distance / e.Info.SpeedMPS
	}
	return math.Inf(1)
}
