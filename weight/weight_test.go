package weight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbraet/perionav/graphstore"
	"github.com/jbraet/perionav/weight"
)

func TestDistance_Weight(t *testing.T) {
	e := graphstore.DirectedEdge{Distance: 42, Info: graphstore.DirectedInfo{Accessible: true, SpeedMPS: 7}}
	assert.Equal(t, 42.0, weight.Distance{}.Weight(e))
}

func TestTravelTime_Weight(t *testing.T) {
	e := graphstore.DirectedEdge{Distance: 100, Info: graphstore.DirectedInfo{Accessible: true, SpeedMPS: 10}}
	assert.Equal(t, 10.0, weight.TravelTime{}.Weight(e))
}

func TestTravelTime_ZeroSpeedIsInfinite(t *testing.T) {
	e := graphstore.DirectedEdge{Distance: 100, Info: graphstore.DirectedInfo{Accessible: true, SpeedMPS: 0}}
	assert.True(t, math.IsInf(weight.TravelTime{}.Weight(e), 1))
}
