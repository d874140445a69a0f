package router_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbraet/perionav/components"
	"github.com/jbraet/perionav/fixture"
	"github.com/jbraet/perionav/geom"
	"github.com/jbraet/perionav/graphstore"
	"github.com/jbraet/perionav/router"
	"github.com/jbraet/perionav/weight"
)

type fakeIngester struct {
	build   func() *graphstore.Graph
	openErr error
	readErr error
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (f *fakeIngester) Open(path string) (io.Closer, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return nopCloser{}, nil
}

func (f *fakeIngester) ReadGraph() (*graphstore.Graph, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.build(), nil
}

func TestNew_OpenErrorPropagates(t *testing.T) {
	ing := &fakeIngester{openErr: errors.New("file not found")}
	_, err := router.New(ing, "missing.osm.pbf")
	assert.Error(t, err)
}

func TestNew_ReadGraphErrorPropagates(t *testing.T) {
	ing := &fakeIngester{readErr: errors.New("malformed header")}
	_, err := router.New(ing, "bad.osm.pbf")
	assert.Error(t, err)
}

func TestNew_SucceedsOnPartiallyConnectedGraph(t *testing.T) {
	ing := &fakeIngester{build: fixture.PartiallyConnectedSCC}
	r, err := router.New(ing, "fixture.osm.pbf", router.WithComponentsAlgorithm(components.Tarjan{}))
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestRoute_EmptyGraphReturnsFalse(t *testing.T) {
	ing := &fakeIngester{build: func() *graphstore.Graph { return graphstore.New(0) }}
	r, err := router.New(ing, "empty.osm.pbf")
	require.NoError(t, err)

	_, ok := r.Route(geom.LatLon{Lat: 1, Lon: 1}, geom.LatLon{Lat: 2, Lon: 2})
	assert.False(t, ok)
}

func TestRoute_FindsPathOnSquare(t *testing.T) {
	ing := &fakeIngester{build: func() *graphstore.Graph {
		g := graphstore.New(4)
		coords := []geom.Node{
			{ID: 0, Lat: 0, Lon: 0},
			{ID: 1, Lat: 0, Lon: 1},
			{ID: 2, Lat: 1, Lon: 1},
			{ID: 3, Lat: 1, Lon: 0},
		}
		for _, n := range coords {
			g.AddNode(n)
		}
		info := graphstore.DirectedInfo{Accessible: true, SpeedMPS: 1}
		g.AddEdge(0, 1, graphstore.NewEdge(1, info, info))
		g.AddEdge(1, 2, graphstore.NewEdge(1, info, info))
		g.AddEdge(2, 3, graphstore.NewEdge(1, info, info))
		g.AddEdge(3, 0, graphstore.NewEdge(1, info, info))
		return g
	}}
	r, err := router.New(ing, "square.osm.pbf", router.WithWeightCalculator(weight.Distance{}))
	require.NoError(t, err)

	res, ok := r.Route(geom.LatLon{Lat: 0, Lon: 0}, geom.LatLon{Lat: 1, Lon: 1})
	require.True(t, ok)
	assert.Equal(t, 2.0, res.Weight)
	require.NotNil(t, res.Path)

	wkt := r.WKT(res.Path)
	assert.Contains(t, wkt, "LINESTRING(")
}
