package router

import (
	"fmt"
	"io"

	"github.com/jbraet/perionav/components"
	"github.com/jbraet/perionav/geom"
	"github.com/jbraet/perionav/graphstore"
	"github.com/jbraet/perionav/routepath"
	"github.com/jbraet/perionav/shortestpath"
	"github.com/jbraet/perionav/spatial"
	"github.com/jbraet/perionav/weight"
)

// Ingester produces a routable graph from an external source. Open and
// ReadGraph errors are ordinary Go errors (tier 3 of the error model:
// construction can fail on bad input, unlike the query path's
// panic-on-programming-error / absent-result-on-unreachable split).
type Ingester interface {
	Open(path string) (io.Closer, error)
	ReadGraph() (*graphstore.Graph, error)
}

// Option configures Router construction.
type Option func(*options)

type options struct {
	componentsAlgorithm components.Algorithm
	weightCalculator     weight.Calculator
}

func defaultOptions() options {
	return options{
		componentsAlgorithm: components.Tarjan{},
		weightCalculator:    weight.Distance{},
	}
}

// WithComponentsAlgorithm overrides the SCC algorithm used to find the
// routable subgraph during New (default components.Tarjan{}).
func WithComponentsAlgorithm(a components.Algorithm) Option {
	return func(o *options) { o.componentsAlgorithm = a }
}

// WithWeightCalculator overrides the weight.Calculator Route uses
// (default weight.Distance{}).
func WithWeightCalculator(wc weight.Calculator) Option {
	return func(o *options) { o.weightCalculator = wc }
}

// Router serves shortest-path queries between geographic coordinates
// over a graph reduced to its single largest strongly-connected
// component, so every query endpoint is guaranteed reachable from every
// other.
type Router struct {
	graph  *graphstore.Graph
	index  *spatial.Index
	weight weight.Calculator
}

// New opens path via ingester, reads the full graph, prunes it to its
// largest strongly-connected subgraph, freezes the graph, and builds a
// spatial index over the result. Ingester failures are returned as
// errors rather than panicking.
func New(ingester Ingester, path string, opts ...Option) (*Router, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	closer, err := ingester.Open(path)
	if err != nil {
		return nil, fmt.Errorf("router: opening %q: %w", path, err)
	}
	defer closer.Close()

	g, err := ingester.ReadGraph()
	if err != nil {
		return nil, fmt.Errorf("router: reading graph from %q: %w", path, err)
	}

	parts := o.componentsAlgorithm.Components(g)
	g.KeepNodes(components.Largest(parts))
	g.Freeze()

	return &Router{
		graph:  g,
		index:  spatial.Build(g),
		weight: o.weightCalculator,
	}, nil
}

// Route finds the node nearest each coordinate and runs a bidirectional
// shortest-path search between them. It returns (nil, false) if either
// coordinate has no nearest node (an empty graph) or no route exists
// between the two resolved endpoints.
func (r *Router) Route(from, to geom.LatLon) (*shortestpath.Result, bool) {
	fromNode, ok := r.index.Nearest(from)
	if !ok {
		return nil, false
	}
	toNode, ok := r.index.Nearest(to)
	if !ok {
		return nil, false
	}
	return shortestpath.Bidirectional(r.graph, r.weight, fromNode, toNode, shortestpath.WithPath())
}

// WKT renders p as a WKT LINESTRING using this Router's graph for
// coordinate lookups.
func (r *Router) WKT(p *routepath.Path) string {
	return p.WKT(r.graph)
}
