// Package router wires the core pieces — an Ingester, components,
// weight, graphstore, and spatial — into a single ready-to-query
// Router: ingest, reduce to the largest strongly-connected subgraph,
// index it spatially, and serve coordinate-to-coordinate route queries.
package router
