// Package graphstore provides the directed graph store the routing engine
// is built on: a dense array of Nodes, forward and reverse adjacency keyed
// by node index, and the two operations that move a graph through its
// lifecycle — AddNode/AddEdge during ingestion, KeepNodes exactly once
// afterward to prune to a routable subgraph.
//
// A Graph owns all of its Nodes. Edge records are shared between the
// forward entry of their base node and the reverse entry of their
// adjacent node — do not assume a *Edge returned from one direction is
// unreachable from the other.
//
// Graph is not safe for concurrent mutation; construction (AddNode,
// AddEdge, KeepNodes) must complete before any query-side reads begin.
// Once built, concurrent reads from multiple goroutines are safe, since
// nothing below this line mutates shared state.
package graphstore
