// Package components computes strongly-connected components of a
// graphstore.Graph via three interchangeable algorithms — PathBased,
// Tarjan, and Kosaraju — that are required to agree on every input: the
// same partition of [0, NrNodes()) into maximal mutually-reachable sets,
// up to set/list ordering.
//
// PathBased and Tarjan are iterative, carrying their own explicit work
// stack instead of recursing, because OSM-derived graphs are routinely
// deep enough to blow a goroutine's default stack if walked recursively.
// Kosaraju is iterative by construction (two linear DFS passes).
//
// All three run in O(V + E) time and O(V) auxiliary memory.
package components
