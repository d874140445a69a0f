// Package shortestpath computes shortest paths over a graphstore.Graph
// under a pluggable weight.Calculator, in three variants that must agree
// on weight for every reachable (start, end) pair: Dijkstra (lazy
// deletion via a seen-set), DijkstraTombstone (eager deletion via
// tombstoned heap entries, kept as a correctness cross-check reference),
// and Bidirectional (simultaneous forward/backward search).
//
// Each query allocates its own arena of heap entries; parent links are
// arena indices rather than shared pointers, so a query's memory is
// reclaimed in one step when the arena slice goes out of scope.
package shortestpath
