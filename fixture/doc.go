// Package fixture builds small, literal in-memory graphstore.Graph values
// for tests and benchmarks across this module. It does no I/O and knows
// nothing about OSM — see osmingest for the real ingester.
//
// The named builders (Line, Square, TwoIslands, K3, Complex7,
// PartiallyConnectedSCC) are the six scenarios spec.md §8 states literally;
// RandomGraph generates the larger graphs the cross-algorithm property
// tests need. This mirrors the role gonum's graph/graphs/gen package plays
// for gonum's own algorithm tests: synthetic graphs purpose-built to
// exercise an algorithm's contract, not to model anything real.
package fixture
