// Package spatial answers nearest-node queries over a graphstore.Graph's
// node coordinates, backed by a 2-D k-d tree.
package spatial
