// Package geom holds the small geographic primitives shared by the rest of
// this module: a graph Node's identity and position, and a bare (lat, lon)
// pair for expressing a query point that isn't (yet) a graph node.
//
// Nothing here is mutable once constructed, and nothing here knows about
// graphs, edges, or routing — those live in graphstore and shortestpath.
// Distance calculations that need real geometry (polyline accumulation,
// nearest-node search) go through orb/geo and kdtree instead, in osmingest
// and spatial respectively.
package geom
