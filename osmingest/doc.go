// Package osmingest implements router.Ingester against .osm.pbf extracts:
// it classifies nodes as tower (intersection or way endpoint) or shape
// (intermediate polyline geometry), builds one graphstore edge per
// drivable road segment between consecutive tower nodes, and derives
// directional car accessibility from a narrow OSM tag table. It is
// domain-specific plumbing, not part of the routing core.
package osmingest
