package geom

// Node is a graph vertex's geographic identity. It is immutable once
// inserted into a graphstore.Graph: ID is the stable external (OSM)
// identifier, Lat/Lon are in degrees. The node's position within a Graph's
// dense index space is assigned at insertion time and is not stored here.
type Node struct {
	ID  int64
	Lat float64
	Lon float64
}

// LatLon is a bare geographic point, used for query coordinates that have
// no graph node of their own yet (the caller's "from"/"to" in a route
// request), which is also what spatial.Index.Nearest takes as its query.
type LatLon struct {
	Lat float64
	Lon float64
}

// Of returns n's position as a LatLon, discarding its ID.
func (n Node) Of() LatLon {
	return LatLon{Lat: n.Lat, Lon: n.Lon}
}
