package osmingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/jbraet/perionav/geom"
	"github.com/jbraet/perionav/graphstore"
)

// nodeType mirrors osm_reader.rs's NodeType: a tower node is an
// intersection or way endpoint and becomes a graph node; a shape node is
// an intermediate polyline point whose coordinates still contribute to
// an edge's accumulated distance.
type nodeType int

const (
	shapeNode nodeType = iota
	towerNode
)

// Reader implements router.Ingester against a single .osm.pbf file.
type Reader struct {
	path string
}

// Open validates that path exists and is readable, returning the open
// file as the io.Closer the caller is responsible for closing. ReadGraph
// reopens the file itself for each of its own scanning passes, so this
// handle is purely an existence/permission check.
func (r *Reader) Open(path string) (io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osmingest: opening %q: %w", path, err)
	}
	r.path = path
	return f, nil
}

// ReadGraph runs three scanning passes over the file:
// categorize node types and way permissions, cache the coordinates of
// every node a drivable way references, then build the graph.
func (r *Reader) ReadGraph() (*graphstore.Graph, error) {
	wayPermissions, nodeTypes, referenced, err := r.categorizeWays()
	if err != nil {
		return nil, err
	}

	locations, err := r.cacheLocations(referenced)
	if err != nil {
		return nil, err
	}

	return r.buildGraph(wayPermissions, nodeTypes, locations)
}

func (r *Reader) scan(f func(obj osm.Object) error) error {
	file, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("osmingest: opening %q: %w", r.path, err)
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(0))
	defer scanner.Close()

	for scanner.Scan() {
		if err := f(scanner.Object()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

type wayPermission struct {
	forward, backward bool
	highway            string
}

// categorizeWays scans every Way once, recording each way's car
// permissions and highway class, classifying every referenced node as
// tower or shape, and collecting the set of node ids a drivable way
// actually touches (so the next pass doesn't have to cache the whole
// file's nodes). Grounded on osm_reader.rs::categorize_nodes.
func (r *Reader) categorizeWays() (map[osm.WayID]wayPermission, map[osm.NodeID]nodeType, map[osm.NodeID]struct{}, error) {
	permissions := make(map[osm.WayID]wayPermission)
	types := make(map[osm.NodeID]nodeType)
	referenced := make(map[osm.NodeID]struct{})

	err := r.scan(func(obj osm.Object) error {
		way, ok := obj.(*osm.Way)
		if !ok {
			return nil
		}

		highway, isHighway := findTag(way.Tags, "highway")
		fwd, bwd := false, false
		if isHighway {
			fwd, bwd = carAccess(way.Tags)
		}
		permissions[way.ID] = wayPermission{forward: fwd, backward: bwd, highway: highway}
		if !fwd && !bwd {
			return nil
		}

		refs := way.Nodes
		for i, n := range refs {
			referenced[n.ID] = struct{}{}

			isEndpoint := i == 0 || i == len(refs)-1
			if isEndpoint {
				types[n.ID] = towerNode
				continue
			}
			if _, seen := types[n.ID]; seen {
				types[n.ID] = towerNode // referenced by more than one place: an intersection
			} else {
				types[n.ID] = shapeNode
			}
		}
		return nil
	})
	return permissions, types, referenced, err
}

// cacheLocations scans every Node/DenseNode once, keeping coordinates
// only for ids categorizeWays marked as referenced by a drivable way.
func (r *Reader) cacheLocations(referenced map[osm.NodeID]struct{}) (map[osm.NodeID]orb.Point, error) {
	locations := make(map[osm.NodeID]orb.Point, len(referenced))

	err := r.scan(func(obj osm.Object) error {
		node, ok := obj.(*osm.Node)
		if !ok {
			return nil
		}
		if _, wanted := referenced[node.ID]; !wanted {
			return nil
		}
		locations[node.ID] = orb.Point{node.Lon, node.Lat}
		return nil
	})
	return locations, err
}

// buildGraph scans every Way a final time, adding a graphstore node for
// each tower node the first time it's encountered and accumulating
// geo.Distance across every consecutive pair of cached locations between
// one tower node and the next — including shape nodes in between, so the
// edge's distance follows the polyline rather than a straight line
// between intersections.
func (r *Reader) buildGraph(
	permissions map[osm.WayID]wayPermission,
	types map[osm.NodeID]nodeType,
	locations map[osm.NodeID]orb.Point,
) (*graphstore.Graph, error) {
	g := graphstore.New(len(locations))
	graphIndex := make(map[osm.NodeID]int)

	nodeIndex := func(id osm.NodeID) int {
		if idx, ok := graphIndex[id]; ok {
			return idx
		}
		p := locations[id]
		idx := g.AddNode(geom.Node{ID: int64(id), Lat: p.Lat(), Lon: p.Lon()})
		graphIndex[id] = idx
		return idx
	}

	err := r.scan(func(obj osm.Object) error {
		way, ok := obj.(*osm.Way)
		if !ok {
			return nil
		}
		perm, known := permissions[way.ID]
		if !known || (!perm.forward && !perm.backward) {
			return nil
		}

		speed := highwaySpeed(perm.highway)
		lastTower := -1
		accumulated := 0.0
		var prevPoint orb.Point
		havePrev := false

		for _, n := range way.Nodes {
			point, ok := locations[n.ID]
			if !ok {
				continue
			}
			if havePrev {
				accumulated += geo.Distance(prevPoint, point)
			}
			prevPoint, havePrev = point, true

			if types[n.ID] != towerNode {
				continue
			}

			idx := nodeIndex(n.ID)
			if lastTower >= 0 && lastTower != idx {
				forward := graphstore.DirectedInfo{Accessible: perm.forward, SpeedMPS: speed}
				backward := graphstore.DirectedInfo{Accessible: perm.backward, SpeedMPS: speed}
				g.AddEdge(lastTower, idx, graphstore.NewEdge(accumulated, forward, backward))
			}
			lastTower = idx
			accumulated = 0
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}
