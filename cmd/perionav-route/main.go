// Command perionav-route loads an OSM extract, builds a Router over it,
// and prints the WKT of one demo route along with how long it took.
//
// It is a thin, idiomatic-Go port of original_source's main.rs demo body
// (dropping its commented-out, unrelated Pin/NonNull scratch
// experiment, which carried no semantic content) — not part of the
// routing core, and may be omitted entirely by a re-implementation.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/jbraet/perionav/geom"
	"github.com/jbraet/perionav/osmingest"
	"github.com/jbraet/perionav/router"
)

func main() {
	osmPath := flag.String("osm", "./data/map.osm.pbf", "path to a .osm.pbf extract to route over")
	flag.Parse()

	start := time.Now()
	r, err := router.New(&osmingest.Reader{}, *osmPath)
	if err != nil {
		log.Fatalf("building router from %s: %v", *osmPath, err)
	}
	log.Printf("built router in %s", time.Since(start))

	from := geom.LatLon{Lat: 51.046527, Lon: 3.719028}
	to := geom.LatLon{Lat: 51.028482, Lon: 3.639622}

	queryStart := time.Now()
	result, ok := r.Route(from, to)
	if !ok {
		log.Printf("no route found in %s", time.Since(queryStart))
		return
	}

	log.Printf("result: %s in %s", r.WKT(result.Path), time.Since(queryStart))
}
