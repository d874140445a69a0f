package shortestpath

import "github.com/jbraet/perionav/routepath"

// Result is the outcome of a reachable query. Distance is the sum of the
// physical edge.Distance along the path; Weight is the sum of
// weight.Calculator output. The two are equal under weight.Distance and
// diverge under weight.TravelTime — spec.md's "Open question — distance
// vs weight" calls out the source's bug of always setting them equal and
// asks re-implementers to track them independently instead.
type Result struct {
	Distance float64
	Weight   float64
	Path     *routepath.Path // nil unless WithPath() was set
}

// Option configures optional behavior of a shortest-path query.
type Option func(*config)

type config struct {
	withPath bool
}

// WithPath requests that the returned Result carry the reconstructed
// Path, not just its weight.
func WithPath() Option {
	return func(c *config) { c.withPath = true }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
