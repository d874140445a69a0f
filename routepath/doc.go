// Package routepath holds a computed route as an ordered sequence of
// graphstore.DirectedEdge, enforcing that each edge's adjacent node is the
// next edge's base node, and renders the sequence as WKT for downstream
// consumers.
package routepath
