package guest

import "fmt"

// Edge is an unordered dislike pair in canonical form: A is always the
// lexicographically smaller endpoint. Two edges built from the same pair in
// either direction compare equal, so Edge is usable as a map key for set
// semantics.
type Edge struct {
	A string // Smaller endpoint
	B string // Larger endpoint
}

// NewEdge builds the canonical edge for the pair (a, b).
// Endpoint order in the arguments does not matter.
func NewEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Contains reports whether name is one of the edge's endpoints.
func (e Edge) Contains(name string) bool {
	return e.A == name || e.B == name
}

// Other returns the endpoint opposite to name, or "" if name is not an
// endpoint of the edge.
func (e Edge) Other(name string) string {
	switch name {
	case e.A:
		return e.B
	case e.B:
		return e.A
	}
	return ""
}

// String renders the edge as "A -- B", the undirected notation used by DOT.
func (e Edge) String() string {
	return fmt.Sprintf("%s -- %s", e.A, e.B)
}

// wrapGuest annotates a sentinel error with the guest name involved.
func wrapGuest(err error, name string) error {
	return fmt.Errorf("guest %q: %w", name, err)
}
