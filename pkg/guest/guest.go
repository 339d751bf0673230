package guest

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidGuestName is returned by [Graph.AddGuest] when the guest name
	// is empty. All guests must have non-empty identifiers.
	ErrInvalidGuestName = errors.New("guest name must not be empty")

	// ErrDuplicateGuest is returned by [Graph.AddGuest] when a guest with the
	// same name is already registered. Guest names must be unique.
	ErrDuplicateGuest = errors.New("duplicate guest")

	// ErrUnknownGuest is returned by [Graph.AddDislike] when either endpoint
	// of the dislike is not a registered guest. Register all guests with
	// [Graph.AddGuest] before recording dislikes between them.
	ErrUnknownGuest = errors.New("unknown guest")

	// ErrSelfDislike is returned by [Graph.AddDislike] when both endpoints
	// name the same guest. A dislike is a pair of two distinct guests; a
	// guest disliking themself has no meaning for seating.
	ErrSelfDislike = errors.New("guest cannot dislike themself")
)

// Graph records which guests cannot be seated together. It is an undirected
// dislike graph: a dislike recorded in either direction means the pair can
// never appear on the same invite list.
//
// Guests are kept in registration order, and that order is what makes every
// derived result deterministic: [Graph.Edges] emits edges in first-appearance
// order, and the subset enumeration downstream assigns counter bits by guest
// position. Two graphs built with the same registration sequence produce
// identical invite lists.
//
// The zero value is not usable - use [New] or [FromMap].
// Graph is not safe for concurrent mutation without external synchronization.
type Graph struct {
	dislikes map[string][]string // guest -> recorded dislikes, input order preserved
	order    []string            // registration order of guests
}

// New creates an empty dislike graph.
func New() *Graph {
	return &Graph{dislikes: make(map[string][]string)}
}

// FromMap builds a graph from an adjacency mapping of guest name to the
// guests they dislike. Map iteration order is not deterministic in Go, so
// guests are registered in lexicographic key order; recorded dislike lists
// keep their input order unchanged.
//
// The mapping may list each dislike in one direction only - (A,B) and (B,A)
// are the same relation and [Graph.Edges] collapses them to one edge.
//
// FromMap is strict about referential integrity: a dislike naming a guest
// that is not a key of the mapping fails with [ErrUnknownGuest], and a guest
// listing themself fails with [ErrSelfDislike]. Errors are wrapped with the
// guest names involved.
func FromMap(m map[string][]string) (*Graph, error) {
	g := New()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		if err := g.AddGuest(name); err != nil {
			return nil, err
		}
	}
	for _, name := range g.order {
		for _, d := range m[name] {
			if err := g.AddDislike(name, d); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// AddGuest registers a guest with no dislikes.
// Returns ErrInvalidGuestName if the name is empty, or ErrDuplicateGuest if
// the guest is already registered.
func (g *Graph) AddGuest(name string) error {
	if name == "" {
		return ErrInvalidGuestName
	}
	if _, exists := g.dislikes[name]; exists {
		return wrapGuest(ErrDuplicateGuest, name)
	}
	g.dislikes[name] = nil
	g.order = append(g.order, name)
	return nil
}

// AddDislike records that a and b cannot be invited together.
// Both guests must already be registered. The relation is undirected: it is
// stored on a's list but [Graph.Edges], [Graph.Degree], and [Graph.Partition]
// all treat it as binding both guests. Recording the same pair again, in
// either direction, is a no-op.
//
// Returns ErrUnknownGuest if either guest is unregistered, or ErrSelfDislike
// if a == b.
func (g *Graph) AddDislike(a, b string) error {
	if a == b {
		return wrapGuest(ErrSelfDislike, a)
	}
	if _, ok := g.dislikes[a]; !ok {
		return wrapGuest(ErrUnknownGuest, a)
	}
	if _, ok := g.dislikes[b]; !ok {
		return wrapGuest(ErrUnknownGuest, b)
	}
	if slices.Contains(g.dislikes[a], b) || slices.Contains(g.dislikes[b], a) {
		return nil
	}
	g.dislikes[a] = append(g.dislikes[a], b)
	return nil
}

// Guests returns all guests in registration order.
// The returned slice is a copy and can be modified freely.
func (g *Graph) Guests() []string {
	return slices.Clone(g.order)
}

// Dislikes returns the dislikes recorded directly on the guest, in input
// order. It does not include reverse-direction relations - use [Graph.Degree]
// or [Graph.Edges] for the undirected view. Returns nil for unknown guests.
func (g *Graph) Dislikes(name string) []string {
	return slices.Clone(g.dislikes[name])
}

// Has reports whether the guest is registered.
func (g *Graph) Has(name string) bool {
	_, ok := g.dislikes[name]
	return ok
}

// GuestCount returns the number of registered guests.
func (g *Graph) GuestCount() int { return len(g.order) }

// EdgeCount returns the number of distinct dislike pairs.
func (g *Graph) EdgeCount() int { return len(g.Edges()) }

// Edges returns the canonical set of dislike pairs.
//
// Each unordered pair appears exactly once regardless of how many directions
// recorded it, with endpoints in lexicographic order (see [NewEdge]). Edges
// are emitted in first-appearance order: guests in registration order, each
// guest's recorded dislikes in input order. The result is deterministic for
// a given construction sequence.
func (g *Graph) Edges() []Edge {
	seen := make(map[Edge]struct{})
	var edges []Edge
	for _, name := range g.order {
		for _, d := range g.dislikes[name] {
			e := NewEdge(name, d)
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Degree returns the number of distinct guests this guest is entangled with,
// counting relations recorded in either direction.
// Returns 0 for unknown guests.
func (g *Graph) Degree(name string) int {
	n := 0
	for _, e := range g.Edges() {
		if e.Contains(name) {
			n++
		}
	}
	return n
}

// Validate re-checks the graph invariants.
//
// Graphs built through [New], [FromMap], and the mutators hold these by
// construction; Validate exists for graphs assembled by hand or decoded
// from untrusted data. It returns the first violation found: an empty
// guest name, a dislike referencing an unregistered guest, or a guest
// disliking themself.
func (g *Graph) Validate() error {
	for _, name := range g.order {
		if name == "" {
			return ErrInvalidGuestName
		}
		for _, d := range g.dislikes[name] {
			if d == name {
				return wrapGuest(ErrSelfDislike, name)
			}
			if _, ok := g.dislikes[d]; !ok {
				return wrapGuest(ErrUnknownGuest, d)
			}
		}
	}
	return nil
}

// Partition splits the guest list into isolated guests and a reduced graph.
//
// A guest is isolated when they appear in no dislike relation at all, in
// either direction. Isolated guests can join any invite list, so excluding
// them before the exponential subset search shrinks the search space without
// changing the answer. The reduced graph contains exactly the entangled
// guests with their recorded dislike lists unchanged; both the isolated
// slice and the reduced graph preserve the original registration order.
func (g *Graph) Partition() (isolated []string, reduced *Graph) {
	entangled := make(map[string]struct{})
	for _, e := range g.Edges() {
		entangled[e.A] = struct{}{}
		entangled[e.B] = struct{}{}
	}

	reduced = New()
	for _, name := range g.order {
		if _, ok := entangled[name]; !ok {
			isolated = append(isolated, name)
			continue
		}
		reduced.dislikes[name] = slices.Clone(g.dislikes[name])
		reduced.order = append(reduced.order, name)
	}
	return isolated, reduced
}
