// Package guest models the dinner-party dislike graph: who is coming, and
// which pairs cannot share a table.
//
// # Overview
//
// A [Graph] holds guests in registration order together with their recorded
// dislikes. Dislikes are undirected - recording (A,B) or (B,A), or both,
// means the same thing - and [Graph.Edges] collapses every relation into a
// canonical, deduplicated [Edge] set with endpoints in lexicographic order.
//
// # Basic Usage
//
// Build a graph with [New] and the mutators, or in one shot with [FromMap]:
//
//	g, err := guest.FromMap(map[string][]string{
//	    "Alice": {"Bob"},
//	    "Bob":   {"Alice", "Eve"},
//	    "Eve":   {"Bob"},
//	})
//	edges := g.Edges() // [Alice -- Bob, Bob -- Eve]
//
// # Determinism
//
// Guest order is significant. The subset search in package invite breaks
// ties between equally large invite lists by enumeration order, and
// enumeration order is derived from guest registration order. [FromMap]
// registers guests in sorted key order to keep results reproducible across
// runs; graphs built incrementally use insertion order.
//
// # Isolation
//
// [Graph.Partition] separates guests that appear in no dislike relation
// from the entangled remainder. Isolated guests are always safe to invite,
// so the exponential search only needs to cover the reduced graph.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. Read-only use from
// multiple goroutines is safe.
package guest
