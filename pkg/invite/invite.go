package invite

import (
	"github.com/ang-cai/dinner/pkg/guest"
	"github.com/ang-cai/dinner/pkg/guest/subset"
)

// Valid reports whether the candidate list violates none of the dislike
// edges. A candidate of size 0 or 1 is always valid: an edge needs both of
// its distinct endpoints present to be violated.
func Valid(candidate []string, edges []guest.Edge) bool {
	if len(candidate) < 2 {
		return true
	}
	for _, e := range edges {
		if subset.Contains(candidate, e.A, e.B) {
			return false
		}
	}
	return true
}

// Filter returns the candidates that contain no dislike edge of g,
// preserving their relative order. Candidates are checked against the
// canonical edge set, so one-directional dislike records still exclude
// the pair.
func Filter(candidates [][]string, g *guest.Graph) [][]string {
	edges := g.Edges()
	good := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		if Valid(c, edges) {
			good = append(good, c)
		}
	}
	return good
}

// Select returns the candidate with the greatest cardinality.
//
// Ties are broken first-found-wins: a candidate replaces the current best
// only when it is strictly larger, so among equally large candidates the
// earliest in enumeration order is kept. Returns an empty list when
// candidates is empty.
func Select(candidates [][]string) []string {
	var best []string
	for _, c := range candidates {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}

// Plan computes the largest invite list for g by exhaustive search:
// enumerate every subset of the guest list, drop the ones seating a
// disliked pair, and keep the largest survivor.
//
// The enumeration materializes 2^n candidates for n guests. Use
// [PlanReduced] for anything but small graphs - it produces a list of
// identical length while only enumerating over entangled guests.
//
// An empty graph yields an empty list, not an error.
func Plan(g *guest.Graph) []string {
	candidates := subset.All(g.Guests())
	return Select(Filter(candidates, g))
}

// PlanReduced computes the largest invite list without enumerating subsets
// of guests that have no dislikes at all.
//
// It partitions the graph with [guest.Graph.Partition], runs the exhaustive
// search over the entangled guests only, and appends every isolated guest
// to the winning subset - isolated guests are compatible with any seating.
// The result lists the entangled picks first, then the isolated guests,
// each group in graph registration order.
//
// PlanReduced always returns a list of the same length as [Plan] for the
// same graph. The lists may differ in tie cases, since the two searches
// enumerate different universes, but both are always valid.
func PlanReduced(g *guest.Graph) []string {
	isolated, reduced := g.Partition()
	candidates := subset.All(reduced.Guests())
	best := Select(Filter(candidates, reduced))
	return append(best, isolated...)
}
