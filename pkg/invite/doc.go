// Package invite selects the largest dinner invite list that seats no
// mutually disliking pair - a maximum independent set search over the
// dislike graph.
//
// # Overview
//
// The search is an intentionally exhaustive reference algorithm: enumerate
// candidate guest subsets, filter out any containing a dislike edge, and
// keep the largest survivor. Maximum independent set is NP-hard, so the
// exponential cost is inherent to the exact answer; the one optimization
// applied is removing isolated guests (no dislikes in either direction)
// before enumerating, since they belong on every maximal list.
//
// # Entry Points
//
// [Plan] runs the naive search over the full guest list. [PlanReduced]
// strips isolated guests first and enumerates only the entangled remainder;
// both return invite lists of identical length, and the reduced path is the
// one to use in practice. The intermediate stages - [Filter], [Valid],
// [Select] - are exported for callers composing their own search.
//
// # Determinism
//
// When several invite lists share the maximum size, the one found first in
// enumeration order wins (see package subset for the order). Results are
// therefore stable for a given guest registration order.
package invite
