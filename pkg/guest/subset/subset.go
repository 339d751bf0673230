// Package subset enumerates the power set of a guest list.
//
// The enumeration is the counting bijection: each integer in [0, 2^n) maps
// to one subset, where bit j (least significant first) of the counter
// controls inclusion of the member at index n-1-j. The bit assignment is
// fixed because downstream selection breaks ties by enumeration order -
// changing it would change which maximum invite list wins a tie.
package subset

import "slices"

// Count returns 2^n, the size of the power set of n members.
// For n <= 0, Count returns 1 (the power set of the empty set is {∅}).
//
// Counts grow exponentially: 2^20 is over a million, and 2^63 overflows int.
// Callers should bound n before materializing the full enumeration.
func Count(n int) int {
	if n <= 0 {
		return 1
	}
	return 1 << n
}

// All returns every subset of members, including the empty subset and the
// full set, in counter order (see the package documentation). Members inside
// each subset keep their input order.
//
// This is Generate without a limit. The result holds 2^n slices - for guest
// lists past roughly 20 members, always prefer the reduced search in package
// invite, which strips isolated guests before enumerating.
func All(members []string) [][]string {
	return Generate(members, 0)
}

// Generate returns subsets of members in counter order.
//
// If limit > 0, Generate returns at most limit subsets.
// If limit <= 0, Generate returns all 2^n subsets.
//
// Each returned slice is a separate allocation, safe to modify without
// affecting the others. The counter order starts at the empty subset:
//
//	Generate([]string{"Alice", "Bob"}, 0)
//	// [[] [Bob] [Alice] [Alice Bob]]
//
// Generate handles edge cases gracefully:
//   - no members: returns [[]] (just the empty subset)
//   - one member: returns [[], [member]]
func Generate(members []string, limit int) [][]string {
	n := len(members)
	total := Count(n)
	if limit > 0 && limit < total {
		total = limit
	}

	result := make([][]string, 0, total)
	for i := 0; i < total; i++ {
		var sub []string
		for j := 0; j < n; j++ {
			if i&(1<<(n-1-j)) != 0 {
				sub = append(sub, members[j])
			}
		}
		result = append(result, sub)
	}
	return result
}

// Contains reports whether sub, treated as a set, contains every name in
// names. It is a helper for membership checks over enumerated subsets.
func Contains(sub []string, names ...string) bool {
	for _, name := range names {
		if !slices.Contains(sub, name) {
			return false
		}
	}
	return true
}
