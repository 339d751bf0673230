// Package io provides JSON and TOML import and export for dislike graphs.
//
// # Overview
//
// Guest files describe who is invited and who dislikes whom. The package
// reads them into [guest.Graph] values and writes graphs back out, with
// full round-trip fidelity: import, plan, export, and re-import produce
// equivalent graphs.
//
// # Formats
//
// JSON uses a single "guests" array:
//
//	{
//	  "guests": [
//	    {"name": "Alice", "dislikes": ["Bob"]},
//	    {"name": "Bob"},
//	    {"name": "Eve", "dislikes": ["Bob"]}
//	  ]
//	}
//
// TOML uses an array of tables:
//
//	[[guest]]
//	name = "Alice"
//	dislikes = ["Bob"]
//
// Both formats are ordered. Guest order fixes the subset enumeration order
// downstream, which is what makes planner output reproducible; a plain
// name-to-dislikes table would lose it.
//
// Dislikes may be listed in one direction only - the graph treats (A,B)
// and (B,A) as the same relation.
//
// # Validation
//
// Imports are strict: malformed documents, invalid or duplicate guest
// names, dislikes naming guests absent from the file, and self-dislikes
// all fail with coded errors from [github.com/ang-cai/dinner/pkg/errors].
// The missing-guest policy is deliberate - silently inventing a guest that
// the file never declares would mask typos in dislike lists.
//
// [guest.Graph]: github.com/ang-cai/dinner/pkg/guest.Graph
package io
