package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/ang-cai/dinner/pkg/errors"
	"github.com/ang-cai/dinner/pkg/guest"
)

// ReadJSON decodes a JSON guest file from r into a dislike graph.
//
// The input must be a JSON object with a "guests" array:
//
//	{
//	  "guests": [
//	    {"name": "Alice", "dislikes": ["Bob"]},
//	    {"name": "Bob"},
//	    {"name": "Eve", "dislikes": ["Bob"]}
//	  ]
//	}
//
// Each guest must have a "name" field; "dislikes" is optional and may list
// the relation in one direction only. Guests are registered in array order,
// which fixes the enumeration order of the subset search (and therefore
// tie-breaks between equally large invite lists).
//
// ReadJSON returns an error if:
//   - The JSON is malformed (INVALID_FORMAT)
//   - A guest name fails validation or is duplicated (INVALID_GUEST)
//   - A dislike references a guest not in the file, or a guest lists
//     themself (INVALID_GRAPH)
//
// The returned graph is independent of r and can be modified freely.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*guest.Graph, error) {
	var data guestFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode JSON guest file")
	}
	return buildGraph(data.Guests)
}

// ReadTOML decodes a TOML guest file from r into a dislike graph.
//
// The format mirrors the JSON one as an array of tables, which preserves
// guest order (a plain TOML table of name = dislikes would not):
//
//	[[guest]]
//	name = "Alice"
//	dislikes = ["Bob"]
//
//	[[guest]]
//	name = "Bob"
//
// ReadTOML applies the same validation and returns the same error codes
// as [ReadJSON].
func ReadTOML(r io.Reader) (*guest.Graph, error) {
	var data tomlFile
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode TOML guest file")
	}
	return buildGraph(data.Guests)
}

// Import reads a guest file at path, picking the codec from the file
// extension: ".toml" for TOML, anything else for JSON.
//
// Errors are wrapped with the file path for context; a missing file is
// reported with code FILE_NOT_FOUND.
func Import(path string) (*guest.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

// buildGraph registers guests and their dislikes through the strict graph
// API, in file order.
func buildGraph(entries []guestEntry) (*guest.Graph, error) {
	g := guest.New()
	for _, e := range entries {
		if err := apperrors.ValidateGuestName(e.Name); err != nil {
			return nil, err
		}
		if err := g.AddGuest(e.Name); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGuest, err, "register guest %q", e.Name)
		}
	}
	for _, e := range entries {
		for _, d := range e.Dislikes {
			if err := g.AddDislike(e.Name, d); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "dislike %s -> %s", e.Name, d)
			}
		}
	}
	return g, nil
}
