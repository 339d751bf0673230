package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ang-cai/dinner/pkg/guest"
)

// guestFile is the JSON wire form of a dislike graph.
type guestFile struct {
	Guests []guestEntry `json:"guests"`
}

// tomlFile is the TOML wire form, using an array of tables to keep order.
type tomlFile struct {
	Guests []guestEntry `toml:"guest"`
}

type guestEntry struct {
	Name     string   `json:"name" toml:"name"`
	Dislikes []string `json:"dislikes,omitempty" toml:"dislikes,omitempty"`
}

// entries flattens a graph into wire entries in registration order.
func entries(g *guest.Graph) []guestEntry {
	names := g.Guests()
	out := make([]guestEntry, len(names))
	for i, name := range names {
		out[i] = guestEntry{Name: name, Dislikes: g.Dislikes(name)}
	}
	return out
}

// WriteJSON encodes a dislike graph as JSON and writes it to w.
// Guests are written in registration order with their recorded dislike
// lists, so the output is deterministic and re-importing it with [ReadJSON]
// yields an equivalent graph.
func WriteJSON(g *guest.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(guestFile{Guests: entries(g)}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes a dislike graph as TOML and writes it to w.
// Like [WriteJSON], the output round-trips through [ReadTOML].
func WriteTOML(g *guest.Graph, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(tomlFile{Guests: entries(g)}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes a dislike graph to a file at path, picking the codec from
// the file extension the same way [Import] does.
func Export(g *guest.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return WriteTOML(g, f)
	}
	return WriteJSON(g, f)
}

// MarshalGraph returns the canonical JSON serialization of the graph.
// It is the form hashed for cache keys: byte-identical for graphs with the
// same guests, order, and dislike lists.
func MarshalGraph(g *guest.Graph) ([]byte, error) {
	return json.Marshal(guestFile{Guests: entries(g)})
}
