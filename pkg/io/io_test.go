package io

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	apperrors "github.com/ang-cai/dinner/pkg/errors"
	"github.com/ang-cai/dinner/pkg/guest"
)

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantGuests []string
		wantEdges  int
		wantCode   apperrors.Code
	}{
		{
			name: "Valid",
			input: `{
				"guests": [
					{"name": "Alice", "dislikes": ["Bob"]},
					{"name": "Bob", "dislikes": ["Alice", "Eve"]},
					{"name": "Eve", "dislikes": ["Bob"]}
				]
			}`,
			wantGuests: []string{"Alice", "Bob", "Eve"},
			wantEdges:  2,
		},
		{
			name:       "NoDislikes",
			input:      `{"guests": [{"name": "Asa"}]}`,
			wantGuests: []string{"Asa"},
			wantEdges:  0,
		},
		{
			name:       "Empty",
			input:      `{"guests": []}`,
			wantGuests: []string{},
			wantEdges:  0,
		},
		{
			name:     "MalformedJSON",
			input:    `{"guests": [`,
			wantCode: apperrors.ErrCodeInvalidFormat,
		},
		{
			name:     "UnknownDislike",
			input:    `{"guests": [{"name": "Alice", "dislikes": ["Ghost"]}]}`,
			wantCode: apperrors.ErrCodeInvalidGraph,
		},
		{
			name:     "SelfDislike",
			input:    `{"guests": [{"name": "Alice", "dislikes": ["Alice"]}]}`,
			wantCode: apperrors.ErrCodeInvalidGraph,
		},
		{
			name:     "DuplicateGuest",
			input:    `{"guests": [{"name": "Alice"}, {"name": "Alice"}]}`,
			wantCode: apperrors.ErrCodeInvalidGuest,
		},
		{
			name:     "BlankName",
			input:    `{"guests": [{"name": ""}]}`,
			wantCode: apperrors.ErrCodeInvalidGuest,
		},
		{
			name:     "PaddedName",
			input:    `{"guests": [{"name": " Alice"}]}`,
			wantCode: apperrors.ErrCodeInvalidGuest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadJSON(strings.NewReader(tt.input))
			if tt.wantCode != "" {
				if !apperrors.Is(err, tt.wantCode) {
					t.Fatalf("error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadJSON: %v", err)
			}
			if got := g.Guests(); !slices.Equal(got, tt.wantGuests) {
				t.Errorf("Guests() = %v, want %v", got, tt.wantGuests)
			}
			if got := g.EdgeCount(); got != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", got, tt.wantEdges)
			}
		})
	}
}

func TestReadTOML(t *testing.T) {
	input := `
[[guest]]
name = "Alice"
dislikes = ["Bob"]

[[guest]]
name = "Bob"

[[guest]]
name = "Cleo"
`
	g, err := ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if want := []string{"Alice", "Bob", "Cleo"}; !slices.Equal(g.Guests(), want) {
		t.Errorf("Guests() = %v, want %v", g.Guests(), want)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}

	if _, err := ReadTOML(strings.NewReader("not [valid")); !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("malformed TOML error = %v, want INVALID_FORMAT", err)
	}
}

func roundTrip(t *testing.T, write func(*guest.Graph, *bytes.Buffer) error, read func(*bytes.Buffer) (*guest.Graph, error)) {
	t.Helper()
	g, err := guest.FromMap(map[string][]string{
		"Alice": {"Bob"},
		"Bob":   {"Alice", "Eve"},
		"Cleo":  {},
		"Eve":   {"Bob"},
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}

	var buf bytes.Buffer
	if err := write(g, &buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := read(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if !slices.Equal(back.Guests(), g.Guests()) {
		t.Errorf("guests after round trip = %v, want %v", back.Guests(), g.Guests())
	}
	if !slices.Equal(back.Edges(), g.Edges()) {
		t.Errorf("edges after round trip = %v, want %v", back.Edges(), g.Edges())
	}
}

func TestRoundTripJSON(t *testing.T) {
	roundTrip(t,
		func(g *guest.Graph, buf *bytes.Buffer) error { return WriteJSON(g, buf) },
		func(buf *bytes.Buffer) (*guest.Graph, error) { return ReadJSON(buf) },
	)
}

func TestRoundTripTOML(t *testing.T) {
	roundTrip(t,
		func(g *guest.Graph, buf *bytes.Buffer) error { return WriteTOML(g, buf) },
		func(buf *bytes.Buffer) (*guest.Graph, error) { return ReadTOML(buf) },
	)
}

func TestImportExtensionDispatch(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "guests.json")
	if err := os.WriteFile(jsonPath, []byte(`{"guests":[{"name":"Asa"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "guests.toml")
	if err := os.WriteFile(tomlPath, []byte("[[guest]]\nname = \"Asa\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, tomlPath} {
		g, err := Import(path)
		if err != nil {
			t.Fatalf("Import(%s): %v", path, err)
		}
		if !g.Has("Asa") {
			t.Errorf("Import(%s): missing guest Asa", path)
		}
	}

	if _, err := Import(filepath.Join(dir, "missing.json")); !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestMarshalGraphStable(t *testing.T) {
	g, err := guest.FromMap(map[string][]string{
		"Alice": {"Bob"},
		"Bob":   {"Alice"},
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}

	a, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	b, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("MarshalGraph is not deterministic")
	}
}

func TestExport(t *testing.T) {
	g, err := guest.FromMap(map[string][]string{"Asa": {}})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.toml")
	if err := Export(g, path); err != nil {
		t.Fatalf("Export: %v", err)
	}
	back, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !back.Has("Asa") {
		t.Error("exported file lost guest Asa")
	}
}
