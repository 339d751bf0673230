package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ang-cai/dinner/pkg/cache"
	apperrors "github.com/ang-cai/dinner/pkg/errors"
	"github.com/ang-cai/dinner/pkg/guest"
)

const guestFile = `{
	"guests": [
		{"name": "Alice", "dislikes": ["Bob"]},
		{"name": "Bob", "dislikes": ["Alice", "Eve"]},
		{"name": "Cleo"},
		{"name": "Don"},
		{"name": "Eve", "dislikes": ["Bob"]}
	]
}`

func writeGuestFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guests.json")
	if err := os.WriteFile(path, []byte(guestFile), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode apperrors.Code
	}{
		{"MissingInput", Options{}, apperrors.ErrCodeInvalidInput},
		{"BadFormat", Options{Input: "x.json", Formats: []string{"png"}}, apperrors.ErrCodeInvalidFormat},
		{"Valid", Options{Input: "x.json", Formats: []string{"dot", "svg"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateAndSetDefaults: %v", err)
				}
				if tt.opts.Logger == nil {
					t.Error("logger default not applied")
				}
				return
			}
			if !apperrors.Is(err, tt.wantCode) {
				t.Errorf("error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{Input: writeGuestFile(t)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if want := []string{"Alice", "Eve", "Cleo", "Don"}; !slices.Equal(result.InviteList, want) {
		t.Errorf("InviteList = %v, want %v", result.InviteList, want)
	}
	if result.RunID == "" {
		t.Error("RunID is empty")
	}
	if result.GraphHash == "" {
		t.Error("GraphHash is empty")
	}
	if result.Stats.GuestCount != 5 || result.Stats.EdgeCount != 2 {
		t.Errorf("Stats = %+v, want 5 guests and 2 edges", result.Stats)
	}
	if result.Stats.IsolatedCount != 2 {
		t.Errorf("IsolatedCount = %d, want 2", result.Stats.IsolatedCount)
	}
	// Reduced search over 3 entangled guests.
	if result.Stats.SubsetCount != 8 {
		t.Errorf("SubsetCount = %d, want 8", result.Stats.SubsetCount)
	}
}

func TestExecuteNaiveMatchesReduced(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()
	path := writeGuestFile(t)

	reduced, err := runner.Execute(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("Execute reduced: %v", err)
	}
	naive, err := runner.Execute(context.Background(), Options{Input: path, Naive: true})
	if err != nil {
		t.Fatalf("Execute naive: %v", err)
	}

	if len(naive.InviteList) != len(reduced.InviteList) {
		t.Errorf("naive len = %d, reduced len = %d, want equal",
			len(naive.InviteList), len(reduced.InviteList))
	}
	// Naive search enumerates the full 2^5 universe.
	if naive.Stats.SubsetCount != 32 {
		t.Errorf("naive SubsetCount = %d, want 32", naive.Stats.SubsetCount)
	}
}

func TestExecuteSolveCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()
	path := writeGuestFile(t)

	first, err := runner.Execute(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.SolveHit {
		t.Error("first run should not hit the cache")
	}

	second, err := runner.Execute(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.SolveHit {
		t.Error("second run should hit the solve cache")
	}
	if !slices.Equal(first.InviteList, second.InviteList) {
		t.Errorf("cached list %v differs from computed %v", second.InviteList, first.InviteList)
	}

	refreshed, err := runner.Execute(context.Background(), Options{Input: path, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if refreshed.CacheInfo.SolveHit {
		t.Error("refresh run should bypass the cache")
	}
}

func TestExecuteRenderDOT(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Input:   writeGuestFile(t),
		Formats: []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	dot := string(result.Artifacts[FormatDOT])
	if !strings.Contains(dot, `"Alice" -- "Bob";`) {
		t.Errorf("DOT artifact missing edge:\n%s", dot)
	}
	if !strings.Contains(dot, "palegreen") {
		t.Error("DOT artifact does not highlight the invite list")
	}
}

func TestSolveWithGraph(t *testing.T) {
	g, err := guest.FromMap(map[string][]string{
		"Alice": {"Bob"},
		"Bob":   {"Alice"},
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}

	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	list, err := runner.Solve(context.Background(), g, Options{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len = %d, want 1", len(list))
	}
}

func TestSolveRefusesHugeSearch(t *testing.T) {
	g := guest.New()
	names := make([]string, 0, MaxEntangledGuests+2)
	for i := 0; i < MaxEntangledGuests+2; i++ {
		name := string(rune('A'+i%26)) + string(rune('a'+i/26))
		names = append(names, name)
		if err := g.AddGuest(name); err != nil {
			t.Fatalf("AddGuest: %v", err)
		}
	}
	// Chain everyone so nobody is isolated.
	for i := 1; i < len(names); i++ {
		if err := g.AddDislike(names[i-1], names[i]); err != nil {
			t.Fatalf("AddDislike: %v", err)
		}
	}

	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Solve(context.Background(), g, Options{})
	if !apperrors.Is(err, apperrors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}
