// Package pipeline provides the core planning pipeline for the dinner CLI.
//
// This package implements the complete load → solve → render pipeline so
// every entry point shares one code path and one caching policy.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read and validate a guest file (JSON or TOML)
//  2. Solve: compute the maximum invite list (reduced search by default)
//  3. Render: optionally produce DOT or SVG artifacts of the dislike graph
//
// Each stage can be run independently or as part of the complete pipeline.
// Solve and render results are memoized through [cache.Cache], keyed by the
// content hash of the canonical graph serialization - the solve is a pure
// function of the graph, so a cache hit is always safe to replay.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "guests.toml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.InviteList)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ang-cai/dinner/pkg/cache"
	apperrors "github.com/ang-cai/dinner/pkg/errors"
	"github.com/ang-cai/dinner/pkg/guest"
)

// Format constants for render artifacts.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported render formats.
var ValidFormats = []string{FormatDOT, FormatSVG}

// MaxEntangledGuests bounds the subset search. Beyond this many entangled
// guests the enumeration would materialize over a billion candidates, so
// the pipeline refuses rather than exhausting memory.
const MaxEntangledGuests = 30

// Options contains all configuration for the planning pipeline.
type Options struct {
	// Input is the guest file path. Required unless Graph is set.
	Input string `json:"input,omitempty"`

	// Graph bypasses the load stage when the caller already has a graph.
	Graph *guest.Graph `json:"-"`

	// Naive switches the solve stage to the exhaustive search over the
	// full guest list instead of the reduced (isolated-guests-removed)
	// search. Both return invite lists of equal length; the naive path
	// exists for verification and comparison.
	Naive bool `json:"naive,omitempty"`

	// Refresh bypasses cached solve and render results.
	Refresh bool `json:"refresh,omitempty"`

	// Formats lists render artifacts to produce ("dot", "svg").
	// Empty means no rendering.
	Formats []string `json:"formats,omitempty"`

	// Detailed includes dislike degrees in rendered node labels.
	Detailed bool `json:"detailed,omitempty"`

	// Logger receives stage progress. Defaults to a discard logger.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" && o.Graph == nil {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "guest file or graph is required")
	}
	for _, f := range o.Formats {
		if err := apperrors.ValidateFormat(f, ValidFormats); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// planKeyOpts returns the cache key options for the solve stage.
func (o *Options) planKeyOpts() cache.PlanKeyOpts {
	return cache.PlanKeyOpts{Naive: o.Naive}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution in logs.
	RunID string

	// Graph is the loaded dislike graph.
	Graph *guest.Graph

	// GraphHash is the content hash of the canonical graph serialization.
	GraphHash string

	// InviteList is the maximum-size valid invite list.
	InviteList []string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains counts and timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	GuestCount    int // total registered guests
	EdgeCount     int // distinct dislike pairs
	IsolatedCount int // guests excluded from the subset search
	SubsetCount   int // candidate subsets the solve stage enumerated
	LoadTime      time.Duration
	SolveTime     time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit  bool // whether the invite list came from cache
	RenderHit bool // whether all artifacts came from cache
}
