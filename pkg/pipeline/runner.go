package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ang-cai/dinner/pkg/cache"
	apperrors "github.com/ang-cai/dinner/pkg/errors"
	"github.com/ang-cai/dinner/pkg/guest"
	"github.com/ang-cai/dinner/pkg/guest/subset"
	"github.com/ang-cai/dinner/pkg/invite"
	dinnerio "github.com/ang-cai/dinner/pkg/io"
	"github.com/ang-cai/dinner/pkg/render/nodelink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → solve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run_id", result.RunID)

	// Stage 1: Load
	loadStart := time.Now()
	g, err := r.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Graph = g
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.GuestCount = g.GuestCount()
	result.Stats.EdgeCount = g.EdgeCount()

	graphData, err := dinnerio.MarshalGraph(g)
	if err != nil {
		return nil, fmt.Errorf("serialize graph: %w", err)
	}
	result.GraphHash = cache.Hash(graphData)

	logger.Info("loaded guest list",
		"guests", result.Stats.GuestCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Solve
	solveStart := time.Now()
	list, solveHit, err := r.solve(ctx, g, result.GraphHash, opts, &result.Stats)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.InviteList = list
	result.Stats.SolveTime = time.Since(solveStart)
	result.CacheInfo.SolveHit = solveHit

	logger.Info("solved invite list",
		"invited", len(list),
		"isolated", result.Stats.IsolatedCount,
		"subsets", result.Stats.SubsetCount,
		"cached", solveHit,
		"duration", result.Stats.SolveTime)

	// Stage 3: Render
	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		artifacts, renderHit, err := r.render(ctx, g, list, opts)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)
		result.CacheInfo.RenderHit = renderHit

		logger.Info("rendered artifacts",
			"formats", opts.Formats,
			"cached", renderHit,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// Load returns the dislike graph for the options: the provided Graph if
// set, otherwise the parsed guest file.
func (r *Runner) Load(opts Options) (*guest.Graph, error) {
	if opts.Graph != nil {
		return opts.Graph, nil
	}
	return dinnerio.Import(opts.Input)
}

// Solve computes the invite list for g with caching.
// It is the solve stage of [Runner.Execute], exposed for callers that
// already hold a graph and want only the answer.
func (r *Runner) Solve(ctx context.Context, g *guest.Graph, opts Options) ([]string, error) {
	opts.Graph = g
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	graphData, err := dinnerio.MarshalGraph(g)
	if err != nil {
		return nil, err
	}
	var stats Stats
	list, _, err := r.solve(ctx, g, cache.Hash(graphData), opts, &stats)
	return list, err
}

// solve runs the subset search, consulting the cache first.
func (r *Runner) solve(ctx context.Context, g *guest.Graph, graphHash string, opts Options, stats *Stats) ([]string, bool, error) {
	isolated, reduced := g.Partition()
	stats.IsolatedCount = len(isolated)

	universe := reduced.GuestCount()
	if opts.Naive {
		universe = g.GuestCount()
	}
	if universe > MaxEntangledGuests {
		return nil, false, apperrors.New(apperrors.ErrCodeUnsupported,
			"%d guests in the subset search exceeds the limit of %d; the exhaustive search would enumerate 2^%d candidates",
			universe, MaxEntangledGuests, universe)
	}

	key := r.Keyer.PlanKey(graphHash, opts.planKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var list []string
			if err := json.Unmarshal(data, &list); err == nil {
				return list, true, nil
			}
			// Corrupt entry: fall through and recompute.
		}
	}

	var list []string
	if opts.Naive {
		list = invite.Plan(g)
	} else {
		list = invite.PlanReduced(g)
	}
	stats.SubsetCount = subset.Count(universe)

	if data, err := json.Marshal(list); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLPlan)
	}
	return list, false, nil
}

// render produces the requested artifacts, consulting the cache first.
// The cache key covers everything the artifact depends on: the graph, the
// invite list, the label detail flag, and the format.
func (r *Runner) render(ctx context.Context, g *guest.Graph, invited []string, opts Options) (map[string][]byte, bool, error) {
	graphData, err := dinnerio.MarshalGraph(g)
	if err != nil {
		return nil, false, err
	}
	renderHash := cache.Hash(fmt.Appendf(graphData, "|invited=%v|detailed=%v", invited, opts.Detailed))

	artifacts := make(map[string][]byte)
	allCached := true
	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.RenderKey(renderHash, format)
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	dot := nodelink.ToDOT(g, nodelink.Options{Invited: invited, Detailed: opts.Detailed})
	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			svg, err := nodelink.RenderSVG(dot)
			if err != nil {
				return nil, false, err
			}
			data = svg
		}
		artifacts[format] = data
		_ = r.Cache.Set(ctx, r.Keyer.RenderKey(renderHash, format), data, cache.TTLRender)
	}
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
