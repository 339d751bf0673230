// Package cache provides result memoization for the dinner planner.
//
// Computing an invite list is a pure function of the dislike graph, and the
// exhaustive search is exponential in the number of entangled guests. That
// combination makes content-addressed caching safe and worthwhile: a solved
// plan keyed by the graph's content hash can be replayed for free on every
// later run over the same guest file.
//
// Two implementations are provided: [FileCache] for CLI usage, storing
// entries under a directory with TTL metadata, and [NullCache] to disable
// caching entirely.
package cache

import (
	"context"
	"time"
)

// TTL values for cached artifacts.
const (
	// TTLPlan is how long solved plans are kept. Plans are pure functions
	// of their key, so the TTL exists only to bound disk usage.
	TTLPlan = 30 * 24 * time.Hour

	// TTLRender is how long rendered graph artifacts (DOT, SVG) are kept.
	TTLRender = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys with optional expiry.
// Implementations must treat expired or corrupt entries as misses, never
// as errors.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl <= 0 stores the value without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// PlanKeyOpts captures the solve options that affect a plan result.
// Two runs with the same graph hash but different options must not share
// a cache entry.
type PlanKeyOpts struct {
	Naive bool // exhaustive search over the full guest list instead of the reduced graph
}

// Keyer generates cache keys for the planner's cacheable stages.
type Keyer interface {
	// PlanKey generates a key for a solved invite list.
	// graphHash is the content hash of the canonical graph serialization.
	PlanKey(graphHash string, opts PlanKeyOpts) string

	// RenderKey generates a key for a rendered artifact of the graph.
	RenderKey(graphHash, format string) string
}

// DefaultKeyer generates hashed, prefix-namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PlanKey generates a key for a solved invite list.
func (k *DefaultKeyer) PlanKey(graphHash string, opts PlanKeyOpts) string {
	return hashKey("plan", graphHash, opts.Naive)
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(graphHash, format string) string {
	return hashKey("render", graphHash, format)
}
