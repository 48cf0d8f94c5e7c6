// Package cache provides pluggable result caching for layout computation.
//
// Three backends are available:
//   - file: directory-backed cache for CLI usage
//   - redis: Redis-backed cache for multi-instance server deployments
//   - null: no-op cache for tests or when caching is disabled
//
// Keys are derived from content hashes of the gallery manifest plus the
// layout options, so a cached layout is only ever reused for an identical
// computation.
package cache

import (
	"context"
	"time"
)

// Cache stores computed results keyed by content-derived strings.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live. A zero ttl stores the
	// value without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// LayoutKeyOpts captures every option that affects a layout computation.
// Two computations with equal manifest hashes and equal options produce
// bit-identical layouts, so these fields fully determine the cache key.
type LayoutKeyOpts struct {
	Strategy       string
	ContainerWidth uint16
	ItemSize       uint16
	Gap            uint16
}

// ArtifactKeyOpts captures every option that affects a rendered artifact.
type ArtifactKeyOpts struct {
	Format string
}

// Keyer generates cache keys for the layout pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for a computed layout.
	LayoutKey(manifestHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key of the form "layout:<hash>".
func (k *DefaultKeyer) LayoutKey(manifestHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", manifestHash, opts)
}

// ArtifactKey generates a key of the form "artifact:<hash>".
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
