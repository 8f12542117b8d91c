// Package cache provides caching for computed graph artifacts.
//
// Three backends share one interface: a file cache for CLI usage, a Redis
// cache for the API server, and a null cache for tests or disabled
// caching. Keys are built by a Keyer so every surface derives them the
// same way.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends. Get reports a
// miss with ok=false rather than an error, so callers can fall through to
// recomputation without inspecting error chains.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// PathsKeyOpts parameterizes path-enumeration cache keys.
type PathsKeyOpts struct {
	Start string `json:"start,omitempty"`
	Stop  string `json:"stop,omitempty"`
}

// ArtifactKeyOpts parameterizes rendered-artifact cache keys.
type ArtifactKeyOpts struct {
	Format string `json:"format"` // "dot", "svg", or "png"
}

// Keyer derives cache keys for the cacheable computations. Implementations
// must be deterministic: equal inputs produce equal keys.
type Keyer interface {
	// GraphKey keys a stored graph document by name.
	GraphKey(name string) string

	// PathsKey keys a path enumeration over the graph with the given
	// content hash.
	PathsKey(graphHash string, opts PathsKeyOpts) string

	// ArtifactKey keys a rendered artifact of the graph with the given
	// content hash.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key derivation: a readable prefix followed
// by a SHA-256 hash of the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a stored graph document.
func (k *DefaultKeyer) GraphKey(name string) string {
	return hashKey("graph", name)
}

// PathsKey generates a key for a path enumeration result.
func (k *DefaultKeyer) PathsKey(graphHash string, opts PathsKeyOpts) string {
	return hashKey("paths", graphHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
