// Package cache provides byte-level caching for parsed meshes and rendered
// artifacts.
//
// Parsing a large OBJ file and rendering its wireframe are both pure
// functions of the source bytes and the options used, so results are cached
// under content-derived keys. Three backends implement the same interface:
//   - FileCache: sharded JSON entries on disk, for CLI usage
//   - RedisCache: shared cache for long-running deployments
//   - NullCache: caching disabled
//
// Keys are produced by a [Keyer] so every caller derives them the same way.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type.
const (
	// TTLMesh is how long a parsed mesh stays cached. Source files are
	// keyed by content hash, so entries never go stale; the TTL only
	// bounds disk usage.
	TTLMesh = 7 * 24 * time.Hour

	// TTLArtifact is how long rendered artifacts stay cached.
	TTLArtifact = 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts are the render options that distinguish cached artifacts.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Stroke float64 `json:"stroke"`
}

// Keyer generates cache keys.
type Keyer interface {
	// MeshKey generates a key for a parsed mesh, from the hash of the
	// source file contents.
	MeshKey(sourceHash string) string

	// ArtifactKey generates a key for a rendered artifact, from the hash
	// of the mesh it was rendered from plus the render options.
	ArtifactKey(meshHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// MeshKey generates a key for a parsed mesh.
func (k *DefaultKeyer) MeshKey(sourceHash string) string {
	return "mesh:" + sourceHash
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(meshHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", meshHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so several projects can share one
// backend without key collisions.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// MeshKey generates a prefixed mesh key.
func (k *ScopedKeyer) MeshKey(sourceHash string) string {
	return k.prefix + k.inner.MeshKey(sourceHash)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(meshHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(meshHash, opts)
}
