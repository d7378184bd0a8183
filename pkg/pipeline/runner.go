package pipeline

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/meshtools/wireview/pkg/cache"
	"github.com/meshtools/wireview/pkg/errors"
	"github.com/meshtools/wireview/pkg/geometry"
	"github.com/meshtools/wireview/pkg/observability"
	"github.com/meshtools/wireview/pkg/render"
	"github.com/meshtools/wireview/pkg/transform"
	"github.com/meshtools/wireview/pkg/wavefront"
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
// If cache is nil, a NullCache is used (caching disabled).
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

// Execute runs the complete load → transform → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Source)
	buf, meshHit, err := r.LoadWithCacheInfo(ctx, opts)
	result.Stats.LoadTime = time.Since(loadStart)
	observability.Pipeline().OnLoadComplete(ctx, opts.Source, bufVertices(buf), bufEdges(buf), result.Stats.LoadTime, err)
	if err != nil {
		return nil, err
	}
	result.Buffer = buf
	result.Stats.VertexCount = buf.VertexCount()
	result.Stats.EdgeCount = buf.EdgeCount()
	result.CacheInfo.MeshHit = meshHit

	logger.Info("loaded model",
		"source", opts.Source,
		"vertices", buf.VertexCount(),
		"edges", buf.EdgeCount(),
		"cached", meshHit,
		"duration", result.Stats.LoadTime)

	// Stage 2: Transform
	transformStart := time.Now()
	for _, step := range opts.Steps {
		transform.Apply(buf, step.Kind, step.Value, step.Axis)
		observability.Pipeline().OnTransform(ctx, step.Kind.String(), step.Axis.String(), step.Value)
		logger.Debug("applied transform", "step", step.String())
	}
	result.Stats.TransformTime = time.Since(transformStart)

	// Content hash of the final buffer drives artifact cache keys.
	if data, err := render.RenderJSON(buf); err == nil {
		result.MeshHash = cache.Hash(data)
	}

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, buf, result.MeshHash, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo parses the source with caching and reports a cache hit.
// The cache key is the hash of the source file contents, so an edited file
// is never served stale.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*geometry.Buffer, bool, error) {
	data, err := os.ReadFile(opts.Source)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeOpenFailed, err, "open %s", opts.Source)
	}

	key := r.Keyer.MeshKey(cache.Hash(data))

	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "mesh")
			if buf, err := render.ReadJSON(bytes.NewReader(cached)); err == nil {
				return buf, true, nil
			}
		} else {
			observability.Cache().OnCacheMiss(ctx, "mesh")
		}
	}

	buf, err := wavefront.ParseReader(bytes.NewReader(data))
	if err != nil {
		return nil, false, err
	}

	if encoded, err := render.RenderJSON(buf); err == nil {
		if err := r.Cache.Set(ctx, key, encoded, cache.TTLMesh); err == nil {
			observability.Cache().OnCacheSet(ctx, "mesh", len(encoded))
		}
	}

	return buf, false, nil
}

// RenderWithCacheInfo renders all requested formats, serving from the
// artifact cache where possible. The hit flag is true only when every
// format was cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, buf *geometry.Buffer, meshHash string, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(meshHash, cache.ArtifactKeyOpts{
			Format: format,
			Width:  opts.Width,
			Height: opts.Height,
			Stroke: opts.Stroke,
		})

		if !opts.Refresh && meshHash != "" {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allHit = false

		data, err := r.renderFormat(buf, format, opts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data

		if meshHash != "" {
			if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
				observability.Cache().OnCacheSet(ctx, "artifact", len(data))
			}
		}
	}

	return artifacts, allHit, nil
}

func (r *Runner) renderFormat(buf *geometry.Buffer, format string, opts Options) ([]byte, error) {
	switch format {
	case render.FormatSVG:
		return render.RenderSVG(buf,
			render.WithSize(opts.Width, opts.Height),
			render.WithStroke(opts.Stroke),
		), nil
	case render.FormatJSON:
		return render.RenderJSON(buf)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
}

func bufVertices(buf *geometry.Buffer) int {
	if buf == nil {
		return 0
	}
	return buf.VertexCount()
}

func bufEdges(buf *geometry.Buffer) int {
	if buf == nil {
		return 0
	}
	return buf.EdgeCount()
}
