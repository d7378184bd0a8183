// Package pipeline provides the core load → transform → render pipeline for
// wireview.
//
// This package implements the complete flow that both the CLI and any
// embedding application use: parse an OBJ source into a wireframe buffer,
// apply the requested transformations, and render output artifacts. By
// centralizing this logic, behavior stays consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: parse and normalize the OBJ source (cache-aware)
//  2. Transform: apply the requested move/rotate/scale steps in order
//  3. Render: generate output in the requested formats (SVG, JSON)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  "models/cube.obj",
//	    Steps:   []pipeline.Step{{Kind: transform.Rotate, Axis: transform.AxisZ, Value: 45}},
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/meshtools/wireview/pkg/errors"
	"github.com/meshtools/wireview/pkg/geometry"
	"github.com/meshtools/wireview/pkg/render"
	"github.com/meshtools/wireview/pkg/transform"
)

// Step is one transformation to apply after loading.
type Step struct {
	Kind  transform.Kind `json:"kind"`
	Value float64        `json:"value"`
	Axis  transform.Axis `json:"axis"`
}

// ParseStep parses a step spec of the form "kind:axis:value", for example
// "move:x:1.5" or "rotate:z:90". Scale ignores the axis, so both
// "scale:2" and "scale:x:2" are accepted.
func ParseStep(spec string) (Step, error) {
	parts := strings.Split(spec, ":")

	kind, err := transform.ParseKind(parts[0])
	if err != nil {
		return Step{}, err
	}

	var axisPart, valuePart string
	switch {
	case len(parts) == 2 && kind == transform.Scale:
		axisPart, valuePart = "x", parts[1]
	case len(parts) == 3:
		axisPart, valuePart = parts[1], parts[2]
	default:
		return Step{}, errors.New(errors.ErrCodeInvalidInput, "invalid step %q (want kind:axis:value)", spec)
	}

	axis, err := transform.ParseAxis(axisPart)
	if err != nil {
		return Step{}, err
	}
	value, err := strconv.ParseFloat(valuePart, 64)
	if err != nil {
		return Step{}, errors.New(errors.ErrCodeInvalidInput, "invalid step value %q", valuePart)
	}

	return Step{Kind: kind, Value: value, Axis: axis}, nil
}

// String returns the spec form of the step.
func (s Step) String() string {
	return s.Kind.String() + ":" + s.Axis.String() + ":" + strconv.FormatFloat(s.Value, 'g', -1, 64)
}

// Options contains all configuration for the pipeline.
type Options struct {
	// Load options
	Source  string `json:"source"`
	Refresh bool   `json:"refresh,omitempty"` // bypass the mesh cache

	// Transform options
	Steps []Step `json:"steps,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`
	Stroke  float64  `json:"stroke,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Source == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	for _, f := range o.Formats {
		if !render.ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", f)
		}
	}
	if o.Width == 0 {
		o.Width = render.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = render.DefaultHeight
	}
	if o.Stroke == 0 {
		o.Stroke = render.DefaultStroke
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Buffer is the loaded and transformed wireframe.
	Buffer *geometry.Buffer

	// MeshHash is the content hash of the final buffer.
	MeshHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount   int
	EdgeCount     int
	LoadTime      time.Duration
	TransformTime time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	MeshHit   bool // Whether the parsed mesh came from cache
	RenderHit bool // Whether all artifacts came from cache
}
