// Package pkg provides the core libraries for wireview OBJ wireframe
// processing.
//
// # Overview
//
// Wireview loads Wavefront OBJ models as wireframes, normalizes oversized
// geometry, applies affine transformations, and renders SVG or JSON
// artifacts. The pkg directory is organized into these areas:
//
//   - [geometry] - Wireframe buffer (flat coordinates + edge indices) and
//     normalization
//   - [wavefront] - OBJ parsing with the lenient-face / strict-vertex rules
//   - [transform] - Move, rotate, and scale strategies
//   - [session] - Stateful load/transform session for interactive use
//   - [render] - SVG and JSON artifact generation
//   - [pipeline] - Orchestration (load → transform → render) with caching
//   - [cache] - File, redis, and null cache backends plus key derivation
//   - [config] - TOML configuration loading
//   - [observability] - Pipeline and cache hook registry
//   - [errors] - Structured errors with stable codes
//   - [buildinfo] - ldflags-injected version information
//
// # Architecture
//
// The typical data flow:
//
//	OBJ source
//	     ↓
//	[wavefront] (parse + normalize)
//	     ↓
//	[geometry] (wireframe buffer)
//	     ↓
//	[transform] (move / rotate / scale)
//	     ↓
//	[render] (SVG / JSON output)
//
// # Quick Start
//
// Run the complete pipeline:
//
//	import (
//	    "context"
//	    "github.com/meshtools/wireview/pkg/pipeline"
//	    "github.com/meshtools/wireview/pkg/transform"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Source: "models/cube.obj",
//	    Steps: []pipeline.Step{
//	        {Kind: transform.Rotate, Axis: transform.AxisZ, Value: 45},
//	    },
//	    Formats: []string{"svg"},
//	})
//
// Or drive a stateful session, the way an interactive viewer does:
//
//	sess := session.New()
//	sess.SetSource("models/cube.obj")
//	if err := sess.Load(); err != nil {
//	    log.Fatal(err)
//	}
//	sess.Transform(transform.Rotate, 45, transform.AxisZ)
//
// # Error Handling
//
// Loading reports three failure classes with stable codes: INVALID_EXTENSION
// (source path is not a .obj file), OPEN_FAILED (file cannot be read), and
// INCORRECT_DATA (a malformed vertex record). Face records are lenient:
// invalid indices are dropped rather than reported.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/wavefront    # Specific package
//
// [geometry]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/geometry
// [wavefront]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/wavefront
// [transform]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/transform
// [session]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/session
// [render]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/cache
// [config]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/config
// [observability]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/observability
// [errors]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/meshtools/wireview/pkg/buildinfo
package pkg
