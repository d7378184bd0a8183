// Package render generates output artifacts from wireframe buffers.
//
// Two sinks exist: an SVG sink that draws the edges of an orthographic XY
// projection, and a JSON sink that serializes the buffer for downstream
// tooling. There is no raster output, no perspective, and no shading: the
// display proper belongs to the front-end collaborator, these artifacts are
// for files and pipelines.
package render

// Output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// Default artifact dimensions in pixels.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultStroke = 1.0
)
