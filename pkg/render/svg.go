package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/meshtools/wireview/pkg/geometry"
)

// SVGOption configures the SVG sink.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width      float64
	height     float64
	stroke     float64
	color      string
	background string
}

// WithSize sets the artifact dimensions in pixels.
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) {
		r.width = width
		r.height = height
	}
}

// WithStroke sets the edge stroke width.
func WithStroke(w float64) SVGOption { return func(r *svgRenderer) { r.stroke = w } }

// WithColor sets the edge stroke color.
func WithColor(c string) SVGOption { return func(r *svgRenderer) { r.color = c } }

// WithBackground sets a background fill; empty means transparent.
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }

// margin is the fraction of the frame left empty around the projection.
const margin = 0.05

// RenderSVG draws the wireframe as an orthographic XY projection.
// The projection is scaled uniformly to fit the frame with a small margin
// and centered; the Y axis is flipped because SVG grows downward.
func RenderSVG(buf *geometry.Buffer, opts ...SVGOption) []byte {
	r := svgRenderer{
		width:  DefaultWidth,
		height: DefaultHeight,
		stroke: DefaultStroke,
		color:  "#1a1a2e",
	}
	for _, opt := range opts {
		opt(&r)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	if r.background != "" {
		fmt.Fprintf(&out, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	}

	if !buf.Empty() {
		project := newProjection(buf, r.width, r.height)
		fmt.Fprintf(&out, `  <g stroke="%s" stroke-width="%.2f" stroke-linecap="round">`+"\n", r.color, r.stroke)
		for i := 0; i < buf.EdgeCount(); i++ {
			a, b := buf.Edge(i)
			x1, y1 := project(buf.Vertex(a))
			x2, y2 := project(buf.Vertex(b))
			fmt.Fprintf(&out, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", x1, y1, x2, y2)
		}
		out.WriteString("  </g>\n")
	}

	out.WriteString("</svg>\n")
	return out.Bytes()
}

// newProjection returns a function mapping model coordinates to frame
// coordinates. Scaling is uniform so the model keeps its aspect ratio.
func newProjection(buf *geometry.Buffer, width, height float64) func(x, y, z float64) (float64, float64) {
	lo, hi := buf.Bounds()
	spanX := hi[0] - lo[0]
	spanY := hi[1] - lo[1]

	usableW := width * (1 - 2*margin)
	usableH := height * (1 - 2*margin)

	scale := 1.0
	if spanX > 0 || spanY > 0 {
		scale = min(safeDiv(usableW, spanX), safeDiv(usableH, spanY))
	}

	centerX := (lo[0] + hi[0]) / 2
	centerY := (lo[1] + hi[1]) / 2

	return func(x, y, _ float64) (float64, float64) {
		// Y flipped: model +y is up, SVG +y is down.
		return width/2 + (x-centerX)*scale, height/2 - (y-centerY)*scale
	}
}

// safeDiv treats a zero-extent axis as unconstrained.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return math.MaxFloat64
	}
	return a / b
}
