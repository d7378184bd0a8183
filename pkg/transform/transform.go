// Package transform applies affine transformations to wireframe buffers.
//
// Three stateless strategies exist: Move, Rotate, and Scale. A strategy is
// selected per call by [Kind]; nothing is configured or retained between
// calls. The set is closed on purpose: the observed behavior needs exactly
// these three, so dispatch is over fixed implementations rather than an
// open plugin surface.
//
// All strategies mutate the buffer in place and are reversible with inverse
// parameters: Move by -d undoes Move by d, Rotate by -θ undoes Rotate by θ
// up to floating-point error, and Scale by 1/v undoes Scale by v.
package transform

import (
	"math"

	"github.com/meshtools/wireview/pkg/errors"
	"github.com/meshtools/wireview/pkg/geometry"
)

// Axis selects a coordinate axis. Its value is the stride-3 offset into the
// flat coordinate slice.
type Axis int

// Coordinate axes.
const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "invalid"
}

// ParseAxis converts "x", "y", or "z" to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "invalid axis: %q (must be x, y, or z)", s)
}

// Kind selects a transformation strategy.
type Kind int

// Transformation kinds.
const (
	Move Kind = iota
	Rotate
	Scale
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Rotate:
		return "rotate"
	case Scale:
		return "scale"
	}
	return "invalid"
}

// ParseKind converts "move", "rotate", or "scale" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "move":
		return Move, nil
	case "rotate":
		return Rotate, nil
	case "scale":
		return Scale, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "invalid transform kind: %q (must be move, rotate, or scale)", s)
}

// degToRad converts degrees to radians. Rotation angles arrive in degrees
// from callers and are converted exactly once here.
const degToRad = math.Pi / 180.0

// strategy is a stateless in-place vertex transformation.
type strategy interface {
	apply(buf *geometry.Buffer, value float64, axis Axis)
}

var strategies = map[Kind]strategy{
	Move:   moveStrategy{},
	Rotate: rotateStrategy{},
	Scale:  scaleStrategy{},
}

// Apply transforms the buffer in place with the strategy selected by kind.
// No-op on an empty buffer or an unknown kind.
func Apply(buf *geometry.Buffer, kind Kind, value float64, axis Axis) {
	if buf == nil || buf.Empty() {
		return
	}
	s, ok := strategies[kind]
	if !ok {
		return
	}
	s.apply(buf, value, axis)
}

// moveStrategy adds value to every coordinate at the axis offset.
type moveStrategy struct{}

func (moveStrategy) apply(buf *geometry.Buffer, value float64, axis Axis) {
	for i := int(axis); i < len(buf.Coordinates); i += 3 {
		buf.Coordinates[i] += value
	}
}

// rotateStrategy rotates every vertex around the chosen axis by value
// degrees, using right-handed rotation conventions. One sin/cos pair is
// precomputed and shared by all vertices.
type rotateStrategy struct{}

func (rotateStrategy) apply(buf *geometry.Buffer, value float64, axis Axis) {
	coords := buf.Coordinates
	if len(coords) < 3 {
		return
	}

	rad := value * degToRad
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	switch axis {
	case AxisX:
		for i := 0; i < len(coords); i += 3 {
			y, z := coords[i+1], coords[i+2]
			coords[i+1] = y*cos - z*sin
			coords[i+2] = y*sin + z*cos
		}
	case AxisY:
		for i := 0; i < len(coords); i += 3 {
			x, z := coords[i], coords[i+2]
			coords[i] = x*cos + z*sin
			coords[i+2] = -x*sin + z*cos
		}
	case AxisZ:
		for i := 0; i < len(coords); i += 3 {
			x, y := coords[i], coords[i+1]
			coords[i] = x*cos + y*sin
			coords[i+1] = -x*sin + y*cos
		}
	}
}

// scaleStrategy multiplies every coordinate by value. The axis parameter is
// ignored: scaling is always uniform across all three axes. Zero and
// negative factors are rejected as no-ops so a model can never be collapsed
// or mirrored by a bad slider value.
type scaleStrategy struct{}

func (scaleStrategy) apply(buf *geometry.Buffer, value float64, _ Axis) {
	if value <= 0 {
		return
	}
	for i := range buf.Coordinates {
		buf.Coordinates[i] *= value
	}
}
