package geometry

import "math"

// NormalizeThreshold is the maximum absolute coordinate allowed before a
// buffer is rescaled for display.
const NormalizeThreshold = 10.0

// Normalize rescales the buffer in place if any coordinate magnitude exceeds
// [NormalizeThreshold]. The whole buffer is multiplied by a single global
// factor 1/max, so the new maximum absolute coordinate is exactly 1.0. This
// is not a bounding-box fit: buffers at or below the threshold are left
// untouched and may still extend past [-1, 1]. No-op on an empty buffer.
func (b *Buffer) Normalize() {
	if b.Empty() {
		return
	}

	maxAbs := 0.0
	for _, c := range b.Coordinates {
		if abs := math.Abs(c); abs > maxAbs {
			maxAbs = abs
		}
	}

	if maxAbs <= NormalizeThreshold {
		return
	}

	factor := 1.0 / maxAbs
	for i := range b.Coordinates {
		b.Coordinates[i] *= factor
	}
}
