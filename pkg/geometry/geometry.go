// Package geometry provides the flat vertex/edge storage for wireframe models.
//
// A [Buffer] holds vertex coordinates as a flat float64 slice (three values
// per vertex, insertion order defines the vertex index) and edges as a flat
// int slice (two zero-based vertex indices per edge). The representation is
// deliberately plain: transforms stride over the coordinate slice in place,
// and renderers read it without conversion.
//
// Buffers are not safe for concurrent use. The owning session assumes a
// single calling goroutine; see [github.com/meshtools/wireview/pkg/session].
package geometry

import "slices"

// Buffer is flat numeric storage for a wireframe model.
//
// Invariants maintained by the producing parser:
//   - len(Coordinates) is always a multiple of 3, grouped (x, y, z)
//   - len(Edges) is always a multiple of 2, grouped (a, b)
//   - every edge endpoint is a valid index into Coordinates/3
type Buffer struct {
	Coordinates []float64
	Edges       []int
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Coordinates) / 3
}

// EdgeCount returns the number of edges in the buffer.
func (b *Buffer) EdgeCount() int {
	return len(b.Edges) / 2
}

// Empty reports whether the buffer holds no vertices.
func (b *Buffer) Empty() bool {
	return len(b.Coordinates) == 0
}

// Reset clears all vertex and edge data, keeping allocated capacity.
func (b *Buffer) Reset() {
	b.Coordinates = b.Coordinates[:0]
	b.Edges = b.Edges[:0]
}

// Clone returns an independent copy of the buffer. Display callers take a
// clone instead of aliasing into the live slices, so a later transform or
// reload cannot mutate data they are still reading.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Coordinates: slices.Clone(b.Coordinates),
		Edges:       slices.Clone(b.Edges),
	}
}

// Vertex returns the coordinates of vertex i as (x, y, z).
// The caller must ensure 0 <= i < VertexCount().
func (b *Buffer) Vertex(i int) (x, y, z float64) {
	return b.Coordinates[3*i], b.Coordinates[3*i+1], b.Coordinates[3*i+2]
}

// Edge returns the endpoint vertex indices of edge i.
// The caller must ensure 0 <= i < EdgeCount().
func (b *Buffer) Edge(i int) (a, c int) {
	return b.Edges[2*i], b.Edges[2*i+1]
}

// Bounds returns the per-axis minimum and maximum coordinates.
// Both slices are zero for an empty buffer.
func (b *Buffer) Bounds() (min, max [3]float64) {
	if b.Empty() {
		return min, max
	}
	min = [3]float64{b.Coordinates[0], b.Coordinates[1], b.Coordinates[2]}
	max = min
	for i := 3; i < len(b.Coordinates); i += 3 {
		for a := 0; a < 3; a++ {
			v := b.Coordinates[i+a]
			if v < min[a] {
				min[a] = v
			}
			if v > max[a] {
				max[a] = v
			}
		}
	}
	return min, max
}
