package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/meshtools/wireview/pkg/geometry"
)

// Document is the JSON serialization of a wireframe buffer.
//
// The format is designed for round-trip fidelity: export then re-import
// produces an identical buffer.
type Document struct {
	Vertices [][3]float64 `json:"vertices"`
	Edges    [][2]int     `json:"edges"`
}

// FromBuffer converts a buffer to its serialization format.
func FromBuffer(buf *geometry.Buffer) Document {
	doc := Document{
		Vertices: make([][3]float64, buf.VertexCount()),
		Edges:    make([][2]int, buf.EdgeCount()),
	}
	for i := range doc.Vertices {
		x, y, z := buf.Vertex(i)
		doc.Vertices[i] = [3]float64{x, y, z}
	}
	for i := range doc.Edges {
		a, b := buf.Edge(i)
		doc.Edges[i] = [2]int{a, b}
	}
	return doc
}

// ToBuffer converts a document back to a flat buffer.
func (d Document) ToBuffer() *geometry.Buffer {
	buf := &geometry.Buffer{
		Coordinates: make([]float64, 0, 3*len(d.Vertices)),
		Edges:       make([]int, 0, 2*len(d.Edges)),
	}
	for _, v := range d.Vertices {
		buf.Coordinates = append(buf.Coordinates, v[0], v[1], v[2])
	}
	for _, e := range d.Edges {
		buf.Edges = append(buf.Edges, e[0], e[1])
	}
	return buf
}

// RenderJSON serializes the buffer as an indented JSON document.
func RenderJSON(buf *geometry.Buffer) ([]byte, error) {
	return json.MarshalIndent(FromBuffer(buf), "", "  ")
}

// WriteJSON encodes the buffer as JSON and writes it to w.
func WriteJSON(buf *geometry.Buffer, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromBuffer(buf)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a JSON document from r into a buffer. Documents whose
// edges reference vertices outside the vertex list are rejected, so a
// corrupt or hand-edited document cannot yield a buffer that breaks the
// edge-endpoint guarantee.
func ReadJSON(r io.Reader) (*geometry.Buffer, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for i, e := range doc.Edges {
		if e[0] < 0 || e[0] >= len(doc.Vertices) || e[1] < 0 || e[1] >= len(doc.Vertices) {
			return nil, fmt.Errorf("edge %d references a vertex outside the document (%d vertices)", i, len(doc.Vertices))
		}
	}
	return doc.ToBuffer(), nil
}
