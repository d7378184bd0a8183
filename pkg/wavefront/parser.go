// Package wavefront parses the wireframe subset of the OBJ text format.
//
// Only two record types are consumed:
//
//	v x y z      vertex: exactly three floats
//	f i1 i2 ...  face: positive 1-based vertex indices
//
// Faces are consumed solely to derive their boundary edges: a face with n
// valid indices contributes n cyclic edges (including last back to first).
// Texture coordinates, normals, materials, groups, and relative (negative)
// vertex references are out of scope; unknown record types are skipped.
//
// Error handling is asymmetric. A vertex line that does not match "v" plus
// exactly three floats is a hard stop: parsing fails with INCORRECT_DATA and
// no further lines are read. A face token without a positive leading integer
// is silently dropped, and a face line never fails, even when every token is
// invalid. Slash-delimited elements ("1/2/3") keep their vertex index.
//
// Edges returned by the parser always reference existing vertices: after the
// whole file is consumed, edges naming a vertex that never appeared are
// dropped.
package wavefront

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/meshtools/wireview/pkg/errors"
	"github.com/meshtools/wireview/pkg/geometry"
)

// Parse reads an OBJ file at path into a fresh buffer.
// Returns OPEN_FAILED if the file cannot be opened, INCORRECT_DATA on a
// malformed vertex line. The buffer is normalized before being returned.
func Parse(path string) (*geometry.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeOpenFailed, err, "open %s", path)
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseReader reads OBJ records from r into a fresh buffer and normalizes it.
func ParseReader(r io.Reader) (*geometry.Buffer, error) {
	buf := &geometry.Buffer{
		Coordinates: make([]float64, 0, 1024),
		Edges:       make([]int, 0, 2048),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		if len(text) < 2 {
			continue
		}

		switch {
		case text[0] == 'v' && text[1] == ' ':
			if !parseVertex(text, buf) {
				// Hard stop: the rest of the file is not consumed.
				return nil, errors.New(errors.ErrCodeIncorrectData, "malformed vertex on line %d", line)
			}
		case text[0] == 'f' && text[1] == ' ':
			parseFace(text[2:], buf)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOpenFailed, err, "read source")
	}

	// Faces may reference vertices declared later in the file, so edge
	// endpoints are checked only once the whole file is consumed.
	buf.Edges = dropDanglingEdges(buf.Edges, buf.VertexCount())

	buf.Normalize()
	return buf, nil
}

// dropDanglingEdges removes edge pairs with an endpoint at or beyond the
// vertex count, keeping every consumer's index arithmetic safe.
func dropDanglingEdges(edges []int, vertexCount int) []int {
	kept := edges[:0]
	for i := 0; i+1 < len(edges); i += 2 {
		a, b := edges[i], edges[i+1]
		if a >= vertexCount || b >= vertexCount {
			continue
		}
		kept = append(kept, a, b)
	}
	return kept
}

// parseVertex parses "v x y z" and appends the three coordinates.
// Returns false unless the line is the marker plus exactly three floats.
func parseVertex(text string, buf *geometry.Buffer) bool {
	fields := strings.Fields(text)
	if len(fields) != 4 || fields[0] != "v" {
		return false
	}

	var coords [3]float64
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return false
		}
		coords[i] = v
	}

	buf.Coordinates = append(buf.Coordinates, coords[0], coords[1], coords[2])
	return true
}

// parseFace splits the face remainder on spaces and emits the cyclic edge
// list for the valid indices. Each token contributes its leading integer, so
// the "v/vt/vn" element forms resolve to their vertex index. Tokens that are
// empty, start with no integer, or resolve to a non-positive index are
// dropped without error. Relative (negative) OBJ references are dropped like
// any other invalid token, not resolved.
func parseFace(rest string, buf *geometry.Buffer) {
	var indices []int
	for _, token := range strings.Split(rest, " ") {
		idx, ok := faceIndex(token)
		if !ok || idx <= 0 {
			continue
		}
		indices = append(indices, idx-1)
	}

	if len(indices) < 2 {
		return
	}
	for i := range indices {
		next := (i + 1) % len(indices)
		buf.Edges = append(buf.Edges, indices[i], indices[next])
	}
}

// faceIndex extracts the leading integer of a face token: an optional sign
// followed by digits, read up to the first other character. Returns false
// when the token carries no integer prefix.
func faceIndex(token string) (int, bool) {
	end := 0
	if end < len(token) && (token[end] == '-' || token[end] == '+') {
		end++
	}
	start := end
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	idx, err := strconv.Atoi(token[:end])
	if err != nil {
		return 0, false
	}
	return idx, true
}
