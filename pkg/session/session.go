// Package session owns the lifecycle of a loaded wireframe model.
//
// A [Session] is the contract consumed by whatever front end drives the
// viewer: set a source, load it, transform it, read the result. It owns
// exactly one geometry buffer plus the sticky error from the last load
// attempt, and moves through four states:
//
//	Unset ── SetSource ──> Pending ── Load ──> Loaded
//	            │                        │
//	            └──> Error <─────────────┘
//
// Errors are sticky: once set, Load refuses to run until SetSource is
// called again, and SetSource always clears both buffer and error.
//
// Construct sessions explicitly with [New] and pass them to whoever needs
// them; there is deliberately no package-level shared instance. A session
// assumes a single calling goroutine (typically the UI event loop) and has
// no internal locking. If multiple callers are possible, the caller must
// serialize access externally.
package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/meshtools/wireview/pkg/errors"
	"github.com/meshtools/wireview/pkg/geometry"
	"github.com/meshtools/wireview/pkg/transform"
	"github.com/meshtools/wireview/pkg/wavefront"
)

// minSourceLength is the shortest acceptable source name ("a.obj").
const minSourceLength = 5

// Session holds one model, its source path, and the last load error.
type Session struct {
	id     string
	source string
	buffer geometry.Buffer
	err    error
	loaded bool
}

// New creates an empty session. The session ID is used only to correlate
// log lines when several sessions exist in one process.
func New() *Session {
	return &Session{id: uuid.NewString()}
}

// ID returns the session's correlation ID.
func (s *Session) ID() string {
	return s.id
}

// Source returns the currently stored source path.
func (s *Session) Source() string {
	return s.source
}

// SetSource stores a new source path. The buffer and any pending error are
// cleared unconditionally, regardless of prior state. If the path fails
// extension validation the session enters the error state with
// INVALID_EXTENSION and keeps no source.
func (s *Session) SetSource(path string) {
	s.buffer.Reset()
	s.err = nil
	s.loaded = false
	s.source = ""

	if !validExtension(path) {
		s.err = errors.New(errors.ErrCodeInvalidExtension, "source must be a .obj file: %q", path)
		return
	}
	s.source = path
}

// validExtension requires a literal, case-sensitive ".obj" suffix and a
// total length of at least 5 so the stem is non-empty.
func validExtension(path string) bool {
	return len(path) >= minSourceLength && strings.HasSuffix(path, ".obj")
}

// Load parses the stored source into the session buffer and normalizes it.
// No-op if an error is already pending; the sticky error is returned
// unchanged. On parse failure the session enters the error state and the
// buffer stays empty.
func (s *Session) Load() error {
	if s.err != nil {
		return s.err
	}

	buf, err := wavefront.Parse(s.source)
	if err != nil {
		s.err = err
		s.loaded = false
		return err
	}

	s.buffer = *buf
	s.loaded = true
	return nil
}

// Transform applies an affine transformation to the loaded model in place.
// Silently no-ops (not an error) unless the session is loaded with data.
func (s *Session) Transform(kind transform.Kind, value float64, axis transform.Axis) {
	if !s.loaded || s.buffer.Empty() {
		return
	}
	transform.Apply(&s.buffer, kind, value, axis)
}

// Err returns the sticky error from the last SetSource/Load, or nil.
func (s *Session) Err() error {
	return s.err
}

// ErrorCode returns the machine-readable code of the sticky error, or the
// empty string when no error is pending.
func (s *Session) ErrorCode() errors.Code {
	if s.err == nil {
		return ""
	}
	return errors.GetCode(s.err)
}

// Loaded reports whether the session holds a successfully loaded model.
func (s *Session) Loaded() bool {
	return s.loaded
}

// Coordinates returns the live coordinate slice. The slice is owned by the
// session and is invalidated by the next Load or Transform; callers that
// keep data across mutating calls must use Snapshot instead.
func (s *Session) Coordinates() []float64 {
	return s.buffer.Coordinates
}

// EdgeIndices returns the live edge index slice, with the same ownership
// rules as Coordinates.
func (s *Session) EdgeIndices() []int {
	return s.buffer.Edges
}

// VertexCount returns the number of loaded vertices.
func (s *Session) VertexCount() int {
	return s.buffer.VertexCount()
}

// EdgeCount returns the number of loaded edges.
func (s *Session) EdgeCount() int {
	return s.buffer.EdgeCount()
}

// Snapshot returns an independent copy of the model buffer, safe to keep
// across subsequent loads and transforms.
func (s *Session) Snapshot() *geometry.Buffer {
	return s.buffer.Clone()
}
