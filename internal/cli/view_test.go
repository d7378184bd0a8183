package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meshtools/wireview/pkg/geometry"
	"github.com/meshtools/wireview/pkg/session"
)

func TestRenderASCIISingleVertex(t *testing.T) {
	buf := &geometry.Buffer{Coordinates: []float64{1, 2, 3}}

	out := renderASCII(buf, 11, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}

	// A single vertex has zero span on every axis and lands in the center.
	if []rune(lines[2])[5] != '•' {
		t.Errorf("vertex not centered:\n%s", out)
	}
}

func TestRenderASCIIEdgeEndpoints(t *testing.T) {
	buf := &geometry.Buffer{
		Coordinates: []float64{0, 0, 0, 1, 1, 0},
		Edges:       []int{0, 1, 1, 0},
	}

	out := renderASCII(buf, 10, 10)
	lines := strings.Split(out, "\n")

	// Y is flipped: (0,0) is bottom-left, (1,1) top-right.
	if []rune(lines[9])[0] != '•' {
		t.Errorf("missing bottom-left vertex:\n%s", out)
	}
	if []rune(lines[0])[9] != '•' {
		t.Errorf("missing top-right vertex:\n%s", out)
	}
	if !strings.Contains(out, "·") {
		t.Errorf("edge not drawn:\n%s", out)
	}
}

func TestRenderASCIIEmptyBuffer(t *testing.T) {
	out := renderASCII(&geometry.Buffer{}, 8, 4)
	if strings.TrimSpace(out) != "" {
		t.Errorf("empty buffer should render blank grid, got %q", out)
	}
}

func TestPlotLineEndpoints(t *testing.T) {
	grid := make([][]rune, 5)
	for i := range grid {
		grid[i] = []rune("     ")
	}

	plotLine(grid, 0, 0, 4, 4, '·')

	if grid[0][0] != '·' || grid[4][4] != '·' {
		t.Error("line endpoints not plotted")
	}
	// Out-of-bounds coordinates must not panic.
	plotLine(grid, -2, -2, 10, 10, '·')
}

func viewSession(t *testing.T) *session.Session {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tri.obj")
	content := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	sess := session.New()
	sess.SetSource(path)
	if err := sess.Load(); err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestViewModelQuit(t *testing.T) {
	m := newViewModel(viewSession(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestViewModelRotateUpdatesStatus(t *testing.T) {
	m := newViewModel(viewSession(t))
	before := m.sess.Snapshot().Coordinates

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	vm := updated.(viewModel)

	if !strings.Contains(vm.status, "rotate") {
		t.Errorf("status = %q, want rotate", vm.status)
	}
	after := vm.sess.Snapshot().Coordinates
	same := true
	for i := range before {
		if before[i] != after[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("rotation should change coordinates")
	}
}

func TestViewModelResize(t *testing.T) {
	m := newViewModel(viewSession(t))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	vm := updated.(viewModel)

	if vm.width != 40 || vm.height != 12 {
		t.Errorf("size = %dx%d, want 40x12", vm.width, vm.height)
	}

	view := vm.View()
	if !strings.Contains(view, "rotate") {
		t.Error("view missing key help")
	}
}
