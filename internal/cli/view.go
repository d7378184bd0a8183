package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/meshtools/wireview/pkg/geometry"
	"github.com/meshtools/wireview/pkg/session"
	"github.com/meshtools/wireview/pkg/transform"
)

const (
	viewRotateStep = 5.0 // degrees per keypress
	viewMoveStep   = 0.1
	viewScaleUp    = 1.1
	viewScaleDown  = 0.9
)

// newViewCmd creates the view command, an interactive terminal viewer that
// projects the wireframe into an ASCII grid and applies transformations live.
func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file.obj]",
		Short: "View a model interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.New()
			sess.SetSource(args[0])
			if err := sess.Load(); err != nil {
				return err
			}

			model := newViewModel(sess)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}

// viewModel is the bubbletea model for the interactive viewer.
type viewModel struct {
	sess   *session.Session
	width  int
	height int
	status string
}

func newViewModel(sess *session.Session) viewModel {
	return viewModel{
		sess:   sess,
		width:  80,
		height: 24,
		status: fmt.Sprintf("%d vertices, %d edges", sess.VertexCount(), sess.EdgeCount()),
	}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left":
			m.apply(transform.Rotate, -viewRotateStep, transform.AxisY)
		case "right":
			m.apply(transform.Rotate, viewRotateStep, transform.AxisY)
		case "up":
			m.apply(transform.Rotate, -viewRotateStep, transform.AxisX)
		case "down":
			m.apply(transform.Rotate, viewRotateStep, transform.AxisX)
		case "z":
			m.apply(transform.Rotate, viewRotateStep, transform.AxisZ)
		case "Z":
			m.apply(transform.Rotate, -viewRotateStep, transform.AxisZ)
		case "+", "=":
			m.apply(transform.Scale, viewScaleUp, transform.AxisX)
		case "-", "_":
			m.apply(transform.Scale, viewScaleDown, transform.AxisX)
		case "a":
			m.apply(transform.Move, -viewMoveStep, transform.AxisX)
		case "d":
			m.apply(transform.Move, viewMoveStep, transform.AxisX)
		case "w":
			m.apply(transform.Move, viewMoveStep, transform.AxisY)
		case "s":
			m.apply(transform.Move, -viewMoveStep, transform.AxisY)
		case "r":
			if err := m.sess.Load(); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("reloaded: %d vertices, %d edges",
					m.sess.VertexCount(), m.sess.EdgeCount())
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *viewModel) apply(kind transform.Kind, value float64, axis transform.Axis) {
	m.sess.Transform(kind, value, axis)
	m.status = fmt.Sprintf("%s %s %.2f", kind, axis, value)
}

func (m viewModel) View() string {
	gridH := m.height - 3
	if gridH < 4 {
		gridH = 4
	}
	gridW := m.width
	if gridW < 8 {
		gridW = 8
	}

	var b strings.Builder
	b.WriteString(renderASCII(m.sess.Snapshot(), gridW, gridH))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ ↑/↓ z rotate  +/- scale  wasd move  r reload  q quit"))
	b.WriteString("\n")
	b.WriteString(StyleValue.Render(m.status))
	return b.String()
}

// renderASCII projects the buffer onto an orthographic XY grid of runes.
// The model is fit to the grid per axis, so aspect ratio follows the
// terminal window rather than the model.
func renderASCII(buf *geometry.Buffer, width, height int) string {
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	if buf != nil && !buf.Empty() {
		lo, hi := buf.Bounds()
		spanX := hi[0] - lo[0]
		spanY := hi[1] - lo[1]

		project := func(x, y float64) (int, int) {
			var fx, fy float64
			if spanX > 0 {
				fx = (x - lo[0]) / spanX
			} else {
				fx = 0.5
			}
			if spanY > 0 {
				fy = (y - lo[1]) / spanY
			} else {
				fy = 0.5
			}
			col := int(math.Round(fx * float64(width-1)))
			row := int(math.Round((1 - fy) * float64(height-1)))
			return col, row
		}

		for i := 0; i < buf.EdgeCount(); i++ {
			a, c := buf.Edge(i)
			ax, ay, _ := buf.Vertex(a)
			cx, cy, _ := buf.Vertex(c)
			x0, y0 := project(ax, ay)
			x1, y1 := project(cx, cy)
			plotLine(grid, x0, y0, x1, y1, '·')
		}
		for i := 0; i < buf.VertexCount(); i++ {
			x, y, _ := buf.Vertex(i)
			col, row := project(x, y)
			setCell(grid, col, row, '•')
		}
	}

	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// plotLine draws a rune line between two grid cells using Bresenham's
// algorithm.
func plotLine(grid [][]rune, x0, y0, x1, y1 int, r rune) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		setCell(grid, x0, y0, r)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func setCell(grid [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
